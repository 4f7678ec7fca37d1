package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Admin access is data-driven, not a separate account type.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User defines the structure for a storefront account.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// RegisterRequest defines the structure for a registration request.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest defines the structure for a login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message read states.
const (
	MessageUnread = "unread"
	MessageRead   = "read"
)

// Message defines the structure for a contact form submission.
type Message struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Subject     string             `json:"subject" bson:"subject"`
	Description string             `json:"description" bson:"description"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
}

// ContactRequest defines the structure for a contact form post.
type ContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Location    string `json:"location"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}

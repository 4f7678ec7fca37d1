package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Transitions are admin-driven and unconstrained: any
// status may be set to any other, only the value itself is validated.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Free shipping kicks in at the threshold; below it a flat fee applies.
const (
	FreeShippingThreshold = 50000
	FlatShippingFee       = 2500
)

// ShippingFeeFor returns the shipping fee for a cart subtotal.
func ShippingFeeFor(subtotal int) int {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// ShippingAddress is the customer detail block captured at checkout.
// City and state are optional.
type ShippingAddress struct {
	Name    string `json:"name" bson:"name" binding:"required"`
	Email   string `json:"email" bson:"email" binding:"required,email"`
	Phone   string `json:"phone" bson:"phone" binding:"required"`
	Address string `json:"address" bson:"address" binding:"required"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
}

// Order defines the structure for a placed order. Items are line-item
// snapshots frozen at purchase time.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Items           []CartItem         `json:"items" bson:"items"`
	Subtotal        int                `json:"subtotal" bson:"subtotal"`
	Shipping        int                `json:"shipping" bson:"shipping"`
	Total           int                `json:"total" bson:"total"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	ShippingAddress ShippingAddress    `json:"shippingAddress" bson:"shippingAddress"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	UserEmail       string             `json:"userEmail" bson:"userEmail"`
	PaymentRef      string             `json:"paymentRef" bson:"paymentRef"`
}

// Reference is the short order reference shown to customers: the last
// eight characters of the id, uppercased.
func (o *Order) Reference() string {
	hex := o.ID.Hex()
	if len(hex) > 8 {
		hex = hex[len(hex)-8:]
	}
	return strings.ToUpper(hex)
}

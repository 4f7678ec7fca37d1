package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Size is one row of a product size chart. Chest and length are in
// inches and stay nil when the admin leaves them blank.
type Size struct {
	Label  string   `json:"label" bson:"label"`
	Chest  *float64 `json:"chest" bson:"chest"`
	Length *float64 `json:"length" bson:"length"`
}

// Product defines the structure for a catalog product. Timestamps are
// unix milliseconds, matching what the storefront stores and sorts on.
type Product struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Price         int                `json:"price" bson:"price"`
	Category      string             `json:"category" bson:"category"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Stock         *int               `json:"stock,omitempty" bson:"stock,omitempty"` // nil means unlimited
	IsNew         bool               `json:"isNew" bson:"isNew"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	Image2        string             `json:"image2,omitempty" bson:"image2,omitempty"`
	ImagePublicID string             `json:"-" bson:"imagePublicId,omitempty"`
	Sizes         []Size             `json:"sizes,omitempty" bson:"sizes,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`

	// Base64 payloads accepted on create/update and uploaded to
	// Cloudinary; never persisted.
	ImageBase64  string `json:"imageBase64,omitempty" bson:"-"`
	Image2Base64 string `json:"image2Base64,omitempty" bson:"-"`
}

// Validate checks a product record at the write boundary. Stored shapes
// used to be a convention only; malformed records are rejected here
// instead of trusted.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Category == "" {
		return fmt.Errorf("category is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	seen := make(map[string]bool, len(p.Sizes))
	for _, s := range p.Sizes {
		if s.Label == "" {
			return fmt.Errorf("size label must not be empty")
		}
		if seen[s.Label] {
			return fmt.Errorf("duplicate size label %q", s.Label)
		}
		seen[s.Label] = true
	}
	return nil
}

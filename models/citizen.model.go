package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Citizen post media types.
const (
	MediaPhoto = "photo"
	MediaVideo = "video"
)

// CitizenPost is one entry in the Debit Citizen community gallery.
type CitizenPost struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PersonName    string             `json:"personName" bson:"personName"`
	Caption       string             `json:"caption,omitempty" bson:"caption,omitempty"`
	Type          string             `json:"type" bson:"type"`
	MediaURL      string             `json:"mediaUrl" bson:"mediaUrl"`
	MediaPublicID string             `json:"-" bson:"mediaPublicId,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`

	// Base64 media accepted on create/update, uploaded to Cloudinary.
	MediaBase64 string `json:"mediaBase64,omitempty" bson:"-"`
}

// Validate checks a citizen post at the write boundary.
func (p *CitizenPost) Validate() error {
	if p.PersonName == "" {
		return fmt.Errorf("personName is required")
	}
	if p.Type != MediaPhoto && p.Type != MediaVideo {
		return fmt.Errorf("type must be %q or %q", MediaPhoto, MediaVideo)
	}
	if p.MediaURL == "" && p.MediaBase64 == "" {
		return fmt.Errorf("media is required")
	}
	return nil
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem is a product snapshot saved to a wishlist. Membership is
// a set keyed by product id; there is no quantity.
type WishlistItem struct {
	ProductID string `json:"id" bson:"productId" binding:"required"`
	Name      string `json:"name" bson:"name" binding:"required"`
	Price     int    `json:"price" bson:"price"`
	Category  string `json:"category,omitempty" bson:"category,omitempty"`
	Image     string `json:"image,omitempty" bson:"image,omitempty"`
}

// Wishlist is the per-user wishlist document, keyed by the owner's id.
type Wishlist struct {
	UserID primitive.ObjectID `json:"userId" bson:"_id"`
	Items  []WishlistItem     `json:"items" bson:"items"`
}

// Toggle returns a new item list with the product removed when present
// and appended when absent. Applying it twice restores the input.
func Toggle(items []WishlistItem, item WishlistItem) []WishlistItem {
	for _, existing := range items {
		if existing.ProductID == item.ProductID {
			out := make([]WishlistItem, 0, len(items)-1)
			for _, e := range items {
				if e.ProductID != item.ProductID {
					out = append(out, e)
				}
			}
			return out
		}
	}
	out := make([]WishlistItem, len(items))
	copy(out, items)
	return append(out, item)
}

// Contains reports wishlist membership by product id.
func Contains(items []WishlistItem, productID string) bool {
	for _, i := range items {
		if i.ProductID == productID {
			return true
		}
	}
	return false
}

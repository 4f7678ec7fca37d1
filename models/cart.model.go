package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a snapshot of a product at the moment it entered the
// cart, plus the chosen quantity and size. A cart holds at most one
// line per product id; a line's qty is always >= 1.
type CartItem struct {
	ProductID    string `json:"id" bson:"productId" binding:"required"`
	Name         string `json:"name" bson:"name" binding:"required"`
	Price        int    `json:"price" bson:"price"`
	Category     string `json:"category,omitempty" bson:"category,omitempty"`
	Image        string `json:"image,omitempty" bson:"image,omitempty"`
	Qty          int    `json:"qty" bson:"qty"`
	SelectedSize string `json:"selectedSize,omitempty" bson:"selectedSize,omitempty"`
}

// Cart is the per-user cart document, keyed by the owning user's id.
type Cart struct {
	UserID primitive.ObjectID `json:"userId" bson:"_id"`
	Items  []CartItem         `json:"items" bson:"items"`
}

// CartTotal sums price*qty over all lines.
func CartTotal(items []CartItem) int {
	total := 0
	for _, i := range items {
		total += i.Price * i.Qty
	}
	return total
}

// CartCount sums the quantities over all lines.
func CartCount(items []CartItem) int {
	count := 0
	for _, i := range items {
		count += i.Qty
	}
	return count
}

// AddOrIncrement returns a new line list with the given item merged in:
// an existing line for the same product gains exactly one unit and
// keeps its stored fields, a new product is appended with qty 1.
func AddOrIncrement(items []CartItem, item CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ProductID == item.ProductID {
			out[i].Qty++
			return out
		}
	}
	item.Qty = 1
	return append(out, item)
}

// SetQuantity returns a new line list with the line's qty overwritten.
// A qty of zero or less removes the line instead of zeroing it.
func SetQuantity(items []CartItem, productID string, qty int) []CartItem {
	if qty <= 0 {
		return RemoveItem(items, productID)
	}
	out := make([]CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Qty = qty
			break
		}
	}
	return out
}

// RemoveItem returns a new line list without the given product.
func RemoveItem(items []CartItem, productID string) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, i := range items {
		if i.ProductID != productID {
			out = append(out, i)
		}
	}
	return out
}

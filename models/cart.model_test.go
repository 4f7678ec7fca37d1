package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleItems() []CartItem {
	return []CartItem{
		{ProductID: "p1", Name: "Oversized Tee", Price: 5000, Qty: 2},
		{ProductID: "p2", Name: "Cargo Pants", Price: 3000, Qty: 1},
	}
}

func TestCartTotals(t *testing.T) {
	items := sampleItems()
	assert.Equal(t, 13000, CartTotal(items))
	assert.Equal(t, 3, CartCount(items))

	assert.Equal(t, 0, CartTotal(nil))
	assert.Equal(t, 0, CartCount(nil))
}

func TestShippingFee(t *testing.T) {
	// 13000 is under the 50000 free-shipping threshold.
	assert.Equal(t, 2500, ShippingFeeFor(CartTotal(sampleItems())))
	assert.Equal(t, 0, ShippingFeeFor(50000))
	assert.Equal(t, 0, ShippingFeeFor(120000))
	assert.Equal(t, 2500, ShippingFeeFor(49999))
}

func TestAddOrIncrementExisting(t *testing.T) {
	items := sampleItems()
	out := AddOrIncrement(items, CartItem{ProductID: "p1", Name: "ignored", Price: 9999})

	assert.Len(t, out, 2)
	assert.Equal(t, 3, out[0].Qty)
	// Stored fields stay untouched.
	assert.Equal(t, "Oversized Tee", out[0].Name)
	assert.Equal(t, 5000, out[0].Price)
	// Input list is not mutated.
	assert.Equal(t, 2, items[0].Qty)
}

func TestAddOrIncrementNew(t *testing.T) {
	out := AddOrIncrement(sampleItems(), CartItem{ProductID: "p3", Name: "Bucket Hat", Price: 2000, Qty: 5})

	assert.Len(t, out, 3)
	assert.Equal(t, "p3", out[2].ProductID)
	// New lines always start at qty 1, whatever the request claims.
	assert.Equal(t, 1, out[2].Qty)
}

func TestSetQuantity(t *testing.T) {
	out := SetQuantity(sampleItems(), "p1", 7)
	assert.Equal(t, 7, out[0].Qty)

	out = SetQuantity(sampleItems(), "p1", 0)
	assert.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ProductID)

	out = SetQuantity(sampleItems(), "p1", -1)
	assert.Len(t, out, 1)

	// Unknown id leaves the list as-is.
	out = SetQuantity(sampleItems(), "nope", 4)
	assert.Equal(t, sampleItems(), out)
}

func TestRemoveItem(t *testing.T) {
	out := RemoveItem(sampleItems(), "p2")
	assert.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ProductID)

	assert.Empty(t, RemoveItem(nil, "p1"))
}

func TestWishlistToggleRoundTrip(t *testing.T) {
	items := []WishlistItem{{ProductID: "p1", Name: "Oversized Tee", Price: 5000}}
	hat := WishlistItem{ProductID: "p2", Name: "Bucket Hat", Price: 2000}

	once := Toggle(items, hat)
	assert.True(t, Contains(once, "p2"))

	twice := Toggle(once, hat)
	assert.False(t, Contains(twice, "p2"))
	assert.Equal(t, items, twice)
}

func TestWishlistToggleRemoves(t *testing.T) {
	items := []WishlistItem{
		{ProductID: "p1"},
		{ProductID: "p2"},
		{ProductID: "p3"},
	}
	out := Toggle(items, WishlistItem{ProductID: "p2"})
	assert.Len(t, out, 2)
	assert.False(t, Contains(out, "p2"))
	// Input list is not mutated.
	assert.Len(t, items, 3)
}

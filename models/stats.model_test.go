package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(n int) *int { return &n }

func TestRevenueWindows(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	revenue := map[string]int{
		"2026-08-31": 1000,
		"2026-08-25": 500,
		"2026-07-10": 200,
		"2025-12-31": 900,
		"not-a-date": 50,
	}

	assert.Equal(t, 1500, RevenueWithinDays(revenue, now, 7))
	assert.Equal(t, 1700, RevenueWithinDays(revenue, now, 60))
	assert.Equal(t, 1500, RevenueThisMonth(revenue, now))
	assert.Equal(t, 1700, RevenueThisYear(revenue, now))
}

func TestRevenueEmpty(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 0, RevenueWithinDays(nil, now, 30))
	assert.Equal(t, 0, RevenueThisMonth(map[string]int{}, now))
	assert.Equal(t, 0, RevenueThisYear(map[string]int{}, now))
}

func TestCountByStatus(t *testing.T) {
	orders := []Order{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusDelivered},
		{Status: StatusCancelled},
	}
	counts := CountByStatus(orders)
	assert.Equal(t, 2, counts[StatusPending])
	assert.Equal(t, 1, counts[StatusDelivered])
	assert.Equal(t, 1, counts[StatusCancelled])
	assert.Equal(t, 0, counts[StatusShipped])

	assert.Empty(t, CountByStatus(nil))
}

func TestSalesByProduct(t *testing.T) {
	orders := []Order{
		{Items: []CartItem{{ProductID: "p1", Qty: 2}, {ProductID: "p2", Qty: 1}}},
		{Items: []CartItem{{ProductID: "p1", Qty: 3}}},
		{Items: nil},
	}
	sales := SalesByProduct(orders)
	assert.Equal(t, 5, sales["p1"])
	assert.Equal(t, 1, sales["p2"])
	assert.Len(t, sales, 2)
}

func TestTopProducts(t *testing.T) {
	slow := Product{ID: primitive.NewObjectID(), Name: "Slow Mover"}
	fast := Product{ID: primitive.NewObjectID(), Name: "Best Seller"}
	sales := map[string]int{
		fast.ID.Hex(): 9,
		slow.ID.Hex(): 2,
	}

	top := TopProducts([]Product{slow, fast}, sales)
	assert.Equal(t, "Best Seller", top[0].Name)
	assert.Equal(t, 9, top[0].Sold)
	assert.Equal(t, "Slow Mover", top[1].Name)
	assert.Equal(t, 2, top[1].Sold)
}

func TestStockBuckets(t *testing.T) {
	products := []Product{
		{Name: "gone", Stock: intPtr(0)},
		{Name: "low", Stock: intPtr(3)},
		{Name: "edge", Stock: intPtr(5)},
		{Name: "fine", Stock: intPtr(6)},
		{Name: "unlimited"}, // no stock field means unlimited
	}

	out := OutOfStock(products)
	assert.Len(t, out, 1)
	assert.Equal(t, "gone", out[0].Name)

	low := LowStock(products)
	assert.Len(t, low, 2)
	assert.Equal(t, "low", low[0].Name)
	assert.Equal(t, "edge", low[1].Name)
}

func TestProductValidate(t *testing.T) {
	p := Product{Name: "Tee", Category: "Men - T-Shirts", Price: 5000}
	assert.NoError(t, p.Validate())

	bad := Product{Name: "Tee", Category: "Men - T-Shirts", Price: -1}
	assert.Error(t, bad.Validate())

	bad = Product{Name: "", Category: "Men - T-Shirts"}
	assert.Error(t, bad.Validate())

	bad = Product{Name: "Tee", Category: "x", Stock: intPtr(-2)}
	assert.Error(t, bad.Validate())

	bad = Product{Name: "Tee", Category: "x", Sizes: []Size{{Label: "M"}, {Label: "M"}}}
	assert.Error(t, bad.Validate())
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("refunded"))
	assert.False(t, ValidStatus(""))
}

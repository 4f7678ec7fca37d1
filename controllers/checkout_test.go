package controllers

import (
	"strings"
	"testing"

	"github.com/Mega2255/Debit-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testOrder(t *testing.T) models.Order {
	t.Helper()
	id, err := primitive.ObjectIDFromHex("66f1a2b3c4d5e6f708091a2b")
	require.NoError(t, err)

	return models.Order{
		ID: id,
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Oversized Tee", Price: 5000, Qty: 2},
			{ProductID: "p2", Name: "Cargo Pants", Price: 3000, Qty: 1},
		},
		Subtotal: 13000,
		Shipping: 2500,
		Total:    15500,
		Status:   models.StatusPending,
		ShippingAddress: models.ShippingAddress{
			Name:    "Ada Obi",
			Email:   "ada@example.com",
			Phone:   "08012345678",
			Address: "12 Broad Street",
			City:    "Lagos",
		},
		PaymentRef: "whatsapp-order",
	}
}

func TestBuildOrderMessage(t *testing.T) {
	msg := BuildOrderMessage(testOrder(t))

	assert.Contains(t, msg, "*NEW ORDER — DEBIT*")
	assert.Contains(t, msg, "👤 Name: Ada Obi")
	assert.Contains(t, msg, "📧 Email: ada@example.com")
	assert.Contains(t, msg, "📍 Address: 12 Broad Street")
	assert.Contains(t, msg, "🏙️ City: Lagos")
	// Blank state line is omitted entirely.
	assert.NotContains(t, msg, "🗺️ State:")

	assert.Contains(t, msg, "*Order Items (2)*")
	assert.Contains(t, msg, "1. Oversized Tee")
	assert.Contains(t, msg, "   Qty: 2  |  ₦10,000")
	assert.Contains(t, msg, "2. Cargo Pants")
	assert.Contains(t, msg, "   Qty: 1  |  ₦3,000")

	assert.Contains(t, msg, "🚚 Shipping: ₦2,500")
	assert.Contains(t, msg, "💰 *TOTAL: ₦15,500*")
	assert.Contains(t, msg, "🔖 Order ID: #08091A2B")
	assert.True(t, strings.HasSuffix(msg, "_Please reply to confirm and arrange payment._"))
}

func TestBuildOrderMessageFreeShipping(t *testing.T) {
	order := testOrder(t)
	order.Items = []models.CartItem{{ProductID: "p1", Name: "Varsity Jacket", Price: 60000, Qty: 1}}
	order.Subtotal = 60000
	order.Shipping = models.ShippingFeeFor(order.Subtotal)
	order.Total = order.Subtotal + order.Shipping

	require.Equal(t, 0, order.Shipping)
	msg := BuildOrderMessage(order)
	assert.Contains(t, msg, "🚚 Shipping: FREE")
	assert.Contains(t, msg, "💰 *TOTAL: ₦60,000*")
}

func TestWhatsAppURL(t *testing.T) {
	url := WhatsAppURL("2348124931302", "hello order")
	assert.Equal(t, "https://wa.me/2348124931302?text=hello+order", url)

	url = WhatsAppURL("2348124931302", BuildOrderMessage(testOrder(t)))
	assert.True(t, strings.HasPrefix(url, "https://wa.me/2348124931302?text="))
	// The composed message never leaks raw newlines into the URL.
	assert.NotContains(t, url, "\n")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "500", formatAmount(500))
	assert.Equal(t, "2,500", formatAmount(2500))
	assert.Equal(t, "13,000", formatAmount(13000))
	assert.Equal(t, "1,234,567", formatAmount(1234567))
}

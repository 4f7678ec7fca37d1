package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Mega2255/Debit-shop/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment reference recorded for WhatsApp hand-off orders. Card payment
// is a deferred integration; until then every order goes out this way.
const whatsAppPaymentRef = "whatsapp-order"

// Checkout turns the caller's cart into a pending order and returns the
// pre-filled WhatsApp composer link for the hand-off. The cart is
// cleared once the order is stored.
func (ctrl *Controller) Checkout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var address models.ShippingAddress
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
		return
	}

	items, err := ctrl.loadCartItems(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	subtotal := models.CartTotal(items)
	shipping := models.ShippingFeeFor(subtotal)

	order := models.Order{
		ID:              primitive.NewObjectID(),
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           subtotal + shipping,
		Status:          models.StatusPending,
		CreatedAt:       nowMillis(),
		ShippingAddress: address,
		UserID:          userID,
		UserEmail:       address.Email,
		PaymentRef:      whatsAppPaymentRef,
	}

	if _, err := ctrl.DB.Collection("orders").InsertOne(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.clearCart(ctx, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := BuildOrderMessage(order)
	c.JSON(http.StatusCreated, gin.H{
		"order":       order,
		"message":     message,
		"whatsappUrl": WhatsAppURL(ctrl.WhatsAppNumber, message),
	})
}

// BuildOrderMessage composes the WhatsApp order text: customer block,
// numbered item lines, shipping and total, and the short order ref.
// Blank city/state lines are omitted.
func BuildOrderMessage(order models.Order) string {
	divider := strings.Repeat("─", 21)

	lines := []string{
		"🛍️ *NEW ORDER — DEBIT*",
		divider,
		"",
		"*Customer Details*",
		"👤 Name: " + order.ShippingAddress.Name,
		"📧 Email: " + order.ShippingAddress.Email,
		"📞 Phone: " + order.ShippingAddress.Phone,
		"📍 Address: " + order.ShippingAddress.Address,
	}
	if order.ShippingAddress.City != "" {
		lines = append(lines, "🏙️ City: "+order.ShippingAddress.City)
	}
	if order.ShippingAddress.State != "" {
		lines = append(lines, "🗺️ State: "+order.ShippingAddress.State)
	}

	lines = append(lines,
		"",
		divider,
		fmt.Sprintf("*Order Items (%d)*", len(order.Items)),
	)
	for i, item := range order.Items {
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, item.Name),
			fmt.Sprintf("   Qty: %d  |  ₦%s", item.Qty, formatAmount(item.Price*item.Qty)),
		)
	}

	shipping := "FREE"
	if order.Shipping > 0 {
		shipping = "₦" + formatAmount(order.Shipping)
	}
	lines = append(lines,
		"",
		divider,
		"🚚 Shipping: "+shipping,
		fmt.Sprintf("💰 *TOTAL: ₦%s*", formatAmount(order.Total)),
		"",
		"🔖 Order ID: #"+order.Reference(),
		"",
		"_Please reply to confirm and arrange payment._",
	)

	return strings.Join(lines, "\n")
}

// WhatsAppURL builds the wa.me composer link with the message
// pre-filled.
func WhatsAppURL(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// formatAmount renders an integer naira amount with thousands
// separators, e.g. 13000 -> "13,000".
func formatAmount(n int) string {
	if n < 0 {
		return "-" + formatAmount(-n)
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

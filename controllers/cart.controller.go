package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Mega2255/Debit-shop/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCart returns the caller's cart with derived totals.
func (ctrl *Controller) GetCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	items, err := ctrl.loadCartItems(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondCart(c, items)
}

// AddToCart merges a product snapshot into the cart: one more unit for
// an existing line, a fresh qty=1 line otherwise.
func (ctrl *Controller) AddToCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	items, err := ctrl.loadCartItems(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items = models.AddOrIncrement(items, item)
	if err := ctrl.saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondCart(c, items)
}

// UpdateCartItem overwrites a line's quantity; qty <= 0 removes it.
func (ctrl *Controller) UpdateCartItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		Qty int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := ctrl.loadCartItems(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items = models.SetQuantity(items, c.Param("productId"), req.Qty)
	if err := ctrl.saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondCart(c, items)
}

// RemoveCartItem deletes one line from the cart.
func (ctrl *Controller) RemoveCartItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	items, err := ctrl.loadCartItems(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items = models.RemoveItem(items, c.Param("productId"))
	if err := ctrl.saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondCart(c, items)
}

// ClearCart drops the caller's cart document entirely.
func (ctrl *Controller) ClearCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := ctrl.clearCart(ctx, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

func (ctrl *Controller) loadCartItems(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	var cart models.Cart
	err := ctrl.DB.Collection("carts").FindOne(ctx, bson.M{"_id": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart.Items, nil
}

func (ctrl *Controller) saveCart(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	cart := models.Cart{UserID: userID, Items: items}
	_, err := ctrl.DB.Collection("carts").ReplaceOne(
		ctx, bson.M{"_id": userID}, cart, options.Replace().SetUpsert(true),
	)
	return err
}

func (ctrl *Controller) clearCart(ctx context.Context, userID primitive.ObjectID) error {
	_, err := ctrl.DB.Collection("carts").DeleteOne(ctx, bson.M{"_id": userID})
	return err
}

func respondCart(c *gin.Context, items []models.CartItem) {
	subtotal := models.CartTotal(items)
	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"subtotal": subtotal,
		"count":    models.CartCount(items),
		"shipping": models.ShippingFeeFor(subtotal),
	})
}

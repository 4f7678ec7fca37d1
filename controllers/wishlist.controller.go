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

// GetWishlist returns the caller's wishlist.
func (ctrl *Controller) GetWishlist(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	items, err := ctrl.loadWishlistItems(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ToggleWishlist flips membership for a product snapshot: present is
// removed, absent is added.
func (ctrl *Controller) ToggleWishlist(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var item models.WishlistItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := ctrl.loadWishlistItems(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items = models.Toggle(items, item)
	wishlist := models.Wishlist{UserID: userID, Items: items}
	_, err = ctrl.DB.Collection("wishlists").ReplaceOne(
		ctx, bson.M{"_id": userID}, wishlist, options.Replace().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"wishlisted": models.Contains(items, item.ProductID),
	})
}

func (ctrl *Controller) loadWishlistItems(ctx context.Context, userID primitive.ObjectID) ([]models.WishlistItem, error) {
	var wishlist models.Wishlist
	err := ctrl.DB.Collection("wishlists").FindOne(ctx, bson.M{"_id": userID}).Decode(&wishlist)
	if err == mongo.ErrNoDocuments {
		return []models.WishlistItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	if wishlist.Items == nil {
		wishlist.Items = []models.WishlistItem{}
	}
	return wishlist.Items, nil
}

package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Mega2255/Debit-shop/models"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCitizenPosts lists the Debit Citizen gallery, newest first. Public
// endpoint.
func (ctrl *Controller) GetCitizenPosts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ctrl.DB.Collection("citizenPosts").Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	posts := []models.CitizenPost{}
	if err = cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreateCitizenPost adds a gallery entry, uploading base64 media when
// given.
func (ctrl *Controller) CreateCitizenPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var post models.CitizenPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := post.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ctrl.uploadCitizenMedia(c, &post) {
		return
	}

	post.ID = primitive.NilObjectID
	post.CreatedAt = nowMillis()
	post.UpdatedAt = post.CreatedAt

	result, err := ctrl.DB.Collection("citizenPosts").InsertOne(ctx, post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	post.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// UpdateCitizenPost overwrites a gallery entry.
func (ctrl *Controller) UpdateCitizenPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.CitizenPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := post.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ctrl.uploadCitizenMedia(c, &post) {
		return
	}

	post.UpdatedAt = nowMillis()
	update := bson.M{"$set": bson.M{
		"personName": post.PersonName,
		"caption":    post.Caption,
		"type":       post.Type,
		"mediaUrl":   post.MediaURL,
		"updatedAt":  post.UpdatedAt,
	}}

	result, err := ctrl.DB.Collection("citizenPosts").UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully"})
}

// DeleteCitizenPost removes a gallery entry.
func (ctrl *Controller) DeleteCitizenPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	result, err := ctrl.DB.Collection("citizenPosts").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (ctrl *Controller) uploadCitizenMedia(c *gin.Context, post *models.CitizenPost) bool {
	if post.MediaBase64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(
			context.Background(),
			post.MediaBase64,
			uploader.UploadParams{Folder: "debit/citizen"},
		)
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload media"})
			return false
		}
		post.MediaURL = uploadResult.SecureURL
		post.MediaPublicID = uploadResult.PublicID
	}
	post.MediaBase64 = ""
	return true
}

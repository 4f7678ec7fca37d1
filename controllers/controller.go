package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Mega2255/Debit-shop/internal/live"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Controller holds the dependencies shared by all handlers.
type Controller struct {
	DB              *mongo.Database
	Cld             *cloudinary.Cloudinary
	PasetoSecretKey []byte
	WhatsAppNumber  string
	ProductFeed     *live.Hub
}

// HealthCheck reports the database connection status.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// currentUserID reads the authenticated user's id set by the auth
// middleware. Handlers behind the auth group always have one; the bool
// guards direct use outside it.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

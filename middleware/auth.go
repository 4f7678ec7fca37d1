package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Mega2255/Debit-shop/models"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Footer attached to every issued token.
const TokenFooter = "debit-shop"

// Auth verifies the bearer token and stores the caller's user id in the
// request context under "userID".
func Auth(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		var token paseto.JSONToken
		var footer string
		if err := paseto.NewV2().Decrypt(tokenStr, secretKey, &token, &footer); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if footer != TokenFooter || token.Expiration.Before(time.Now()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", token.Subject)
		c.Next()
	}
}

// RequireAdmin loads the caller's profile and rejects non-admin roles.
// The role check lives server-side so the admin surface is enforced,
// not cosmetic.
func RequireAdmin(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID, err := primitive.ObjectIDFromHex(c.GetString("userID"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
			return
		}

		var user models.User
		err = db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
		if err != nil || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}

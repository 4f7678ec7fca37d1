package routes

import (
	"net/http"

	"github.com/Mega2255/Debit-shop/controllers"
	"github.com/Mega2255/Debit-shop/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "https://debit-shop.vercel.app"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		// Utility routes
		api.GET("/health", ctrl.HealthCheck)

		// Authentication routes
		api.POST("/register", ctrl.Register)
		api.POST("/login", ctrl.Login)

		// Public catalog routes
		api.GET("/products", ctrl.GetProducts)
		api.GET("/products/:id", ctrl.GetProduct)
		api.GET("/collections/:gender", ctrl.GetCategory)
		api.GET("/live/products", ctrl.LiveProducts)

		// Contact form and community gallery
		api.POST("/contact", ctrl.CreateMessage)
		api.GET("/citizen-posts", ctrl.GetCitizenPosts)
	}

	// Routes for signed-in customers
	auth := api.Group("", middleware.Auth(ctrl.PasetoSecretKey))
	{
		auth.GET("/me", ctrl.Me)

		auth.GET("/cart", ctrl.GetCart)
		auth.POST("/cart", ctrl.AddToCart)
		auth.PUT("/cart/:productId", ctrl.UpdateCartItem)
		auth.DELETE("/cart/:productId", ctrl.RemoveCartItem)
		auth.DELETE("/cart", ctrl.ClearCart)

		auth.GET("/wishlist", ctrl.GetWishlist)
		auth.POST("/wishlist/toggle", ctrl.ToggleWishlist)

		auth.POST("/checkout", ctrl.Checkout)
		auth.GET("/orders", ctrl.GetMyOrders)
		auth.GET("/orders/:id", ctrl.GetOrder)
	}

	// Admin back-office routes
	admin := api.Group("/admin", middleware.Auth(ctrl.PasetoSecretKey), middleware.RequireAdmin(ctrl.DB))
	{
		admin.GET("/stats", ctrl.GetStats)

		admin.POST("/products", ctrl.CreateProduct)
		admin.PUT("/products/:id", ctrl.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.DeleteProduct)

		admin.GET("/orders", ctrl.GetAllOrders)
		admin.PUT("/orders/:id/status", ctrl.UpdateOrderStatus)

		admin.GET("/users", ctrl.GetUsers)

		admin.GET("/messages", ctrl.GetMessages)
		admin.PUT("/messages/:id/read", ctrl.MarkMessageRead)
		admin.DELETE("/messages/:id", ctrl.DeleteMessage)

		admin.POST("/citizen-posts", ctrl.CreateCitizenPost)
		admin.PUT("/citizen-posts/:id", ctrl.UpdateCitizenPost)
		admin.DELETE("/citizen-posts/:id", ctrl.DeleteCitizenPost)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}

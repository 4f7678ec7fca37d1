package controllers

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Mega2255/Debit-shop/models"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Products per page on category and search views.
const productsPerPage = 12

// GetProducts lists products, newest first, with optional search,
// category-slug filter, sort mode and pagination.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := ctrl.loadProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if slug := c.Query("category"); slug != "" {
		filtered := []models.Product{}
		for _, p := range products {
			if models.MatchesSubcategory(p.Category, slug) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := []models.Product{}
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), search) ||
				strings.Contains(strings.ToLower(p.Category), search) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sortProducts(products, c.DefaultQuery("sort", "newest"))

	total := len(products)
	pages := (total + productsPerPage - 1) / productsPerPage
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	start := (page - 1) * productsPerPage
	if start > total {
		start = total
	}
	end := start + productsPerPage
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products[start:end],
		"total":    total,
		"page":     page,
		"pages":    pages,
	})
}

// GetCategory returns the grouped Men/Women collection page: every
// subcategory with its matching products, in display order.
func (ctrl *Controller) GetCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var subcats []models.Subcategory
	switch c.Param("gender") {
	case "men":
		subcats = models.MenSubcategories
	case "women":
		subcats = models.WomenSubcategories
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown category"})
		return
	}

	products, err := ctrl.loadProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type group struct {
		models.Subcategory
		Products []models.Product `json:"products"`
	}
	groups := make([]group, 0, len(subcats))
	for _, sc := range subcats {
		g := group{Subcategory: sc, Products: []models.Product{}}
		for _, p := range products {
			if models.MatchesSubcategory(p.Category, sc.Slug) {
				g.Products = append(g.Products, p)
			}
		}
		groups = append(groups, g)
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetProduct returns a single product by id.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	err = ctrl.DB.Collection("products").FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct adds a new product, uploading base64 images when given.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ctrl.uploadProductImages(c, &product) {
		return
	}

	product.ID = primitive.NilObjectID
	product.CreatedAt = nowMillis()
	product.UpdatedAt = product.CreatedAt

	result, err := ctrl.DB.Collection("products").InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct overwrites a product record, re-uploading images when a
// new base64 payload is supplied.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ctrl.uploadProductImages(c, &product) {
		return
	}

	product.ID = objectID
	product.UpdatedAt = nowMillis()

	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"price":       product.Price,
		"category":    product.Category,
		"description": product.Description,
		"stock":       product.Stock,
		"isNew":       product.IsNew,
		"image":       product.Image,
		"image2":      product.Image2,
		"sizes":       product.Sizes,
		"updatedAt":   product.UpdatedAt,
	}}

	result, err := ctrl.DB.Collection("products").UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// DeleteProduct removes a product.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	result, err := ctrl.DB.Collection("products").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// loadProducts fetches the full catalog, newest first. Lists are not
// guaranteed sorted by the store; createdAt desc is the convention.
func (ctrl *Controller) loadProducts(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ctrl.DB.Collection("products").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func sortProducts(products []models.Product, mode string) {
	switch mode {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	default: // newest
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt > products[j].CreatedAt })
	}
}

// uploadProductImages pushes any base64 payloads to Cloudinary and
// rewrites the image fields to the hosted URLs. Writes the HTTP error
// response itself and reports false on failure.
func (ctrl *Controller) uploadProductImages(c *gin.Context, product *models.Product) bool {
	if product.ImageBase64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(
			context.Background(),
			product.ImageBase64,
			uploader.UploadParams{Folder: "debit/products"},
		)
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return false
		}
		product.Image = uploadResult.SecureURL
		product.ImagePublicID = uploadResult.PublicID
	}

	if product.Image2Base64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(
			context.Background(),
			product.Image2Base64,
			uploader.UploadParams{Folder: "debit/products"},
		)
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return false
		}
		product.Image2 = uploadResult.SecureURL
	}

	product.ImageBase64 = ""
	product.Image2Base64 = ""
	return true
}

package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Mega2255/Debit-shop/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// revenueDay is one document of the per-day revenue ledger.
type revenueDay struct {
	Date  string `bson:"_id"`
	Total int    `bson:"total"`
}

// GetStats builds the admin overview: totals, per-status order counts,
// windowed revenue, best sellers and stock warnings. Empty collections
// fold to zero values.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := ctrl.loadProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	orders, err := ctrl.loadOrders(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totalUsers, err := ctrl.DB.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	unread, err := ctrl.DB.Collection("messages").CountDocuments(ctx, bson.M{"status": models.MessageUnread})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	revenue, err := ctrl.loadRevenue(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	stats := models.Stats{
		TotalProducts:  len(products),
		TotalUsers:     int(totalUsers),
		TotalOrders:    len(orders),
		UnreadMessages: int(unread),
		OrdersByStatus: models.CountByStatus(orders),
		Revenue: models.RevenueStats{
			Today:     revenue[now.Format(models.RevenueDateLayout)],
			Last7Days: models.RevenueWithinDays(revenue, now, 7),
			ThisMonth: models.RevenueThisMonth(revenue, now),
			ThisYear:  models.RevenueThisYear(revenue, now),
		},
		TopProducts: models.TopProducts(products, models.SalesByProduct(orders)),
		OutOfStock:  models.OutOfStock(products),
		LowStock:    models.LowStock(products),
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (ctrl *Controller) loadRevenue(ctx context.Context) (map[string]int, error) {
	cursor, err := ctrl.DB.Collection("revenue").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var days []revenueDay
	if err = cursor.All(ctx, &days); err != nil {
		return nil, err
	}

	revenue := make(map[string]int, len(days))
	for _, d := range days {
		revenue[d.Date] = d.Total
	}
	return revenue, nil
}

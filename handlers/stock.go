package handlers

import (
	"fmt"
	"net/http"

	"bbq-ordering-api/activity"
	"bbq-ordering-api/config"
	"bbq-ordering-api/middleware"
	"bbq-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// StockOverview lists products with stock-level filters and dashboard counts
// — staff only
func StockOverview(c *gin.Context) {
	query := config.DB.Model(&models.Product{})

	switch c.Query("stock_filter") {
	case "out_of_stock":
		query = query.Where("stock_quantity = 0")
	case "low_stock":
		query = query.Where("stock_quantity > 0 AND stock_quantity <= ?", models.LowStockThreshold)
	case "in_stock":
		query = query.Where("stock_quantity > ?", models.LowStockThreshold)
	case "inactive":
		query = query.Where("is_active = ?", false)
	}

	var products []models.Product
	query.Order("name asc").Find(&products)

	var total, outOfStock, lowStock, inactive int64
	config.DB.Model(&models.Product{}).Count(&total)
	config.DB.Model(&models.Product{}).Where("stock_quantity = 0").Count(&outOfStock)
	config.DB.Model(&models.Product{}).
		Where("stock_quantity > 0 AND stock_quantity <= ?", models.LowStockThreshold).Count(&lowStock)
	config.DB.Model(&models.Product{}).Where("is_active = ?", false).Count(&inactive)

	c.JSON(http.StatusOK, gin.H{
		"products":           products,
		"total_products":     total,
		"out_of_stock_count": outOfStock,
		"low_stock_count":    lowStock,
		"inactive_count":     inactive,
	})
}

type UpdateStockRequest struct {
	StockQuantity *uint `json:"stock_quantity" binding:"required"`
	IsActive      *bool `json:"is_active"`
}

// UpdateStock sets a product's stock level and active flag — staff only
func UpdateStock(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{"stock_quantity": *req.StockQuantity}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}

	activity.Record(c, middleware.GetUserID(c), models.ActionAdminAction,
		fmt.Sprintf("Updated stock for %s: %d units, Active: %t", product.Name, product.StockQuantity, product.IsActive))

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Stock updated for %s", product.Name),
		"product": product,
	})
}

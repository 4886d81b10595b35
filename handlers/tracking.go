package handlers

import (
	"fmt"
	"net/http"
	"time"

	"bbq-ordering-api/activity"
	"bbq-ordering-api/config"
	"bbq-ordering-api/middleware"
	"bbq-ordering-api/models"
	"bbq-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// getOrCreateTracking returns the order's tracking record, creating it at the
// initial stage on first access.
func getOrCreateTracking(db *gorm.DB, orderID uint) (*models.OrderTracking, error) {
	var tracking models.OrderTracking
	err := db.Where(models.OrderTracking{OrderID: orderID}).FirstOrCreate(&tracking).Error
	return &tracking, err
}

// mirrorTracking reflects an order status change onto the tracking record
// using the transition table. Unmapped statuses leave tracking untouched.
func mirrorTracking(order *models.Order) error {
	status, ok := statemachine.TrackingStatusFor(order.Status)
	if !ok {
		return nil
	}
	tracking, err := getOrCreateTracking(config.DB, order.ID)
	if err != nil {
		return err
	}
	return config.DB.Model(tracking).Update("status", status).Error
}

// GetOrderTracking returns the delivery progress of an order, creating the
// tracking record on first view
func GetOrderTracking(c *gin.Context) {
	order, ok := ownedOrder(c)
	if !ok {
		return
	}

	tracking, err := getOrCreateTracking(config.DB, order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tracking"})
		return
	}

	config.DB.Preload("Items.Product").Preload("Payments").First(order, order.ID)

	c.JSON(http.StatusOK, gin.H{
		"order":        order,
		"tracking":     tracking,
		"has_location": tracking.HasPosition(),
	})
}

type UpdateTrackingRequest struct {
	Status            models.TrackingStatus `json:"status"`
	Latitude          *float64              `json:"latitude"`
	Longitude         *float64              `json:"longitude"`
	LocationName      string                `json:"location_name"`
	EstimatedDelivery *time.Time            `json:"estimated_delivery"`
}

// UpdateTracking lets staff set the delivery stage, courier position and ETA.
// Any stage may be set from any other; a partial coordinate pair is ignored
func UpdateTracking(c *gin.Context) {
	order, ok := ownedOrder(c)
	if !ok {
		return
	}

	var req UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tracking, err := getOrCreateTracking(config.DB, order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tracking"})
		return
	}

	if req.Status != "" {
		if !models.ValidTrackingStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tracking status"})
			return
		}
		tracking.Status = req.Status
	}

	tracking.SetPosition(req.Latitude, req.Longitude, req.LocationName)

	if req.EstimatedDelivery != nil {
		tracking.EstimatedDelivery = req.EstimatedDelivery
	}

	if err := config.DB.Save(tracking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tracking"})
		return
	}

	activity.Record(c, middleware.GetUserID(c), models.ActionUpdateOrder,
		fmt.Sprintf("Admin updated tracking for Order #%d - Status: %s", order.ID, tracking.Status))

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Tracking updated for Order #%d", order.ID),
		"tracking": tracking,
	})
}

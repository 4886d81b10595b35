package handlers

import (
	"fmt"
	"net/http"

	"bbq-ordering-api/activity"
	"bbq-ordering-api/config"
	"bbq-ordering-api/middleware"
	"bbq-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// ownedOrder resolves the :id parameter. Staff reach any order; customers
// only their own, with cross-owner references reported as not found.
func ownedOrder(c *gin.Context) (*models.Order, bool) {
	var order models.Order
	query := config.DB
	if !middleware.IsStaff(c) {
		query = query.Where("customer_id = ?", middleware.GetUserID(c))
	}
	if err := query.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return nil, false
	}
	return &order, true
}

// ListOrders returns the caller's orders, or every order for staff
func ListOrders(c *gin.Context) {
	query := config.DB.Preload("Items.Product").Preload("Payments")
	if !middleware.IsStaff(c) {
		query = query.Where("customer_id = ?", middleware.GetUserID(c))
	} else {
		query = query.Preload("Customer")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns one order with items and payments
func GetOrder(c *gin.Context) {
	order, ok := ownedOrder(c)
	if !ok {
		return
	}
	config.DB.Preload("Items.Product").Preload("Payments").Preload("Tracking").First(order, order.ID)

	canEdit, _ := order.CanBeEdited(config.DB)
	c.JSON(http.StatusOK, gin.H{
		"order":    order,
		"can_edit": canEdit || middleware.IsStaff(c),
	})
}

type UpdateOrderRequest struct {
	Status            *models.OrderStatus `json:"status"`
	Notes             *string             `json:"notes"`
	DeliveryAddress   *string             `json:"delivery_address"`
	DeliveryDistrict  *string             `json:"delivery_district"`
	DeliveryLatitude  *float64            `json:"delivery_latitude"`
	DeliveryLongitude *float64            `json:"delivery_longitude"`
}

// UpdateOrder edits notes and delivery details. Status changes are staff
// only and mirror into the tracking record through the transition table.
// Locked orders (delivered/completed with a successful payment) refuse
// customer edits.
func UpdateOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	staff := middleware.IsStaff(c)

	order, ok := ownedOrder(c)
	if !ok {
		return
	}

	if !staff {
		editable, err := order.CanBeEdited(config.DB)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check order"})
			return
		}
		if !editable {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Order #%d cannot be edited. Orders that are out for delivery or completed with successful payment cannot be modified.", order.ID),
			})
			return
		}
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.DeliveryAddress != nil {
		updates["delivery_address"] = *req.DeliveryAddress
	}
	if req.DeliveryDistrict != nil {
		updates["delivery_district"] = *req.DeliveryDistrict
	}
	if req.DeliveryLatitude != nil {
		updates["delivery_latitude"] = *req.DeliveryLatitude
	}
	if req.DeliveryLongitude != nil {
		updates["delivery_longitude"] = *req.DeliveryLongitude
	}

	statusChanged := false
	if req.Status != nil && staff {
		if !models.ValidOrderStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}
		if *req.Status != order.Status {
			updates["status"] = *req.Status
			statusChanged = true
		}
	}

	if len(updates) > 0 {
		if err := config.DB.Model(order).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
	}

	if statusChanged {
		if err := mirrorTracking(order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tracking"})
			return
		}
		activity.Record(c, userID, models.ActionUpdateOrder,
			fmt.Sprintf("Admin updated Order #%d - Status: %s", order.ID, order.Status))
	} else {
		activity.Record(c, userID, models.ActionUpdateOrder,
			fmt.Sprintf("Updated Order #%d", order.ID))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Order #%d updated successfully", order.ID),
		"order":   order,
	})
}

// DeleteOrder removes an order and, via cascade, its items, payments,
// tracking and invoice. Customers are refused once the order is locked.
func DeleteOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	order, ok := ownedOrder(c)
	if !ok {
		return
	}

	if !middleware.IsStaff(c) {
		deletable, err := order.CanBeDeleted(config.DB)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check order"})
			return
		}
		if !deletable {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Order #%d cannot be deleted. Orders that are out for delivery or completed with successful payment cannot be cancelled.", order.ID),
			})
			return
		}
	}

	activity.Record(c, userID, models.ActionCancelOrder, fmt.Sprintf("Cancelled Order #%d", order.ID))

	if err := config.DB.Select(clause.Associations).Delete(order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order #%d deleted successfully", order.ID)})
}

type AddOrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  uint `json:"quantity" binding:"required,min=1"`
}

// AddOrderItem appends a line to an existing order, snapshotting the current
// product price, then recomputes the order total from its items
func AddOrderItem(c *gin.Context) {
	order, ok := ownedOrder(c)
	if !ok {
		return
	}

	var req AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := config.DB.Where("is_active = ?", true).First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	item := models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
		Price:     product.Price,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	if err := order.RecalculateTotal(config.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order total"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      fmt.Sprintf("%s added to order #%d", product.Name, order.ID),
		"item":         item,
		"total_amount": order.TotalAmount,
	})
}

// RemoveOrderItem deletes a line from an order and recomputes the total
func RemoveOrderItem(c *gin.Context) {
	order, ok := ownedOrder(c)
	if !ok {
		return
	}

	var item models.OrderItem
	if err := config.DB.Where("id = ? AND order_id = ?", c.Param("itemId"), order.ID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}

	var product models.Product
	config.DB.First(&product, item.ProductID)

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	if err := order.RecalculateTotal(config.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order total"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      fmt.Sprintf("%s removed from order #%d", product.Name, order.ID),
		"total_amount": order.TotalAmount,
	})
}

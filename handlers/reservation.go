package handlers

import (
	"fmt"
	"net/http"
	"time"

	"bbq-ordering-api/activity"
	"bbq-ordering-api/config"
	"bbq-ordering-api/middleware"
	"bbq-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationItemRequest struct {
	ProductID           uint   `json:"product_id" binding:"required"`
	Quantity            uint   `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"special_instructions"`
}

type ReservationRequest struct {
	ReservationType models.ReservationType   `json:"reservation_type" binding:"required"`
	ScheduledFor    time.Time                `json:"scheduled_for" binding:"required"`
	ContactPhone    string                   `json:"contact_phone"`
	Address         string                   `json:"address"`
	Notes           string                   `json:"notes"`
	Items           []ReservationItemRequest `json:"items"`
}

// ListReservations returns the caller's reservations, or all of them for
// staff
func ListReservations(c *gin.Context) {
	query := config.DB.Preload("Items.Product")
	if middleware.IsStaff(c) {
		query = query.Preload("Customer")
	} else {
		query = query.Where("customer_id = ?", middleware.GetUserID(c))
	}

	var reservations []models.Reservation
	query.Order("scheduled_for desc").Find(&reservations)
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// CreateReservation books a pickup, delivery or dine-in slot with optional
// product lines snapshotted at current prices
func CreateReservation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidReservationType(req.ReservationType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation type"})
		return
	}

	var reservation models.Reservation
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		reservation = models.Reservation{
			CustomerID:      userID,
			ReservationType: req.ReservationType,
			ScheduledFor:    req.ScheduledFor,
			ContactPhone:    req.ContactPhone,
			Address:         req.Address,
			Notes:           req.Notes,
			Status:          models.ReservationPending,
			TotalAmount:     decimal.Zero,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, line := range req.Items {
			var product models.Product
			if err := tx.Where("is_active = ?", true).First(&product, line.ProductID).Error; err != nil {
				return err
			}
			item := models.ReservationItem{
				ReservationID:       reservation.ID,
				ProductID:           product.ID,
				Quantity:            line.Quantity,
				Price:               product.Price,
				SpecialInstructions: line.SpecialInstructions,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			total = total.Add(item.TotalPrice())
		}

		reservation.TotalAmount = total
		return tx.Model(&reservation).Update("total_amount", total).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create reservation"})
		return
	}

	activity.Record(c, userID, models.ActionCreateReservation,
		fmt.Sprintf("Created reservation #%d", reservation.ID))

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation created successfully",
		"reservation": reservation,
	})
}

// ownedReservation resolves :id against the caller, with staff reaching any
// reservation.
func ownedReservation(c *gin.Context) (*models.Reservation, bool) {
	var reservation models.Reservation
	query := config.DB
	if !middleware.IsStaff(c) {
		query = query.Where("customer_id = ?", middleware.GetUserID(c))
	}
	if err := query.First(&reservation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return nil, false
	}
	return &reservation, true
}

type UpdateReservationRequest struct {
	ReservationType models.ReservationType   `json:"reservation_type"`
	ScheduledFor    *time.Time               `json:"scheduled_for"`
	ContactPhone    *string                  `json:"contact_phone"`
	Address         *string                  `json:"address"`
	Notes           *string                  `json:"notes"`
	Status          models.ReservationStatus `json:"status"`
}

// UpdateReservation edits booking details; status changes are staff only
func UpdateReservation(c *gin.Context) {
	reservation, ok := ownedReservation(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.ReservationType != "" {
		if !models.ValidReservationType(req.ReservationType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation type"})
			return
		}
		updates["reservation_type"] = req.ReservationType
	}
	if req.ScheduledFor != nil {
		updates["scheduled_for"] = *req.ScheduledFor
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != "" && middleware.IsStaff(c) {
		if !models.ValidReservationStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation status"})
			return
		}
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := config.DB.Model(reservation).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
			return
		}
	}

	activity.Record(c, middleware.GetUserID(c), models.ActionUpdateReservation,
		fmt.Sprintf("Updated reservation #%d", reservation.ID))

	c.JSON(http.StatusOK, gin.H{
		"message":     "Reservation updated successfully",
		"reservation": reservation,
	})
}

// DeleteReservation cancels a booking and removes its lines via cascade
func DeleteReservation(c *gin.Context) {
	reservation, ok := ownedReservation(c)
	if !ok {
		return
	}

	if err := config.DB.Select(clause.Associations).Delete(reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel reservation"})
		return
	}

	activity.Record(c, middleware.GetUserID(c), models.ActionCancelReservation,
		fmt.Sprintf("Cancelled reservation #%d", reservation.ID))

	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled successfully"})
}

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
	"github.com/shopspring/decimal"
)

// ListPayments returns every payment with optional status, method and search
// filters — staff only
func ListPayments(c *gin.Context) {
	query := config.DB.Preload("Customer").Preload("ProcessedBy")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if method := c.Query("method"); method != "" {
		query = query.Where("payment_method = ?", method)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("JOIN users ON users.id = payments.customer_id").
			Where("users.username LIKE ? OR payments.transaction_id LIKE ? OR payments.reference_number LIKE ? OR payments.order_id LIKE ?",
				pattern, pattern, pattern, pattern)
	}

	var payments []models.Payment
	query.Order("payments.created_at desc").Find(&payments)
	c.JSON(http.StatusOK, gin.H{"count": len(payments), "payments": payments})
}

type PaymentRequest struct {
	Amount          *decimal.Decimal      `json:"amount"`
	PaymentMethod   models.PaymentMethod  `json:"payment_method"`
	Status          models.PaymentStatus  `json:"status"`
	TransactionID   *string               `json:"transaction_id"`
	ReferenceNumber *string               `json:"reference_number"`
	PaymentDate     *time.Time            `json:"payment_date"`
	Notes           *string               `json:"notes"`
}

// CreatePayment records a new payment attempt against an order — staff only.
// The amount defaults to the order total when omitted
func CreatePayment(c *gin.Context) {
	staffID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment := models.Payment{
		OrderID:       order.ID,
		CustomerID:    order.CustomerID,
		Amount:        order.TotalAmount,
		PaymentMethod: models.MethodCash,
		Status:        models.PaymentPending,
		ProcessedByID: &staffID,
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentMethod != "" {
		if !models.ValidPaymentMethod(req.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
			return
		}
		payment.PaymentMethod = req.PaymentMethod
	}
	if req.Status != "" {
		if !models.ValidPaymentStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
			return
		}
		payment.Status = req.Status
	}
	applyPaymentFields(&payment, &req)

	if err := config.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	activity.Record(c, order.CustomerID, models.ActionPaymentInitiated,
		fmt.Sprintf("Payment #%d created for Order #%d - %s via %s", payment.ID, order.ID, payment.Amount, payment.PaymentMethod))

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Payment #%d created successfully", payment.ID),
		"payment": payment,
	})
}

// UpdatePayment edits a payment — staff only. A status transition writes an
// activity entry whose tag comes from the transition table. Order status is
// never touched here; payment and order state machines stay decoupled
func UpdatePayment(c *gin.Context) {
	staffID := middleware.GetUserID(c)

	var payment models.Payment
	if err := config.DB.First(&payment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	oldStatus := payment.Status

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentMethod != "" {
		if !models.ValidPaymentMethod(req.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
			return
		}
		payment.PaymentMethod = req.PaymentMethod
	}
	if req.Status != "" {
		if !models.ValidPaymentStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
			return
		}
		payment.Status = req.Status
	}
	applyPaymentFields(&payment, &req)
	payment.ProcessedByID = &staffID

	if err := config.DB.Save(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	if oldStatus != payment.Status {
		activity.Record(c, payment.CustomerID, statemachine.PaymentAction(payment.Status),
			fmt.Sprintf("Payment #%d status changed from %s to %s - %s", payment.ID, oldStatus, payment.Status, payment.Amount))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Payment #%d updated successfully", payment.ID),
		"payment": payment,
	})
}

func applyPaymentFields(payment *models.Payment, req *PaymentRequest) {
	if req.TransactionID != nil {
		payment.TransactionID = *req.TransactionID
	}
	if req.ReferenceNumber != nil {
		payment.ReferenceNumber = *req.ReferenceNumber
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = req.PaymentDate
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}
}

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
)

// ListInvoices returns every invoice with optional status and search filters
// — staff only
func ListInvoices(c *gin.Context) {
	query := config.DB.Preload("Customer")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("JOIN users ON users.id = invoices.customer_id").
			Where("invoices.invoice_number LIKE ? OR users.username LIKE ? OR users.first_name LIKE ? OR users.last_name LIKE ?",
				pattern, pattern, pattern, pattern)
	}

	var invoices []models.Invoice
	query.Order("invoices.issued_date desc").Find(&invoices)
	c.JSON(http.StatusOK, gin.H{"count": len(invoices), "invoices": invoices})
}

type GenerateInvoiceRequest struct {
	TaxAmount      *decimal.Decimal `json:"tax_amount"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	DueDate        *time.Time       `json:"due_date"`
	Notes          string           `json:"notes"`
	PaymentTerms   string           `json:"payment_terms"`
}

// GenerateInvoice creates the order's invoice — staff only, at most once per
// order. The subtotal is the live sum of item totals, the customer snapshot
// is frozen at generation, and the number comes from the atomic sequence
func GenerateInvoice(c *gin.Context) {
	staffID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Customer").Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var existing models.Invoice
	if err := config.DB.Where("order_id = ?", order.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "Invoice already exists for this order",
			"invoice": existing,
		})
		return
	}

	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tax := decimal.Zero
	if req.TaxAmount != nil {
		tax = *req.TaxAmount
	}
	discount := decimal.Zero
	if req.DiscountAmount != nil {
		discount = *req.DiscountAmount
	}

	subtotal := decimal.Zero
	for _, item := range order.Items {
		subtotal = subtotal.Add(item.TotalPrice())
	}

	var invoice models.Invoice
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		number, err := models.NextInvoiceNumber(tx, time.Now())
		if err != nil {
			return err
		}
		invoice = models.Invoice{
			OrderID:         order.ID,
			CustomerID:      order.CustomerID,
			InvoiceNumber:   number,
			Status:          models.InvoiceIssued,
			DueDate:         req.DueDate,
			Subtotal:        subtotal,
			TaxAmount:       tax,
			DiscountAmount:  discount,
			TotalAmount:     subtotal.Add(tax).Sub(discount),
			CustomerName:    order.Customer.FullName(),
			CustomerEmail:   order.Customer.Email,
			CustomerPhone:   order.Customer.Phone,
			CustomerAddress: order.DeliveryAddress,
			Notes:           req.Notes,
			PaymentTerms:    req.PaymentTerms,
		}
		return tx.Create(&invoice).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		return
	}

	activity.Record(c, staffID, models.ActionGenerateInvoice,
		fmt.Sprintf("Generated Invoice %s for Order #%d (Customer: %s)", invoice.InvoiceNumber, order.ID, order.Customer.Username))

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Invoice %s generated successfully", invoice.InvoiceNumber),
		"invoice": invoice,
	})
}

// GetInvoice returns one invoice with its order — staff only
func GetInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := config.DB.First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var order models.Order
	config.DB.Preload("Items.Product").First(&order, invoice.OrderID)

	c.JSON(http.StatusOK, gin.H{
		"invoice":    invoice,
		"order":      order,
		"is_overdue": invoice.IsOverdue(time.Now()),
	})
}

type UpdateInvoiceRequest struct {
	Status         models.InvoiceStatus `json:"status"`
	DueDate        *time.Time           `json:"due_date"`
	TaxAmount      *decimal.Decimal     `json:"tax_amount"`
	DiscountAmount *decimal.Decimal     `json:"discount_amount"`
	Notes          *string              `json:"notes"`
	PaymentTerms   *string              `json:"payment_terms"`
}

// UpdateInvoice edits invoice terms — staff only. The subtotal stays frozen;
// tax or discount changes recompute the total from it
func UpdateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := config.DB.First(&invoice, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != "" {
		if !models.ValidInvoiceStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice status"})
			return
		}
		invoice.Status = req.Status
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	if req.TaxAmount != nil {
		invoice.TaxAmount = *req.TaxAmount
	}
	if req.DiscountAmount != nil {
		invoice.DiscountAmount = *req.DiscountAmount
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if req.PaymentTerms != nil {
		invoice.PaymentTerms = *req.PaymentTerms
	}
	invoice.TotalAmount = invoice.Subtotal.Add(invoice.TaxAmount).Sub(invoice.DiscountAmount)

	if err := config.DB.Save(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}

	activity.Record(c, middleware.GetUserID(c), models.ActionUpdateInvoice,
		fmt.Sprintf("Updated Invoice %s", invoice.InvoiceNumber))

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Invoice %s updated successfully", invoice.InvoiceNumber),
		"invoice": invoice,
	})
}

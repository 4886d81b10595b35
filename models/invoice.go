package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceIssued    InvoiceStatus = "issued"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is the point-in-time financial snapshot of an order. Amounts and
// customer fields are frozen at generation; later edits to the order's
// customer do not propagate.
type Invoice struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	OrderID       uint          `json:"order_id" gorm:"uniqueIndex;not null"`
	CustomerID    uint          `json:"customer_id" gorm:"not null"`
	Customer      User          `json:"-" gorm:"foreignKey:CustomerID"`
	InvoiceNumber string        `json:"invoice_number" gorm:"uniqueIndex;not null"`
	Status        InvoiceStatus `json:"status" gorm:"not null;default:'draft'"`

	IssuedDate time.Time  `json:"issued_date" gorm:"autoCreateTime"`
	DueDate    *time.Time `json:"due_date"`

	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	TaxAmount      decimal.Decimal `json:"tax_amount" gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:decimal(10,2);not null"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`

	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`

	Notes        string `json:"notes"`
	PaymentTerms string `json:"payment_terms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidInvoiceStatus reports whether s is one of the defined invoice statuses.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceDraft, InvoiceIssued, InvoicePaid, InvoiceCancelled:
		return true
	}
	return false
}

// IsOverdue reports whether the invoice is past its due date and not yet paid.
func (i *Invoice) IsOverdue(now time.Time) bool {
	if i.DueDate == nil || i.Status == InvoicePaid {
		return false
	}
	due := i.DueDate.Truncate(24 * time.Hour)
	return now.Truncate(24 * time.Hour).After(due)
}

// InvoiceSequence is the single-row counter backing invoice numbering. The
// conditional increment keeps concurrent generations from drawing the same
// number.
type InvoiceSequence struct {
	ID    uint   `gorm:"primaryKey"`
	Value uint64 `gorm:"not null"`
}

// NextInvoiceNumber reserves the next sequence value within tx and formats it
// as INV-YYYYMMDD-NNNN.
func NextInvoiceNumber(tx *gorm.DB, now time.Time) (string, error) {
	res := tx.Model(&InvoiceSequence{}).
		Where("id = ?", 1).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		if err := tx.Create(&InvoiceSequence{ID: 1, Value: 1}).Error; err != nil {
			return "", err
		}
	}
	var seq InvoiceSequence
	if err := tx.First(&seq, 1).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%s-%04d", now.Format("20060102"), seq.Value), nil
}

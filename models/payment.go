package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodGCash        PaymentMethod = "gcash"
	MethodPayMaya      PaymentMethod = "paymaya"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
)

// Payment records one payment attempt against an order. Multiple rows per
// order are allowed (retries, partial records); the order counts as paid when
// any row is completed.
type Payment struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OrderID       uint            `json:"order_id" gorm:"not null;index"`
	Order         Order           `json:"-" gorm:"foreignKey:OrderID"`
	CustomerID    uint            `json:"customer_id" gorm:"not null"`
	Customer      User            `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod PaymentMethod   `json:"payment_method" gorm:"not null;default:'cash'"`
	Status        PaymentStatus   `json:"status" gorm:"not null;default:'pending'"`

	TransactionID   string     `json:"transaction_id"`
	ReferenceNumber string     `json:"reference_number"`
	PaymentDate     *time.Time `json:"payment_date"`

	Notes         string `json:"notes"`
	ProcessedByID *uint  `json:"processed_by_id"`
	ProcessedBy   *User  `json:"processed_by,omitempty" gorm:"foreignKey:ProcessedByID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidPaymentStatus reports whether s is one of the defined payment statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentFailed, PaymentCancelled, PaymentRefunded:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodGCash, MethodPayMaya, MethodBankTransfer, MethodCreditCard, MethodDebitCard:
		return true
	}
	return false
}

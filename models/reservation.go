package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationPreparing ReservationStatus = "preparing"
	ReservationReady     ReservationStatus = "ready"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type ReservationType string

const (
	ReservationPickup   ReservationType = "pickup"
	ReservationDelivery ReservationType = "delivery"
	ReservationDineIn   ReservationType = "dine_in"
)

type Reservation struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	CustomerID      uint              `json:"customer_id" gorm:"not null"`
	Customer        User              `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ReservationType ReservationType   `json:"reservation_type" gorm:"not null;default:'pickup'"`
	ScheduledFor    time.Time         `json:"scheduled_for" gorm:"not null"`
	TotalAmount     decimal.Decimal   `json:"total_amount" gorm:"type:decimal(10,2)"`
	ContactPhone    string            `json:"contact_phone"`
	Address         string            `json:"address"`
	Notes           string            `json:"notes"`
	Status          ReservationStatus `json:"status" gorm:"not null;default:'pending'"`
	Items           []ReservationItem `json:"items,omitempty" gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type ReservationItem struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	ReservationID       uint            `json:"reservation_id" gorm:"not null;index"`
	ProductID           uint            `json:"product_id" gorm:"not null"`
	Product             Product         `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity            uint            `json:"quantity" gorm:"not null;default:1"`
	Price               decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	SpecialInstructions string          `json:"special_instructions"`
}

// TotalPrice is quantity times the snapshotted unit price.
func (ri *ReservationItem) TotalPrice() decimal.Decimal {
	return ri.Price.Mul(decimal.NewFromInt(int64(ri.Quantity)))
}

// ValidReservationType reports whether t is one of the accepted types.
func ValidReservationType(t ReservationType) bool {
	switch t {
	case ReservationPickup, ReservationDelivery, ReservationDineIn:
		return true
	}
	return false
}

// ValidReservationStatus reports whether s is one of the defined statuses.
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationPreparing,
		ReservationReady, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

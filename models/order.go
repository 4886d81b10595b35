package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the coarse lifecycle state of an order. Delivery progress at a
// finer grain lives on the order's tracking record.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderProcessing     OrderStatus = "processing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderCompleted      OrderStatus = "completed"
	OrderCancelled      OrderStatus = "cancelled"
)

type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	CustomerID  uint            `json:"customer_id" gorm:"not null"`
	Customer    User            `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status      OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	Notes       string          `json:"notes"`

	DeliveryAddress   string   `json:"delivery_address"`
	DeliveryDistrict  string   `json:"delivery_district"`
	DeliveryLatitude  *float64 `json:"delivery_latitude"`
	DeliveryLongitude *float64 `json:"delivery_longitude"`

	Items    []OrderItem    `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments []Payment      `json:"payments,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Tracking *OrderTracking `json:"tracking,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Invoice  *Invoice       `json:"invoice,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null;index"`
	ProductID uint            `json:"product_id" gorm:"not null"`
	Product   Product         `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  uint            `json:"quantity" gorm:"not null;default:1"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}

// TotalPrice is quantity times the snapshotted unit price.
func (oi *OrderItem) TotalPrice() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// ValidOrderStatus reports whether s is one of the defined order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderOutForDelivery, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// HasCompletedPayment reports whether any payment against the order has
// reached completed status.
func (o *Order) HasCompletedPayment(db *gorm.DB) (bool, error) {
	var count int64
	err := db.Model(&Payment{}).
		Where("order_id = ? AND status = ?", o.ID, PaymentCompleted).
		Count(&count).Error
	return count > 0, err
}

// CanBeEdited reports whether a customer may still modify the order. Orders
// that are completed or out for delivery lock once a successful payment exists.
func (o *Order) CanBeEdited(db *gorm.DB) (bool, error) {
	return o.customerMutable(db)
}

// CanBeDeleted reports whether a customer may still cancel the order. Same
// rule as editing.
func (o *Order) CanBeDeleted(db *gorm.DB) (bool, error) {
	return o.customerMutable(db)
}

func (o *Order) customerMutable(db *gorm.DB) (bool, error) {
	if o.Status != OrderCompleted && o.Status != OrderOutForDelivery {
		return true, nil
	}
	paid, err := o.HasCompletedPayment(db)
	if err != nil {
		return false, err
	}
	return !paid, nil
}

// RecalculateTotal replaces the order total with the live sum of its item
// totals. Always called after an item mutation; the total is never patched
// incrementally.
func (o *Order) RecalculateTotal(db *gorm.DB) error {
	var items []OrderItem
	if err := db.Where("order_id = ?", o.ID).Find(&items).Error; err != nil {
		return err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice())
	}
	o.TotalAmount = total
	return db.Model(o).Update("total_amount", total).Error
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the per-user holding area for intended purchases. One cart exists per
// user; it is created lazily on the first add and survives checkout as an empty
// container.
type Cart struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	User      User       `json:"-" gorm:"foreignKey:UserID"`
	Items     []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CartID    uint      `json:"cart_id" gorm:"not null;index:idx_cart_product,unique"`
	ProductID uint      `json:"product_id" gorm:"not null;index:idx_cart_product,unique"`
	Product   Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  uint      `json:"quantity" gorm:"not null;default:1"`
	AddedAt   time.Time `json:"added_at" gorm:"autoCreateTime"`
}

// TotalPrice is quantity times the product's current price. Cart lines are not
// snapshots; a product price change shows up here immediately.
func (ci *CartItem) TotalPrice() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// TotalItems sums the quantities of the loaded items.
func (c *Cart) TotalItems() uint {
	var total uint
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums the live line totals of the loaded items. Items must be
// preloaded with their products.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

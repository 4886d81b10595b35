package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stock level below which a product is reported as low stock.
const LowStockThreshold = 5

type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"not null"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity uint            `json:"stock_quantity" gorm:"not null;default:0"`
	// No column default: gorm drops zero-value fields that carry one, which
	// would make an explicitly inactive product impossible to insert.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsInStock reports whether any units remain.
func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}

// StockStatus returns the display label for the current stock level.
func (p *Product) StockStatus() string {
	switch {
	case p.StockQuantity == 0:
		return "Out of Stock"
	case p.StockQuantity <= LowStockThreshold:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// ReduceStock decrements stock by quantity and persists the change. It returns
// false without touching the row when quantity exceeds the available stock.
func (p *Product) ReduceStock(db *gorm.DB, quantity uint) (bool, error) {
	if quantity > p.StockQuantity {
		return false, nil
	}
	p.StockQuantity -= quantity
	if err := db.Model(p).Update("stock_quantity", p.StockQuantity).Error; err != nil {
		return false, err
	}
	return true, nil
}

// AddStock increments stock by quantity and persists the change.
func (p *Product) AddStock(db *gorm.DB, quantity uint) error {
	p.StockQuantity += quantity
	return db.Model(p).Update("stock_quantity", p.StockQuantity).Error
}

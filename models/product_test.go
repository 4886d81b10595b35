package models_test

import (
	"testing"

	"bbq-ordering-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceStock(t *testing.T) {
	db := setupTestDB(t)

	product := models.Product{
		Name:          "BBQ Pork",
		Price:         decimal.NewFromFloat(25.00),
		StockQuantity: 10,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&product).Error)

	ok, err := product.ReduceStock(db, 4)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(6), product.StockQuantity)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, uint(6), reloaded.StockQuantity)

	// Asking for more than remains must fail without touching the row.
	ok, err = product.ReduceStock(db, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, uint(6), reloaded.StockQuantity)
}

func TestInactiveProductStaysInactive(t *testing.T) {
	db := setupTestDB(t)

	product := models.Product{Name: "Retired Dish", Price: decimal.NewFromFloat(10.00), IsActive: false}
	require.NoError(t, db.Create(&product).Error)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.False(t, reloaded.IsActive, "explicitly inactive product must not be stored as active")
}

func TestAddStock(t *testing.T) {
	db := setupTestDB(t)

	product := models.Product{Name: "Ribs", Price: decimal.NewFromFloat(40.00), StockQuantity: 2, IsActive: true}
	require.NoError(t, db.Create(&product).Error)

	require.NoError(t, product.AddStock(db, 8))

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, uint(10), reloaded.StockQuantity)
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		quantity uint
		want     string
	}{
		{0, "Out of Stock"},
		{1, "Low Stock"},
		{5, "Low Stock"},
		{6, "In Stock"},
		{100, "In Stock"},
	}
	for _, tt := range tests {
		p := models.Product{StockQuantity: tt.quantity}
		assert.Equal(t, tt.want, p.StockStatus(), "quantity %d", tt.quantity)
	}
}

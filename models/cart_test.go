package models_test

import (
	"testing"

	"bbq-ordering-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotalsAreLive(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	pork := models.Product{Name: "BBQ Pork", Price: decimal.NewFromFloat(25.00), StockQuantity: 10, IsActive: true}
	ribs := models.Product{Name: "Pork Ribs", Price: decimal.NewFromFloat(40.00), StockQuantity: 10, IsActive: true}
	require.NoError(t, db.Create(&pork).Error)
	require.NoError(t, db.Create(&ribs).Error)

	cart := models.Cart{UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: pork.ID, Quantity: 1}).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: ribs.ID, Quantity: 2}).Error)

	var loaded models.Cart
	require.NoError(t, db.Preload("Items.Product").First(&loaded, cart.ID).Error)
	assert.Equal(t, uint(3), loaded.TotalItems())
	assert.True(t, loaded.TotalPrice().Equal(decimal.NewFromFloat(105.00)),
		"got %s", loaded.TotalPrice())

	// Changing a product price changes the cart total without any cart write.
	require.NoError(t, db.Model(&pork).Update("price", decimal.NewFromFloat(30.00)).Error)

	require.NoError(t, db.Preload("Items.Product").First(&loaded, cart.ID).Error)
	assert.True(t, loaded.TotalPrice().Equal(decimal.NewFromFloat(110.00)),
		"got %s", loaded.TotalPrice())
}

func TestCartItemUniquePerProduct(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Chicken", Price: decimal.NewFromFloat(15.00), IsActive: true}
	require.NoError(t, db.Create(&product).Error)

	cart := models.Cart{UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}).Error)

	err := db.Create(&models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}).Error
	assert.Error(t, err, "duplicate (cart, product) rows must be rejected")
}

package models_test

import (
	"testing"

	"bbq-ordering-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) (*models.User, *models.Order) {
	t.Helper()
	user := models.User{Username: "carol-" + string(status), Email: string(status) + "@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	order := models.Order{CustomerID: user.ID, TotalAmount: decimal.NewFromFloat(50.00), Status: status}
	require.NoError(t, db.Create(&order).Error)
	return &user, &order
}

func TestOrderEditLock(t *testing.T) {
	tests := []struct {
		name          string
		status        models.OrderStatus
		paymentStatus models.PaymentStatus
		wantEditable  bool
	}{
		{"pending without payment", models.OrderPending, "", true},
		{"pending with completed payment", models.OrderPending, models.PaymentCompleted, true},
		{"processing with completed payment", models.OrderProcessing, models.PaymentCompleted, true},
		{"completed without payment", models.OrderCompleted, "", true},
		{"completed with pending payment", models.OrderCompleted, models.PaymentPending, true},
		{"completed with completed payment", models.OrderCompleted, models.PaymentCompleted, false},
		{"out for delivery with completed payment", models.OrderOutForDelivery, models.PaymentCompleted, false},
		{"out for delivery with failed payment", models.OrderOutForDelivery, models.PaymentFailed, true},
		{"cancelled with completed payment", models.OrderCancelled, models.PaymentCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			user, order := seedOrder(t, db, tt.status)

			if tt.paymentStatus != "" {
				payment := models.Payment{
					OrderID:    order.ID,
					CustomerID: user.ID,
					Amount:     order.TotalAmount,
					Status:     tt.paymentStatus,
				}
				require.NoError(t, db.Create(&payment).Error)
			}

			editable, err := order.CanBeEdited(db)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEditable, editable)

			deletable, err := order.CanBeDeleted(db)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEditable, deletable, "delete rule must match edit rule")
		})
	}
}

func TestOrderTotalSnapshotsSurvivePriceChanges(t *testing.T) {
	db := setupTestDB(t)
	user, order := seedOrder(t, db, models.OrderPending)
	_ = user

	product := models.Product{Name: "Brisket", Price: decimal.NewFromFloat(20.00), IsActive: true}
	require.NoError(t, db.Create(&product).Error)

	item := models.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 3, Price: product.Price}
	require.NoError(t, db.Create(&item).Error)
	require.NoError(t, order.RecalculateTotal(db))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(60.00)), "got %s", order.TotalAmount)

	// A later product price change must not move the order total.
	require.NoError(t, db.Model(&product).Update("price", decimal.NewFromFloat(99.00)).Error)
	require.NoError(t, order.RecalculateTotal(db))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(60.00)), "got %s", order.TotalAmount)
}

func TestRecalculateTotalAfterItemRemoval(t *testing.T) {
	db := setupTestDB(t)
	_, order := seedOrder(t, db, models.OrderPending)

	product := models.Product{Name: "Sausage", Price: decimal.NewFromFloat(10.00), IsActive: true}
	require.NoError(t, db.Create(&product).Error)

	first := models.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 2, Price: product.Price}
	second := models.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 5, Price: product.Price}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	require.NoError(t, order.RecalculateTotal(db))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(70.00)), "got %s", order.TotalAmount)

	require.NoError(t, db.Delete(&second).Error)
	require.NoError(t, order.RecalculateTotal(db))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(20.00)), "got %s", order.TotalAmount)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.NewFromFloat(20.00)), "got %s", reloaded.TotalAmount)
}

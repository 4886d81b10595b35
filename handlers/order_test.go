package handlers_test

import (
	"net/http"
	"testing"

	"bbq-ordering-api/handlers"
	"bbq-ordering-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderRefusesLockedCustomerEdit(t *testing.T) {
	db := setupTestDB(t)
	customer := seedUser(t, db, "kara", false)

	order := models.Order{
		CustomerID:  customer.ID,
		TotalAmount: decimal.NewFromFloat(50.00),
		Status:      models.OrderCompleted,
	}
	require.NoError(t, db.Create(&order).Error)
	payment := models.Payment{
		OrderID:    order.ID,
		CustomerID: customer.ID,
		Amount:     order.TotalAmount,
		Status:     models.PaymentCompleted,
	}
	require.NoError(t, db.Create(&payment).Error)

	c, rec := newContext(t, customer.ID, map[string]any{"notes": "please hurry"})
	c.Params = append(c.Params, paramID("id", order.ID))
	handlers.UpdateOrder(c)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Empty(t, reloaded.Notes)
}

func TestStaffStatusChangeMirrorsTracking(t *testing.T) {
	db := setupTestDB(t)
	staff := seedUser(t, db, "staff", true)
	customer := seedUser(t, db, "liam", false)

	order := models.Order{
		CustomerID:  customer.ID,
		TotalAmount: decimal.NewFromFloat(50.00),
		Status:      models.OrderPending,
	}
	require.NoError(t, db.Create(&order).Error)

	c, rec := newContext(t, staff.ID, map[string]any{"status": "out_for_delivery"})
	c.Set("isStaff", true)
	c.Params = append(c.Params, paramID("id", order.ID))
	handlers.UpdateOrder(c)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tracking models.OrderTracking
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&tracking).Error)
	assert.Equal(t, models.TrackingOutForDelivery, tracking.Status)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.OrderOutForDelivery, reloaded.Status)
}

func TestCustomerStatusChangeIsIgnored(t *testing.T) {
	db := setupTestDB(t)
	customer := seedUser(t, db, "mona", false)

	order := models.Order{
		CustomerID:  customer.ID,
		TotalAmount: decimal.NewFromFloat(50.00),
		Status:      models.OrderPending,
	}
	require.NoError(t, db.Create(&order).Error)

	c, rec := newContext(t, customer.ID, map[string]any{"status": "completed"})
	c.Params = append(c.Params, paramID("id", order.ID))
	handlers.UpdateOrder(c)
	require.Equal(t, http.StatusOK, rec.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.OrderPending, reloaded.Status, "status stays put for non-staff callers")
}

func TestCrossOwnerOrderIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "nina", false)
	other := seedUser(t, db, "omar", false)

	order := models.Order{CustomerID: owner.ID, TotalAmount: decimal.NewFromFloat(10.00), Status: models.OrderPending}
	require.NoError(t, db.Create(&order).Error)

	c, rec := newContext(t, other.ID, map[string]any{"notes": "not mine"})
	c.Params = append(c.Params, paramID("id", order.ID))
	handlers.UpdateOrder(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddOrderItemRecalculatesTotal(t *testing.T) {
	db := setupTestDB(t)
	customer := seedUser(t, db, "pete", false)
	product := seedProduct(t, db, "Lechon Belly", 55.00, 10)

	order := models.Order{CustomerID: customer.ID, TotalAmount: decimal.Zero, Status: models.OrderPending}
	require.NoError(t, db.Create(&order).Error)

	c, rec := newContext(t, customer.ID, map[string]any{"product_id": product.ID, "quantity": 2})
	c.Params = append(c.Params, paramID("id", order.ID))
	handlers.AddOrderItem(c)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.NewFromFloat(110.00)), "got %s", reloaded.TotalAmount)
}

package statemachine_test

import (
	"testing"

	"bbq-ordering-api/models"
	"bbq-ordering-api/statemachine"

	"github.com/stretchr/testify/assert"
)

func TestTrackingStatusFor(t *testing.T) {
	tests := []struct {
		status models.OrderStatus
		want   models.TrackingStatus
		mapped bool
	}{
		{models.OrderProcessing, models.TrackingConfirmed, true},
		{models.OrderOutForDelivery, models.TrackingOutForDelivery, true},
		{models.OrderCompleted, models.TrackingDelivered, true},
		{models.OrderCancelled, models.TrackingCancelled, true},
		{models.OrderPending, "", false},
		{models.OrderStatus("nonsense"), "", false},
	}

	for _, tt := range tests {
		got, ok := statemachine.TrackingStatusFor(tt.status)
		assert.Equal(t, tt.mapped, ok, "status %q", tt.status)
		if tt.mapped {
			assert.Equal(t, tt.want, got, "status %q", tt.status)
		}
	}
}

func TestPaymentAction(t *testing.T) {
	tests := []struct {
		status models.PaymentStatus
		want   models.HistoryAction
	}{
		{models.PaymentCompleted, models.ActionPaymentCompleted},
		{models.PaymentFailed, models.ActionPaymentFailed},
		{models.PaymentRefunded, models.ActionPaymentRefunded},
		{models.PaymentCancelled, models.ActionPaymentCancelled},
		{models.PaymentPending, models.ActionPaymentUpdated},
		{models.PaymentProcessing, models.ActionPaymentUpdated},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statemachine.PaymentAction(tt.status), "status %q", tt.status)
	}
}

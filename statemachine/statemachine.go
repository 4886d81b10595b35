package statemachine

import "bbq-ordering-api/models"

// trackingMirror is the authoritative mapping from an order status change to
// the delivery stage that should be reflected on the order's tracking record.
// Statuses without an entry leave tracking untouched.
var trackingMirror = map[models.OrderStatus]models.TrackingStatus{
	models.OrderProcessing:     models.TrackingConfirmed,
	models.OrderCompleted:      models.TrackingDelivered,
	models.OrderCancelled:      models.TrackingCancelled,
	models.OrderOutForDelivery: models.TrackingOutForDelivery,
}

// TrackingStatusFor returns the tracking stage mirrored from an order status.
// The second result is false when the status has no mapped stage.
func TrackingStatusFor(status models.OrderStatus) (models.TrackingStatus, bool) {
	t, ok := trackingMirror[status]
	return t, ok
}

// paymentActions maps a payment's new status to the activity tag recorded for
// the transition.
var paymentActions = map[models.PaymentStatus]models.HistoryAction{
	models.PaymentCompleted: models.ActionPaymentCompleted,
	models.PaymentFailed:    models.ActionPaymentFailed,
	models.PaymentRefunded:  models.ActionPaymentRefunded,
	models.PaymentCancelled: models.ActionPaymentCancelled,
}

// PaymentAction returns the activity tag for a transition into status,
// defaulting to the generic updated tag for unmapped statuses.
func PaymentAction(status models.PaymentStatus) models.HistoryAction {
	if action, ok := paymentActions[status]; ok {
		return action
	}
	return models.ActionPaymentUpdated
}

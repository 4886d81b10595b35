package models

import "time"

// TrackingStatus is the delivery-stage state of an order, finer grained than
// OrderStatus. Stages are listed in pipeline order but transitions are not
// restricted; staff may set any stage from any other.
type TrackingStatus string

const (
	TrackingOrderPlaced    TrackingStatus = "order_placed"
	TrackingConfirmed      TrackingStatus = "confirmed"
	TrackingPreparing      TrackingStatus = "preparing"
	TrackingReadyForPickup TrackingStatus = "ready_for_pickup"
	TrackingOutForDelivery TrackingStatus = "out_for_delivery"
	TrackingDelivered      TrackingStatus = "delivered"
	TrackingCancelled      TrackingStatus = "cancelled"
)

// OrderTracking holds the delivery progress of one order, created lazily the
// first time tracking is viewed or edited.
type OrderTracking struct {
	ID      uint           `json:"id" gorm:"primaryKey"`
	OrderID uint           `json:"order_id" gorm:"uniqueIndex;not null"`
	Status  TrackingStatus `json:"status" gorm:"not null;default:'order_placed'"`

	// Current courier position.
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationName string   `json:"location_name"`

	// Customer-side reference position.
	CustomerLatitude     *float64 `json:"customer_latitude"`
	CustomerLongitude    *float64 `json:"customer_longitude"`
	CustomerLocationName string   `json:"customer_location_name"`

	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ValidTrackingStatus reports whether s is one of the defined stages.
func ValidTrackingStatus(s TrackingStatus) bool {
	switch s {
	case TrackingOrderPlaced, TrackingConfirmed, TrackingPreparing, TrackingReadyForPickup,
		TrackingOutForDelivery, TrackingDelivered, TrackingCancelled:
		return true
	}
	return false
}

// SetPosition updates the courier position. A coordinate pair is taken only
// when both latitude and longitude are present; a partial update leaves the
// stored position untouched rather than storing half a coordinate.
func (t *OrderTracking) SetPosition(lat, lng *float64, locationName string) bool {
	if lat == nil || lng == nil {
		return false
	}
	t.Latitude = lat
	t.Longitude = lng
	t.LocationName = locationName
	return true
}

// HasPosition reports whether a complete courier coordinate is stored.
func (t *OrderTracking) HasPosition() bool {
	return t.Latitude != nil && t.Longitude != nil
}

package models_test

import (
	"testing"

	"bbq-ordering-api/models"

	"github.com/stretchr/testify/assert"
)

func TestSetPositionRequiresBothCoordinates(t *testing.T) {
	lat := 14.5995
	lng := 120.9842

	tests := []struct {
		name    string
		lat     *float64
		lng     *float64
		applied bool
	}{
		{"both coordinates", &lat, &lng, true},
		{"latitude only", &lat, nil, false},
		{"longitude only", nil, &lng, false},
		{"neither", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracking := models.OrderTracking{}
			got := tracking.SetPosition(tt.lat, tt.lng, "Warehouse")
			assert.Equal(t, tt.applied, got)
			assert.Equal(t, tt.applied, tracking.HasPosition())
			if !tt.applied {
				assert.Nil(t, tracking.Latitude)
				assert.Nil(t, tracking.Longitude)
				assert.Empty(t, tracking.LocationName)
			}
		})
	}
}

func TestSetPositionKeepsPreviousOnPartialUpdate(t *testing.T) {
	oldLat := 14.5995
	oldLng := 120.9842
	newLat := 14.6760

	tracking := models.OrderTracking{}
	assert.True(t, tracking.SetPosition(&oldLat, &oldLng, "Warehouse"))

	// A partial pair must not move or clear the stored position.
	assert.False(t, tracking.SetPosition(&newLat, nil, "Bridge"))
	assert.Equal(t, &oldLat, tracking.Latitude)
	assert.Equal(t, &oldLng, tracking.Longitude)
	assert.Equal(t, "Warehouse", tracking.LocationName)
}

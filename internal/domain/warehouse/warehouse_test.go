package warehouse

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
)

func TestNewWarehouse(t *testing.T) {
	w, err := NewWarehouse("  Warehouse A ", 0.3476, 32.5825)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, w.ID())
	assert.Equal(t, "Warehouse A", w.Name())
	assert.Equal(t, w.CreatedAt(), w.UpdatedAt())

	loc := w.Location()
	assert.Equal(t, "Warehouse A", loc.Name)
	assert.Equal(t, 0.3476, loc.Lat)
	assert.Equal(t, 32.5825, loc.Lng)
}

func TestNewWarehouse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		whName   string
		lat, lng float64
	}{
		{name: "blank name", whName: "   ", lat: 0, lng: 0},
		{name: "latitude too large", whName: "A", lat: 90.1, lng: 0},
		{name: "longitude too small", whName: "A", lat: 0, lng: -180.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWarehouse(tt.whName, tt.lat, tt.lng)
			var validation *domain.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

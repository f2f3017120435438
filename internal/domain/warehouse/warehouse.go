package warehouse

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
)

// Warehouse is a named dispatch point deliveries are quoted from.
type Warehouse struct {
	id        uuid.UUID
	name      string
	latitude  float64
	longitude float64
	createdAt time.Time
	updatedAt time.Time
}

// NewWarehouse creates a new Warehouse with validated fields.
func NewWarehouse(name string, latitude, longitude float64) (*Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("warehouse name is required")
	}
	coord := quote.Coordinate{Latitude: latitude, Longitude: longitude}
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Warehouse{
		id:        uuid.New(),
		name:      name,
		latitude:  latitude,
		longitude: longitude,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Warehouse from persistence data (no validation).
func Reconstruct(id uuid.UUID, name string, latitude, longitude float64, createdAt, updatedAt time.Time) *Warehouse {
	return &Warehouse{
		id:        id,
		name:      name,
		latitude:  latitude,
		longitude: longitude,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (w *Warehouse) ID() uuid.UUID        { return w.id }
func (w *Warehouse) Name() string         { return w.name }
func (w *Warehouse) Latitude() float64    { return w.latitude }
func (w *Warehouse) Longitude() float64   { return w.longitude }
func (w *Warehouse) CreatedAt() time.Time { return w.createdAt }
func (w *Warehouse) UpdatedAt() time.Time { return w.updatedAt }

// Location returns the warehouse as a quote origin.
func (w *Warehouse) Location() quote.NamedLocation {
	return quote.NamedLocation{Lat: w.latitude, Lng: w.longitude, Name: w.name}
}

package quote

import (
	"fmt"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
)

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinate lies within the valid degree ranges.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return domain.NewValidationError(fmt.Sprintf("latitude %v out of range [-90, 90]", c.Latitude))
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return domain.NewValidationError(fmt.Sprintf("longitude %v out of range [-180, 180]", c.Longitude))
	}
	return nil
}

// String renders the coordinate as "lat,lng", the form the Directions API expects.
func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
}

// NamedLocation is a coordinate plus a human-readable label.
type NamedLocation struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// Coordinate returns the location's coordinate.
func (l NamedLocation) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Lat, Longitude: l.Lng}
}

// Validate checks the coordinate range. The name is a display label only and
// may be empty. The role ("warehouse", "delivery") prefixes the error message.
func (l NamedLocation) Validate(role string) error {
	if err := l.Coordinate().Validate(); err != nil {
		return domain.NewValidationError(role + " " + err.Error())
	}
	return nil
}

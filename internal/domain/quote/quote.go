package quote

import (
	"github.com/google/uuid"
)

// Quote is a priced delivery route. It is built once per request and never
// persisted; the ID only correlates logs and published events.
type Quote struct {
	ID              uuid.UUID    `json:"id"`
	Price           int64        `json:"price"`
	RoutePoints     []Coordinate `json:"directions"`
	OriginName      string       `json:"warehouseLocationName"`
	DestinationName string       `json:"deliveryLocationName"`
	DurationText    string       `json:"timeToDestination"`
	DistanceText    string       `json:"distance"`
	DistanceKm      float64      `json:"distanceKm"`
	FeeRate         FeeRate      `json:"feePerKm"`
	FreeDelivery    bool         `json:"freeDelivery"`
}

// NewQuote assembles a Quote from its priced route. A nil points slice is
// normalised to an empty one so it serialises as [].
func NewQuote(
	origin NamedLocation,
	destination NamedLocation,
	rate FeeRate,
	route RouteSummary,
	price int64,
	freeDelivery bool,
	points []Coordinate,
) *Quote {
	if points == nil {
		points = []Coordinate{}
	}
	return &Quote{
		ID:              uuid.New(),
		Price:           price,
		RoutePoints:     points,
		OriginName:      origin.Name,
		DestinationName: destination.Name,
		DurationText:    route.DurationText,
		DistanceText:    route.DistanceText,
		DistanceKm:      route.DistanceKm(),
		FeeRate:         rate,
		FreeDelivery:    freeDelivery,
	}
}

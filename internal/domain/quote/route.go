package quote

import "context"

// RouteSummary is the first leg of the best route returned by the directions
// provider. EncodedPolyline is empty when the provider sent no overview.
type RouteSummary struct {
	DistanceMeters  int
	DistanceText    string
	DurationText    string
	EncodedPolyline string
}

// DistanceKm converts the leg distance to kilometers.
func (r RouteSummary) DistanceKm() float64 {
	return float64(r.DistanceMeters) / 1000
}

// DirectionsProvider fetches a driving route between two coordinates.
type DirectionsProvider interface {
	// Route performs exactly one upstream request. Implementations return a
	// *domain.UpstreamError when no route could be produced.
	Route(ctx context.Context, origin, destination Coordinate) (*RouteSummary, error)
}

// Candidate is one autocomplete suggestion for a free-text location search.
type Candidate struct {
	PlaceID       string `json:"placeId"`
	Description   string `json:"description"`
	MainText      string `json:"mainText"`
	SecondaryText string `json:"secondaryText"`
}

// LocationSearcher turns free text into resolvable locations.
type LocationSearcher interface {
	Search(ctx context.Context, text string) ([]Candidate, error)
	Resolve(ctx context.Context, candidateID string) (*NamedLocation, error)
}

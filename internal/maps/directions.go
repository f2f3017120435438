package maps

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
)

const directionsPath = "/directions/json"

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type directionsResponse struct {
	statusEnvelope
	Routes []struct {
		Legs []struct {
			Distance textValue `json:"distance"`
			Duration textValue `json:"duration"`
		} `json:"legs"`
		OverviewPolyline *struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
}

// DirectionsClient implements quote.DirectionsProvider on the Directions API.
type DirectionsClient struct {
	*Client
}

// NewDirectionsClient creates a new DirectionsClient.
func NewDirectionsClient(client *Client) *DirectionsClient {
	return &DirectionsClient{Client: client}
}

// Route requests a driving route and returns the first leg of the first route.
func (c *DirectionsClient) Route(ctx context.Context, origin, destination quote.Coordinate) (*quote.RouteSummary, error) {
	params := url.Values{}
	params.Set("origin", origin.String())
	params.Set("destination", destination.String())
	params.Set("mode", "driving")

	var resp directionsResponse
	raw, err := c.get(ctx, directionsPath, params, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Status != statusOK {
		return nil, domain.NewUpstreamError(resp.Status, raw, fmt.Errorf("directions: %s", describe(resp.statusEnvelope)))
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, domain.NewUpstreamError(statusZeroResults, raw, fmt.Errorf("directions: response has no route legs"))
	}

	route := resp.Routes[0]
	leg := route.Legs[0]
	summary := &quote.RouteSummary{
		DistanceMeters: leg.Distance.Value,
		DistanceText:   leg.Distance.Text,
		DurationText:   leg.Duration.Text,
	}
	if route.OverviewPolyline != nil {
		summary.EncodedPolyline = route.OverviewPolyline.Points
	}
	return summary, nil
}

func describe(env statusEnvelope) string {
	if env.ErrorMessage != "" {
		return env.Status + ": " + env.ErrorMessage
	}
	return env.Status
}

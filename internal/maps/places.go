package maps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
)

const (
	autocompletePath = "/place/autocomplete/json"
	detailsPath      = "/place/details/json"
	statusNotFound   = "NOT_FOUND"
)

type autocompleteResponse struct {
	statusEnvelope
	Predictions []struct {
		PlaceID              string `json:"place_id"`
		Description          string `json:"description"`
		StructuredFormatting struct {
			MainText      string `json:"main_text"`
			SecondaryText string `json:"secondary_text"`
		} `json:"structured_formatting"`
	} `json:"predictions"`
}

type detailsResponse struct {
	statusEnvelope
	Result struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         *struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// PlacesClient implements quote.LocationSearcher on the Places API.
type PlacesClient struct {
	*Client
}

// NewPlacesClient creates a new PlacesClient.
func NewPlacesClient(client *Client) *PlacesClient {
	return &PlacesClient{Client: client}
}

// Search returns autocomplete candidates for text, restricted to the
// configured region.
func (c *PlacesClient) Search(ctx context.Context, text string) ([]quote.Candidate, error) {
	params := url.Values{}
	params.Set("input", text)
	params.Set("types", "establishment|geocode")
	if c.region != "" {
		params.Set("components", "country:"+strings.ToLower(c.region))
	}

	var resp autocompleteResponse
	raw, err := c.get(ctx, autocompletePath, params, &resp)
	if err != nil {
		return nil, err
	}

	switch resp.Status {
	case statusOK:
	case statusZeroResults:
		return []quote.Candidate{}, nil
	default:
		return nil, domain.NewUpstreamError(resp.Status, raw, fmt.Errorf("autocomplete: %s", describe(resp.statusEnvelope)))
	}

	candidates := make([]quote.Candidate, len(resp.Predictions))
	for i, p := range resp.Predictions {
		candidates[i] = quote.Candidate{
			PlaceID:       p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		}
	}
	return candidates, nil
}

// Resolve looks up a place and returns it as a NamedLocation. The place name
// falls back to its formatted address.
func (c *PlacesClient) Resolve(ctx context.Context, placeID string) (*quote.NamedLocation, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,geometry,formatted_address")

	var resp detailsResponse
	raw, err := c.get(ctx, detailsPath, params, &resp)
	if err != nil {
		return nil, err
	}

	switch resp.Status {
	case statusOK:
	case statusNotFound, statusZeroResults:
		return nil, domain.NewNotFoundError("Place", placeID)
	default:
		return nil, domain.NewUpstreamError(resp.Status, raw, fmt.Errorf("place details: %s", describe(resp.statusEnvelope)))
	}

	if resp.Result.Geometry == nil {
		return nil, domain.NewUpstreamError(statusBadPayload, raw, fmt.Errorf("place %s has no geometry", placeID))
	}

	name := resp.Result.Name
	if name == "" {
		name = resp.Result.FormattedAddress
	}
	return &quote.NamedLocation{
		Lat:  resp.Result.Geometry.Location.Lat,
		Lng:  resp.Result.Geometry.Location.Lng,
		Name: name,
	}, nil
}

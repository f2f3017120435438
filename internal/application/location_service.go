package application

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
	quoteDomain "github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
)

const maxSearchLength = 200

// LocationService turns free text into quotable locations.
type LocationService struct {
	searcher quoteDomain.LocationSearcher
	logger   *zap.Logger
}

// NewLocationService creates a new LocationService.
func NewLocationService(searcher quoteDomain.LocationSearcher, logger *zap.Logger) *LocationService {
	return &LocationService{searcher: searcher, logger: logger}
}

// Search returns candidates for text. Blank text returns no candidates
// without calling the provider.
func (s *LocationService) Search(ctx context.Context, text string) ([]quoteDomain.Candidate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []quoteDomain.Candidate{}, nil
	}
	if utf8.RuneCountInString(text) > maxSearchLength {
		return nil, domain.NewValidationError("input is too long")
	}

	candidates, err := s.searcher.Search(ctx, text)
	if err != nil {
		s.logger.Error("location search failed", zap.String("input", text), zap.Error(err))
		return nil, err
	}
	return candidates, nil
}

// Resolve returns the location for a candidate ID.
func (s *LocationService) Resolve(ctx context.Context, candidateID string) (*quoteDomain.NamedLocation, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return nil, domain.NewValidationError("place ID is required")
	}

	loc, err := s.searcher.Resolve(ctx, candidateID)
	if err != nil {
		s.logger.Error("location resolve failed", zap.String("place_id", candidateID), zap.Error(err))
		return nil, err
	}
	return loc, nil
}

package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
	quoteDomain "github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
	warehouseDomain "github.com/Kilat-Pet-Delivery/service-quote/internal/domain/warehouse"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/polyline"
)

// QuoteRequest is the inbound quote request. The warehouse may be given
// inline or by catalog ID; an inline warehouse wins when both are present.
type QuoteRequest struct {
	Warehouse   *quoteDomain.NamedLocation `json:"warehouse"`
	WarehouseID string                     `json:"warehouseId"`
	Delivery    *quoteDomain.NamedLocation `json:"delivery" binding:"required"`
	FeePerKm    *float64                   `json:"feePerKm" binding:"required"`
}

// QuoteConfigDTO exposes the pricing defaults to the UI.
type QuoteConfigDTO struct {
	DefaultFeePerKm float64 `json:"defaultFeePerKm"`
	FreeDeliveryKm  float64 `json:"freeDeliveryKm"`
}

// QuoteEventPublisher is notified of every successfully priced quote.
type QuoteEventPublisher interface {
	PublishQuoteCalculated(ctx context.Context, q *quoteDomain.Quote, origin, destination quoteDomain.NamedLocation)
}

// QuoteService prices deliveries from a single directions lookup.
type QuoteService struct {
	directions      quoteDomain.DirectionsProvider
	pricing         quoteDomain.PricingStrategy
	warehouses      warehouseDomain.WarehouseRepository
	publisher       QuoteEventPublisher
	defaultFeePerKm float64
	freeDeliveryKm  float64
	logger          *zap.Logger
}

// QuoteServiceOption customises a QuoteService.
type QuoteServiceOption func(*QuoteService)

// WithWarehouseCatalog enables quoting from a stored warehouse by ID.
func WithWarehouseCatalog(repo warehouseDomain.WarehouseRepository) QuoteServiceOption {
	return func(s *QuoteService) { s.warehouses = repo }
}

// WithPublisher enables quote.calculated events.
func WithPublisher(p QuoteEventPublisher) QuoteServiceOption {
	return func(s *QuoteService) { s.publisher = p }
}

// WithDefaults sets the values reported by Config.
func WithDefaults(defaultFeePerKm, freeDeliveryKm float64) QuoteServiceOption {
	return func(s *QuoteService) {
		s.defaultFeePerKm = defaultFeePerKm
		s.freeDeliveryKm = freeDeliveryKm
	}
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(
	directions quoteDomain.DirectionsProvider,
	pricing quoteDomain.PricingStrategy,
	logger *zap.Logger,
	opts ...QuoteServiceOption,
) *QuoteService {
	s := &QuoteService{
		directions:      directions,
		pricing:         pricing,
		defaultFeePerKm: 2000,
		freeDeliveryKm:  quoteDomain.DefaultFreeDeliveryKm,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the pricing defaults.
func (s *QuoteService) Config() QuoteConfigDTO {
	return QuoteConfigDTO{
		DefaultFeePerKm: s.defaultFeePerKm,
		FreeDeliveryKm:  s.freeDeliveryKm,
	}
}

// CalculateQuote resolves the request's warehouse and prices the delivery.
func (s *QuoteService) CalculateQuote(ctx context.Context, req QuoteRequest) (*quoteDomain.Quote, error) {
	origin := req.Warehouse
	if origin == nil && strings.TrimSpace(req.WarehouseID) != "" {
		resolved, err := s.resolveWarehouse(ctx, req.WarehouseID)
		if err != nil {
			return nil, err
		}
		origin = resolved
	}

	var rate quoteDomain.FeeRate
	if req.FeePerKm != nil {
		rate = quoteDomain.FeeRate(*req.FeePerKm)
	}
	return s.Quote(ctx, origin, req.Delivery, rate)
}

// Quote prices the delivery from origin to destination at rate.
//
// Inputs are validated before the provider is called. The provider is called
// exactly once. A polyline that fails to decode is logged and yields an empty
// route; the quote itself still succeeds.
func (s *QuoteService) Quote(
	ctx context.Context,
	origin, destination *quoteDomain.NamedLocation,
	rate quoteDomain.FeeRate,
) (*quoteDomain.Quote, error) {
	if err := validateQuoteInput(origin, destination, rate); err != nil {
		return nil, err
	}

	route, err := s.directions.Route(ctx, origin.Coordinate(), destination.Coordinate())
	if err != nil {
		s.logger.Error("directions lookup failed",
			zap.String("warehouse", origin.Name),
			zap.String("delivery", destination.Name),
			zap.Error(err),
		)
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			return nil, err
		}
		return nil, domain.NewUpstreamError("", nil, err)
	}

	distanceKm := route.DistanceKm()
	price := s.pricing.Calculate(distanceKm, rate)

	points := []quoteDomain.Coordinate{}
	if route.EncodedPolyline != "" {
		decoded, err := polyline.Decode(route.EncodedPolyline)
		if err != nil {
			s.logger.Warn("failed to decode route polyline, returning quote without route points",
				zap.String("warehouse", origin.Name),
				zap.String("delivery", destination.Name),
				zap.Error(err),
			)
		} else {
			points = decoded
		}
	}

	q := quoteDomain.NewQuote(*origin, *destination, rate, *route, price, price == 0, points)

	s.logger.Info("quote calculated",
		zap.String("quote_id", q.ID.String()),
		zap.Float64("distance_km", distanceKm),
		zap.Float64("fee_per_km", float64(rate)),
		zap.Int64("price", price),
		zap.Int("route_points", len(points)),
	)

	if s.publisher != nil {
		s.publisher.PublishQuoteCalculated(ctx, q, *origin, *destination)
	}

	return q, nil
}

func (s *QuoteService) resolveWarehouse(ctx context.Context, rawID string) (*quoteDomain.NamedLocation, error) {
	if s.warehouses == nil {
		return nil, domain.NewValidationError("warehouse catalog is not available; send the warehouse location inline")
	}
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid warehouseId: %s", rawID))
	}
	wh, err := s.warehouses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	loc := wh.Location()
	return &loc, nil
}

func validateQuoteInput(origin, destination *quoteDomain.NamedLocation, rate quoteDomain.FeeRate) error {
	if origin == nil || destination == nil {
		return domain.NewValidationError("Warehouse, delivery locations, and feePerKm are required")
	}
	if err := rate.Validate(); err != nil {
		return domain.NewValidationError(err.Error())
	}
	if err := origin.Validate("warehouse"); err != nil {
		return err
	}
	return destination.Validate("delivery")
}

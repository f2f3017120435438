package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
)

const (
	// TopicQuoteEvents carries every priced quote.
	TopicQuoteEvents = "quote.events"
	// QuoteCalculated is the event type for a successfully priced quote.
	QuoteCalculated = "quote.calculated"

	eventSource = "service-quote"
)

// QuoteCalculatedEvent is the payload of a quote.calculated event.
type QuoteCalculatedEvent struct {
	QuoteID       uuid.UUID `json:"quote_id"`
	WarehouseName string    `json:"warehouse_name"`
	WarehouseLat  float64   `json:"warehouse_lat"`
	WarehouseLng  float64   `json:"warehouse_lng"`
	DeliveryName  string    `json:"delivery_name"`
	DeliveryLat   float64   `json:"delivery_lat"`
	DeliveryLng   float64   `json:"delivery_lng"`
	DistanceKm    float64   `json:"distance_km"`
	Duration      string    `json:"duration"`
	FeePerKm      float64   `json:"fee_per_km"`
	Price         int64     `json:"price"`
	FreeDelivery  bool      `json:"free_delivery"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// QuotePublisher emits quote.calculated events.
type QuotePublisher struct {
	producer *Producer
	logger   *zap.Logger
}

// NewQuotePublisher creates a new QuotePublisher.
func NewQuotePublisher(producer *Producer, logger *zap.Logger) *QuotePublisher {
	return &QuotePublisher{producer: producer, logger: logger}
}

// PublishQuoteCalculated publishes q. Failures are logged, never returned.
func (p *QuotePublisher) PublishQuoteCalculated(ctx context.Context, q *quote.Quote, origin, destination quote.NamedLocation) {
	evt := QuoteCalculatedEvent{
		QuoteID:       q.ID,
		WarehouseName: origin.Name,
		WarehouseLat:  origin.Lat,
		WarehouseLng:  origin.Lng,
		DeliveryName:  destination.Name,
		DeliveryLat:   destination.Lat,
		DeliveryLng:   destination.Lng,
		DistanceKm:    q.DistanceKm,
		Duration:      q.DurationText,
		FeePerKm:      float64(q.FeeRate),
		Price:         q.Price,
		FreeDelivery:  q.FreeDelivery,
		OccurredAt:    time.Now().UTC(),
	}

	ce, err := NewCloudEvent(eventSource, QuoteCalculated, evt)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", QuoteCalculated),
			zap.Error(err),
		)
		return
	}

	if err := p.producer.PublishEvent(ctx, TopicQuoteEvents, q.ID.String(), ce); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", TopicQuoteEvents),
			zap.String("event_type", QuoteCalculated),
			zap.String("quote_id", q.ID.String()),
			zap.Error(err),
		)
	}
}

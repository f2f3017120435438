package quote

import (
	"fmt"
	"math"
)

// DefaultFreeDeliveryKm is the distance below which delivery is free.
const DefaultFreeDeliveryKm = 5.0

// FeeRate is the price charged per kilometer. It is currency-agnostic.
type FeeRate float64

// Validate checks that the rate is strictly positive and finite.
func (r FeeRate) Validate() error {
	if math.IsNaN(float64(r)) || math.IsInf(float64(r), 0) || r <= 0 {
		return fmt.Errorf("feePerKm must be a positive number")
	}
	return nil
}

// PricingStrategy defines the interface for pricing a delivery route.
type PricingStrategy interface {
	// Calculate returns the price for driving distanceKm at the given rate.
	Calculate(distanceKm float64, rate FeeRate) int64
}

// ThresholdPricingStrategy charges distance times rate, except that routes
// shorter than FreeDeliveryKm cost nothing at all.
type ThresholdPricingStrategy struct {
	FreeDeliveryKm float64
}

// NewThresholdPricingStrategy creates a ThresholdPricingStrategy. A
// non-positive threshold falls back to DefaultFreeDeliveryKm.
func NewThresholdPricingStrategy(freeDeliveryKm float64) *ThresholdPricingStrategy {
	if freeDeliveryKm <= 0 {
		freeDeliveryKm = DefaultFreeDeliveryKm
	}
	return &ThresholdPricingStrategy{FreeDeliveryKm: freeDeliveryKm}
}

// Calculate computes the delivery price.
//
// Pricing formula:
//   - distanceKm < FreeDeliveryKm: 0 (the whole price is waived, not just the first km)
//   - otherwise: round(distanceKm * rate), half away from zero
//
// The threshold comparison uses the unrounded distance.
func (s *ThresholdPricingStrategy) Calculate(distanceKm float64, rate FeeRate) int64 {
	if distanceKm < s.FreeDeliveryKm {
		return 0
	}
	return int64(math.Round(distanceKm * float64(rate)))
}

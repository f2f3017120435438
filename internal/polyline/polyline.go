// Package polyline decodes the encoded polyline format used by the Google
// Maps Platform for route overviews.
//
// Each coordinate is stored as a delta from the previous one, scaled by 1e5,
// zig-zag encoded and split into 5-bit chunks. Every chunk is offset by 63 so
// the result is printable ASCII; bit 0x20 marks that another chunk follows.
package polyline

import (
	"errors"
	"fmt"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
)

// Precision is the fixed-point scale of encoded coordinates.
const Precision = 1e5

const (
	asciiOffset  = 63
	chunkMask    = 0x1f
	continuation = 0x20
	chunkBits    = 5
	// maxShift bounds a single varint; anything longer cannot be a valid coordinate.
	maxShift = 60
)

var (
	// ErrTruncated is reported when the string ends in the middle of a value.
	ErrTruncated = errors.New("polyline truncated")
	// ErrInvalidCharacter is reported for bytes outside the encoding alphabet.
	ErrInvalidCharacter = errors.New("invalid polyline character")
	// ErrOverflow is reported when a single value has too many chunks.
	ErrOverflow = errors.New("polyline value overflow")
)

// DecodeError describes where decoding failed.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode polyline at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode converts an encoded polyline into coordinates in route order.
// An empty string yields an empty, non-nil slice.
func Decode(encoded string) ([]quote.Coordinate, error) {
	points := make([]quote.Coordinate, 0, len(encoded)/4)
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		dlat, next, err := readValue(encoded, index)
		if err != nil {
			return nil, err
		}
		dlng, next, err := readValue(encoded, next)
		if err != nil {
			return nil, err
		}
		index = next

		lat += dlat
		lng += dlng

		points = append(points, quote.Coordinate{
			Latitude:  float64(lat) / Precision,
			Longitude: float64(lng) / Precision,
		})
	}

	return points, nil
}

// readValue decodes one zig-zag varint starting at index and returns the
// signed delta together with the index of the next unread byte.
func readValue(encoded string, index int) (int, int, error) {
	result, shift := 0, 0
	for {
		if index >= len(encoded) {
			return 0, index, &DecodeError{Offset: index, Err: ErrTruncated}
		}
		if shift > maxShift {
			return 0, index, &DecodeError{Offset: index, Err: ErrOverflow}
		}

		b := int(encoded[index]) - asciiOffset
		if b < 0 || b > 0x3f {
			return 0, index, &DecodeError{Offset: index, Err: ErrInvalidCharacter}
		}
		index++

		result |= (b & chunkMask) << shift
		shift += chunkBits
		if b < continuation {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}

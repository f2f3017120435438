package polyline

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
)

// encode is a reference encoder for the same 1e5 zig-zag scheme.
func encode(points []quote.Coordinate) string {
	var b strings.Builder
	prevLat, prevLng := 0, 0
	write := func(delta int) {
		v := delta << 1
		if delta < 0 {
			v = ^v
		}
		for v >= 0x20 {
			b.WriteByte(byte((0x20 | (v & 0x1f)) + 63))
			v >>= 5
		}
		b.WriteByte(byte(v + 63))
	}
	for _, p := range points {
		lat := int(math.Round(p.Latitude * Precision))
		lng := int(math.Round(p.Longitude * Precision))
		write(lat - prevLat)
		write(lng - prevLng)
		prevLat, prevLng = lat, lng
	}
	return b.String()
}

func TestDecode_KnownRoute(t *testing.T) {
	points, err := Decode("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	expected := []quote.Coordinate{
		{Latitude: 38.5, Longitude: -120.2},
		{Latitude: 40.7, Longitude: -120.95},
		{Latitude: 43.252, Longitude: -126.453},
	}
	for i, want := range expected {
		assert.InDelta(t, want.Latitude, points[i].Latitude, 1e-9)
		assert.InDelta(t, want.Longitude, points[i].Longitude, 1e-9)
	}
}

func TestDecode_EmptyString(t *testing.T) {
	points, err := Decode("")
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestDecode_RoundTrip(t *testing.T) {
	routes := [][]quote.Coordinate{
		{{Latitude: 0.3476, Longitude: 32.5825}, {Latitude: 0.3, Longitude: 32.6}},
		{{Latitude: -33.86785, Longitude: 151.20732}, {Latitude: -33.87, Longitude: 151.21}, {Latitude: -33.9, Longitude: 151.25}},
		{{Latitude: 89.99999, Longitude: -179.99999}, {Latitude: -89.99999, Longitude: 179.99999}},
		{{Latitude: 0, Longitude: 0}},
	}

	for _, route := range routes {
		decoded, err := Decode(encode(route))
		require.NoError(t, err)
		require.Len(t, decoded, len(route))
		for i := range route {
			assert.InDelta(t, route[i].Latitude, decoded[i].Latitude, 1e-5)
			assert.InDelta(t, route[i].Longitude, decoded[i].Longitude, 1e-5)
		}
	}
}

func TestDecode_Idempotent(t *testing.T) {
	const encoded = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

	first, err := Decode(encoded)
	require.NoError(t, err)
	second, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		offset  int
	}{
		{name: "missing longitude", input: "_p~iF", wantErr: ErrTruncated, offset: 5},
		{name: "dangling continuation chunk", input: "_p~iF~ps|U_", wantErr: ErrTruncated, offset: 11},
		{name: "character below alphabet", input: "_p~iF ps|U", wantErr: ErrInvalidCharacter, offset: 5},
		{name: "character above alphabet", input: "\x7f?", wantErr: ErrInvalidCharacter, offset: 0},
		{name: "endless continuation", input: strings.Repeat("_", 20) + "?", wantErr: ErrOverflow, offset: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Decode(tt.input)
			require.Error(t, err)
			assert.Nil(t, points)
			assert.ErrorIs(t, err, tt.wantErr)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.offset, decodeErr.Offset)
		})
	}
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

func coord(lat, lng float64) models.Coordinate {
	return models.Coordinate{Latitude: lat, Longitude: lng}
}

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name     string
		point1   models.Coordinate
		point2   models.Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "Same point",
			point1:   coord(-6.2, 106.8),
			point2:   coord(-6.2, 106.8),
			expected: 0,
			delta:    0.0001,
		},
		{
			name:     "One degree longitude at equator",
			point1:   coord(0, 0),
			point2:   coord(0, 1),
			expected: 111.19,
			delta:    0.01,
		},
		{
			name:     "Monas to Kota Tua",
			point1:   coord(-6.1754, 106.8272),
			point2:   coord(-6.1352, 106.8133),
			expected: 4.7,
			delta:    0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := CalculateDistance(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, distance, tt.delta)

			// Distance is symmetric
			reverse := CalculateDistance(tt.point2, tt.point1)
			assert.InDelta(t, distance, reverse, 0.0001)
		})
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []models.Coordinate{
		coord(0, 0),
		coord(0, 2),
		coord(2, 2),
		coord(2, 0),
	}

	tests := []struct {
		name    string
		point   models.Coordinate
		polygon []models.Coordinate
		want    bool
	}{
		{"Center of square", coord(1, 1), square, true},
		{"Outside square", coord(3, 3), square, false},
		{"Far outside", coord(-10, -10), square, false},
		{"First vertex", coord(0, 0), square, true},
		{"Opposite vertex", coord(2, 2), square, false},
		{"Degenerate two-vertex polygon", coord(1, 1), square[:2], false},
		{"Empty polygon", coord(1, 1), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointInPolygon(tt.point, tt.polygon))
		})
	}
}

func TestPointInPolygon_Concave(t *testing.T) {
	// C-shaped polygon with a notch between two arms
	cShape := []models.Coordinate{
		coord(0, 0),
		coord(0, 3),
		coord(3, 3),
		coord(3, 2),
		coord(1, 2),
		coord(1, 1),
		coord(3, 1),
		coord(3, 0),
	}

	assert.True(t, PointInPolygon(coord(0.5, 1.5), cShape), "spine of the C")
	assert.True(t, PointInPolygon(coord(2, 2.5), cShape), "upper arm of the C")
	assert.False(t, PointInPolygon(coord(2, 1.5), cShape), "notch between the arms")
	assert.False(t, PointInPolygon(coord(4, 1.5), cShape), "outside the C")
}

func TestEncodeCoordinate(t *testing.T) {
	jakarta := coord(-6.2088, 106.8456)
	surabaya := coord(-7.2575, 112.7521)

	hash1 := EncodeCoordinate(jakarta, 7)
	hash2 := EncodeCoordinate(surabaya, 7)

	assert.Len(t, hash1, 7)
	assert.Len(t, hash2, 7)
	assert.NotEqual(t, hash1, hash2)

	// Same coordinate always yields the same hash
	assert.Equal(t, hash1, EncodeCoordinate(jakarta, 7))

	// Nearby points share a prefix at lower precision
	nearby := coord(-6.2089, 106.8457)
	assert.Equal(t, EncodeCoordinate(jakarta, 5), EncodeCoordinate(nearby, 5))
}

package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 models.Coordinate) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// PointInPolygon reports whether the point lies inside the polygon using
// even-odd ray casting. Points exactly on an edge may land on either side
// depending on floating point evaluation.
func PointInPolygon(point models.Coordinate, polygon []models.Coordinate) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		yi, xi := polygon[i].Longitude, polygon[i].Latitude
		yj, xj := polygon[j].Longitude, polygon[j].Latitude

		if (yi > point.Longitude) != (yj > point.Longitude) &&
			point.Latitude < (xj-xi)*(point.Longitude-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}

	return inside
}

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(coord models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(coord.Latitude, coord.Longitude, precision)
}

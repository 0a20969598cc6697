package usecase

import (
	"math"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	"github.com/kirimkilat/kirimkilat/internal/utils"
)

// minutesPerKm estimates durations when no live routing measurement is
// available, assuming a fleet-wide average speed of 20 km/h.
const minutesPerKm = 3.0

// resolveDistance runs the distance fallback chain: a live route hint wins,
// then a cached distance from an earlier calculation, then straight-line
// haversine as the last resort.
func resolveDistance(pickup, delivery models.Coordinate, hint *models.RouteHint, cachedKm *float64) models.ResolvedDistance {
	if hint != nil {
		return models.ResolvedDistance{
			DistanceKm:      hint.DistanceKm,
			DurationMinutes: hint.DurationMinutes,
			Source:          models.DistanceSourceRouteHint,
		}
	}

	if cachedKm != nil {
		return models.ResolvedDistance{
			DistanceKm:      *cachedKm,
			DurationMinutes: estimateDurationMinutes(*cachedKm),
			Source:          models.DistanceSourceCache,
		}
	}

	distanceKm := utils.CalculateDistance(pickup, delivery)
	return models.ResolvedDistance{
		DistanceKm:      distanceKm,
		DurationMinutes: estimateDurationMinutes(distanceKm),
		Source:          models.DistanceSourceHaversine,
	}
}

func estimateDurationMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm * minutesPerKm))
}

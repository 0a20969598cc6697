package usecase

import (
	"fmt"
	"math"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

const expressMultiplier = 1.5

var sizeMultipliers = map[models.PackageSize]float64{
	models.PackageSizeSmall:      1.0,
	models.PackageSizeMedium:     1.2,
	models.PackageSizeLarge:      1.5,
	models.PackageSizeExtraLarge: 2.0,
}

var urgencyMultipliers = map[models.Urgency]float64{
	models.UrgencyNormal:     1.0,
	models.UrgencyUrgent:     1.3,
	models.UrgencyVeryUrgent: 1.6,
}

// pickPricierArea selects one area from overlapping matches: the one with
// the higher base price, so overlap never undercuts the premium zone.
func pickPricierArea(areas []models.ServiceArea) models.ServiceArea {
	selected := areas[0]
	for _, area := range areas[1:] {
		if area.BasePrice > selected.BasePrice {
			selected = area
		}
	}
	return selected
}

// computeQuote applies eligibility and tariff rules for a resolved distance.
// It returns either a quote or a rejection, never both.
func computeQuote(
	pickupAreas, deliveryAreas []models.ServiceArea,
	resolved models.ResolvedDistance,
	attrs models.OrderAttributes,
	currency string,
) (*models.Quote, *models.Rejection) {
	if len(pickupAreas) == 0 || len(deliveryAreas) == 0 {
		return nil, &models.Rejection{
			Reason:     models.RejectionNoServiceArea,
			Message:    "pickup or delivery point is outside every active service area",
			DistanceKm: resolved.DistanceKm,
		}
	}

	pickupArea := pickPricierArea(pickupAreas)
	deliveryArea := pickPricierArea(deliveryAreas)

	// Of the two sides, price on the more expensive zone.
	area := pickupArea
	if deliveryArea.BasePrice > area.BasePrice {
		area = deliveryArea
	}

	if area.MaxDistanceKm != nil && resolved.DistanceKm > *area.MaxDistanceKm {
		return nil, &models.Rejection{
			Reason:        models.RejectionDistanceExceedsLimit,
			Message:       fmt.Sprintf("trip distance %.2f km exceeds the %.2f km limit of area %s", resolved.DistanceKm, *area.MaxDistanceKm, area.Name),
			DistanceKm:    resolved.DistanceKm,
			MaxDistanceKm: area.MaxDistanceKm,
		}
	}

	price := area.BasePrice + resolved.DistanceKm*area.PricePerKm
	price *= sizeMultipliers[attrs.PackageSize]
	if attrs.DeliveryType == models.DeliveryTypeExpress {
		price *= expressMultiplier
	}
	price *= urgencyMultipliers[attrs.Urgency]

	return &models.Quote{
		AreaID:           area.ID,
		AreaName:         area.Name,
		DistanceKm:       roundMoney(resolved.DistanceKm),
		Price:            roundMoney(price),
		Currency:         currency,
		EstimatedMinutes: resolved.DurationMinutes,
		DistanceSource:   resolved.Source,
	}, nil
}

func roundMoney(x float64) float64 {
	return math.Round(x*100) / 100
}

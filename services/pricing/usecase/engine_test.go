package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

func testArea(name string, basePrice, pricePerKm float64) models.ServiceArea {
	return models.ServiceArea{
		ID:         uuid.New(),
		Name:       name,
		BasePrice:  basePrice,
		PricePerKm: pricePerKm,
		IsActive:   true,
	}
}

func resolved(distanceKm float64, minutes int) models.ResolvedDistance {
	return models.ResolvedDistance{
		DistanceKm:      distanceKm,
		DurationMinutes: minutes,
		Source:          models.DistanceSourceRouteHint,
	}
}

func attrs(size models.PackageSize, delivery models.DeliveryType, urgency models.Urgency) models.OrderAttributes {
	return models.OrderAttributes{
		PackageSize:  size,
		DeliveryType: delivery,
		Urgency:      urgency,
	}
}

func TestComputeQuote_MultiplierChain(t *testing.T) {
	area := testArea("Jakarta Pusat", 15, 3)

	tests := []struct {
		name      string
		attrs     models.OrderAttributes
		wantPrice float64
	}{
		{
			name:      "medium standard normal",
			attrs:     attrs(models.PackageSizeMedium, models.DeliveryTypeStandard, models.UrgencyNormal),
			wantPrice: 54, // (15 + 10*3) * 1.2
		},
		{
			name:      "medium express normal",
			attrs:     attrs(models.PackageSizeMedium, models.DeliveryTypeExpress, models.UrgencyNormal),
			wantPrice: 81, // 54 * 1.5
		},
		{
			name:      "medium express very urgent",
			attrs:     attrs(models.PackageSizeMedium, models.DeliveryTypeExpress, models.UrgencyVeryUrgent),
			wantPrice: 129.6, // 81 * 1.6
		},
		{
			name:      "small standard normal",
			attrs:     attrs(models.PackageSizeSmall, models.DeliveryTypeStandard, models.UrgencyNormal),
			wantPrice: 45,
		},
		{
			name:      "extra large standard urgent",
			attrs:     attrs(models.PackageSizeExtraLarge, models.DeliveryTypeStandard, models.UrgencyUrgent),
			wantPrice: 117, // 45 * 2 * 1.3
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, rejection := computeQuote(
				[]models.ServiceArea{area},
				[]models.ServiceArea{area},
				resolved(10, 30),
				tt.attrs,
				"IDR",
			)

			require.Nil(t, rejection)
			require.NotNil(t, quote)
			assert.Equal(t, tt.wantPrice, quote.Price)
			assert.Equal(t, "IDR", quote.Currency)
			assert.Equal(t, area.ID, quote.AreaID)
			assert.Equal(t, 30, quote.EstimatedMinutes)
		})
	}
}

func TestComputeQuote_NoServiceArea(t *testing.T) {
	area := testArea("Jakarta Pusat", 15, 3)

	tests := []struct {
		name          string
		pickupAreas   []models.ServiceArea
		deliveryAreas []models.ServiceArea
	}{
		{"no pickup area", nil, []models.ServiceArea{area}},
		{"no delivery area", []models.ServiceArea{area}, nil},
		{"neither side covered", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, rejection := computeQuote(
				tt.pickupAreas,
				tt.deliveryAreas,
				resolved(10, 30),
				attrs(models.PackageSizeSmall, models.DeliveryTypeStandard, models.UrgencyNormal),
				"IDR",
			)

			assert.Nil(t, quote)
			require.NotNil(t, rejection)
			assert.Equal(t, models.RejectionNoServiceArea, rejection.Reason)
			assert.Equal(t, float64(10), rejection.DistanceKm)
		})
	}
}

func TestComputeQuote_DistanceExceedsLimit(t *testing.T) {
	maxKm := 5.0
	area := testArea("Bandung Kota", 15, 3)
	area.MaxDistanceKm = &maxKm

	quote, rejection := computeQuote(
		[]models.ServiceArea{area},
		[]models.ServiceArea{area},
		resolved(10, 30),
		attrs(models.PackageSizeSmall, models.DeliveryTypeStandard, models.UrgencyNormal),
		"IDR",
	)

	assert.Nil(t, quote)
	require.NotNil(t, rejection)
	assert.Equal(t, models.RejectionDistanceExceedsLimit, rejection.Reason)
	assert.Equal(t, float64(10), rejection.DistanceKm)
	require.NotNil(t, rejection.MaxDistanceKm)
	assert.Equal(t, maxKm, *rejection.MaxDistanceKm)
}

func TestComputeQuote_DistanceAtLimitPasses(t *testing.T) {
	maxKm := 10.0
	area := testArea("Bandung Kota", 15, 3)
	area.MaxDistanceKm = &maxKm

	quote, rejection := computeQuote(
		[]models.ServiceArea{area},
		[]models.ServiceArea{area},
		resolved(10, 30),
		attrs(models.PackageSizeSmall, models.DeliveryTypeStandard, models.UrgencyNormal),
		"IDR",
	)

	assert.Nil(t, rejection)
	require.NotNil(t, quote)
	assert.Equal(t, float64(45), quote.Price)
}

func TestComputeQuote_OverlapPicksPricierArea(t *testing.T) {
	cheap := testArea("Outskirts", 10, 2)
	premium := testArea("CBD", 25, 4)

	quote, rejection := computeQuote(
		[]models.ServiceArea{cheap, premium},
		[]models.ServiceArea{cheap},
		resolved(4, 12),
		attrs(models.PackageSizeSmall, models.DeliveryTypeStandard, models.UrgencyNormal),
		"IDR",
	)

	require.Nil(t, rejection)
	require.NotNil(t, quote)
	// Premium zone wins on the pickup side and outprices the delivery side.
	assert.Equal(t, premium.ID, quote.AreaID)
	assert.Equal(t, float64(41), quote.Price) // 25 + 4*4
}

func TestComputeQuote_PremiumDeliverySideWins(t *testing.T) {
	cheap := testArea("Outskirts", 10, 2)
	premium := testArea("CBD", 25, 4)

	quote, rejection := computeQuote(
		[]models.ServiceArea{cheap},
		[]models.ServiceArea{premium},
		resolved(4, 12),
		attrs(models.PackageSizeSmall, models.DeliveryTypeStandard, models.UrgencyNormal),
		"IDR",
	)

	require.Nil(t, rejection)
	require.NotNil(t, quote)
	assert.Equal(t, premium.ID, quote.AreaID)
}

func TestComputeQuote_Deterministic(t *testing.T) {
	area := testArea("Jakarta", 15, 3)
	pickupAreas := []models.ServiceArea{area}
	deliveryAreas := []models.ServiceArea{area}
	orderAttrs := attrs(models.PackageSizeMedium, models.DeliveryTypeExpress, models.UrgencyUrgent)

	first, _ := computeQuote(pickupAreas, deliveryAreas, resolved(10, 30), orderAttrs, "IDR")
	second, _ := computeQuote(pickupAreas, deliveryAreas, resolved(10, 30), orderAttrs, "IDR")

	require.NotNil(t, first)
	assert.Equal(t, first, second)
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{10.125, 10.13}, // halves round away from zero
		{10.124, 10.12},
		{54, 54},
		{129.6000000000001, 129.6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundMoney(tt.in))
	}
}

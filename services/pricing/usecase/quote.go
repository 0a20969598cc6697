package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kirimkilat/kirimkilat/internal/pkg/logger"
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	nrpkg "github.com/kirimkilat/kirimkilat/internal/pkg/newrelic"
	"github.com/kirimkilat/kirimkilat/services/pricing"
)

// pricingUC implements the pricing.PricingUC interface
type pricingUC struct {
	cfg       *models.Config
	areaRepo  pricing.ServiceAreaRepo
	routeRepo pricing.RouteCacheRepo
	pricingGW pricing.PricingGW
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(
	cfg *models.Config,
	areaRepo pricing.ServiceAreaRepo,
	routeRepo pricing.RouteCacheRepo,
	pricingGW pricing.PricingGW,
) pricing.PricingUC {
	return &pricingUC{
		cfg:       cfg,
		areaRepo:  areaRepo,
		routeRepo: routeRepo,
		pricingGW: pricingGW,
	}
}

// Quote prices a candidate trip against the current service area snapshot.
// The outcome is deterministic for identical inputs and snapshot.
func (uc *pricingUC) Quote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResult, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "pricing.Quote", func() (*models.QuoteResult, error) {
		if err := req.Validate(); err != nil {
			return nil, err
		}

		areas, err := uc.areaRepo.GetActiveServiceAreas(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load service area snapshot: %w", err)
		}
		for i := range areas {
			if err := areas[i].Validate(); err != nil {
				return nil, fmt.Errorf("%w: %s", models.ErrValidation, err)
			}
		}

		cachedKm := req.CachedDistanceKm
		if req.RouteHint == nil && cachedKm == nil {
			if km, ok, err := uc.routeRepo.GetRouteDistance(ctx, req.Pickup, req.Delivery); err != nil {
				logger.WarnCtx(ctx, "Route cache lookup failed, falling back to haversine",
					logger.Err(err))
			} else if ok {
				cachedKm = &km
			}
		}

		resolved := resolveDistance(req.Pickup, req.Delivery, req.RouteHint, cachedKm)

		// A live measurement is worth remembering for callers without one.
		if resolved.Source == models.DistanceSourceRouteHint {
			if err := uc.routeRepo.StoreRouteDistance(ctx, req.Pickup, req.Delivery, resolved.DistanceKm); err != nil {
				logger.WarnCtx(ctx, "Failed to store route distance",
					logger.Float64("distance_km", resolved.DistanceKm),
					logger.Err(err))
			}
		}

		pickupAreas := resolveAreas(req.Pickup, areas)
		deliveryAreas := resolveAreas(req.Delivery, areas)

		quote, rejection := computeQuote(pickupAreas, deliveryAreas, resolved, req.Attributes, uc.cfg.Pricing.Currency)

		result := &models.QuoteResult{Quote: quote, Rejection: rejection}
		uc.publishQuoteEvent(ctx, result, resolved.DistanceKm)

		return result, nil
	})
}

// publishQuoteEvent emits quote.created or quote.rejected. Publish failures
// are logged and swallowed: the quote itself is still valid.
func (uc *pricingUC) publishQuoteEvent(ctx context.Context, result *models.QuoteResult, distanceKm float64) {
	event := &models.QuoteEvent{
		EventID:    uuid.New(),
		DistanceKm: distanceKm,
		Timestamp:  time.Now(),
	}

	var err error
	if result.Rejected() {
		event.Reason = result.Rejection.Reason
		err = uc.pricingGW.PublishQuoteRejected(ctx, event)
	} else {
		areaID := result.Quote.AreaID
		event.AreaID = &areaID
		event.Price = result.Quote.Price
		event.Currency = result.Quote.Currency
		err = uc.pricingGW.PublishQuoteCreated(ctx, event)
	}

	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish quote event",
			logger.String("event_id", event.EventID.String()),
			logger.Err(err))
	}
}

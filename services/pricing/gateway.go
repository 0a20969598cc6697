package pricing

import (
	"context"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

// PricingGW defines the interface for pricing gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kirimkilat/kirimkilat/services/pricing PricingGW
type PricingGW interface {
	PublishQuoteCreated(ctx context.Context, event *models.QuoteEvent) error
	PublishQuoteRejected(ctx context.Context, event *models.QuoteEvent) error
	PublishServiceAreaUpdated(ctx context.Context, event *models.ServiceAreaEvent) error
}

package gateway

import (
	"context"
	"encoding/json"

	"github.com/kirimkilat/kirimkilat/internal/pkg/constants"
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	natspkg "github.com/kirimkilat/kirimkilat/internal/pkg/nats"
	"github.com/kirimkilat/kirimkilat/services/pricing"
)

// PricingGW handles NATS publishing for pricing events
type PricingGW struct {
	natsClient *natspkg.Client
}

// NewPricingGW creates a new pricing gateway
func NewPricingGW(client *natspkg.Client) pricing.PricingGW {
	return &PricingGW{
		natsClient: client,
	}
}

// PublishQuoteCreated publishes a successful quote event to NATS
func (g *PricingGW) PublishQuoteCreated(ctx context.Context, event *models.QuoteEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectQuoteCreated, data)
}

// PublishQuoteRejected publishes a rejected quote event to NATS
func (g *PricingGW) PublishQuoteRejected(ctx context.Context, event *models.QuoteEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectQuoteRejected, data)
}

// PublishServiceAreaUpdated announces a service area change so other
// instances drop their cached snapshots
func (g *PricingGW) PublishServiceAreaUpdated(ctx context.Context, event *models.ServiceAreaEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectServiceAreaUpdated, data)
}

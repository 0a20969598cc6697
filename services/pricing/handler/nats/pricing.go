package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/kirimkilat/kirimkilat/internal/pkg/constants"
	"github.com/kirimkilat/kirimkilat/internal/pkg/logger"
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	natspkg "github.com/kirimkilat/kirimkilat/internal/pkg/nats"
	"github.com/kirimkilat/kirimkilat/services/pricing"
)

// PricingHandler consumes NATS events for the pricing service
type PricingHandler struct {
	pricingUC  pricing.PricingUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
	cfg        *models.Config
}

// NewPricingHandler creates a new pricing NATS handler
func NewPricingHandler(
	pricingUC pricing.PricingUC,
	client *natspkg.Client,
	cfg *models.Config,
) *PricingHandler {
	return &PricingHandler{
		pricingUC:  pricingUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
		cfg:        cfg,
	}
}

// InitNATSConsumers subscribes to service area change events so every
// instance drops its cached snapshot when any of them mutates an area.
func (h *PricingHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectServiceAreaUpdated, h.handleServiceAreaUpdated)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectServiceAreaUpdated, err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("NATS consumers initialized for pricing service",
		logger.String("subject", constants.SubjectServiceAreaUpdated))
	return nil
}

func (h *PricingHandler) handleServiceAreaUpdated(msg *nats.Msg) {
	ctx := context.Background()

	var event models.ServiceAreaEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode service area event",
			logger.String("subject", msg.Subject),
			logger.ErrorField(err))
		return
	}

	if err := h.pricingUC.InvalidateSnapshot(ctx); err != nil {
		logger.Error("Failed to invalidate service area snapshot",
			logger.String("area_id", event.AreaID.String()),
			logger.String("action", event.Action),
			logger.ErrorField(err))
		return
	}

	logger.Info("Dropped service area snapshot after change event",
		logger.String("area_id", event.AreaID.String()),
		logger.String("action", event.Action))
}

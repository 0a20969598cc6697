package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kirimkilat/kirimkilat/internal/pkg/middleware"
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	natspkg "github.com/kirimkilat/kirimkilat/internal/pkg/nats"
	"github.com/kirimkilat/kirimkilat/services/pricing"
	httpHandler "github.com/kirimkilat/kirimkilat/services/pricing/handler/http"
	natsHandler "github.com/kirimkilat/kirimkilat/services/pricing/handler/nats"
)

// Handler combines all handlers for the pricing service
type Handler struct {
	pricingHTTP *httpHandler.PricingHandler
	pricingNATS *natsHandler.PricingHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	pricingUC pricing.PricingUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		pricingHTTP: httpHandler.NewPricingHandler(pricingUC),
		pricingNATS: natsHandler.NewPricingHandler(pricingUC, natsClient, cfg),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMW func(allowedServices ...string) echo.MiddlewareFunc) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKeyMW("order-service"))
	internal.POST("/quotes", h.pricingHTTP.Quote)

	// Admin routes for service area management (JWT required)
	admin := e.Group("/admin", middleware.JWTAuthMiddleware(h.cfg.JWT))
	admin.GET("/service-areas", h.pricingHTTP.ListServiceAreas)
	admin.POST("/service-areas", h.pricingHTTP.CreateServiceArea)
	admin.GET("/service-areas/:id", h.pricingHTTP.GetServiceArea)
	admin.PUT("/service-areas/:id", h.pricingHTTP.UpdateServiceArea)
	admin.DELETE("/service-areas/:id", h.pricingHTTP.DeactivateServiceArea)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.pricingNATS.InitNATSConsumers()
}

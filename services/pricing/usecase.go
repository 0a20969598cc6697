package pricing

import (
	"context"

	"github.com/google/uuid"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

// PricingUC defines the interface for pricing business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kirimkilat/kirimkilat/services/pricing PricingUC
type PricingUC interface {
	Quote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResult, error)

	ListServiceAreas(ctx context.Context) ([]models.ServiceArea, error)
	GetServiceArea(ctx context.Context, id uuid.UUID) (*models.ServiceArea, error)
	CreateServiceArea(ctx context.Context, area *models.ServiceArea) (*models.ServiceArea, error)
	UpdateServiceArea(ctx context.Context, area *models.ServiceArea) (*models.ServiceArea, error)
	DeactivateServiceArea(ctx context.Context, id uuid.UUID) error
	InvalidateSnapshot(ctx context.Context) error
}

package pricing

import (
	"context"

	"github.com/google/uuid"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

// ServiceAreaRepo defines the interface for service area data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kirimkilat/kirimkilat/services/pricing ServiceAreaRepo,RouteCacheRepo
type ServiceAreaRepo interface {
	GetActiveServiceAreas(ctx context.Context) ([]models.ServiceArea, error)
	GetServiceAreaByID(ctx context.Context, id uuid.UUID) (*models.ServiceArea, error)
	ListServiceAreas(ctx context.Context) ([]models.ServiceArea, error)
	CreateServiceArea(ctx context.Context, area *models.ServiceArea) error
	UpdateServiceArea(ctx context.Context, area *models.ServiceArea) error
	DeactivateServiceArea(ctx context.Context, id uuid.UUID) error
	InvalidateSnapshot(ctx context.Context) error
}

// RouteCacheRepo defines the interface for cached route distances
type RouteCacheRepo interface {
	GetRouteDistance(ctx context.Context, pickup, delivery models.Coordinate) (float64, bool, error)
	StoreRouteDistance(ctx context.Context, pickup, delivery models.Coordinate, distanceKm float64) error
}

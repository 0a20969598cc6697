package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kirimkilat/kirimkilat/internal/pkg/logger"
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

// Administrative operations over service areas. Every mutation drops the
// cached snapshot and announces itself so other instances drop theirs too.

func (uc *pricingUC) ListServiceAreas(ctx context.Context) ([]models.ServiceArea, error) {
	return uc.areaRepo.ListServiceAreas(ctx)
}

func (uc *pricingUC) GetServiceArea(ctx context.Context, id uuid.UUID) (*models.ServiceArea, error) {
	return uc.areaRepo.GetServiceAreaByID(ctx, id)
}

func (uc *pricingUC) CreateServiceArea(ctx context.Context, area *models.ServiceArea) (*models.ServiceArea, error) {
	if area.ID == uuid.Nil {
		area.ID = uuid.New()
	}
	if err := area.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrValidation, err)
	}

	now := time.Now()
	area.CreatedAt = now
	area.UpdatedAt = now

	if err := uc.areaRepo.CreateServiceArea(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to create service area: %w", err)
	}

	uc.afterAreaChange(ctx, area.ID, "created")
	return area, nil
}

func (uc *pricingUC) UpdateServiceArea(ctx context.Context, area *models.ServiceArea) (*models.ServiceArea, error) {
	if err := area.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrValidation, err)
	}

	area.UpdatedAt = time.Now()

	if err := uc.areaRepo.UpdateServiceArea(ctx, area); err != nil {
		return nil, fmt.Errorf("failed to update service area: %w", err)
	}

	uc.afterAreaChange(ctx, area.ID, "updated")
	return area, nil
}

func (uc *pricingUC) DeactivateServiceArea(ctx context.Context, id uuid.UUID) error {
	if err := uc.areaRepo.DeactivateServiceArea(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate service area: %w", err)
	}

	uc.afterAreaChange(ctx, id, "deactivated")
	return nil
}

func (uc *pricingUC) InvalidateSnapshot(ctx context.Context) error {
	return uc.areaRepo.InvalidateSnapshot(ctx)
}

func (uc *pricingUC) afterAreaChange(ctx context.Context, areaID uuid.UUID, action string) {
	if err := uc.areaRepo.InvalidateSnapshot(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate service area snapshot",
			logger.String("area_id", areaID.String()),
			logger.Err(err))
	}

	event := &models.ServiceAreaEvent{
		AreaID:    areaID,
		Action:    action,
		Timestamp: time.Now(),
	}
	if err := uc.pricingGW.PublishServiceAreaUpdated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish service area event",
			logger.String("area_id", areaID.String()),
			logger.String("action", action),
			logger.Err(err))
	}
}

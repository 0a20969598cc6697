package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

func TestCreateServiceArea_Success(t *testing.T) {
	uc, m, ctrl := newTestPricingUC(t)
	defer ctrl.Finish()
	ctx := context.Background()

	area := jakartaArea()
	area.ID = uuid.Nil

	m.areaRepo.EXPECT().CreateServiceArea(ctx, &area).Return(nil)
	m.areaRepo.EXPECT().InvalidateSnapshot(ctx).Return(nil)

	var published *models.ServiceAreaEvent
	m.pricingGW.EXPECT().PublishServiceAreaUpdated(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.ServiceAreaEvent) error {
			published = event
			return nil
		})

	created, err := uc.CreateServiceArea(ctx, &area)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	require.NotNil(t, published)
	assert.Equal(t, created.ID, published.AreaID)
	assert.Equal(t, "created", published.Action)
}

func TestCreateServiceArea_ValidationError(t *testing.T) {
	uc, _, ctrl := newTestPricingUC(t)
	defer ctrl.Finish()

	area := jakartaArea()
	area.Boundary = area.Boundary[:2]

	created, err := uc.CreateServiceArea(context.Background(), &area)

	assert.Nil(t, created)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestCreateServiceArea_RepoError(t *testing.T) {
	uc, m, ctrl := newTestPricingUC(t)
	defer ctrl.Finish()
	ctx := context.Background()

	area := jakartaArea()

	m.areaRepo.EXPECT().CreateServiceArea(ctx, &area).Return(errors.New("duplicate key"))

	created, err := uc.CreateServiceArea(ctx, &area)

	assert.Nil(t, created)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create service area")
}

func TestUpdateServiceArea_Success(t *testing.T) {
	uc, m, ctrl := newTestPricingUC(t)
	defer ctrl.Finish()
	ctx := context.Background()

	area := jakartaArea()
	area.BasePrice = 12

	m.areaRepo.EXPECT().UpdateServiceArea(ctx, &area).Return(nil)
	m.areaRepo.EXPECT().InvalidateSnapshot(ctx).Return(nil)

	var published *models.ServiceAreaEvent
	m.pricingGW.EXPECT().PublishServiceAreaUpdated(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.ServiceAreaEvent) error {
			published = event
			return nil
		})

	updated, err := uc.UpdateServiceArea(ctx, &area)

	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.IsZero())

	require.NotNil(t, published)
	assert.Equal(t, area.ID, published.AreaID)
	assert.Equal(t, "updated", published.Action)
}

func TestDeactivateServiceArea_Success(t *testing.T) {
	uc, m, ctrl := newTestPricingUC(t)
	defer ctrl.Finish()
	ctx := context.Background()

	areaID := uuid.New()

	m.areaRepo.EXPECT().DeactivateServiceArea(ctx, areaID).Return(nil)
	m.areaRepo.EXPECT().InvalidateSnapshot(ctx).Return(nil)

	var published *models.ServiceAreaEvent
	m.pricingGW.EXPECT().PublishServiceAreaUpdated(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.ServiceAreaEvent) error {
			published = event
			return nil
		})

	err := uc.DeactivateServiceArea(ctx, areaID)

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, areaID, published.AreaID)
	assert.Equal(t, "deactivated", published.Action)
}

func TestDeactivateServiceArea_RepoError(t *testing.T) {
	uc, m, ctrl := newTestPricingUC(t)
	defer ctrl.Finish()
	ctx := context.Background()

	areaID := uuid.New()

	m.areaRepo.EXPECT().DeactivateServiceArea(ctx, areaID).Return(errors.New("not found"))

	err := uc.DeactivateServiceArea(ctx, areaID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deactivate service area")
}

func TestSideEffectFailuresAreSwallowed(t *testing.T) {
	uc, m, ctrl := newTestPricingUC(t)
	defer ctrl.Finish()
	ctx := context.Background()

	areaID := uuid.New()

	m.areaRepo.EXPECT().DeactivateServiceArea(ctx, areaID).Return(nil)
	m.areaRepo.EXPECT().InvalidateSnapshot(ctx).Return(errors.New("redis down"))
	m.pricingGW.EXPECT().PublishServiceAreaUpdated(ctx, gomock.Any()).
		Return(errors.New("nats: connection closed"))

	err := uc.DeactivateServiceArea(ctx, areaID)

	assert.NoError(t, err)
}

func TestListServiceAreas_Passthrough(t *testing.T) {
	uc, m, ctrl := newTestPricingUC(t)
	defer ctrl.Finish()
	ctx := context.Background()

	areas := []models.ServiceArea{jakartaArea(), jakartaArea()}
	m.areaRepo.EXPECT().ListServiceAreas(ctx).Return(areas, nil)

	got, err := uc.ListServiceAreas(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetServiceArea_Passthrough(t *testing.T) {
	uc, m, ctrl := newTestPricingUC(t)
	defer ctrl.Finish()
	ctx := context.Background()

	area := jakartaArea()
	m.areaRepo.EXPECT().GetServiceAreaByID(ctx, area.ID).Return(&area, nil)

	got, err := uc.GetServiceArea(ctx, area.ID)

	require.NoError(t, err)
	assert.Equal(t, area.ID, got.ID)
}

package repository_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	"github.com/kirimkilat/kirimkilat/services/pricing/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var serviceAreaColumns = []string{
	"id", "name", "boundary", "base_price", "price_per_km", "max_distance_km",
	"is_active", "priority", "created_at", "updated_at",
}

func testBoundary(t *testing.T) ([]models.Coordinate, []byte) {
	boundary := []models.Coordinate{
		{Latitude: -7, Longitude: 106},
		{Latitude: -7, Longitude: 107},
		{Latitude: -6, Longitude: 107},
		{Latitude: -6, Longitude: 106},
	}
	encoded, err := json.Marshal(boundary)
	require.NoError(t, err)
	return boundary, encoded
}

func TestGetActiveServiceAreas_NoCache(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewServiceAreaRepository(&models.Config{}, db, nil)

	areaID := uuid.New()
	boundary, encoded := testBoundary(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM service_areas")).
		WillReturnRows(sqlmock.NewRows(serviceAreaColumns).
			AddRow(areaID, "Jakarta", encoded, 10.0, 2.0, nil, true, 5, now, now))

	areas, err := repo.GetActiveServiceAreas(context.Background())

	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, areaID, areas[0].ID)
	assert.Equal(t, "Jakarta", areas[0].Name)
	assert.Equal(t, boundary, areas[0].Boundary)
	assert.Nil(t, areas[0].MaxDistanceKm)
	assert.Equal(t, 5, areas[0].Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveServiceAreas_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewServiceAreaRepository(&models.Config{}, db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM service_areas")).
		WillReturnRows(sqlmock.NewRows(serviceAreaColumns))

	areas, err := repo.GetActiveServiceAreas(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestGetServiceAreaByID_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewServiceAreaRepository(&models.Config{}, db, nil)

	areaID := uuid.New()
	_, encoded := testBoundary(t)
	maxKm := 25.0
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(areaID).
		WillReturnRows(sqlmock.NewRows(serviceAreaColumns).
			AddRow(areaID, "Bandung", encoded, 8.0, 1.5, maxKm, true, 0, now, now))

	area, err := repo.GetServiceAreaByID(context.Background(), areaID)

	require.NoError(t, err)
	assert.Equal(t, "Bandung", area.Name)
	require.NotNil(t, area.MaxDistanceKm)
	assert.Equal(t, 25.0, *area.MaxDistanceKm)
}

func TestGetServiceAreaByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewServiceAreaRepository(&models.Config{}, db, nil)

	areaID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(areaID).
		WillReturnRows(sqlmock.NewRows(serviceAreaColumns))

	area, err := repo.GetServiceAreaByID(context.Background(), areaID)

	assert.Nil(t, area)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service area not found")
}

func TestCreateServiceArea_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewServiceAreaRepository(&models.Config{}, db, nil)

	boundary, _ := testBoundary(t)
	now := time.Now()
	area := &models.ServiceArea{
		ID:         uuid.New(),
		Name:       "Jakarta",
		Boundary:   boundary,
		BasePrice:  10,
		PricePerKm: 2,
		IsActive:   true,
		Priority:   1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO service_areas")).
		WithArgs(area.ID, area.Name, sqlmock.AnyArg(), area.BasePrice, area.PricePerKm,
			area.MaxDistanceKm, area.IsActive, area.Priority, area.CreatedAt, area.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateServiceArea(context.Background(), area)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateServiceArea_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewServiceAreaRepository(&models.Config{}, db, nil)

	boundary, _ := testBoundary(t)
	area := &models.ServiceArea{
		ID:         uuid.New(),
		Name:       "Jakarta",
		Boundary:   boundary,
		BasePrice:  10,
		PricePerKm: 2,
		UpdatedAt:  time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE service_areas")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateServiceArea(context.Background(), area)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service area not found")
}

func TestDeactivateServiceArea_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewServiceAreaRepository(&models.Config{}, db, nil)

	areaID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE service_areas")).
		WithArgs(areaID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeactivateServiceArea(context.Background(), areaID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateServiceArea_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewServiceAreaRepository(&models.Config{}, db, nil)

	areaID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE service_areas")).
		WithArgs(areaID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeactivateServiceArea(context.Background(), areaID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service area not found")
}

func TestInvalidateSnapshot_NilRedis(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := repository.NewServiceAreaRepository(&models.Config{}, db, nil)

	assert.NoError(t, repo.InvalidateSnapshot(context.Background()))
}

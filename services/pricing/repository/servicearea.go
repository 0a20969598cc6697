package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kirimkilat/kirimkilat/internal/pkg/constants"
	"github.com/kirimkilat/kirimkilat/internal/pkg/database"
	"github.com/kirimkilat/kirimkilat/internal/pkg/logger"
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
)

// ServiceAreaRepo persists service areas in Postgres and keeps the active
// snapshot cached in Redis. The cache is optional: with a nil Redis client
// every read goes straight to the database.
type ServiceAreaRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

func NewServiceAreaRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *ServiceAreaRepo {
	return &ServiceAreaRepo{
		cfg:   cfg,
		db:    db,
		redis: redisClient,
	}
}

const serviceAreaColumns = `
	id, name, boundary, base_price, price_per_km, max_distance_km,
	is_active, priority, created_at, updated_at
`

// GetActiveServiceAreas returns the active snapshot, preferring the Redis
// copy so the hot quote path avoids a database round trip.
func (r *ServiceAreaRepo) GetActiveServiceAreas(ctx context.Context) ([]models.ServiceArea, error) {
	if r.redis != nil {
		cached, err := r.redis.Get(ctx, constants.KeyServiceAreaSnapshot)
		if err == nil {
			var areas []models.ServiceArea
			decodeErr := json.Unmarshal([]byte(cached), &areas)
			if decodeErr == nil {
				return areas, nil
			}
			logger.WarnCtx(ctx, "Discarding unreadable service area snapshot",
				logger.Err(decodeErr))
		} else if err != redis.Nil {
			logger.WarnCtx(ctx, "Service area snapshot cache read failed",
				logger.Err(err))
		}
	}

	query := `
		SELECT ` + serviceAreaColumns + `
		FROM service_areas
		WHERE is_active = true
		ORDER BY priority DESC, name ASC
	`
	areas, err := r.queryServiceAreas(ctx, query)
	if err != nil {
		return nil, err
	}

	r.cacheSnapshot(ctx, areas)
	return areas, nil
}

// GetServiceAreaByID retrieves a single service area
func (r *ServiceAreaRepo) GetServiceAreaByID(ctx context.Context, id uuid.UUID) (*models.ServiceArea, error) {
	query := `
		SELECT ` + serviceAreaColumns + `
		FROM service_areas
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)
	area, err := scanServiceArea(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("service area not found: %w", err)
		}
		return nil, err
	}
	return area, nil
}

// ListServiceAreas returns every service area, active or not
func (r *ServiceAreaRepo) ListServiceAreas(ctx context.Context) ([]models.ServiceArea, error) {
	query := `
		SELECT ` + serviceAreaColumns + `
		FROM service_areas
		ORDER BY priority DESC, name ASC
	`
	return r.queryServiceAreas(ctx, query)
}

// CreateServiceArea inserts a new service area
func (r *ServiceAreaRepo) CreateServiceArea(ctx context.Context, area *models.ServiceArea) error {
	boundary, err := json.Marshal(area.Boundary)
	if err != nil {
		return fmt.Errorf("failed to encode boundary: %w", err)
	}

	query := `
		INSERT INTO service_areas (
			id, name, boundary, base_price, price_per_km, max_distance_km,
			is_active, priority, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.ExecContext(
		ctx,
		query,
		area.ID,
		area.Name,
		boundary,
		area.BasePrice,
		area.PricePerKm,
		area.MaxDistanceKm,
		area.IsActive,
		area.Priority,
		area.CreatedAt,
		area.UpdatedAt,
	)
	return err
}

// UpdateServiceArea replaces a service area's mutable fields
func (r *ServiceAreaRepo) UpdateServiceArea(ctx context.Context, area *models.ServiceArea) error {
	boundary, err := json.Marshal(area.Boundary)
	if err != nil {
		return fmt.Errorf("failed to encode boundary: %w", err)
	}

	query := `
		UPDATE service_areas
		SET name = $2, boundary = $3, base_price = $4, price_per_km = $5,
			max_distance_km = $6, is_active = $7, priority = $8, updated_at = $9
		WHERE id = $1
	`
	result, err := r.db.ExecContext(
		ctx,
		query,
		area.ID,
		area.Name,
		boundary,
		area.BasePrice,
		area.PricePerKm,
		area.MaxDistanceKm,
		area.IsActive,
		area.Priority,
		area.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("service area not found: %s", area.ID)
	}
	return nil
}

// DeactivateServiceArea soft-deletes a service area
func (r *ServiceAreaRepo) DeactivateServiceArea(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE service_areas
		SET is_active = false, updated_at = $2
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("service area not found: %s", id)
	}
	return nil
}

// InvalidateSnapshot drops the cached active snapshot
func (r *ServiceAreaRepo) InvalidateSnapshot(ctx context.Context) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Delete(ctx, constants.KeyServiceAreaSnapshot)
}

func (r *ServiceAreaRepo) cacheSnapshot(ctx context.Context, areas []models.ServiceArea) {
	if r.redis == nil {
		return
	}

	payload, err := json.Marshal(areas)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to encode service area snapshot",
			logger.Err(err))
		return
	}

	ttl := time.Duration(r.cfg.Pricing.SnapshotCacheTTL) * time.Second
	if err := r.redis.Set(ctx, constants.KeyServiceAreaSnapshot, payload, ttl); err != nil {
		logger.WarnCtx(ctx, "Failed to cache service area snapshot",
			logger.Err(err))
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanServiceArea(row rowScanner) (*models.ServiceArea, error) {
	area := &models.ServiceArea{}
	var boundary []byte
	var maxDistance sql.NullFloat64

	err := row.Scan(
		&area.ID,
		&area.Name,
		&boundary,
		&area.BasePrice,
		&area.PricePerKm,
		&maxDistance,
		&area.IsActive,
		&area.Priority,
		&area.CreatedAt,
		&area.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(boundary, &area.Boundary); err != nil {
		return nil, fmt.Errorf("service area %s: malformed boundary: %w", area.ID, err)
	}
	if maxDistance.Valid {
		area.MaxDistanceKm = &maxDistance.Float64
	}
	return area, nil
}

func (r *ServiceAreaRepo) queryServiceAreas(ctx context.Context, query string, args ...interface{}) ([]models.ServiceArea, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []models.ServiceArea{}
	for rows.Next() {
		area, err := scanServiceArea(rows)
		if err != nil {
			return nil, err
		}
		areas = append(areas, *area)
	}
	return areas, rows.Err()
}

package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kirimkilat/kirimkilat/internal/pkg/constants"
	"github.com/kirimkilat/kirimkilat/internal/pkg/database"
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	"github.com/kirimkilat/kirimkilat/internal/utils"
)

// RouteCacheRepo stores recently measured route distances in Redis, keyed by
// the geohash pair of the endpoints. Nearby points share a geohash cell, so a
// measurement from one customer serves the next one across the street.
type RouteCacheRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

func NewRouteCacheRepository(
	cfg *models.Config,
	redisClient *database.RedisClient,
) *RouteCacheRepo {
	return &RouteCacheRepo{
		cfg:   cfg,
		redis: redisClient,
	}
}

func (r *RouteCacheRepo) routeKey(pickup, delivery models.Coordinate) string {
	precision := r.cfg.Pricing.RouteCachePrecision
	return fmt.Sprintf(constants.KeyRouteDistance,
		utils.EncodeCoordinate(pickup, precision),
		utils.EncodeCoordinate(delivery, precision))
}

// GetRouteDistance looks up a cached distance for the endpoint pair. A cache
// miss is (0, false, nil), not an error.
func (r *RouteCacheRepo) GetRouteDistance(ctx context.Context, pickup, delivery models.Coordinate) (float64, bool, error) {
	if r.redis == nil {
		return 0, false, nil
	}

	value, err := r.redis.Get(ctx, r.routeKey(pickup, delivery))
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	distanceKm, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, fmt.Errorf("malformed cached distance %q: %w", value, err)
	}
	return distanceKm, true, nil
}

// StoreRouteDistance caches a measured distance for the endpoint pair
func (r *RouteCacheRepo) StoreRouteDistance(ctx context.Context, pickup, delivery models.Coordinate, distanceKm float64) error {
	if r.redis == nil {
		return nil
	}

	ttl := time.Duration(r.cfg.Pricing.RouteCacheTTL) * time.Second
	value := strconv.FormatFloat(distanceKm, 'f', -1, 64)
	return r.redis.Set(ctx, r.routeKey(pickup, delivery), value, ttl)
}

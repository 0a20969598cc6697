package repository_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirimkilat/kirimkilat/internal/pkg/database"
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	"github.com/kirimkilat/kirimkilat/services/pricing/repository"
)

func setupRouteCache(t *testing.T) (*repository.RouteCacheRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := database.NewRedisClient(models.RedisConfig{
		Host: mr.Host(),
		Port: port,
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{
		Pricing: models.PricingConfig{
			RouteCacheTTL:       1800,
			RouteCachePrecision: 7,
		},
	}
	return repository.NewRouteCacheRepository(cfg, client), mr
}

var (
	cachePickup   = models.Coordinate{Latitude: -6.175392, Longitude: 106.827153}
	cacheDelivery = models.Coordinate{Latitude: -6.137654, Longitude: 106.817125}
)

func TestRouteCache_StoreAndGet(t *testing.T) {
	repo, _ := setupRouteCache(t)
	ctx := context.Background()

	err := repo.StoreRouteDistance(ctx, cachePickup, cacheDelivery, 4.7)
	require.NoError(t, err)

	distanceKm, found, err := repo.GetRouteDistance(ctx, cachePickup, cacheDelivery)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4.7, distanceKm)
}

func TestRouteCache_Miss(t *testing.T) {
	repo, _ := setupRouteCache(t)

	distanceKm, found, err := repo.GetRouteDistance(context.Background(), cachePickup, cacheDelivery)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0.0, distanceKm)
}

func TestRouteCache_DirectionMatters(t *testing.T) {
	repo, _ := setupRouteCache(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreRouteDistance(ctx, cachePickup, cacheDelivery, 4.7))

	_, found, err := repo.GetRouteDistance(ctx, cacheDelivery, cachePickup)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestRouteCache_NearbyPointsShareEntry(t *testing.T) {
	repo, _ := setupRouteCache(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreRouteDistance(ctx, cachePickup, cacheDelivery, 4.7))

	// A few meters away, inside the same precision-7 geohash cell.
	nearby := models.Coordinate{
		Latitude:  cachePickup.Latitude + 0.0001,
		Longitude: cachePickup.Longitude + 0.0001,
	}
	distanceKm, found, err := repo.GetRouteDistance(ctx, nearby, cacheDelivery)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4.7, distanceKm)
}

func TestRouteCache_Expires(t *testing.T) {
	repo, mr := setupRouteCache(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreRouteDistance(ctx, cachePickup, cacheDelivery, 4.7))

	mr.FastForward(1801 * time.Second)

	_, found, err := repo.GetRouteDistance(ctx, cachePickup, cacheDelivery)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestRouteCache_NilRedis(t *testing.T) {
	cfg := &models.Config{
		Pricing: models.PricingConfig{RouteCachePrecision: 7},
	}
	repo := repository.NewRouteCacheRepository(cfg, nil)
	ctx := context.Background()

	_, found, err := repo.GetRouteDistance(ctx, cachePickup, cacheDelivery)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, repo.StoreRouteDistance(ctx, cachePickup, cacheDelivery, 4.7))
}

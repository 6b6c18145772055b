package places

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Raptors65/hack404/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Geocoding results are effectively static; nearby results
// shift as places open and close, so they expire sooner.
const (
	geocodeTTL = 7 * 24 * time.Hour
	nearbyTTL  = time.Hour
)

// CachedGateway wraps a Gateway with a Redis read-through cache for
// geocode and nearby-search lookups. Cache failures are logged and the
// call falls through to the upstream API; Redis is never a source of
// truth.
type CachedGateway struct {
	upstream Gateway
	client   *redis.Client
}

func NewCachedGateway(upstream Gateway, client *redis.Client) *CachedGateway {
	return &CachedGateway{upstream: upstream, client: client}
}

func (g *CachedGateway) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	key := "geocode:" + strings.ToLower(strings.TrimSpace(address))

	var cached GeocodeResult
	if g.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := g.upstream.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}
	g.setCached(ctx, key, result, geocodeTTL)
	return result, nil
}

func (g *CachedGateway) NearbySearch(ctx context.Context, lat, lng, radius float64, placeType string) ([]Place, error) {
	key := fmt.Sprintf("nearby:%.4f:%.4f:%.0f:%s", lat, lng, radius, placeType)

	var cached []Place
	if g.getCached(ctx, key, &cached) {
		return cached, nil
	}

	results, err := g.upstream.NearbySearch(ctx, lat, lng, radius, placeType)
	if err != nil {
		return nil, err
	}
	g.setCached(ctx, key, results, nearbyTTL)
	return results, nil
}

// Details is not cached; it is only hit from the passthrough endpoint.
func (g *CachedGateway) Details(ctx context.Context, placeID string) (*PlaceDetails, error) {
	return g.upstream.Details(ctx, placeID)
}

func (g *CachedGateway) getCached(ctx context.Context, key string, out any) bool {
	data, err := g.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.WithError(err).Warnf("Redis get failed for %s", key)
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		logger.Log.WithError(err).Warnf("Failed to unmarshal cached value for %s", key)
		return false
	}
	return true
}

func (g *CachedGateway) setCached(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := g.client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Log.WithError(err).Warnf("Redis set failed for %s", key)
	}
}

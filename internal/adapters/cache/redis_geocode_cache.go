package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"qibla-direction-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache stores geocode results as JSON values with a TTL,
// for deployments where a shared cache beats a per-instance database.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		// Geocode results are effectively static; a long default is fine.
		ttl = 30 * 24 * time.Hour
	}
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

type cachedLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Fetch the cached coordinates for an address.
func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Location, bool, error) {
	if r.Client == nil {
		return domain.Location{}, false, errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Location{}, false, errors.New("geocode cache: empty address key")
	}

	raw, err := r.Client.Get(ctx, redisKeyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Location{}, false, nil
	}
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("get geocode cache: redis get %q: %w", address, err)
	}

	var c cachedLocation
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return domain.Location{}, false, fmt.Errorf("get geocode cache: decode %q: %w", address, err)
	}

	return domain.Location{Latitude: c.Lat, Longitude: c.Lon}, true, nil
}

// Store an address -> coordinate mapping in the cache.
func (r *RedisGeocodeCache) Put(ctx context.Context, address string, loc domain.Location) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("geocode cache: empty address key")
	}

	raw, err := json.Marshal(cachedLocation{Lat: loc.Latitude, Lon: loc.Longitude})
	if err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: encode: %w", address, err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+address, raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: %w", address, err)
	}

	return nil
}

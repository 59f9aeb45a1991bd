package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"qibla-direction-service/internal/domain"
	"qibla-direction-service/internal/platform/obs"
)

// SQLGeocodeCache is a SQL-backed cache mapping addresses to coordinates.
// Address keys are expected to be normalized by the caller.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// InitSchema creates the geocode cache table if it does not exist.
func InitSchema(db *sql.DB) error {
	const q = `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lat     DOUBLE PRECISION NOT NULL,
		lon     DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache table: %w", err)
	}

	return nil
}

// Fetch the cached coordinates for an address.
func (s *SQLGeocodeCache) Get(
	ctx context.Context,
	address string,
) (_ domain.Location, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Location{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Location{}, false, errors.New("geocode cache: empty address key")
	}

	const q = `
	SELECT lat, lon
	FROM geocode_cache
	WHERE address = $1;
	`

	var lat, lon float64
	if err := s.DB.QueryRowContext(ctx, q, address).Scan(&lat, &lon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Location{}, false, nil
		}
		return domain.Location{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Location{Latitude: lat, Longitude: lon}, true, nil
}

// Store an address -> coordinate mapping in the cache.
func (s *SQLGeocodeCache) Put(ctx context.Context, address string, loc domain.Location) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("geocode cache: empty address key")
	}

	const q = `
	INSERT INTO geocode_cache (address, lat, lon)
	VALUES ($1, $2, $3)
	ON CONFLICT (address) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`

	if _, err := s.DB.ExecContext(ctx, q, address, loc.Latitude, loc.Longitude); err != nil {
		return fmt.Errorf("insert geocode cache coord=%q: %w", address, err)
	}

	return nil
}

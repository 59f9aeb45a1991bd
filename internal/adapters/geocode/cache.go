package geocode

import (
	"context"

	"qibla-direction-service/internal/domain"
)

// Cache consulted before issuing gazetteer lookups. Implementations are
// expected to be safe for concurrent use; a nil cache disables caching.
type Cache interface {
	// Return the cached location for an address, reporting whether it was present.
	Get(ctx context.Context, address string) (domain.Location, bool, error)

	// Store an address -> location mapping.
	Put(ctx context.Context, address string, loc domain.Location) error
}

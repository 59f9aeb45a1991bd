package ports

import "qibla-direction-service/internal/domain"

// Contract for the geodesic engine. Implementations must be pure:
// no I/O, no caching, no shared mutable state.
type QiblaCalculator interface {
	// Return bearing, cardinal direction and distance to the Kaaba.
	CalculateQibla(loc domain.Location) domain.QiblaDirection

	// Expand the bearing into the full 16-entry compass table.
	CalculateCompassTable(loc domain.Location) domain.CompassTable
}

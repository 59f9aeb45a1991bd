package ports

import (
	"context"
	"errors"

	"qibla-direction-service/internal/domain"
)

// Resolution failures are classified with these sentinels so callers can
// map them to exit codes or HTTP statuses with errors.Is.
var (
	// Input was neither a "lat,lon" pair nor resolvable as an address format.
	ErrMalformedInput = errors.New("expected format: latitude,longitude")

	// Input parsed as coordinates but a value was outside its valid bounds.
	ErrOutOfRange = errors.New("coordinate out of range")

	// The geocoder returned no match for the input.
	ErrNotFound = errors.New("location not found")
)

// Port: resolves free-form user input to a geographic point.
// Input is either a literal "latitude,longitude" pair or a place name
// handed to a gazetteer lookup.
type CoordinateResolver interface {
	Resolve(ctx context.Context, input string) (domain.Location, error)
}

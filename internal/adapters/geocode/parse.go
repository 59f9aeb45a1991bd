package geocode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"qibla-direction-service/internal/domain"
	"qibla-direction-service/internal/ports"
)

// ParseCoordinates parses a literal "latitude,longitude" pair.
// Exactly two comma-separated decimal fields are accepted, each
// optionally whitespace-padded. Violations are reported through the
// ports sentinels so callers can distinguish malformed input from
// out-of-range coordinates.
func ParseCoordinates(input string) (domain.Location, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return domain.Location{}, fmt.Errorf("parse coordinates %q: %w", input, ports.ErrMalformedInput)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || math.IsInf(latitude, 0) || math.IsNaN(latitude) {
		return domain.Location{}, fmt.Errorf("parse latitude %q: %w", strings.TrimSpace(parts[0]), ports.ErrMalformedInput)
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || math.IsInf(longitude, 0) || math.IsNaN(longitude) {
		return domain.Location{}, fmt.Errorf("parse longitude %q: %w", strings.TrimSpace(parts[1]), ports.ErrMalformedInput)
	}

	if latitude < -90 || latitude > 90 {
		return domain.Location{}, fmt.Errorf("latitude %v must be between -90 and 90 degrees: %w", latitude, ports.ErrOutOfRange)
	}

	if longitude < -180 || longitude > 180 {
		return domain.Location{}, fmt.Errorf("longitude %v must be between -180 and 180 degrees: %w", longitude, ports.ErrOutOfRange)
	}

	return domain.Location{Latitude: latitude, Longitude: longitude}, nil
}

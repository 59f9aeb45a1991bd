package geocode

import (
	"context"
	"fmt"

	"qibla-direction-service/internal/domain"
	"qibla-direction-service/internal/ports"
)

// StubResolver serves canned input -> location mappings for tests.
type StubResolver struct {
	m map[string]domain.Location
}

func NewStubResolver(entries map[string]domain.Location) *StubResolver {
	m := make(map[string]domain.Location, len(entries))
	for input, loc := range entries {
		m[input] = loc
	}
	return &StubResolver{m: m}
}

func (s *StubResolver) Resolve(ctx context.Context, input string) (domain.Location, error) {
	loc, ok := s.m[input]
	if !ok {
		return domain.Location{}, fmt.Errorf("resolve %q: %w", input, ports.ErrNotFound)
	}

	return loc, nil
}

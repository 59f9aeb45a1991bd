package geocode

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"qibla-direction-service/internal/domain"
	"qibla-direction-service/internal/ports"
)

// In-memory cache capturing Put calls for assertions.
type memoryCache struct {
	mu   sync.Mutex
	m    map[string]domain.Location
	puts int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{m: make(map[string]domain.Location)}
}

func (c *memoryCache) Get(ctx context.Context, address string) (domain.Location, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	loc, ok := c.m[address]
	return loc, ok, nil
}

func (c *memoryCache) Put(ctx context.Context, address string, loc domain.Location) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[address] = loc
	c.puts++
	return nil
}

func newTestResolver(t *testing.T, handler http.HandlerFunc, cache Cache) *NominatimResolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewNominatimResolver(srv.URL, "qibla-direction-service-test/1.0", cache)
}

func TestResolveCoordinatePairSkipsNetwork(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("coordinate input must not reach the geocoder")
	}, nil)

	loc, err := resolver.Resolve(context.Background(), "48.8566, 2.3522")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(loc.Latitude-48.8566) > 0.0001 || math.Abs(loc.Longitude-2.3522) > 0.0001 {
		t.Fatalf("loc = %v, want {48.8566 2.3522}", loc)
	}
}

func TestResolveOutOfRangeDoesNotFallBack(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("out-of-range coordinates must not reach the geocoder")
	}, nil)

	_, err := resolver.Resolve(context.Background(), "91.0, 0.0")
	if !errors.Is(err, ports.ErrOutOfRange) {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}
}

func TestResolveGeocodesPlaceName(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Paris, France" {
			t.Errorf("q = %q, want %q", got, "Paris, France")
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "48.8566", "lon": "2.3522"}]`))
	}, nil)

	loc, err := resolver.Resolve(context.Background(), "Paris,  France")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(loc.Latitude-48.8566) > 0.0001 || math.Abs(loc.Longitude-2.3522) > 0.0001 {
		t.Fatalf("loc = %v, want {48.8566 2.3522}", loc)
	}
}

func TestResolveNotFound(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}, nil)

	_, err := resolver.Resolve(context.Background(), "Nowhereville")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestResolveRetriesTransientFailure(t *testing.T) {
	attempts := 0
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "21.4225", "lon": "39.8262"}]`))
	}, nil)

	loc, err := resolver.Resolve(context.Background(), "Mecca")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("attempts = %d, want 2", attempts)
	}
	if math.Abs(loc.Latitude-21.4225) > 0.0001 {
		t.Fatalf("latitude = %v, want 21.4225", loc.Latitude)
	}
}

func TestResolveUsesCache(t *testing.T) {
	calls := 0
	cache := newMemoryCache()
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "40.7128", "lon": "-74.0060"}]`))
	}, cache)

	for i := 0; i < 2; i++ {
		loc, err := resolver.Resolve(context.Background(), "New York")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(loc.Latitude-40.7128) > 0.0001 {
			t.Fatalf("latitude = %v, want 40.7128", loc.Latitude)
		}
	}

	if calls != 1 {
		t.Errorf("geocoder calls = %d, want 1 (second hit served from cache)", calls)
	}
	if cache.puts != 1 {
		t.Errorf("cache puts = %d, want 1", cache.puts)
	}
}

func TestStubResolver(t *testing.T) {
	stub := NewStubResolver(map[string]domain.Location{
		"Paris": {Latitude: 48.8566, Longitude: 2.3522},
	})

	if _, err := stub.Resolve(context.Background(), "Paris"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := stub.Resolve(context.Background(), "Atlantis"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

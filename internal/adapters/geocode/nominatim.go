package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"qibla-direction-service/internal/domain"
	"qibla-direction-service/internal/platform/obs"
	"qibla-direction-service/internal/ports"
)

// Nominatim encodes coordinates as JSON strings, not numbers.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NominatimResolver resolves user input to coordinates.
//
// It coordinates:
//   - Strict "latitude,longitude" parsing before any network call
//   - Optional persistent geocode caching
//   - Gazetteer lookups against Nominatim with retry/backoff
//
// The resolver is safe for concurrent use.
type NominatimResolver struct {
	session   *http.Client
	baseURL   string
	userAgent string
	cache     Cache
}

func NewNominatimResolver(baseURL, userAgent string, cache Cache) *NominatimResolver {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	if userAgent == "" {
		userAgent = "qibla-direction-service/1.0"
	}

	return &NominatimResolver{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		cache:     cache,
	}
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (n *NominatimResolver) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Resolve returns the location for a coordinate pair or a place name.
//
// Coordinate parsing runs first. Input that parses as two numbers but
// lands outside the valid ranges fails immediately with ErrOutOfRange;
// handing an out-of-range pair to the gazetteer would only turn a
// precise error into a vague "not found". Everything else falls back to
// the address lookup.
func (n *NominatimResolver) Resolve(ctx context.Context, input string) (domain.Location, error) {
	if strings.TrimSpace(input) == "" {
		return domain.Location{}, fmt.Errorf("resolve location: empty input: %w", ports.ErrMalformedInput)
	}

	loc, err := ParseCoordinates(input)
	if err == nil {
		return loc, nil
	}
	if errors.Is(err, ports.ErrOutOfRange) {
		return domain.Location{}, fmt.Errorf("resolve location: %w", err)
	}

	return n.geocode(ctx, input)
}

// geocode resolves a place name via Nominatim (/search), first match
// wins. Results are cached when a cache is configured; cache write
// failures are logged, not fatal.
func (n *NominatimResolver) geocode(ctx context.Context, address string) (_ domain.Location, err error) {
	defer obs.Time(ctx, "geocode.nominatim")(&err)

	norm := n.normalize(address)

	if n.cache != nil {
		loc, ok, err := n.cache.Get(ctx, norm)
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if ok {
			return loc, nil
		}
	}

	endpoint := n.baseURL + "/search?format=json&limit=1&q=" + url.QueryEscape(norm)

	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		return n.newRequest(ctx, endpoint)
	})
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Location{}, fmt.Errorf("geocode %q: decode response: %w", norm, err)
	}

	if len(decoded) == 0 {
		return domain.Location{}, fmt.Errorf("geocode %q: %w", norm, ports.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode %q: invalid latitude %q: %w", norm, decoded[0].Lat, err)
	}

	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode %q: invalid longitude %q: %w", norm, decoded[0].Lon, err)
	}

	loc := domain.Location{Latitude: lat, Longitude: lon}

	if n.cache != nil {
		if err := n.cache.Put(ctx, norm, loc); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return loc, nil
}

package geocode

import (
	"errors"
	"math"
	"testing"

	"qibla-direction-service/internal/ports"
)

func TestParseCoordinatesValid(t *testing.T) {
	loc, err := ParseCoordinates("48.8566, 2.3522")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(loc.Latitude-48.8566) > 0.0001 {
		t.Errorf("latitude = %v, want 48.8566", loc.Latitude)
	}
	if math.Abs(loc.Longitude-2.3522) > 0.0001 {
		t.Errorf("longitude = %v, want 2.3522", loc.Longitude)
	}
}

func TestParseCoordinatesPadded(t *testing.T) {
	loc, err := ParseCoordinates("  40.7128  ,  -74.0060  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(loc.Latitude-40.7128) > 0.0001 {
		t.Errorf("latitude = %v, want 40.7128", loc.Latitude)
	}
	if math.Abs(loc.Longitude-(-74.0060)) > 0.0001 {
		t.Errorf("longitude = %v, want -74.0060", loc.Longitude)
	}
}

func TestParseCoordinatesMalformed(t *testing.T) {
	inputs := []string{
		"48.8566",
		"48.8566, 2.3522, 100",
		"invalid, coordinates",
		"48.8566, east",
		"",
	}

	for _, input := range inputs {
		_, err := ParseCoordinates(input)
		if !errors.Is(err, ports.ErrMalformedInput) {
			t.Errorf("ParseCoordinates(%q) error = %v, want ErrMalformedInput", input, err)
		}
	}
}

func TestParseCoordinatesOutOfRange(t *testing.T) {
	inputs := []string{
		"91.0, 0.0",
		"-91.0, 0.0",
		"0.0, 181.0",
		"0.0, -181.0",
	}

	for _, input := range inputs {
		_, err := ParseCoordinates(input)
		if !errors.Is(err, ports.ErrOutOfRange) {
			t.Errorf("ParseCoordinates(%q) error = %v, want ErrOutOfRange", input, err)
		}
	}
}

func TestParseCoordinatesBoundsInclusive(t *testing.T) {
	for _, input := range []string{"90, 180", "-90, -180"} {
		if _, err := ParseCoordinates(input); err != nil {
			t.Errorf("ParseCoordinates(%q) unexpected error: %v", input, err)
		}
	}
}

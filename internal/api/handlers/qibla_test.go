package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"qibla-direction-service/internal/adapters/geocode"
	"qibla-direction-service/internal/api/dto"
	"qibla-direction-service/internal/domain"
	"qibla-direction-service/internal/services"
)

func newTestHandler() *QiblaHandler {
	return &QiblaHandler{
		Resolver: geocode.NewStubResolver(map[string]domain.Location{
			"Paris": {Latitude: 48.8566, Longitude: 2.3522},
		}),
		Calculator: services.NewGreatCircleCalculator(),
	}
}

func TestDirection(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/qibla?location=Paris", nil)
	rec := httptest.NewRecorder()
	handler.Direction(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.QiblaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if math.Abs(res.Bearing-119) > 5 {
		t.Errorf("bearing = %.2f, want 119 ±5", res.Bearing)
	}
	if res.Direction != "SE" {
		t.Errorf("direction = %q, want SE", res.Direction)
	}
	if math.Abs(res.DistanceKM-4500) > 500 {
		t.Errorf("distance = %.0f, want 4500 ±500", res.DistanceKM)
	}
}

func TestDirectionMissingLocation(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/qibla", nil)
	rec := httptest.NewRecorder()
	handler.Direction(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDirectionNotFound(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/qibla?location=Atlantis", nil)
	rec := httptest.NewRecorder()
	handler.Direction(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var res map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res["error"] == "" {
		t.Error("expected error field in response")
	}
}

func TestDirectionMethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/qibla?location=Paris", nil)
	rec := httptest.NewRecorder()
	handler.Direction(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if rec.Header().Get("Allow") != http.MethodGet {
		t.Errorf("Allow = %q, want GET", rec.Header().Get("Allow"))
	}
}

func TestTable(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/qibla/table?location=Paris", nil)
	rec := httptest.NewRecorder()
	handler.Table(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.CompassTableResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Entries) != 16 {
		t.Fatalf("entries = %d, want 16", len(res.Entries))
	}

	optimal := 0
	for i, e := range res.Entries {
		if e.Bearing != float64(i)*22.5 {
			t.Errorf("entry %d bearing = %v, want %v", i, e.Bearing, float64(i)*22.5)
		}
		if e.IsOptimalDirection {
			optimal++
		}
	}
	if optimal != 1 {
		t.Errorf("optimal entries = %d, want 1", optimal)
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"qibla-direction-service/internal/api/dto"
	"qibla-direction-service/internal/domain"
	"qibla-direction-service/internal/ports"
)

type QiblaHandler struct {
	Resolver   ports.CoordinateResolver
	Calculator ports.QiblaCalculator
}

// Direction resolves the location query parameter and returns the qibla
// bearing, cardinal direction and distance.
func (h *QiblaHandler) Direction(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.resolveLocation(w, r)
	if !ok {
		return
	}

	qibla := h.Calculator.CalculateQibla(loc)

	writeJSON(w, r, http.StatusOK, dto.QiblaResponse{
		Bearing:    qibla.Bearing,
		Direction:  qibla.Direction,
		DistanceKM: qibla.DistanceKM,
	})
}

// Table resolves the location query parameter and returns the full
// 16-entry compass table in heading order.
func (h *QiblaHandler) Table(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.resolveLocation(w, r)
	if !ok {
		return
	}

	table := h.Calculator.CalculateCompassTable(loc)

	entries := make([]dto.CompassEntryResponse, 0, len(table.Entries))
	for _, e := range table.Entries {
		entries = append(entries, dto.CompassEntryResponse{
			Direction:           e.Direction,
			Bearing:             e.Bearing,
			AngularDifference:   e.AngularDifference,
			ShortPathDistanceKM: e.ShortPathDistanceKM,
			LongPathDistanceKM:  e.LongPathDistanceKM,
			IsOptimalDirection:  e.IsOptimalDirection,
		})
	}

	writeJSON(w, r, http.StatusOK, dto.CompassTableResponse{
		Location: dto.LocationResponse{
			Latitude:  table.Location.Latitude,
			Longitude: table.Location.Longitude,
		},
		QiblaBearing:     table.QiblaBearing,
		DirectDistanceKM: table.DirectDistanceKM,
		Entries:          entries,
	})
}

// resolveLocation parses the location query parameter and maps resolver
// failures onto HTTP statuses. The boolean reports whether a location
// was produced; on false a response has already been written.
func (h *QiblaHandler) resolveLocation(w http.ResponseWriter, r *http.Request) (domain.Location, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return domain.Location{}, false
	}

	input := strings.TrimSpace(r.URL.Query().Get("location"))
	if input == "" {
		writeError(w, r, http.StatusBadRequest, "location query parameter is required")
		return domain.Location{}, false
	}

	loc, err := h.Resolver.Resolve(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrMalformedInput), errors.Is(err, ports.ErrOutOfRange):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, ports.ErrNotFound):
			writeError(w, r, http.StatusNotFound, err.Error())
		default:
			// Transport failure talking to the geocoder.
			log.Printf("resolve location failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "location resolution failed")
		}
		return domain.Location{}, false
	}

	return loc, true
}

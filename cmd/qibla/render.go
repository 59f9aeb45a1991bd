package main

import (
	"fmt"
	"sort"
	"strings"

	"qibla-direction-service/internal/api/dto"
	"qibla-direction-service/internal/domain"
)

// toQiblaDTO maps a domain result onto the wire representation shared
// with the HTTP API, so -json output matches the API's field names.
func toQiblaDTO(q domain.QiblaDirection) dto.QiblaResponse {
	return dto.QiblaResponse{
		Bearing:    q.Bearing,
		Direction:  q.Direction,
		DistanceKM: q.DistanceKM,
	}
}

func toTableDTO(t domain.CompassTable) dto.CompassTableResponse {
	entries := make([]dto.CompassEntryResponse, 0, len(t.Entries))
	for _, e := range t.Entries {
		entries = append(entries, dto.CompassEntryResponse{
			Direction:           e.Direction,
			Bearing:             e.Bearing,
			AngularDifference:   e.AngularDifference,
			ShortPathDistanceKM: e.ShortPathDistanceKM,
			LongPathDistanceKM:  e.LongPathDistanceKM,
			IsOptimalDirection:  e.IsOptimalDirection,
		})
	}

	return dto.CompassTableResponse{
		Location: dto.LocationResponse{
			Latitude:  t.Location.Latitude,
			Longitude: t.Location.Longitude,
		},
		QiblaBearing:     t.QiblaBearing,
		DirectDistanceKM: t.DirectDistanceKM,
		Entries:          entries,
	}
}

// displayTable prints the compass table with entries re-sorted by
// ascending short-path distance. Display order only; the table itself
// stays in heading order.
func displayTable(table domain.CompassTable) {
	fmt.Printf("Location: %.4f, %.4f\n", table.Location.Latitude, table.Location.Longitude)
	fmt.Printf("Qibla Direction: %.1f°\n", table.QiblaBearing)
	fmt.Printf("Direct Distance to Mecca: %.0f km\n", table.DirectDistanceKM)
	fmt.Println()
	fmt.Println("Compass Direction Table - Distances to Mecca via Each Direction")
	fmt.Println("================================================================")
	fmt.Printf("%-9s %-9s %-10s %-12s %-12s %-8s\n",
		"Direction", "Bearing", "Diff°", "Short Path", "Long Path", "Optimal")
	fmt.Println(strings.Repeat("-", 70))

	sorted := make([]domain.CompassEntry, len(table.Entries))
	copy(sorted, table.Entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ShortPathDistanceKM < sorted[j].ShortPathDistanceKM
	})

	for _, entry := range sorted {
		marker := ""
		if entry.IsOptimalDirection {
			marker = "*"
		}
		fmt.Printf("%-9s %-8.1f° %-9.1f° %-12.0f %-12.0f %-8s\n",
			entry.Direction,
			entry.Bearing,
			entry.AngularDifference,
			entry.ShortPathDistanceKM,
			entry.LongPathDistanceKM,
			marker,
		)
	}

	fmt.Println()
	fmt.Println("* = Closest compass direction to actual Qibla bearing")
	fmt.Println("Short Path = Distance if traveling in this direction (shorter route)")
	fmt.Println("Long Path = Distance if traveling opposite direction (around the world)")
}

package services

import (
	"math"

	"qibla-direction-service/internal/domain"
)

// Fixed reference point and sphere radius. The engine models Earth as a
// perfect sphere; no ellipsoid correction is applied.
const (
	kaabaLatitude  = 21.4225
	kaabaLongitude = 39.8262
	earthRadiusKM  = 6371.0
)

// The 16 compass headings in ascending order, 22.5° apart.
// Table entries and the optimal-direction tie-break follow this order.
var compassHeadings = []struct {
	direction string
	bearing   float64
}{
	{"N", 0},
	{"NNE", 22.5},
	{"NE", 45},
	{"ENE", 67.5},
	{"E", 90},
	{"ESE", 112.5},
	{"SE", 135},
	{"SSE", 157.5},
	{"S", 180},
	{"SSW", 202.5},
	{"SW", 225},
	{"WSW", 247.5},
	{"W", 270},
	{"WNW", 292.5},
	{"NW", 315},
	{"NNW", 337.5},
}

// Great-circle implementation of the qibla calculator.
//
// All methods are pure functions of their inputs plus the fixed
// constants above. The zero value is ready to use and safe for
// concurrent callers; there is deliberately no cache or shared state.
type GreatCircleCalculator struct{}

func NewGreatCircleCalculator() *GreatCircleCalculator {
	return &GreatCircleCalculator{}
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func toDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Fold an arbitrary bearing into [0, 360).
func normalizeBearing(bearing float64) float64 {
	normalized := math.Mod(bearing, 360)
	if normalized < 0 {
		normalized += 360
	}
	return normalized
}

// Classify a normalized bearing into one of the 8 cardinal labels.
// Sectors are 45° wide, half-open, centered on each cardinal; N wraps
// around zero and also serves as the fallback.
func bearingToDirection(bearing float64) string {
	switch {
	case bearing >= 337.5 || bearing < 22.5:
		return "N"
	case bearing >= 22.5 && bearing < 67.5:
		return "NE"
	case bearing >= 67.5 && bearing < 112.5:
		return "E"
	case bearing >= 112.5 && bearing < 157.5:
		return "SE"
	case bearing >= 157.5 && bearing < 202.5:
		return "S"
	case bearing >= 202.5 && bearing < 247.5:
		return "SW"
	case bearing >= 247.5 && bearing < 292.5:
		return "W"
	case bearing >= 292.5 && bearing < 337.5:
		return "NW"
	default:
		return "N"
	}
}

// Great-circle surface distance between two points via the haversine
// formula (half-angle sine form, numerically stable for small angles).
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lon1Rad := toRadians(lon1)
	lat2Rad := toRadians(lat2)
	lon2Rad := toRadians(lon2)

	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKM * c
}

// Minimal circular distance between two bearings, always in [0, 180].
func angularDifference(a, b float64) float64 {
	diff := math.Abs(a - b)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// CalculateQibla returns the initial bearing (forward azimuth), cardinal
// direction and haversine distance from loc to the Kaaba.
//
// The bearing is guaranteed to be in [0, 360). The distance is
// non-negative; for the Kaaba itself it lands just under a kilometer
// rather than exactly zero because of floating-point rounding.
func (g *GreatCircleCalculator) CalculateQibla(loc domain.Location) domain.QiblaDirection {
	lat1 := toRadians(loc.Latitude)
	lon1 := toRadians(loc.Longitude)
	lat2 := toRadians(kaabaLatitude)
	lon2 := toRadians(kaabaLongitude)

	deltaLon := lon2 - lon1

	y := math.Sin(deltaLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	bearing := normalizeBearing(toDegrees(math.Atan2(y, x)))

	distance := haversineDistance(
		loc.Latitude, loc.Longitude,
		kaabaLatitude, kaabaLongitude,
	)

	return domain.QiblaDirection{
		Bearing:    bearing,
		Direction:  bearingToDirection(bearing),
		DistanceKM: distance,
	}
}

// CalculateCompassTable expands the qibla bearing into one entry per
// compass heading, describing how far one would travel toward the Kaaba
// when holding that heading.
//
// The short-path figure is a deliberate approximation kept for
// compatibility: headings within 90° of the true bearing divide the
// direct distance by the cosine of the angular difference (cosine
// floored at 0.001 so near-perpendicular headings stay finite), headings
// past 90° take the long way around, and exactly perpendicular headings
// are charged the full circumference. It is not a rhumb-line distance.
func (g *GreatCircleCalculator) CalculateCompassTable(loc domain.Location) domain.CompassTable {
	qibla := g.CalculateQibla(loc)

	circumference := 2 * math.Pi * earthRadiusKM
	longDistance := circumference - qibla.DistanceKM

	// First pass: the optimal heading is the first in ascending order
	// with the minimal angular difference to the true bearing.
	optimalIndex := 0
	minDiff := math.MaxFloat64
	for i, heading := range compassHeadings {
		diff := angularDifference(heading.bearing, qibla.Bearing)
		if diff < minDiff {
			minDiff = diff
			optimalIndex = i
		}
	}

	entries := make([]domain.CompassEntry, 0, len(compassHeadings))
	for i, heading := range compassHeadings {
		diff := angularDifference(heading.bearing, qibla.Bearing)

		var shortDistance float64
		switch {
		case diff < 90:
			cos := math.Cos(toRadians(diff))
			shortDistance = qibla.DistanceKM / math.Max(cos, 0.001)
		case diff > 90:
			shortDistance = circumference - qibla.DistanceKM
		default:
			shortDistance = circumference
		}

		entries = append(entries, domain.CompassEntry{
			Direction:           heading.direction,
			Bearing:             heading.bearing,
			AngularDifference:   diff,
			ShortPathDistanceKM: shortDistance,
			LongPathDistanceKM:  longDistance,
			IsOptimalDirection:  i == optimalIndex,
		})
	}

	return domain.CompassTable{
		Location:         loc,
		QiblaBearing:     qibla.Bearing,
		DirectDistanceKM: qibla.DistanceKM,
		Entries:          entries,
	}
}

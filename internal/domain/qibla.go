package domain

// Bearing and great-circle distance from a location to the Kaaba.
// Direction is one of the 8 cardinal/intercardinal labels
// (N, NE, E, SE, S, SW, W, NW).
type QiblaDirection struct {
	Bearing    float64
	Direction  string
	DistanceKM float64
}

// One row of the 16-point compass table: how far a traveler would go
// toward the Kaaba when holding this fixed heading.
type CompassEntry struct {
	Direction           string
	Bearing             float64
	AngularDifference   float64
	ShortPathDistanceKM float64
	LongPathDistanceKM  float64
	IsOptimalDirection  bool
}

// Full 16-entry compass table for a location.
// Entries are ordered by heading, 0° through 337.5° in 22.5° steps.
// Exactly one entry has IsOptimalDirection set: the first entry in
// heading order whose angular difference to the true bearing is minimal.
type CompassTable struct {
	Location         Location
	QiblaBearing     float64
	DirectDistanceKM float64
	Entries          []CompassEntry
}

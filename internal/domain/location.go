package domain

// Immutable geographic point in decimal degrees.
// Latitude is constrained to [-90, 90] and longitude to [-180, 180]
// by the input-resolution boundary; the math packages assume it.
type Location struct {
	Latitude  float64
	Longitude float64
}

package dto

type QiblaResponse struct {
	Bearing    float64 `json:"bearing"`
	Direction  string  `json:"direction"`
	DistanceKM float64 `json:"distance_km"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CompassEntryResponse struct {
	Direction           string  `json:"direction"`
	Bearing             float64 `json:"bearing"`
	AngularDifference   float64 `json:"angular_difference"`
	ShortPathDistanceKM float64 `json:"short_path_distance_km"`
	LongPathDistanceKM  float64 `json:"long_path_distance_km"`
	IsOptimalDirection  bool    `json:"is_optimal_direction"`
}

type CompassTableResponse struct {
	Location         LocationResponse       `json:"location"`
	QiblaBearing     float64                `json:"qibla_bearing"`
	DirectDistanceKM float64                `json:"direct_distance_km"`
	Entries          []CompassEntryResponse `json:"entries"`
}

package geo

import "math"

// Continental bounding box used to mask out points that cannot belong to the
// dataset. Bounds are closed: a point exactly on an edge is inside.
const (
	BoundNorth = 37.5
	BoundSouth = 7.5
	BoundEast  = 98.0
	BoundWest  = 67.5
)

// ValidCoordinate reports whether (lat, lng) is a plausible measurement
// location. The (0, 0) origin is treated as a missing value, matching the
// source datasets.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// InIndiaBounds reports whether (lat, lng) lies inside the fixed continental
// rectangle. Callers are expected to run ValidCoordinate first.
func InIndiaBounds(lat, lng float64) bool {
	return lat >= BoundSouth && lat <= BoundNorth &&
		lng >= BoundWest && lng <= BoundEast
}

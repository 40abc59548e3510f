package stops

import "math"

// LatLong is a location on the globe.
//
// Latitude is expected in [-90, 90] and Longitude in [-180, 180]; neither
// range is enforced.
type LatLong struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the planar Euclidean distance to other, in degrees.
// It is not a great-circle distance.
func (l LatLong) Distance(other LatLong) float64 {
	dLat := l.Latitude - other.Latitude
	dLon := l.Longitude - other.Longitude
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

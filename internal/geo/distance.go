package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat" toml:"lat"`
	Lng float64 `json:"lng" toml:"lng"`
}

// Valid reports whether both components are finite numbers.
// Ranges are not checked: out-of-range values still produce a distance.
func (c Coordinates) Valid() bool {
	return isFinite(c.Lat) && isFinite(c.Lng)
}

// DistanceTo returns the Haversine distance in kilometers to another point
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	return Distance(c.Lat, c.Lng, other.Lat, other.Lng)
}

// Distance calculates the great-circle distance between two points using the
// Haversine formula, rounded to one decimal place
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(EarthRadiusKm*c*10) / 10
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

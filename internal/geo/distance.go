package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

const (
	EarthRadiusKm = 6371.0

	// CellPrecision gives cells of roughly 150m x 150m.
	CellPrecision = 7
)

// DistanceKm returns the great-circle distance between a and b using the
// haversine formula. Inputs are not validated; use CheckedDistanceKm for
// values that did not come from a trusted source.
func DistanceKm(a, b domain.Coordinate) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*sinLon*sinLon
	// rounding can push h a hair past 1 for antipodal points
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func CheckedDistanceKm(a, b domain.Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return DistanceKm(a, b), nil
}

// Cell returns the geohash cell containing c.
func Cell(c domain.Coordinate, precision uint) string {
	if precision == 0 {
		precision = CellPrecision
	}
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

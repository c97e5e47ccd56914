// Package geo holds coordinate math and the default location provider.
package geo

import (
	"fmt"
	"math"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b domain.Location) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLon := deg2rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// FormatDistance renders a marker-label distance, switching to meters below
// one kilometer.
func FormatDistance(km float64) string {
	if km < 1.0 {
		return fmt.Sprintf("%d m away", int(km*1000))
	}
	return fmt.Sprintf("%.1f km away", km)
}

package match

import (
	"math"

	"github.com/jmertens/haulsched/core/model"
)

// earthRadiusMiles is the mean Earth radius in statute miles.
const earthRadiusMiles = 3958.7613

// Distance returns the great-circle surface distance in miles between two
// coordinates, computed with the haversine formula on a mean-radius sphere.
func Distance(a, b model.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}

package geoindex

import (
	"math"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// EarthRadiusMeters - средний радиус Земли, используемый и для haversine, и для покрытия ячейками
const EarthRadiusMeters = 6371000.0

// Distance возвращает расстояние по большому кругу между точками в метрах (формула haversine)
func Distance(a, b models.Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if h > 1 {
		h = 1
	}
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

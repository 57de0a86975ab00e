package weather

import (
	"strings"

	"weather-api/pkg/util/numberutils"
)

const zipLength = 5

// BuildForecastQuery resolves a location into OpenWeatherMap query parameters:
// "lat,lon" coordinates, a 5 digit US ZIP code, or a free text city name.
func BuildForecastQuery(location string) map[string]string {
	if lat, lon, ok := strings.Cut(location, ","); ok && isCoordinate(lat, 90) && isCoordinate(lon, 180) {
		return map[string]string{"lat": lat, "lon": lon}
	}
	if len(location) == zipLength && numberutils.IsDigits(location) {
		return map[string]string{"zip": location + ",us"}
	}
	return map[string]string{"q": location}
}

// isCoordinate accepts a plain decimal like "-84.2" within [-limit, limit]
func isCoordinate(value string, limit float64) bool {
	integer, fraction, hasFraction := strings.Cut(strings.TrimPrefix(value, "-"), ".")
	if !numberutils.IsDigits(integer) || (hasFraction && !numberutils.IsDigits(fraction)) {
		return false
	}
	degrees, ok := numberutils.ToFloat64(value)
	return ok && numberutils.IsFloatInRange(degrees, -limit, limit)
}

package detect

import (
	"net/http"
	"net/url"
	"strconv"
)

// Geolocation headers injected by the hosting edge layer. Absent headers
// leave the corresponding fields nil.
const (
	HeaderGeoCountry   = "X-Vercel-IP-Country"
	HeaderGeoCity      = "X-Vercel-IP-City"
	HeaderGeoLatitude  = "X-Vercel-IP-Latitude"
	HeaderGeoLongitude = "X-Vercel-IP-Longitude"
)

// Geo holds best-effort coarse geolocation for a request
type Geo struct {
	Country   *string
	City      *string
	Latitude  *float64
	Longitude *float64
}

// GeoFromHeaders reads edge geolocation hints. Enrichment only: malformed
// values are dropped, never reported as an error.
func GeoFromHeaders(h http.Header) Geo {
	var g Geo

	if country := h.Get(HeaderGeoCountry); country != "" {
		g.Country = &country
	}

	if city := h.Get(HeaderGeoCity); city != "" {
		// The edge layer URL-encodes city names
		if decoded, err := url.QueryUnescape(city); err == nil {
			city = decoded
		}
		g.City = &city
	}

	if lat, ok := parseCoord(h.Get(HeaderGeoLatitude)); ok {
		g.Latitude = &lat
	}
	if lon, ok := parseCoord(h.Get(HeaderGeoLongitude)); ok {
		g.Longitude = &lon
	}

	return g
}

func parseCoord(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

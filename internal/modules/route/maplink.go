// README: Google Maps embed/search URL construction for a sequenced day.
package route

import (
	"net/url"
	"strings"

	"wayfarer/internal/modules/itinerary"
)

const (
	embedPlaceURL      = "https://www.google.com/maps/embed/v1/place"
	embedDirectionsURL = "https://www.google.com/maps/embed/v1/directions"
	searchURL          = "https://www.google.com/maps/search/"
)

// EmbedMapURL selects the map source for a day: with no sequenced stops a
// single-point map centered on the trip's city/country, with one stop a
// single-point map on that address, otherwise a directions map whose first
// stop is the origin, last is the destination, and the rest are ordered
// waypoints.
func EmbedMapURL(apiKey string, loc itinerary.Location, stops []Stop) string {
	switch len(stops) {
	case 0:
		return embedPlaceURL + "?key=" + url.QueryEscape(apiKey) +
			"&q=" + url.QueryEscape(loc.City+","+loc.Country)
	case 1:
		return embedPlaceURL + "?key=" + url.QueryEscape(apiKey) +
			"&q=" + url.QueryEscape(stops[0].Address)
	}

	u := embedDirectionsURL + "?key=" + url.QueryEscape(apiKey) +
		"&origin=" + url.QueryEscape(stops[0].Address) +
		"&destination=" + url.QueryEscape(stops[len(stops)-1].Address)
	if len(stops) > 2 {
		interior := make([]string, 0, len(stops)-2)
		for _, s := range stops[1 : len(stops)-1] {
			interior = append(interior, s.Address)
		}
		u += "&waypoints=" + url.QueryEscape(strings.Join(interior, "|"))
	}
	return u
}

// SearchMapURL builds an external per-stop link to Google Maps search.
func SearchMapURL(address string) string {
	return searchURL + "?api=1&query=" + url.QueryEscape(address)
}

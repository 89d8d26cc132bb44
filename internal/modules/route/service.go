// README: Day-route service; sequences stops and enriches them with driving estimates.
package route

import (
	"context"
	"log"
	"time"

	"wayfarer/internal/maps"
	"wayfarer/internal/modules/itinerary"
)

// Leg is the driving estimate between two consecutive stops.
type Leg struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Duration string `json:"duration"`
	Distance string `json:"distance"`
}

// DayRoute is everything a map renderer needs for one day.
type DayRoute struct {
	Day      int      `json:"day"`
	Stops    []Stop   `json:"stops"`
	MapURL   string   `json:"map_url"`
	StopURLs []string `json:"stop_urls"`
	Legs     []Leg    `json:"legs,omitempty"`
}

type Service struct {
	routes *maps.RouteService
	store  *Store
	apiKey string
}

// NewService wires the Directions client and the estimate cache. routes may
// be nil, in which case leg estimates are skipped and only the sequencing
// and map URLs are produced.
func NewService(routes *maps.RouteService, store *Store, apiKey string) *Service {
	return &Service{routes: routes, store: store, apiKey: apiKey}
}

// BuildDayRoute sequences one day and attaches the embed map URL, per-stop
// search links, and (best-effort) driving leg estimates. Estimate failures
// are logged and skipped; the route itself never fails.
func (s *Service) BuildDayRoute(ctx context.Context, loc itinerary.Location, day itinerary.DayPlan) DayRoute {
	stops := SequenceDay(day)

	dr := DayRoute{
		Day:    day.Day,
		Stops:  stops,
		MapURL: EmbedMapURL(s.apiKey, loc, stops),
	}
	for _, st := range stops {
		dr.StopURLs = append(dr.StopURLs, SearchMapURL(st.Address))
	}

	if s.routes == nil {
		return dr
	}
	for i := 0; i+1 < len(stops); i++ {
		origin, dest := stops[i].Address, stops[i+1].Address
		dur, dist, err := s.estimateLeg(ctx, origin, dest)
		if err != nil {
			log.Printf("leg estimate %q -> %q: %v", origin, dest, err)
			continue
		}
		dr.Legs = append(dr.Legs, Leg{
			From:     stops[i].Label,
			To:       stops[i+1].Label,
			Duration: dur.Round(time.Minute).String(),
			Distance: dist,
		})
	}
	return dr
}

func (s *Service) estimateLeg(ctx context.Context, origin, dest string) (time.Duration, string, error) {
	if dur, dist, ok := s.store.GetLeg(ctx, origin, dest); ok {
		return dur, dist, nil
	}
	dur, dist, err := s.routes.GetTravelEstimate(ctx, origin, dest)
	if err != nil {
		return 0, "", err
	}
	if err := s.store.SetLeg(ctx, origin, dest, dur, dist); err != nil {
		log.Printf("cache leg estimate: %v", err)
	}
	return dur, dist, nil
}

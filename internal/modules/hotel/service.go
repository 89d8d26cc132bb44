// README: Hotel suggestion service; one schema-constrained generation call per search.
package hotel

import (
	"context"
	"encoding/json"
	"fmt"

	"wayfarer/internal/ai"
)

// Hotel data is more factual than itinerary narrative, so sampling runs a
// little cooler.
const genTemperature = 0.7

type Service struct {
	gen ai.TextGenerator
}

func NewService(gen ai.TextGenerator) *Service {
	return &Service{gen: gen}
}

// Suggest requests 5-7 hotel recommendations within the nightly price band.
// The band is passed to the model verbatim and never enforced locally; an
// empty result list is a valid outcome, distinct from an error.
func (s *Service) Suggest(ctx context.Context, city, country, currency string, minPrice, maxPrice int) ([]Hotel, error) {
	prompt := fmt.Sprintf(`Suggest 5-7 hotels for a trip to %s, %s with a nightly price between %d and %d %s.
For each hotel, provide its name, a brief description, an estimated price per night in %s, and its full real-world address for mapping.`,
		city, country, minPrice, maxPrice, currency, currency)

	raw, err := s.gen.GenerateText(ctx, prompt, ai.GenConfig{
		Schema:      hotelListSchema,
		Temperature: genTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest hotels: %w", err)
	}

	var hotels []Hotel
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &hotels); err != nil {
		return nil, fmt.Errorf("suggest hotels: %w: %v", ai.ErrMalformedResponse, err)
	}
	return hotels, nil
}

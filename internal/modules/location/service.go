// README: Location plausibility gate; fail-open so oracle hiccups never block a trip.
package location

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wayfarer/internal/ai"
)

type Service struct {
	gen ai.TextGenerator
}

func NewService(gen ai.TextGenerator) *Service {
	return &Service{gen: gen}
}

// Validate asks the model a yes/no plausibility question about the four
// free-text location fields. With fewer than two non-empty fields there is
// not enough information to judge, so the gate passes without a call. Any
// oracle failure also passes: the itinerary generator downstream will
// surface a clearer error if the location truly cannot be planned.
func (s *Service) Validate(ctx context.Context, country, state, city, postalCode string) bool {
	filled := 0
	for _, f := range []string{country, state, city, postalCode} {
		if f != "" {
			filled++
		}
	}
	if filled < 2 {
		return true
	}

	prompt := fmt.Sprintf(`Given the following location details: Country: %q, State/Region: %q, City: %q, Area Pincode: %q. Do these details correspond to a valid, real-world geographical location where the city, state, and pincode all belong to the specified country? Please consider that State/Region and Pincode are optional and might be empty strings. If the combination is valid, respond with only the word "true". If it is invalid or nonsensical, respond with only the word "false".`,
		country, state, city, postalCode)

	reply, err := s.gen.GenerateText(ctx, prompt, ai.GenConfig{Temperature: 0})
	if err != nil {
		log.Printf("location validation unavailable, assuming valid: %v", err)
		return true
	}
	return strings.ToLower(strings.TrimSpace(reply)) == "true"
}

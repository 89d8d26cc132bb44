// README: Itinerary generation service; builds the prompt, parses the schema-constrained response.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wayfarer/internal/ai"
)

// Sampling for itinerary generation: high temperature for varied, creative
// plans; the schema keeps the structure valid.
const (
	genTemperature = 0.8
	genTopP        = 0.9
)

type Service struct {
	gen ai.TextGenerator
}

func NewService(gen ai.TextGenerator) *Service {
	return &Service{gen: gen}
}

// GenerateRequest carries the trip parameters. State and PostalCode may be
// empty; Interests is free text and optional.
type GenerateRequest struct {
	Country    string
	State      string
	City       string
	PostalCode string
	Budget     string
	Currency   string
	Days       int
	Interests  string
}

// Generate produces a multi-day plan for the requested trip. Any failure —
// oracle error, non-parsing response, shape violation — is returned as an
// error wrapping ai.ErrGenerationFailed or ai.ErrMalformedResponse; no
// partial plan is ever returned.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Plan, error) {
	prompt := buildPrompt(req)

	raw, err := s.gen.GenerateText(ctx, prompt, ai.GenConfig{
		Schema:      planSchema,
		Temperature: genTemperature,
		TopP:        genTopP,
	})
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	var plan Plan
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &plan); err != nil {
		return nil, fmt.Errorf("generate itinerary: %w: %v", ai.ErrMalformedResponse, err)
	}
	if err := checkShape(&plan); err != nil {
		return nil, fmt.Errorf("generate itinerary: %w: %v", ai.ErrMalformedResponse, err)
	}
	return &plan, nil
}

// buildPrompt embeds the joined location, day count, budget, and currency,
// plus the non-negotiable real-address instruction and the optional
// interests clause.
func buildPrompt(req GenerateRequest) string {
	location := JoinLocation(req.City, req.PostalCode, req.State, req.Country)

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed travel itinerary for a trip to %s for %d days with a budget of %s %s.\n",
		location, req.Days, req.Budget, req.Currency)
	b.WriteString("The itinerary should be well-structured, creative, and practical. " +
		"For every activity and dining location, you MUST provide a valid, real-world address suitable for use in Google Maps.")

	if req.Interests != "" {
		fmt.Fprintf(&b, "\nPlease tailor the itinerary to the user's preferences and interests: %s.", req.Interests)
	}

	fmt.Fprintf(&b, "\nFor each day, provide a theme, a summary, a list of activities (morning, afternoon, evening) with estimated costs in %s, and specific recommendations for lunch and dinner that fit the budget.\n", req.Currency)
	fmt.Fprintf(&b, "Ensure the total estimated cost aligns with the provided budget and is also in %s.", req.Currency)
	return b.String()
}

// JoinLocation joins the non-empty location fields with commas, in the fixed
// order city, postal code, state, country.
func JoinLocation(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// checkShape enforces the invariants JSON decoding alone cannot: at least
// one day, both dining slots populated per day.
func checkShape(plan *Plan) error {
	if plan.TripTitle == "" {
		return fmt.Errorf("missing tripTitle")
	}
	if len(plan.Days) == 0 {
		return fmt.Errorf("itinerary has no days")
	}
	for _, d := range plan.Days {
		if d.Dining.Lunch.Name == "" || d.Dining.Dinner.Name == "" {
			return fmt.Errorf("day %d is missing a dining slot", d.Day)
		}
	}
	return nil
}

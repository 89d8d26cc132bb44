// README: CLI demo; validates a location, generates a plan, and prints day 1's route.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"wayfarer/internal/ai"
	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/modules/location"
	"wayfarer/internal/modules/route"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_API_KEY environment variable not set")
	}

	ctx := context.Background()
	gemini, err := ai.NewGemini(ctx, apiKey)
	if err != nil {
		log.Fatalf("failed to initialize Gemini: %v", err)
	}
	defer gemini.Close()

	req := itinerary.GenerateRequest{
		Country:   "Japan",
		City:      "Tokyo",
		Budget:    "1500",
		Currency:  "USD",
		Days:      3,
		Interests: "street food, temples, night views",
	}

	validator := location.NewService(gemini)
	if !validator.Validate(ctx, req.Country, req.State, req.City, req.PostalCode) {
		log.Fatal("location rejected by the validation gate")
	}

	plan, err := itinerary.NewService(gemini).Generate(ctx, req)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	fmt.Printf("%s — %s\n", plan.TripTitle, plan.TotalEstimatedCost)
	for _, day := range plan.Days {
		fmt.Printf("\nDay %d: %s\n  %s\n", day.Day, day.Theme, day.Summary)
	}

	fmt.Println("\nDay 1 route:")
	for i, stop := range route.SequenceDay(plan.Days[0]) {
		fmt.Printf("  %d. %s — %s\n", i+1, stop.Label, stop.Address)
	}
}

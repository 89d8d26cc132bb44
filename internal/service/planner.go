// README: Trip planner orchestration: validation gate, generation, identity, persistence.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/modules/location"
)

// ErrImplausibleLocation is returned when the validation gate rejects the
// requested location before any itinerary generation is attempted.
var ErrImplausibleLocation = errors.New("the location details provided seem to be incorrect")

// Planner chains the location gate, the itinerary generator, and the saved
// store. The gate fails open, the generator fails closed.
type Planner struct {
	validator *location.Service
	generator *itinerary.Service
	store     *itinerary.Store
}

func NewPlanner(validator *location.Service, generator *itinerary.Service, store *itinerary.Store) *Planner {
	return &Planner{validator: validator, generator: generator, store: store}
}

// Plan validates the location, generates the itinerary, assigns its ID, and
// persists it. The generator's output has no identity; the ID is minted here
// and never mutated afterwards.
func (p *Planner) Plan(ctx context.Context, req itinerary.GenerateRequest) (*itinerary.Itinerary, error) {
	if !p.validator.Validate(ctx, req.Country, req.State, req.City, req.PostalCode) {
		return nil, ErrImplausibleLocation
	}

	plan, err := p.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	it := &itinerary.Itinerary{ID: uuid.NewString(), Plan: *plan}
	if err := p.store.Save(ctx, it); err != nil {
		return nil, fmt.Errorf("save itinerary: %w", err)
	}
	return it, nil
}

// README: Planner orchestration tests (gate policy around generation).
package service

import (
	"context"
	"errors"
	"testing"

	"wayfarer/internal/ai"
	"wayfarer/internal/modules/itinerary"
	"wayfarer/internal/modules/location"
)

// scriptedGenerator answers the validation prompt first, then the itinerary
// prompt, mirroring the caller flow.
type scriptedGenerator struct {
	replies []string
	errs    []error
	call    int
}

func (s *scriptedGenerator) GenerateText(_ context.Context, _ string, _ ai.GenConfig) (string, error) {
	i := s.call
	s.call++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var reply string
	if i < len(s.replies) {
		reply = s.replies[i]
	}
	return reply, err
}

func tripRequest() itinerary.GenerateRequest {
	return itinerary.GenerateRequest{
		Country: "Japan", City: "Tokyo",
		Budget: "1000", Currency: "USD", Days: 2,
	}
}

func TestPlan_GateRejectsBeforeGeneration(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"false"}}
	// Store stays nil: the gate must reject before generation or persistence.
	p := NewPlanner(location.NewService(gen), itinerary.NewService(gen), nil)

	it, err := p.Plan(context.Background(), tripRequest())
	if it != nil {
		t.Fatalf("expected no itinerary, got %+v", it)
	}
	if !errors.Is(err, ErrImplausibleLocation) {
		t.Fatalf("expected ErrImplausibleLocation, got %v", err)
	}
	if gen.call != 1 {
		t.Errorf("expected only the validation call, got %d", gen.call)
	}
}

func TestPlan_GeneratorFailureIsClosed(t *testing.T) {
	gen := &scriptedGenerator{
		replies: []string{"true", ""},
		errs:    []error{nil, errors.New("service unavailable")},
	}
	p := NewPlanner(location.NewService(gen), itinerary.NewService(gen), nil)

	it, err := p.Plan(context.Background(), tripRequest())
	if it != nil || err == nil {
		t.Fatalf("expected error and no itinerary, got %v, %+v", err, it)
	}
}

func TestPlan_ValidatorFailureIsOpen(t *testing.T) {
	// Validation call errors, generation then also errors: the gate must
	// not be the reason the plan fails.
	gen := &scriptedGenerator{
		replies: []string{"", ""},
		errs:    []error{errors.New("timeout"), errors.New("timeout")},
	}
	p := NewPlanner(location.NewService(gen), itinerary.NewService(gen), nil)

	_, err := p.Plan(context.Background(), tripRequest())
	if errors.Is(err, ErrImplausibleLocation) {
		t.Fatal("validator failure must fail open, not reject the location")
	}
	if gen.call != 2 {
		t.Errorf("expected validation and generation calls, got %d", gen.call)
	}
}

// README: Validator tests (scant-input short circuit, literal matching, fail-open).
package location

import (
	"context"
	"errors"
	"testing"

	"wayfarer/internal/ai"
)

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) GenerateText(_ context.Context, _ string, cfg ai.GenConfig) (string, error) {
	f.calls++
	if cfg.Temperature != 0 {
		return "", errors.New("validation must run at temperature 0")
	}
	return f.reply, f.err
}

func TestValidate_ScantInputSkipsOracle(t *testing.T) {
	tests := []struct {
		name                              string
		country, state, city, postalCode string
	}{
		{"all empty", "", "", "", ""},
		{"only country", "Japan", "", "", ""},
		{"only postal code", "", "", "", "100-0001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{reply: "false"}
			svc := NewService(gen)
			if !svc.Validate(context.Background(), tt.country, tt.state, tt.city, tt.postalCode) {
				t.Error("expected true for insufficient input")
			}
			if gen.calls != 0 {
				t.Errorf("expected no oracle call, got %d", gen.calls)
			}
		})
	}
}

func TestValidate_LiteralTrueOnly(t *testing.T) {
	tests := []struct {
		reply string
		want  bool
	}{
		{"true", true},
		{"  True \n", true},
		{"TRUE", true},
		{"false", false},
		{"true.", false},
		{"Yes, that is a valid location.", false},
		{"", false},
	}
	for _, tt := range tests {
		gen := &fakeGenerator{reply: tt.reply}
		svc := NewService(gen)
		got := svc.Validate(context.Background(), "Japan", "", "Tokyo", "")
		if got != tt.want {
			t.Errorf("Validate with reply %q = %v, want %v", tt.reply, got, tt.want)
		}
		if gen.calls != 1 {
			t.Errorf("expected exactly one oracle call, got %d", gen.calls)
		}
	}
}

func TestValidate_FailsOpenOnOracleError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("service unavailable")}
	svc := NewService(gen)
	if !svc.Validate(context.Background(), "Japan", "", "Tokyo", "") {
		t.Error("expected true when the oracle call fails")
	}
}

// README: Itinerary service tests (prompt construction and defensive parsing).
package itinerary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wayfarer/internal/ai"
)

// fakeGenerator is a test double for ai.TextGenerator recording the last call.
type fakeGenerator struct {
	reply string
	err   error

	calls      int
	lastPrompt string
	lastCfg    ai.GenConfig
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string, cfg ai.GenConfig) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastCfg = cfg
	return f.reply, f.err
}

const validPlanJSON = `{
	"tripTitle": "3-Day Tokyo Adventure",
	"totalEstimatedCost": "Approximately 950 EUR",
	"location": {"city": "Tokyo", "country": "Japan"},
	"days": [
		{
			"day": 1,
			"theme": "Old Tokyo",
			"summary": "Temples and markets.",
			"activities": [
				{"time": "Morning", "description": "Senso-ji Temple", "estimated_cost": "Free", "address": "2-3-1 Asakusa, Taito City, Tokyo"}
			],
			"dining": {
				"lunch": {"name": "Daikokuya", "description": "Tempura since 1887.", "address": "1-38-10 Asakusa, Taito City, Tokyo"},
				"dinner": {"name": "Gonpachi", "description": "Izakaya classics.", "address": "1-13-11 Nishi-Azabu, Minato City, Tokyo"}
			}
		}
	]
}`

func baseRequest() GenerateRequest {
	return GenerateRequest{
		Country:    "Japan",
		State:      "Tokyo Prefecture",
		City:       "Tokyo",
		PostalCode: "100-0001",
		Budget:     "1000",
		Currency:   "EUR",
		Days:       3,
	}
}

func TestGenerate_ParsesValidResponse(t *testing.T) {
	gen := &fakeGenerator{reply: validPlanJSON}
	svc := NewService(gen)

	plan, err := svc.Generate(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.TripTitle != "3-Day Tokyo Adventure" {
		t.Errorf("tripTitle = %q", plan.TripTitle)
	}
	if plan.Location.City != "Tokyo" || plan.Location.Country != "Japan" {
		t.Errorf("location = %+v", plan.Location)
	}
	if len(plan.Days) != 1 || plan.Days[0].Dining.Lunch.Name != "Daikokuya" {
		t.Errorf("days parsed wrong: %+v", plan.Days)
	}
}

func TestGenerate_StripsMarkdownFences(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n" + validPlanJSON + "\n```"}
	svc := NewService(gen)

	if _, err := svc.Generate(context.Background(), baseRequest()); err != nil {
		t.Fatalf("Generate with fenced JSON: %v", err)
	}
}

func TestGenerate_PromptContents(t *testing.T) {
	gen := &fakeGenerator{reply: validPlanJSON}
	svc := NewService(gen)

	req := baseRequest()
	req.Interests = "street food, museums"
	if _, err := svc.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Location parts joined in order city, postal code, state, country.
	if !strings.Contains(gen.lastPrompt, "Tokyo, 100-0001, Tokyo Prefecture, Japan") {
		t.Errorf("prompt missing joined location: %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "for 3 days with a budget of 1000 EUR") {
		t.Errorf("prompt missing trip parameters: %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "MUST provide a valid, real-world address") {
		t.Errorf("prompt missing address instruction: %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "street food, museums") {
		t.Errorf("prompt missing interests clause: %q", gen.lastPrompt)
	}

	if gen.lastCfg.Schema == nil {
		t.Error("expected a response schema")
	}
	if gen.lastCfg.Temperature != 0.8 || gen.lastCfg.TopP != 0.9 {
		t.Errorf("sampling = %+v", gen.lastCfg)
	}
}

func TestGenerate_EmptyOptionalFields(t *testing.T) {
	gen := &fakeGenerator{reply: validPlanJSON}
	svc := NewService(gen)

	req := baseRequest()
	req.State = ""
	req.PostalCode = ""
	req.Interests = ""
	if _, err := svc.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, "trip to Tokyo, Japan for") {
		t.Errorf("empty fields should be dropped from the join: %q", gen.lastPrompt)
	}
	if strings.Contains(gen.lastPrompt, "preferences and interests") {
		t.Errorf("interests clause present without interests: %q", gen.lastPrompt)
	}
}

func TestGenerate_OracleErrorFailsClosed(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("rpc error: unavailable")}
	svc := NewService(gen)

	plan, err := svc.Generate(context.Background(), baseRequest())
	if plan != nil {
		t.Fatalf("expected no plan on oracle error, got %+v", plan)
	}
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	for name, reply := range map[string]string{
		"not json":     "Sorry, I cannot help with that.",
		"empty":        "",
		"no days":      `{"tripTitle": "T", "totalEstimatedCost": "100 USD", "location": {"city": "X", "country": "Y"}, "days": []}`,
		"missing meal": `{"tripTitle": "T", "totalEstimatedCost": "100 USD", "location": {"city": "X", "country": "Y"}, "days": [{"day": 1, "theme": "t", "summary": "s", "activities": [], "dining": {"lunch": {"name": "", "description": "", "address": ""}, "dinner": {"name": "D", "description": "", "address": ""}}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewService(&fakeGenerator{reply: reply})
			plan, err := svc.Generate(context.Background(), baseRequest())
			if plan != nil {
				t.Fatalf("expected no plan, got %+v", plan)
			}
			if !errors.Is(err, ai.ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

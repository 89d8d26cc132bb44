package ai

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
)

// TextGenerator is the single seam to the generation service. Everything
// non-deterministic (network, model sampling) lives behind this interface so
// the planning pipeline can be tested against a fake.
type TextGenerator interface {
	// GenerateText sends one prompt and returns the raw response text.
	// When cfg.Schema is set the service is asked for JSON conforming to
	// that shape, but callers must still parse defensively.
	GenerateText(ctx context.Context, prompt string, cfg GenConfig) (string, error)
}

// GenConfig carries per-request sampling options.
type GenConfig struct {
	// Schema, when non-nil, constrains the response to a JSON shape.
	Schema *genai.Schema

	// Temperature is always set explicitly; 0 means deterministic.
	Temperature float32

	// TopP is applied only when > 0.
	TopP float32
}

var (
	// ErrGenerationFailed marks an oracle-level failure (transport, quota,
	// empty candidates). Wraps the underlying cause.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrMalformedResponse marks a response that came back but did not
	// parse as the expected structure.
	ErrMalformedResponse = errors.New("malformed generation response")
)

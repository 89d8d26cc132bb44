package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash"

// Gemini implements TextGenerator using Google's Gemini models.
type Gemini struct {
	client *genai.Client
}

// NewGemini initializes a Gemini client with the shared API key.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

// Close cleans up the underlying client resources.
func (g *Gemini) Close() {
	g.client.Close()
}

// GenerateText issues a single generation request. Sampling options are set
// per call because itinerary, hotel, and validation prompts each use
// different temperatures.
func (g *Gemini) GenerateText(ctx context.Context, prompt string, cfg GenConfig) (string, error) {
	model := g.client.GenerativeModel(geminiModel)
	model.SetTemperature(cfg.Temperature)
	if cfg.TopP > 0 {
		model.SetTopP(cfg.TopP)
	}
	if cfg.Schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = cfg.Schema
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no response candidates", ErrGenerationFailed)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	return text.String(), nil
}

// CleanJSON strips markdown code fences the model occasionally wraps around
// JSON output despite the response MIME type.
func CleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

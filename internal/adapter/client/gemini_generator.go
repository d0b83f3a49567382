package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/service"
)

// GeminiGenerator is a hosted alternative to the local model runtime
// for the generation stages. Selected via the generation.backend
// config key when the runtime has no generation models available.
type GeminiGenerator struct {
	apiKey string
	model  string
}

// NewGeminiGenerator creates a Gemini-backed text generator
func NewGeminiGenerator(apiKey, model string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}
	return &GeminiGenerator{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
	}, nil
}

// Generate sends the prompt to Gemini. Beam-search parameters have no
// hosted equivalent; MaxLength maps to the output token budget and
// temperature is pinned to zero to keep decoding deterministic.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, params service.GenerationParams) (string, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrInference, err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.model)
	temperature := float32(0)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: &temperature,
	}
	if params.MaxLength > 0 {
		maxTokens := int32(params.MaxLength)
		m.GenerationConfig.MaxOutputTokens = &maxTokens
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrInference, err)
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty gemini response", service.ErrInference)
	}
	return text, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

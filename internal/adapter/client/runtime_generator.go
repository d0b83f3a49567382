package client

import (
	"context"
	"fmt"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/service"
)

// RuntimeGenerator adapts RuntimeClient to the TextGenerator interface
// for a single loaded generation model
type RuntimeGenerator struct {
	client *RuntimeClient
	model  string
}

// NewRuntimeGenerator creates a generator bound to a loaded model
func NewRuntimeGenerator(c *RuntimeClient, model string) service.TextGenerator {
	return &RuntimeGenerator{client: c, model: model}
}

// Generate runs the generation model and returns the decoded text
func (g *RuntimeGenerator) Generate(ctx context.Context, prompt string, params service.GenerationParams) (string, error) {
	resp, err := g.client.Generate(ctx, g.model, prompt, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrInference, err)
	}
	if !resp.Success {
		return "", fmt.Errorf("%w: runtime reported generation failure", service.ErrInference)
	}
	return resp.Text, nil
}

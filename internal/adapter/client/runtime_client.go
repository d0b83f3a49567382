package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/service"
)

// LoadModelRequest asks the model runtime to load a pretrained model
type LoadModelRequest struct {
	Model  string `json:"model"`
	Device string `json:"device"`
}

// LoadModelResponse describes a loaded model. Labels is populated for
// classification models (the id2label table).
type LoadModelResponse struct {
	Success bool     `json:"success"`
	Model   string   `json:"model"`
	Version string   `json:"version"`
	Labels  []string `json:"labels,omitempty"`
}

// ForwardRequest carries a normalized pixel tensor for a forward pass
type ForwardRequest struct {
	Model  string    `json:"model"`
	Pixels []float32 `json:"pixels"`
	Size   int       `json:"size"`
}

// ForwardResponse carries the raw class logits
type ForwardResponse struct {
	Success bool      `json:"success"`
	Logits  []float64 `json:"logits"`
}

// GenerateRequest carries a prompt and decoding parameters
type GenerateRequest struct {
	Model  string                   `json:"model"`
	Prompt string                   `json:"prompt"`
	Params service.GenerationParams `json:"params"`
}

// GenerateResponse carries the decoded generation output
type GenerateResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

// HealthResponse represents the runtime health check response
type HealthResponse struct {
	Status       string   `json:"status"`
	LoadedModels []string `json:"loaded_models"`
}

// RuntimeClient is an HTTP client for the model runtime sidecar, which
// hosts the vision classifier and the two sequence-generation models.
type RuntimeClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRuntimeClient creates a new model runtime client
func NewRuntimeClient(baseURL string, timeout time.Duration) *RuntimeClient {
	return &RuntimeClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// LoadModel instructs the runtime to fetch and instantiate a model on
// the configured device. The call is idempotent on the runtime side.
func (c *RuntimeClient) LoadModel(ctx context.Context, model, device string) (*LoadModelResponse, error) {
	var result LoadModelResponse
	if err := c.post(ctx, "/models/load", LoadModelRequest{Model: model, Device: device}, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("runtime refused to load model %s", model)
	}
	return &result, nil
}

// Forward runs the vision model forward pass over a pixel tensor and
// returns the class logits
func (c *RuntimeClient) Forward(ctx context.Context, model string, pixels []float32, size int) (*ForwardResponse, error) {
	var result ForwardResponse
	if err := c.post(ctx, "/forward", ForwardRequest{Model: model, Pixels: pixels, Size: size}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Generate runs a sequence-generation model against a prompt
func (c *RuntimeClient) Generate(ctx context.Context, model, prompt string, params service.GenerationParams) (*GenerateResponse, error) {
	var result GenerateResponse
	if err := c.post(ctx, "/generate", GenerateRequest{Model: model, Prompt: prompt, Params: params}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health checks the model runtime health
func (c *RuntimeClient) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model runtime returned status %d", resp.StatusCode)
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Ready checks if the model runtime is ready
func (c *RuntimeClient) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ready", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model runtime not ready: status %d", resp.StatusCode)
	}

	return nil
}

func (c *RuntimeClient) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("model runtime returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("model runtime returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/service"
)

func TestRuntimeClient_LoadModel(t *testing.T) {
	t.Run("successful load returns labels", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/load", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req LoadModelRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "agriclip-plantvillage-15k", req.Model)
			assert.Equal(t, "cpu", req.Device)

			resp := LoadModelResponse{
				Success: true,
				Model:   "agriclip-plantvillage-15k",
				Version: "v2.0.0",
				Labels:  []string{"healthy", "Tomato___Late_blight"},
			}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewRuntimeClient(server.URL, 5*time.Second)
		result, err := client.LoadModel(context.Background(), "agriclip-plantvillage-15k", "cpu")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "v2.0.0", result.Version)
		assert.Len(t, result.Labels, 2)
	})

	t.Run("refused load is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(LoadModelResponse{Success: false})
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewRuntimeClient(server.URL, 5*time.Second)
		_, err := client.LoadModel(context.Background(), "missing-model", "cpu")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "refused")
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("internal error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewRuntimeClient(server.URL, 5*time.Second)
		_, err := client.LoadModel(context.Background(), "m", "cpu")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewRuntimeClient("http://localhost:1", 1*time.Second)
		_, err := client.LoadModel(context.Background(), "m", "cpu")

		assert.Error(t, err)
	})
}

func TestRuntimeClient_Forward(t *testing.T) {
	t.Run("returns logits", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/forward", r.URL.Path)

			var req ForwardRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "vision", req.Model)
			assert.Equal(t, 2, req.Size)
			assert.Len(t, req.Pixels, 12)

			resp := ForwardResponse{Success: true, Logits: []float64{0.1, 2.5, -1.0}}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewRuntimeClient(server.URL, 5*time.Second)
		result, err := client.Forward(context.Background(), "vision", make([]float32, 12), 2)

		require.NoError(t, err)
		assert.Equal(t, []float64{0.1, 2.5, -1.0}, result.Logits)
	})
}

func TestRuntimeClient_Generate(t *testing.T) {
	t.Run("passes decoding parameters through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/generate", r.URL.Path)

			var req GenerateRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "t5-plant-disease-detector-v2", req.Model)
			assert.Equal(t, 4, req.Params.NumBeams)
			assert.Equal(t, 256, req.Params.MaxLength)
			assert.True(t, req.Params.SkipSpecialToks)

			resp := GenerateResponse{Success: true, Text: "generated report"}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewRuntimeClient(server.URL, 5*time.Second)
		params := service.GenerationParams{MaxLength: 256, NumBeams: 4, SkipSpecialToks: true}
		result, err := client.Generate(context.Background(), "t5-plant-disease-detector-v2", "prompt", params)

		require.NoError(t, err)
		assert.Equal(t, "generated report", result.Text)
	})
}

func TestRuntimeClient_Health(t *testing.T) {
	t.Run("healthy runtime", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(HealthResponse{Status: "ok", LoadedModels: []string{"vision"}})
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewRuntimeClient(server.URL, 5*time.Second)
		result, err := client.Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "ok", result.Status)
		assert.Contains(t, result.LoadedModels, "vision")
	})

	t.Run("unhealthy runtime", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewRuntimeClient(server.URL, 5*time.Second)
		_, err := client.Health(context.Background())

		assert.Error(t, err)
	})
}

func TestRuntimeClient_Ready(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ready", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewRuntimeClient(server.URL, 5*time.Second)
		assert.NoError(t, client.Ready(context.Background()))
	})

	t.Run("not ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewRuntimeClient(server.URL, 5*time.Second)
		assert.Error(t, client.Ready(context.Background()))
	})
}

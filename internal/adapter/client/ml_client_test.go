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
)

func TestMLClient_Classify(t *testing.T) {
	t.Run("successful classification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/classify", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req ClassifyRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "I love this product!", req.Text)
			assert.Equal(t, "req-123", req.RequestID)

			resp := ClassifyResponse{
				Success: true,
				Result: ClassificationResult{
					Text:   "I love this product!",
					Label:  "POSITIVE",
					Scores: LabelScores{Positive: 0.9973, Negative: 0.0027},
				},
				ModelVersion: "distilbert-sst2-v1",
				RequestID:    "req-123",
			}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		result, err := client.Classify(context.Background(), "I love this product!", "req-123")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "POSITIVE", result.Result.Label)
		assert.Equal(t, 0.9973, result.Result.Scores.Positive)
		assert.Equal(t, 0.0027, result.Result.Scores.Negative)
		assert.Equal(t, "distilbert-sst2-v1", result.ModelVersion)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("inference error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		result, err := client.Classify(context.Background(), "some text", "req-456")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte("not json"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		result, err := client.Classify(context.Background(), "some text", "")

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("unreachable service", func(t *testing.T) {
		client := NewMLClient("http://127.0.0.1:1", 500*time.Millisecond)
		result, err := client.Classify(context.Background(), "some text", "")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestMLClient_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)

			resp := HealthResponse{
				Status:       "ok",
				ModelLoaded:  true,
				ModelVersion: "distilbert-sst2-v1",
			}
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		health, err := client.Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "ok", health.Status)
		assert.True(t, health.ModelLoaded)
		assert.Equal(t, "distilbert-sst2-v1", health.ModelVersion)
	})

	t.Run("unhealthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		health, err := client.Health(context.Background())

		assert.Error(t, err)
		assert.Nil(t, health)
	})
}

func TestMLClient_Ready(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ready", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		assert.NoError(t, client.Ready(context.Background()))
	})

	t.Run("not ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		err := client.Ready(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not ready")
	})
}

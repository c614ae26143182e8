package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"whatwashere/config"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	"whatwashere/internal/infra/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path   string
	apiKey string
	prompt string
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, captured capturedRequest)) (*Client, *[]capturedRequest) {
	t.Helper()

	var requests []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		captured := capturedRequest{path: r.URL.Path, apiKey: r.URL.Query().Get("key")}
		if len(body.Contents) > 0 && len(body.Contents[0].Parts) > 0 {
			captured.prompt = body.Contents[0].Parts[0].Text
		}
		requests = append(requests, captured)
		handler(w, captured)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	guard := gateway.NewGuard(gateway.Settings{Name: "gemini", Timeout: 2 * time.Second}, logger)

	client, err := NewClient(context.Background(), &config.GeminiConfig{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash",
		Endpoint: srv.URL + "/",
	}, guard, logger)
	require.NoError(t, err)

	return client, &requests
}

func writeCandidate(w http.ResponseWriter, parts ...string) {
	type part struct {
		Text string `json:"text"`
	}
	ps := make([]part, 0, len(parts))
	for _, p := range parts {
		ps = append(ps, part{Text: p})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"role": "model", "parts": ps}},
		},
	})
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), &config.GeminiConfig{}, nil, slog.Default())
	assert.Error(t, err)
}

func TestClient_ExpandStory(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeCandidate(w, "The Stud opened in 1966. ", "It became a home for generations.")
	})

	text, err := client.ExpandStory(context.Background(), service.ExpandStoryRequest{
		Name:        "The Stud",
		City:        "San Francisco",
		Years:       "1966–2019",
		Reason:      "Closed after rising rents",
		Communities: []string{"Queer", "Leather"},
		Story:       "  A beloved queer bar.  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "The Stud opened in 1966. It became a home for generations.", text)
	require.Len(t, *requests, 1)

	got := (*requests)[0]
	assert.Equal(t, "/v1/publishers/google/models/gemini-2.5-flash:generateContent", got.path)
	assert.Equal(t, "test-key", got.apiKey)
	assert.Contains(t, got.prompt, "Place: The Stud, San Francisco")
	assert.Contains(t, got.prompt, "Communities: Queer, Leather")
	assert.Contains(t, got.prompt, "Short story to expand:\nA beloved queer bar.\n")
}

func TestClient_ExpandStory_EmptyStorySkipsUpstream(t *testing.T) {
	client, requests := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		writeCandidate(w, "unused")
	})

	text, err := client.ExpandStory(context.Background(), service.ExpandStoryRequest{Name: "x", Story: "   "})

	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Empty(t, *requests)
}

func TestClient_UpstreamErrorCarriesStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.Copy(w, strings.NewReader(`{"error":{"code":429,"message":"quota"}}`))
	})

	_, err := client.SummarizeStory(context.Background(), "A long story.")

	var upstream *service.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
}

func TestClient_NoCandidatesYieldsEmptyText(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	text, err := client.SummarizeStory(context.Background(), "A long story.")

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestModelName(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{model: "gemini-2.5-flash", want: "publishers/google/models/gemini-2.5-flash"},
		{model: "publishers/google/models/gemini-2.0-flash", want: "publishers/google/models/gemini-2.0-flash"},
		{
			model: "projects/p/locations/us-central1/publishers/google/models/gemini-2.5-flash",
			want:  "projects/p/locations/us-central1/publishers/google/models/gemini-2.5-flash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, modelName(tt.model))
		})
	}
}

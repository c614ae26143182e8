// Package elevenlabs synthesizes narration audio with the ElevenLabs API.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"whatwashere/config"
	"whatwashere/internal/domain/constants"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	"whatwashere/internal/infra/gateway"
)

const (
	providerName = "elevenlabs"
	// Largest error body kept for diagnostics.
	maxErrorBody = 4 << 10
)

type client struct {
	endpoint   string
	apiKey     string
	voiceID    string
	modelID    string
	httpClient *http.Client
	guard      *gateway.Guard
	logger     *slog.Logger
}

type ttsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id,omitempty"`
}

// NewClient creates a text-to-speech client. An empty API key is rejected.
func NewClient(cfg *config.ElevenLabsConfig, guard *gateway.Guard, logger *slog.Logger) (service.SpeechSynthesizer, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("elevenlabs api key is not configured")
	}

	return &client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		voiceID:    cfg.VoiceID,
		modelID:    cfg.ModelID,
		httpClient: &http.Client{},
		guard:      guard,
		logger:     logger.With(slog.String("provider", providerName)),
	}, nil
}

// Synthesize converts text to MPEG audio.
func (c *client) Synthesize(ctx context.Context, text string) (*service.SynthesizedSpeech, error) {
	body, err := json.Marshal(ttsRequest{Text: text, ModelID: c.modelID})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gateway.Do(ctx, c.guard, func(ctx context.Context) (*service.SynthesizedSpeech, error) {
		endpoint := c.endpoint + "/v1/text-to-speech/" + url.PathEscape(c.voiceID)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", constants.AudioContentType)
		req.Header.Set("xi-api-key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "elevenlabs request")
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			c.logger.WarnContext(ctx, "Text-to-speech request failed",
				slog.Int("status", resp.StatusCode),
				slog.String("body", string(detail)),
			)

			return nil, &service.UpstreamError{Provider: providerName, Status: resp.StatusCode, Body: string(detail)}
		}

		audio, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "read elevenlabs audio")
		}

		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = constants.AudioContentType
		}

		return &service.SynthesizedSpeech{ContentType: contentType, Audio: audio}, nil
	})
}

// Package apiclient is the shell's view of the backing service.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"whatwashere/config"
	"whatwashere/internal/domain/constants"
	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
)

const providerName = "whatwashere-api"

// Client implements StoryExpander and Narrator against the backing service.
type Client struct {
	baseURL    string
	audioDir   string
	httpClient *http.Client
	logger     *slog.Logger
}

type textPayload struct {
	Text string `json:"text"`
}

// NewClient creates a client for the configured server. Deadlines come from
// the caller's context.
func NewClient(cfg *config.ClientConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.ServerURL, "/"),
		audioDir:   cfg.AudioDir,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// ExpandStory implements service.StoryExpander.
func (c *Client) ExpandStory(ctx context.Context, req service.ExpandStoryRequest) (string, error) {
	resp, err := c.post(ctx, "/api/expand-story", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out textPayload
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decode expand-story response")
	}

	return strings.TrimSpace(out.Text), nil
}

// ErrEmptyAudio is returned when the service answers narrate with no audio.
var ErrEmptyAudio = errors.New("narration response carried no audio")

// Narrate implements service.Narrator. The audio is written to a transient
// file owned by the returned clip.
func (c *Client) Narrate(ctx context.Context, placeID, text string) (*entity.AudioClip, error) {
	resp, err := c.post(ctx, "/api/narrate", textPayload{Text: text})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	f, err := os.CreateTemp(c.audioDir, "narration-*.mp3")
	if err != nil {
		return nil, errors.Wrap(err, "create narration file")
	}

	size, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(f.Name())

		return nil, errors.Wrap(err, "write narration audio")
	}

	if size == 0 {
		_ = os.Remove(f.Name())

		return nil, errors.WithStack(ErrEmptyAudio)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = constants.AudioContentType
	}

	c.logger.DebugContext(ctx, "Narration received",
		slog.String("place_id", placeID),
		slog.Int64("bytes", size),
	)

	return &entity.AudioClip{
		PlaceID:     placeID,
		Text:        text,
		ContentType: contentType,
		Path:        f.Name(),
		Size:        size,
	}, nil
}

// post sends body as JSON and returns the response when it is 2xx.
func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		_ = resp.Body.Close()

		return nil, &service.UpstreamError{Provider: providerName, Status: resp.StatusCode, Body: string(detail)}
	}

	return resp, nil
}

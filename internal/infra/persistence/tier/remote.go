// Package tier provides the places the photo memory document can be kept
// by the shell, and the ordered fallback between them.
package tier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/repository"
	"whatwashere/internal/errors"
)

const memoriesPath = "/api/memories"

// ErrUnexpectedStatus is returned when the backing service answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status from memory service")

type remoteTier struct {
	url        string
	httpClient *http.Client
}

// NewRemoteTier keeps the document on the backing service.
func NewRemoteTier(serverURL string, timeout time.Duration) repository.MemoryTier {
	return &remoteTier{
		url:        strings.TrimRight(serverURL, "/") + memoriesPath,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (t *remoteTier) Name() string {
	return "remote"
}

func (t *remoteTier) Load(ctx context.Context) (entity.MemoryMap, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "get memories")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "GET %s: %d", memoriesPath, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read memories")
	}

	return entity.DecodeMemoryMap(data)
}

func (t *remoteTier) Save(ctx context.Context, memories entity.MemoryMap) error {
	body, err := json.Marshal(memories)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "post memories")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Wrapf(ErrUnexpectedStatus, "POST %s: %d", memoriesPath, resp.StatusCode)
	}

	return nil
}

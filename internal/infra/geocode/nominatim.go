// Package geocode resolves addresses with OpenStreetMap Nominatim.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"whatwashere/config"
	"whatwashere/internal/domain/entity"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	"whatwashere/internal/infra/gateway"
)

const providerName = "nominatim"

type nominatimClient struct {
	endpoint   string
	userAgent  string
	language   string
	httpClient *http.Client
	guard      *gateway.Guard
	logger     *slog.Logger
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimClient creates a forward geocoder.
func NewNominatimClient(cfg *config.GeocoderConfig, guard *gateway.Guard, logger *slog.Logger) service.Geocoder {
	return &nominatimClient{
		endpoint:   cfg.Endpoint,
		userAgent:  cfg.UserAgent,
		language:   cfg.Language,
		httpClient: &http.Client{},
		guard:      guard,
		logger:     logger.With(slog.String("provider", providerName)),
	}
}

// Expected marks lookups that found nothing so they do not trip a breaker.
func Expected(err error) bool {
	return errors.Is(err, service.ErrNoMatch)
}

// Geocode returns the first Nominatim match for address.
func (c *nominatimClient) Geocode(ctx context.Context, address string) (*entity.GeocodeResult, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, service.ErrNoMatch
	}

	return gateway.Do(ctx, c.guard, func(ctx context.Context) (*entity.GeocodeResult, error) {
		return c.search(ctx, trimmed)
	})
}

func (c *nominatimClient) search(ctx context.Context, address string) (*entity.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept-Language", c.language)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "nominatim request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &service.UpstreamError{Provider: providerName, Status: resp.StatusCode}
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "decode nominatim response")
	}
	if len(results) == 0 {
		c.logger.DebugContext(ctx, "No geocoding match", slog.String("address", address))

		return nil, service.ErrNoMatch
	}

	first := results[0]
	lat, latErr := strconv.ParseFloat(first.Lat, 64)
	lng, lngErr := strconv.ParseFloat(first.Lon, 64)
	if latErr != nil || lngErr != nil || !isFinite(lat) || !isFinite(lng) {
		return nil, service.ErrNoMatch
	}

	fullAddress := first.DisplayName
	if fullAddress == "" {
		fullAddress = address
	}

	return &entity.GeocodeResult{
		Latitude:    lat,
		Longitude:   lng,
		FullAddress: fullAddress,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

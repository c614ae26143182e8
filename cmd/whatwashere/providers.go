package main

import (
	"context"
	"log/slog"

	"whatwashere/config"
	"whatwashere/internal/domain/repository"
	"whatwashere/internal/domain/service"
	"whatwashere/internal/errors"
	"whatwashere/internal/infra/elevenlabs"
	"whatwashere/internal/infra/gateway"
	"whatwashere/internal/infra/gemini"
	"whatwashere/internal/infra/geocode"
	"whatwashere/internal/infra/persistence/blobdoc"
	"whatwashere/internal/infra/persistence/device"
	"whatwashere/internal/infra/qrcode"

	"go.uber.org/fx"
	"gocloud.dev/blob"
)

func guardSettings(cfg *config.Config, name string) gateway.Settings {
	return gateway.Settings{
		Name:            name,
		Timeout:         cfg.Gateway.Timeout,
		BreakerFailures: cfg.Gateway.BreakerFailures,
		BreakerCooldown: cfg.Gateway.BreakerCooldown,
	}
}

// newBucket opens the bucket holding the memories document
func newBucket(ctx context.Context, lc fx.Lifecycle, cfg *config.Config) (*blob.Bucket, error) {
	bucket, err := blobdoc.OpenBucket(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

// newDeviceStorage opens the SQLite store backing user places
func newDeviceStorage(lc fx.Lifecycle, cfg *config.Config) (repository.DeviceStorage, error) {
	storage, err := device.NewSQLiteStorage(cfg.Storage.DevicePath, cfg.Storage.DeviceQuotaBytes)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

func newMemoryDocumentRepository(bucket *blob.Bucket, cfg *config.Config, logger *slog.Logger) repository.MemoryDocumentRepository {
	return blobdoc.NewMemoryDocumentRepository(bucket, cfg.Storage.MemoriesKey, logger)
}

func newUserPlaceRepository(storage repository.DeviceStorage) repository.UserPlaceRepository {
	return device.NewUserPlaceRepository(storage)
}

// newGeminiClient returns nil when no API key is configured; story
// endpoints then answer with the original text.
func newGeminiClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gemini.Client, error) {
	if cfg.Gemini.APIKey == "" {
		logger.Warn("Gemini API key not configured, stories will not be expanded")

		return nil, nil
	}

	settings := guardSettings(cfg, "gemini")
	settings.MinInterval = cfg.Gemini.MinInterval

	return gemini.NewClient(ctx, cfg.Gemini, gateway.NewGuard(settings, logger), logger)
}

func newStoryExpander(client *gemini.Client) service.StoryExpander {
	if client == nil {
		return nil
	}

	return client
}

func newStorySummarizer(client *gemini.Client) service.StorySummarizer {
	if client == nil {
		return nil
	}

	return client
}

// newSpeechSynthesizer returns nil when no API key is configured; narration
// then answers 503.
func newSpeechSynthesizer(cfg *config.Config, logger *slog.Logger) (service.SpeechSynthesizer, error) {
	if cfg.ElevenLabs.APIKey == "" {
		logger.Warn("ElevenLabs API key not configured, narration disabled")

		return nil, nil
	}

	return elevenlabs.NewClient(cfg.ElevenLabs, gateway.NewGuard(guardSettings(cfg, "elevenlabs"), logger), logger)
}

func newGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	settings := guardSettings(cfg, "nominatim")
	settings.MinInterval = cfg.Geocoder.MinInterval
	settings.Expected = geocode.Expected

	return geocode.NewNominatimClient(cfg.Geocoder, gateway.NewGuard(settings, logger), logger)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

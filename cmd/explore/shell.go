package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"whatwashere/config"
	"whatwashere/internal/infra/apiclient"
	"whatwashere/internal/infra/gateway"
	"whatwashere/internal/infra/geocode"
	logs "whatwashere/internal/infra/log"
	"whatwashere/internal/infra/persistence/device"
	"whatwashere/internal/infra/persistence/tier"
	"whatwashere/internal/infra/seed"
	"whatwashere/internal/usecase"
	"whatwashere/internal/usecase/impl"
	"whatwashere/internal/validator"
)

// shell is the terminal presentation of the map and panel.
type shell struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	status io.Writer

	storage   *device.SQLiteStorage
	catalog   usecase.CatalogUsecase
	memories  usecase.MemoryUsecase
	selection *impl.SelectionController
}

func newShell(ctx context.Context, out io.Writer) (*shell, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	places, err := seed.Places()
	if err != nil {
		return nil, err
	}

	storage, err := device.NewSQLiteStorage(cfg.Storage.DevicePath, cfg.Storage.DeviceQuotaBytes)
	if err != nil {
		return nil, err
	}

	validate := validator.New()

	geocoderSettings := gateway.Settings{
		Name:            "nominatim",
		Timeout:         cfg.Gateway.Timeout,
		MinInterval:     cfg.Geocoder.MinInterval,
		BreakerFailures: cfg.Gateway.BreakerFailures,
		BreakerCooldown: cfg.Gateway.BreakerCooldown,
		Expected:        geocode.Expected,
	}
	geocoder := geocode.NewNominatimClient(cfg.Geocoder, gateway.NewGuard(geocoderSettings, logger), logger)

	memoryTiers := tier.NewChain(logger,
		tier.NewRemoteTier(cfg.Client.ServerURL, cfg.Gateway.Timeout),
		tier.NewDeviceTier(storage),
	)

	api := apiclient.NewClient(cfg.Client, logger)

	sh := &shell{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		status:   os.Stderr,
		storage:  storage,
		catalog:  impl.NewCatalogService(places, device.NewUserPlaceRepository(storage), geocoder, validate, logger),
		memories: impl.NewMemoryService(memoryTiers, device.NewQuoteRepository(storage), validate, logger),
	}
	sh.selection = impl.NewSelectionController(api, api, cfg.Gateway.Timeout, logger, impl.WithOnChange(sh.render))

	logger.DebugContext(ctx, "Shell ready",
		slog.String("server", cfg.Client.ServerURL),
		slog.String("device_store", cfg.Storage.DevicePath),
	)

	return sh, nil
}

// render reports selection progress on the status stream.
func (s *shell) render(snap usecase.SelectionSnapshot) {
	if snap.Place == nil {
		return
	}
	fmt.Fprintf(s.status, "[%s] story: %s, narration: %s\n", snap.Place.ID, snap.Expansion, snap.Narration)
}

// Close deselects, which releases any narration audio, then closes the store.
func (s *shell) Close() {
	s.selection.Close()
	if err := s.storage.Close(); err != nil {
		s.logger.Warn("Failed to close device store", slog.Any("error", err))
	}
}

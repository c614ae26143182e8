package main

import (
	"context"
	"log/slog"
	"os"

	"whatwashere/config"
	"whatwashere/internal/delivery"
	"whatwashere/internal/delivery/api"
	"whatwashere/internal/delivery/api/router/handler"
	logs "whatwashere/internal/infra/log"
	"whatwashere/internal/infra/seed"
	"whatwashere/internal/usecase/impl"
	"whatwashere/internal/validator"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		validator.New,
		seed.Places,
		newBucket,
		newDeviceStorage,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newMemoryDocumentRepository,
			newUserPlaceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newGeminiClient,
			newStoryExpander,
			newStorySummarizer,
			newSpeechSynthesizer,
			newGeocoder,
			newQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewEnrichmentService,
			impl.NewMemoryDocumentService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStoryHandler,
			handler.NewNarrationHandler,
			handler.NewMemoryHandler,
			handler.NewPlaceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

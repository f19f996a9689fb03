package main

import (
	"context"
	"log/slog"
	"os"

	"travelalarm/config"
	"travelalarm/internal/delivery"
	"travelalarm/internal/delivery/http"
	"travelalarm/internal/delivery/http/router/handler"
	"travelalarm/internal/domain/entity"
	"travelalarm/internal/domain/service"
	"travelalarm/internal/infra/geocode"
	"travelalarm/internal/infra/location"
	logs "travelalarm/internal/infra/log"
	"travelalarm/internal/infra/persistence/postgres"
	"travelalarm/internal/infra/pubsub"
	"travelalarm/internal/usecase"
	"travelalarm/internal/usecase/impl"

	"github.com/pkg/errors"
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
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startEngine,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFenceRepository,
			postgres.NewSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			location.New,
			geocode.NewNominatimGeocoder,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFenceService,
			impl.NewTrackerService,
			impl.NewAlarmService,
			impl.NewEngineService,
			impl.NewSettingsService,
			impl.NewGeocodeService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFenceHandler,
			handler.NewAlarmHandler,
			handler.NewPositionHandler,
			handler.NewGeocodeHandler,
			handler.NewSettingsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type engineParams struct {
	fx.In
	fx.Lifecycle

	Cfg      *config.Config
	Logger   *slog.Logger
	Provider service.LocationProvider
	Fences   usecase.FenceUsecase
	Tracker  usecase.PositionTracker
	Engine   usecase.GeofenceEngine
}

// startEngine hydrates the fence set, wires the engine behind the tracker,
// and starts the configured location provider.
func startEngine(params engineParams) {
	params.Tracker.Register(params.Engine)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Fences.Load(ctx); err != nil {
				return err
			}

			// The provider outlives the OnStart context.
			runCtx := context.WithoutCancel(ctx)

			err := params.Provider.Start(runCtx,
				params.Cfg.Location.MinInterval, params.Cfg.Location.MinDistance,
				func(lat, lon float64) {
					params.Tracker.OnPosition(runCtx, lat, lon)
				},
				func(status entity.ProviderStatus) {
					params.Tracker.OnStatus(runCtx, status)
				},
			)
			if errors.Is(err, service.ErrProviderUnavailable) {
				params.Logger.Warn("Location provider unavailable, positions arrive only through the ingest API",
					slog.Any("error", err))
				params.Tracker.OnStatus(runCtx, entity.ProviderUnavailable)

				return nil
			}

			return err
		},
		OnStop: func(ctx context.Context) error {
			return params.Provider.Stop()
		},
	})
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

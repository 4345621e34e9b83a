package main

import (
	"context"
	"log/slog"
	"os"

	"subletswipe/config"
	"subletswipe/internal/delivery"
	"subletswipe/internal/delivery/cli"
	"subletswipe/internal/domain/service"
	"subletswipe/internal/infra/api"
	logs "subletswipe/internal/infra/log"
	"subletswipe/internal/infra/photos"
	"subletswipe/internal/infra/storage"
	"subletswipe/internal/usecase/impl"

	"go.uber.org/fx"
)

type runShellParams struct {
	fx.In
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			runShell,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		api.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewAuthRepository,
			api.NewResourceRepository,
			api.NewMatchRepository,
			api.NewSwipeRepository,
			api.NewListingRepository,
			api.NewRenterRepository,
			api.NewLocationRepository,
			storage.NewSessionStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPhotoService,
		),
	)
}

// newPhotoService creates the image host adapter; deletions route through the
// backend client.
func newPhotoService(cfg *config.Config, client *api.Client, logger *slog.Logger) service.PhotoService {
	return photos.NewPhotoService(cfg, client, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewActiveRoleService,
			impl.NewSwipeSessionFactory,
			impl.NewMatchesService,
			impl.NewListingService,
			impl.NewRenterService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				cli.NewShell,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func runShell(ctx context.Context, params runShellParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Shell exited with error", slog.Any("error", err))
				os.Exit(1)
			}
			_ = params.Shutdown()
		}()
	}
}

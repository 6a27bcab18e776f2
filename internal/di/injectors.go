//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"pitwall/internal"
	"pitwall/internal/auth"
	"pitwall/internal/controllers"
	"pitwall/internal/feed"
	"pitwall/internal/providers"
	"pitwall/internal/scheduler"
	"pitwall/internal/services"
	"pitwall/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewBrokerProvider,

		auth.NewCredentialProvider,
		feed.NewCatalog,
		services.NewSessionService,
		scheduler.NewScheduler,

		controllers.NewSessionGuard,
		controllers.NewPublicController,
		controllers.NewAuthController,
		controllers.NewDashboardController,
		controllers.NewProfileController,
		controllers.NewSettingsController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}

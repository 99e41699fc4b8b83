package appentry

import (
	"time"

	"go.uber.org/fx"

	"labtrail.dev/backend/internal/app/appconfig"
	"labtrail.dev/backend/internal/controller"
	"labtrail.dev/backend/internal/infra"
	"labtrail.dev/backend/internal/model/cache"
	"labtrail.dev/backend/internal/pkg/logger"
	"labtrail.dev/backend/internal/repo"
	"labtrail.dev/backend/internal/server"
	"labtrail.dev/backend/internal/service"
	"labtrail.dev/backend/internal/workers/calcwkr"
	"labtrail.dev/backend/internal/workers/reportwkr"
)

func ProvideOptions() []fx.Option {
	opts := []fx.Option{
		// Misc
		fx.Provide(appconfig.Parse),

		// Infrastructures
		infra.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// HTTP Server
		server.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(logger.Configure),
		fx.Invoke(infra.SentryInit),
		fx.Invoke(cache.Initialize),
		fx.WithLogger(logger.Fx),

		// Controllers
		controller.Module(),

		// Workers
		fx.Invoke(calcwkr.Start),
		fx.Invoke(reportwkr.Start),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return opts
}

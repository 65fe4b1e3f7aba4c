package fx

import (
	"r6-tracker/internal/api"
	"r6-tracker/internal/auth"
	"r6-tracker/internal/config"
	"r6-tracker/internal/logger"
	"r6-tracker/internal/middleware"
	"r6-tracker/internal/server"
	"r6-tracker/internal/service"

	"go.uber.org/fx"
)

func ProvideRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RatePerSecond)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// credentials
	fx.Provide(auth.NewManager),
	// api client
	fx.Provide(api.NewUbiClient),
	// svc
	fx.Provide(service.NewProfileService),
	// server
	fx.Provide(server.New),
	fx.Provide(ProvideRateLimiter),
)

package main

import (
	"context"
	"fmt"
	"net/http"

	"r6-tracker/internal/auth"
	"r6-tracker/internal/config"
	"r6-tracker/internal/constants"
	fxmodules "r6-tracker/internal/fx"
	"r6-tracker/internal/middleware"
	"r6-tracker/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	srv *server.Server,
	limiter *middleware.RateLimiter,
	manager *auth.Manager,
	cfg *config.Config,
	logger zerolog.Logger,
) {
	logger.Info().
		Str("token_dir", cfg.TokenDir).
		Str("current_season", cfg.CurrentSeason).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	router := server.NewRouter(srv, limiter, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: c.Handler(router),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := manager.Start(ctx); err != nil {
				return err
			}
			go func() {
				logger.Info().Str("addr", httpSrv.Addr).Msg("server starting")
				if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			manager.Stop()

			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}

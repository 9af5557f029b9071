// Package main is the entry point for the travel storefront search service.
//
//	@title			Travel Storefront Search API
//	@version		1.0.0
//	@description	Searches flights, hotels, trains, buses, cabs, homestays and travel insurance across inventory sources, then filters, sorts and pages the results.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/tripnest/storefront/issues
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tripnest/storefront/docs"

	storehttp "github.com/tripnest/storefront/internal/adapter/http"
	"github.com/tripnest/storefront/internal/adapter/http/middleware"
	"github.com/tripnest/storefront/internal/app"
	"github.com/tripnest/storefront/internal/config"
	"github.com/tripnest/storefront/internal/domain"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()
	log := newLogger(cfg)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("storefront server stopped with error")
	}
	log.Info().Msg("storefront server stopped")
}

// run serves until SIGINT or SIGTERM, then drains in-flight requests.
func run(cfg *config.Config, log *logger.Logger) error {
	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Dur("cache_ttl", cfg.Search.CacheTTL).
		Str("sort_locale", cfg.Search.SortLocale).
		Float64("rate_limit", cfg.Server.RateLimit).
		Msg("configuration loaded")

	storefront, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("build storefront: %w", err)
	}

	e := newServer(cfg, log, storefront)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Strs("verticals", served(storefront)).Msg("listening")
		serveErr <- e.Start(addr)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", shutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newLogger builds the service logger from config.
func newLogger(cfg *config.Config) *logger.Logger {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.IsDevelopment()
	return logger.New(logCfg)
}

func newServer(cfg *config.Config, log *logger.Logger, storefront *app.Storefront) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	mwCfg := middleware.Config{
		Recovery:  middleware.RecoveryConfig{DisablePrintStack: cfg.IsProduction()},
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	}
	middleware.Setup(e, log, mwCfg)

	h := storehttp.NewHandler(storehttp.PagingConfig{
		DefaultSize: cfg.Search.DefaultPageSize,
		MaxSize:     cfg.Search.MaxPageSize,
	})
	storefront.Register(h)
	storehttp.RegisterRoutesWithMiddleware(e, h, middleware.APIMiddleware(mwCfg)...)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

func served(storefront *app.Storefront) []string {
	caps := storefront.Capabilities()
	names := make([]string, 0, len(caps))
	for _, v := range domain.AllVerticals() {
		if _, ok := caps[v]; ok {
			names = append(names, string(v))
		}
	}
	return names
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"travel_catalog/internal/adapters/firebase"
	server "travel_catalog/internal/adapters/http_server"
	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/adapters/travel"
	"travel_catalog/internal/app"
	"travel_catalog/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// deps
	catalog, err := firebase.New(cfg.CatalogBase, cfg.CatalogRPS, cfg.FetchTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize catalog client")
	}
	attractions, err := travel.New(cfg.AttractionsBase, cfg.RapidAPIKey, cfg.RapidAPIHost, travel.Query{
		Longitude: cfg.Longitude,
		Latitude:  cfg.Latitude,
		Unit:      cfg.Unit,
		Currency:  cfg.Currency,
		Lang:      cfg.Lang,
	}, cfg.FetchTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize attractions client")
	}
	defer attractions.Close()

	screens := app.NewCatalog(catalog, attractions, observability.NewLogReporter(log.Logger), app.Presenter{Location: cfg.Location()})
	defer screens.Close()

	// http
	srv := server.New(30 * time.Second)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Catalog: screens})
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Int("workers", cfg.StartWorkers).Msg("mounting screens")
		return screens.StartAll(gctx, cfg.StartWorkers)
	})
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		screens.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("shutdown complete")
}

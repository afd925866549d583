package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phonelookup_backend/internal/geocode"
	apphttp "phonelookup_backend/internal/http"
	"phonelookup_backend/internal/http/router"
	"phonelookup_backend/internal/lookup"
	"phonelookup_backend/internal/mapgen"
	"phonelookup_backend/platform/config"
	"phonelookup_backend/platform/logger"
	"phonelookup_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "geocoding_api", cfg.IsGeocodingEnabled())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver, err := geocode.NewResolver(cfg, log)
	if err != nil {
		log.Error("failed to initialize geocode resolver", "error", err)
		panic("failed to initialize geocode resolver: " + err.Error())
	}

	maps, err := mapgen.NewBuilder(cfg.MapOutputDir, log)
	if err != nil {
		log.Error("failed to initialize map builder", "error", err)
		panic("failed to initialize map builder: " + err.Error())
	}

	val := validator.New()
	lookupModule := lookup.NewModule(resolver, maps, val, log)

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			lookupModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/mamadbah2/finca/internal/config"
	"github.com/mamadbah2/finca/internal/metrics"
	"github.com/mamadbah2/finca/internal/repository/memory"
	"github.com/mamadbah2/finca/internal/repository/mongodb"
	"github.com/mamadbah2/finca/internal/repository/sheets"
	"github.com/mamadbah2/finca/internal/scheduler"
	"github.com/mamadbah2/finca/internal/seed"
	"github.com/mamadbah2/finca/internal/server/handlers"
	"github.com/mamadbah2/finca/internal/server/router"
	farmsvc "github.com/mamadbah2/finca/internal/service/farm"
	reportingsvc "github.com/mamadbah2/finca/internal/service/reporting"
	"github.com/mamadbah2/finca/pkg/clients/webhook"
	"github.com/mamadbah2/finca/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	loc, err := cfg.Reporting.Location()
	if err != nil {
		baseLogger.Fatal("failed to load timezone", zap.Error(err))
	}
	// "today" and the current month follow the farm's timezone, not the host's
	now := func() time.Time { return time.Now().In(loc) }

	var dataset memory.Dataset
	if cfg.Data.SeedEnabled {
		dataset = seed.Dataset()
	}

	farm, err := farmsvc.New(farmsvc.Options{
		Seed:      dataset,
		Now:       now,
		CacheSize: cfg.Data.CacheSize,
		Metrics:   metrics.New(registry),
		Logger:    baseLogger.Named("svc.farm"),
	})
	if err != nil {
		baseLogger.Fatal("failed to init farm service", zap.Error(err))
	}

	var (
		sinks   []reportingsvc.Sink
		archive handlers.DigestArchive
	)
	if cfg.MongoDB.Enabled() {
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoRepo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		sinks = append(sinks, mongoRepo)
		archive = mongoRepo
	} else {
		baseLogger.Warn("mongodb uri missing, digest archive disabled")
	}

	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		sinks = append(sinks, sheets.NewDigestSink(sheetsRepo))
	}

	if cfg.Webhook.Enabled() {
		sinks = append(sinks, webhook.NewClient(cfg.Webhook))
	}

	reportingSvc := reportingsvc.NewService(farm, sinks, baseLogger.Named("svc.reporting"))

	sched, err := scheduler.NewScheduler(cfg.Reporting, reportingSvc, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	engine := router.New(router.Deps{
		Farm:     farm,
		Digester: reportingSvc,
		Archive:  archive,
		Gatherer: registry,
		Now:      now,
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.Int("sinks", len(sinks)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"process_control_sim/internal/config"
	"process_control_sim/internal/csvlog"
	"process_control_sim/internal/dashboard"
	"process_control_sim/internal/handlers"
	"process_control_sim/internal/logger"
	"process_control_sim/internal/repository"
	"process_control_sim/internal/repository/db"
	"process_control_sim/internal/server"
	"process_control_sim/internal/service"

	flag "github.com/spf13/pflag"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configDir := flag.StringP("config", "c", "configs", "directory holding config.yml")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		logger.New(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer closeDB(sqlDB, log)

	// wire dependencies
	repos := repository.NewRepository(sqlDB, cfg.Export.SnapshotPath, csvlog.Options{LegacyHeader: cfg.Export.LegacyHeader})
	session := service.NewSession()
	services := service.NewService(repos, session, service.NewSource(cfg.Simulation.Seed), log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initial batch; a snapshot write failure aborts startup
	if err := services.Bootstrap(ctx, cfg.Simulation.InitialBatch); err != nil {
		log.Fatalw("failed to generate initial batch", "err", err, "path", cfg.Export.SnapshotPath)
	}
	log.Infow("initial_batch_ready", "records", cfg.Simulation.InitialBatch, "snapshot", cfg.Export.SnapshotPath)

	view, err := dashboard.NewRenderer(cfg.Display.Limit, dashboard.Links{
		StartURL:     handlers.StartPath,
		StopURL:      handlers.StopPath,
		StreamPath:   handlers.StreamPath,
		DownloadURL:  handlers.ExportPath,
		DownloadName: cfg.Export.DownloadName,
	})
	if err != nil {
		log.Fatalw("failed to build dashboard renderer", "err", err)
	}

	apiHandler := handlers.NewHandler(services, view, log, handlers.Options{
		DisplayLimit:   cfg.Display.Limit,
		StreamInterval: cfg.Display.StreamInterval,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		DownloadName:   cfg.Export.DownloadName,
	})
	defer apiHandler.Close()

	// start simulator (via composed service)
	go services.Simulator.Run(ctx, cfg.Simulation.Tick)

	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server_started", "port", cfg.Port, "tick", cfg.Simulation.Tick)

	waitForShutdown(cancel, srv, log)
}

func closeDB(sqlDB *sql.DB, log *logger.Logger) {
	if err := sqlDB.Close(); err != nil {
		log.Errorw("failed to close sqlite", "err", err)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}

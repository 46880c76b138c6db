package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart_panel/internal/config"
	"smart_panel/internal/handlers"
	"smart_panel/internal/logger"
	"smart_panel/internal/repository"
	"smart_panel/internal/repository/db"
	"smart_panel/internal/server"
	"smart_panel/internal/service"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title                       Smart Panel API
// @version                     1.0
// @description                 Shared panel state, alarm and temperature push for the smart panel UI.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load("configs", ".")
	if err != nil {
		logger.New(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	conn, err := openDB(cfg.DB.Path, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn, service.DefaultPanelState(time.Now()))
	services := service.NewService(repos, service.Options{
		Log: log,
		Auth: service.AuthConfig{
			SigningKey: cfg.Auth.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
	})
	if _, err := services.Seed(context.Background(), cfg.Panel); err != nil {
		log.Fatalw("invalid panel seed in config", "err", err)
	}
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithAuth(cfg.Auth.Enabled),
		handlers.WithAllowedOrigins(cfg.WS.AllowedOrigins),
	)
	srv := server.New(cfg.Port, apiHandler.InitRoutes())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, srv, services, cfg.Sensor.Interval, log); err != nil {
		log.Errorw("server stopped with error", "err", err)
		os.Exit(1)
	}
	log.Infow("server stopped")
}

// run serves HTTP and drives the sensor until ctx is canceled or either fails.
func run(ctx context.Context, srv *server.Server, services *service.Service, tick time.Duration, log *logger.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		services.Sensor.Run(ctx, tick)
		return nil
	})

	g.Go(func() error {
		log.Infow("server_listening", "addr", srv.Addr(), "sensor_interval", tick)
		return srv.Run()
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Infow("shutting down server...")

		// allow in-flight requests to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openDB initializes the SQLite database at path.
func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening sqlite", "path", path)
	return db.InitDB(path)
}

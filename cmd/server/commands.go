package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/logging"
	"gamecatalog/backend/internal/observability"
	"gamecatalog/backend/internal/router"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Usage:   "Game catalog backend",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-dir",
				Usage: "Directory holding the optional .env file",
				Value: ".",
			},
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP API",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "migrate",
						Usage: "Apply schema migrations before serving",
						Value: true,
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Create or update the database schema",
				Action: migrate,
			},
			{
				Name:   "seed",
				Usage:  "Replace the catalog with the sample games (clears favorites)",
				Action: seed,
			},
		},
	}
}

// loadConfig reads configuration and sets up logging.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("env-dir"))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	for _, w := range cfg.Warnings() {
		log.Warn().Msg(w)
	}
	return cfg, nil
}

// openStore opens and migrates the store for the offline commands, which
// require one.
func openStore(cfg config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

func migrate(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	return database.Close(db)
}

func seed(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	res, err := database.Seed(ctx, db)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "seeded %d sports and %d casino games\n", res.Sports, res.Casino)
	return nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Without a store the server still starts; gated routes answer 503.
	db, err := database.Open(cfg)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		db = nil
	case err != nil:
		return err
	case cmd.Bool("migrate"):
		if err := database.Migrate(db); err != nil {
			_ = database.Close(db)
			return err
		}
	}
	defer database.Close(db)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.New(db, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).Msg("server listening")
		if cfg.SwaggerEnabled {
			log.Info().Msgf("swagger UI at http://localhost:%s/swagger/index.html", cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

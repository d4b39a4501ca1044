package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-library-reserve/internal/config"
	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/service"
	"github.com/MKhiriev/go-library-reserve/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("library-bootstrap")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Bool("migrate", cfg.Storage.DB.Migrate).
		Str("admin_email", cfg.App.Admin.Email).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	if err = run(ctx, *cfg, log); err != nil {
		log.Error().Err(err).Msg("bootstrap failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg, log)

	created, err := services.BootstrapService.EnsureDefaultAdmin(ctx)
	if err != nil {
		return fmt.Errorf("error ensuring default admin: %w", err)
	}

	log.Info().Bool("created", created).Msg("bootstrap finished")
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

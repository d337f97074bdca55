package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/linkplan/internal/clearance"
	"github.com/RMahshie/linkplan/internal/config"
	"github.com/RMahshie/linkplan/internal/storage"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	applyLogLevel(cfg.LogLevel)

	store, err := storage.NewFileStore(cfg.Clearance.DeployFile, cfg.Clearance.ReportFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up deployment store")
	}

	svc := clearance.NewService(store)
	res, err := svc.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Clearance run failed")
	}

	log.Info().
		Str("runID", res.RunID).
		Str("report", cfg.Clearance.ReportFile).
		Msg("Done")
}

func applyLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

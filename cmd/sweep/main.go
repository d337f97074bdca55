package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/linkplan/internal/config"
	"github.com/RMahshie/linkplan/internal/sweep"
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

	out, closeOut, err := openOutput(cfg.Sweep.Output)
	if err != nil {
		log.Fatal().Err(err).Str("output", cfg.Sweep.Output).Msg("Failed to open sweep output")
	}
	defer closeOut()

	sweepCfg := sweep.Config{
		Model:         sweep.Model(cfg.Sweep.Model),
		Antenna:       sweep.Antenna(cfg.Sweep.Antenna),
		TxPowerW:      cfg.Sweep.TxPowerW,
		DishDiameterM: cfg.Sweep.DishDiameterM,
		FrequencyHz:   cfg.Sweep.FrequencyHz,
		DistanceM:     cfg.Sweep.DistanceM,
		TxHeightM:     cfg.Sweep.TxHeightM,
		RxHeightM:     cfg.Sweep.RxHeightM,
	}

	log.Info().
		Str("kind", cfg.Sweep.Kind).
		Str("model", cfg.Sweep.Model).
		Str("antenna", cfg.Sweep.Antenna).
		Msg("Starting sweep")

	if err := runSweep(cfg.Sweep, sweepCfg, out); err != nil {
		log.Fatal().Err(err).Msg("Sweep failed")
	}

	log.Info().Msg("Sweep complete")
}

func runSweep(cfg config.SweepConfig, sc sweep.Config, out io.Writer) error {
	switch cfg.Kind {
	case "distance":
		pts, err := sweep.DistanceSweep(sc, toRange(cfg.DistancesM))
		if err != nil {
			return err
		}
		return sweep.Write(out, pts)
	case "grid":
		pts, err := sweep.HeightGrid(sc, toRange(cfg.TxHeightsM), toRange(cfg.RxHeightsM))
		if err != nil {
			return err
		}
		return sweep.WriteGrid(out, pts)
	default:
		pts, err := sweep.FrequencySweep(sc, toRange(cfg.FrequenciesMHz))
		if err != nil {
			return err
		}
		return sweep.Write(out, pts)
	}
}

func toRange(r config.RangeConfig) sweep.Range {
	return sweep.Range{Start: r.Start, Stop: r.Stop, Step: r.Step}
}

// openOutput returns stdout when no file is configured.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func applyLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

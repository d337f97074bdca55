package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the toolkit
type Config struct {
	Env       string
	LogLevel  string
	Clearance ClearanceConfig
	Sweep     SweepConfig
}

// ClearanceConfig holds the clearance calculator's file paths
type ClearanceConfig struct {
	DeployFile string
	ReportFile string
}

// RangeConfig is a start/stop/step triple for a sweep axis
type RangeConfig struct {
	Start float64
	Stop  float64
	Step  float64
}

// SweepConfig holds sweep runner configuration. The defaults give a
// useful UHF baseline (50 W transmitter, 900 MHz carrier, 3 m dish,
// 100..900 MHz and 100..1000 m axes).
type SweepConfig struct {
	Kind    string // frequency, distance or grid
	Model   string // freespace or tworay
	Antenna string // isotropic or parabolic
	Output  string // output file; empty means stdout

	TxPowerW      float64
	DistanceM     float64
	FrequencyHz   float64
	DishDiameterM float64
	TxHeightM     float64
	RxHeightM     float64

	FrequenciesMHz RangeConfig
	DistancesM     RangeConfig
	TxHeightsM     RangeConfig
	RxHeightsM     RangeConfig
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults. The clearance file names are the ones the
	// deployment workflow already expects, so an unconfigured run
	// just works.
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DEPLOY_FILE", "deploy_data.txt")
	viper.SetDefault("REPORT_FILE", "output.txt")

	viper.SetDefault("SWEEP_KIND", "frequency")
	viper.SetDefault("SWEEP_MODEL", "freespace")
	viper.SetDefault("SWEEP_ANTENNA", "isotropic")
	viper.SetDefault("SWEEP_OUTPUT", "")
	viper.SetDefault("SWEEP_TX_POWER_W", 50.0)
	viper.SetDefault("SWEEP_DISTANCE_M", 10000.0)
	viper.SetDefault("SWEEP_FREQUENCY_HZ", 9e8)
	viper.SetDefault("SWEEP_DISH_DIAMETER_M", 3.0)
	viper.SetDefault("SWEEP_TX_HEIGHT_M", 50.0)
	viper.SetDefault("SWEEP_RX_HEIGHT_M", 2.0)
	viper.SetDefault("SWEEP_FREQ_START_MHZ", 100.0)
	viper.SetDefault("SWEEP_FREQ_STOP_MHZ", 900.0)
	viper.SetDefault("SWEEP_FREQ_STEP_MHZ", 100.0)
	viper.SetDefault("SWEEP_DIST_START_M", 100.0)
	viper.SetDefault("SWEEP_DIST_STOP_M", 1000.0)
	viper.SetDefault("SWEEP_DIST_STEP_M", 200.0)
	viper.SetDefault("SWEEP_TX_HEIGHT_START_M", 10.0)
	viper.SetDefault("SWEEP_TX_HEIGHT_STOP_M", 50.0)
	viper.SetDefault("SWEEP_TX_HEIGHT_STEP_M", 10.0)
	viper.SetDefault("SWEEP_RX_HEIGHT_START_M", 1.0)
	viper.SetDefault("SWEEP_RX_HEIGHT_STOP_M", 5.0)
	viper.SetDefault("SWEEP_RX_HEIGHT_STEP_M", 1.0)

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	// Environment variables override .env file values
	viper.AutomaticEnv()

	var config Config
	config.Env = viper.GetString("ENVIRONMENT")
	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.Clearance.DeployFile = viper.GetString("DEPLOY_FILE")
	config.Clearance.ReportFile = viper.GetString("REPORT_FILE")

	config.Sweep.Kind = viper.GetString("SWEEP_KIND")
	config.Sweep.Model = viper.GetString("SWEEP_MODEL")
	config.Sweep.Antenna = viper.GetString("SWEEP_ANTENNA")
	config.Sweep.Output = viper.GetString("SWEEP_OUTPUT")
	config.Sweep.TxPowerW = viper.GetFloat64("SWEEP_TX_POWER_W")
	config.Sweep.DistanceM = viper.GetFloat64("SWEEP_DISTANCE_M")
	config.Sweep.FrequencyHz = viper.GetFloat64("SWEEP_FREQUENCY_HZ")
	config.Sweep.DishDiameterM = viper.GetFloat64("SWEEP_DISH_DIAMETER_M")
	config.Sweep.TxHeightM = viper.GetFloat64("SWEEP_TX_HEIGHT_M")
	config.Sweep.RxHeightM = viper.GetFloat64("SWEEP_RX_HEIGHT_M")
	config.Sweep.FrequenciesMHz = rangeFromViper("SWEEP_FREQ_START_MHZ", "SWEEP_FREQ_STOP_MHZ", "SWEEP_FREQ_STEP_MHZ")
	config.Sweep.DistancesM = rangeFromViper("SWEEP_DIST_START_M", "SWEEP_DIST_STOP_M", "SWEEP_DIST_STEP_M")
	config.Sweep.TxHeightsM = rangeFromViper("SWEEP_TX_HEIGHT_START_M", "SWEEP_TX_HEIGHT_STOP_M", "SWEEP_TX_HEIGHT_STEP_M")
	config.Sweep.RxHeightsM = rangeFromViper("SWEEP_RX_HEIGHT_START_M", "SWEEP_RX_HEIGHT_STOP_M", "SWEEP_RX_HEIGHT_STEP_M")

	log.Debug().
		Str("environment", config.Env).
		Str("deployFile", config.Clearance.DeployFile).
		Str("reportFile", config.Clearance.ReportFile).
		Msg("Configuration loaded")

	return &config, nil
}

func rangeFromViper(startKey, stopKey, stepKey string) RangeConfig {
	return RangeConfig{
		Start: viper.GetFloat64(startKey),
		Stop:  viper.GetFloat64(stopKey),
		Step:  viper.GetFloat64(stepKey),
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/maritimerenewable/resis/pkg/coefficient"
	"github.com/maritimerenewable/resis/pkg/resistance"
)

// Config holds all CLI configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Model ModelConfig `mapstructure:"model"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ModelConfig holds the resistance model assumptions.
type ModelConfig struct {
	Efficiency           float64 `mapstructure:"efficiency"`
	SeaMargin            float64 `mapstructure:"sea_margin"`
	WaterTemperature     float64 `mapstructure:"water_temperature"`
	AppendageFactor      float64 `mapstructure:"appendage_factor"`
	CorrelationAllowance float64 `mapstructure:"correlation_allowance"`
	WindageArea          float64 `mapstructure:"windage_area"`
	AirDragCoefficient   float64 `mapstructure:"air_drag_coefficient"`

	// Extrapolation is "reject" or "clamp".
	Extrapolation string `mapstructure:"extrapolation"`

	// Table is an optional path to a residual-resistance table file;
	// empty uses the built-in table.
	Table string `mapstructure:"table"`
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("model.efficiency", resistance.DefaultEfficiency)
	v.SetDefault("model.sea_margin", resistance.DefaultSeaMargin)
	v.SetDefault("model.water_temperature", 25.0)
	v.SetDefault("model.appendage_factor", 0.0)
	v.SetDefault("model.correlation_allowance", 0.0)
	v.SetDefault("model.windage_area", 0.0)
	v.SetDefault("model.air_drag_coefficient", resistance.DefaultAirDragCoefficient)
	v.SetDefault("model.extrapolation", coefficient.Reject.String())
	v.SetDefault("model.table", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("RESIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Options translates the model section into resistance options.
func (m ModelConfig) Options(logger *slog.Logger) ([]resistance.Option, error) {
	var policy coefficient.Policy
	switch strings.ToLower(m.Extrapolation) {
	case "", "reject":
		policy = coefficient.Reject
	case "clamp":
		policy = coefficient.Clamp
	default:
		return nil, fmt.Errorf("unknown extrapolation policy %q (want reject or clamp)", m.Extrapolation)
	}

	opts := []resistance.Option{
		resistance.WithExtrapolation(policy),
		resistance.WithWaterTemperature(m.WaterTemperature),
		resistance.WithAppendageFactor(m.AppendageFactor),
		resistance.WithCorrelationAllowance(m.CorrelationAllowance),
		resistance.WithWindage(m.WindageArea, m.AirDragCoefficient),
		resistance.WithLogger(logger),
	}
	if m.Table != "" {
		tbl, err := coefficient.Load(m.Table)
		if err != nil {
			return nil, err
		}
		opts = append(opts, resistance.WithTable(tbl))
	}
	return opts, nil
}

// SetupLogger creates a logger with the configured level and format.
func SetupLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

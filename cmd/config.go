package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the settings read from the environment.
type Config struct {
	HTTPPort               string `validate:"required,numeric"`
	LogLevel               string `validate:"oneof=debug info warn error"`
	KafkaHost              string
	KafkaOrderChangedTopic string `validate:"required_with=KafkaHost"`
	StatsSchedule          string `validate:"required"`
	SeedOrders             int    `validate:"gte=0,lte=10000"`
	SentryDSN              string `validate:"omitempty,url"`
	AppEnv                 string `validate:"required"`
}

// LoadConfig reads the configuration through lookup, applies defaults and
// validates the result. lookup is usually os.LookupEnv.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	seedOrders, err := strconv.Atoi(get("SEED_ORDERS", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("SEED_ORDERS: %w", err)
	}

	cfg := Config{
		HTTPPort:               get("HTTP_PORT", "5000"),
		LogLevel:               get("LOG_LEVEL", "info"),
		KafkaHost:              get("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: get("KAFKA_ORDER_CHANGED_TOPIC", "orders.changed"),
		StatsSchedule:          get("STATS_SCHEDULE", "@every 1m"),
		SeedOrders:             seedOrders,
		SentryDSN:              get("SENTRY_DSN", ""),
		AppEnv:                 get("APP_ENV", "development"),
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadConfigFromEnv is LoadConfig over the process environment.
func LoadConfigFromEnv() (Config, error) {
	return LoadConfig(os.LookupEnv)
}

// SlogLevel converts LogLevel for slog handlers.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

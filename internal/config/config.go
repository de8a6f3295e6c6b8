package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/matchday/tournament-analytics/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the analyzer.
type Config struct {
	AppEnv            string
	ServiceName       string
	ServiceVersion    string
	ParseWorkers      int
	LogLevel          logging.Level
	DiscountThreshold float64
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	parseWorkers, err := getEnvAsInt("PARSE_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse PARSE_WORKERS: %w", err)
	}
	if parseWorkers <= 0 {
		return Config{}, fmt.Errorf("PARSE_WORKERS must be positive, got %d", parseWorkers)
	}

	logLevel, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	discountThreshold, err := getEnvAsFloat("DISCOUNT_THRESHOLD", 5000)
	if err != nil {
		return Config{}, fmt.Errorf("parse DISCOUNT_THRESHOLD: %w", err)
	}

	return Config{
		AppEnv:            appEnv,
		ServiceName:       getEnv("SERVICE_NAME", "tournament-analytics"),
		ServiceVersion:    getEnv("SERVICE_VERSION", "dev"),
		ParseWorkers:      parseWorkers,
		LogLevel:          logLevel,
		DiscountThreshold: discountThreshold,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const maxCurrencyScale = 8

// Config holds application configuration
type Config struct {
	LogLevel      string
	LogFormat     string
	CurrencyScale int32
}

// Load reads an optional .env file from the working directory and then
// builds the configuration from environment variables.
func Load() (*Config, error) {
	return LoadFiles()
}

// LoadFiles is Load with explicit .env paths. Missing files are ignored;
// variables already set in the environment win over file values.
func LoadFiles(filenames ...string) (*Config, error) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}

	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	scale, err := strconv.Atoi(getEnv("LEDGER_CURRENCY_SCALE", "2"))
	if err != nil {
		return nil, fmt.Errorf("LEDGER_CURRENCY_SCALE must be an integer: %w", err)
	}
	if scale < 0 || scale > maxCurrencyScale {
		return nil, fmt.Errorf("LEDGER_CURRENCY_SCALE must be between 0 and %d, got %d", maxCurrencyScale, scale)
	}
	cfg.CurrencyScale = int32(scale)

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return defaultVal
}

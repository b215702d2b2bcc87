package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	APIURL  string `env:"ARTIC_API_URL" envDefault:"https://api.artic.edu/api/v1"`
	IIIFURL string `env:"ARTIC_IIIF_URL" envDefault:"https://www.artic.edu/iiif/2"`

	PageSize   int           `env:"ARTIC_PAGE_SIZE" envDefault:"15"`
	Timeout    time.Duration `env:"ARTIC_TIMEOUT" envDefault:"15s"`
	RPS        int           `env:"ARTIC_RPS" envDefault:"5"`
	MaxRetries int           `env:"ARTIC_MAX_RETRIES" envDefault:"2"`

	LogLevel string `env:"ARTIC_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"ARTIC_LOG_FILE"`

	ExportDir string `env:"ARTIC_EXPORT_DIR"`

	// Empty keeps favorites in memory for the lifetime of the process.
	FavoritesDB string `env:"ARTIC_FAVORITES_DB"`
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("ARTIC_API_URL is required")
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("ARTIC_PAGE_SIZE must be between 1 and 100")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("ARTIC_TIMEOUT must be positive")
	}
	if c.RPS < 0 {
		return fmt.Errorf("ARTIC_RPS cannot be negative")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("ARTIC_MAX_RETRIES cannot be negative")
	}
	return nil
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile()
	}
	if cfg.ExportDir == "" {
		homeDir, _ := os.UserHomeDir()
		cfg.ExportDir = filepath.Join(homeDir, "Downloads")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "artic", "artic.log")
}

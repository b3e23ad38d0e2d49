package assistant

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-driven configuration, prefixed with ATTACHE_.
type Config struct {
	// DataDir is where contacts.yaml and notes.yaml live.
	// Defaults to ~/.attache.
	DataDir string `env:"DATA_DIR"`
	// BirthdayDays is the default window for the birthdays command.
	BirthdayDays int `env:"BIRTHDAY_DAYS" envDefault:"7"`
	// NoColor disables colored output. The standard NO_COLOR variable is
	// honored as well.
	NoColor bool `env:"NO_COLOR" envDefault:"false"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "ATTACHE_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".attache")
	}
	if cfg.BirthdayDays <= 0 {
		cfg.BirthdayDays = 7
	}
	return cfg, nil
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the options of the run command. The defaults come from the
// environment and flags override them.
type Config struct {
	Scenario      string `env:"SUMBLOCK_SCENARIO"`
	Record        bool   `env:"SUMBLOCK_RECORD"`
	RecordPath    string `env:"SUMBLOCK_RECORD_PATH"`
	RecordOutputs bool   `env:"SUMBLOCK_RECORD_OUTPUTS"`
	Monitor       bool   `env:"SUMBLOCK_MONITOR"`
	MonitorPort   int    `env:"SUMBLOCK_MONITOR_PORT" envDefault:"0"`
	OpenMonitor   bool   `env:"SUMBLOCK_OPEN_MONITOR"`
	Hold          bool   `env:"SUMBLOCK_HOLD"`
	LogEvents     bool   `env:"SUMBLOCK_LOG_EVENTS"`
}

// DefaultEnvFile is the dotenv file loaded when it exists.
const DefaultEnvFile = ".env"

// LoadConfig loads envFile, if it exists, into the environment and parses the
// configuration from the environment. Variables that are already set win
// over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

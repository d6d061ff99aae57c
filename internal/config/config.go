package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full application configuration, read from a YAML file with
// environment variable overrides.
type Config struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"local"`

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
	} `yaml:"log"`

	// StoragePath is the local SQLite file holding session state and, in
	// mock mode, the simulated server-side records. Empty means the
	// per-user default location.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH"`

	Backend struct {
		// UseMock selects the in-process mock service instead of the
		// network backend. Fixed for the process lifetime.
		UseMock         bool   `yaml:"use_mock" env:"BACKEND_USE_MOCK" env-default:"false"`
		BaseURL         string `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:"http://localhost:8080"`
		Timeout         int    `yaml:"timeout" env:"BACKEND_TIMEOUT" env-default:"30"` // seconds
		SimulateLatency bool   `yaml:"simulate_latency" env:"BACKEND_SIMULATE_LATENCY" env-default:"true"`
	} `yaml:"backend"`

	Server struct {
		Port int `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	} `yaml:"server"`
}

// LoadConfig reads the configuration file at path. A missing file is not an
// error; defaults and environment variables still apply.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}
	return &cfg, nil
}

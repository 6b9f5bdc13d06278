package config

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/ilyakaznacheev/cleanenv"
)

// Environments accepted in LOG_MANAGER_ENV.
const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

// Config is the process environment the app reads at startup.
type Config struct {
	// Env selects log level and format.
	Env string `env:"LOG_MANAGER_ENV" env-default:"prod"`
	// DataFile overrides the per-user document location.
	DataFile string `env:"LOG_MANAGER_DATA_FILE"`
}

// Read loads the configuration from the environment.
func Read() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = EnvProd
	}
	return cfg, nil
}

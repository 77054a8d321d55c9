package main

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	SentryDSN   string `env:"SENTRY_DSN" yaml:"sentry_dsn"`
	IngestHost  string `env:"INGEST_HOST" env-default:"http://localhost:8080" yaml:"ingest_host"`
	// InputPath is the collector document to submit. "-" reads stdin, which
	// is how the scheduler pipes the current window in.
	InputPath string `env:"METRICS_INPUT" env-default:"-" yaml:"metrics_input"`
}

// loadConfig reads the optional YAML file pointed at by SUBMITTER_CONFIG,
// then lets environment variables override it.
func loadConfig() (Config, error) {
	var config Config
	if path := os.Getenv("SUBMITTER_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return Config{}, err
		}
		return config, nil
	}
	err := cleanenv.ReadEnv(&config)
	return config, err
}

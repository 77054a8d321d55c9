package main

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development"`
	SentryDSN   string `env:"SENTRY_DSN"`
	Port        string `env:"PORT" env-default:"8080"`
}

func loadConfig() (Config, error) {
	var config Config
	err := cleanenv.ReadEnv(&config)
	return config, err
}

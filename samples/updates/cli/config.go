package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// ManifestPath points at a release manifest on disk. When empty the
	// built-in manifest is served.
	ManifestPath string `env:"UPDATES_MANIFEST"`
	Trace        string `env:"UPDATES_TRACE" envDefault:"none"`
	OTLPEndpoint string `env:"UPDATES_OTLP_ENDPOINT" envDefault:"localhost:4317"`
}

func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return config, nil
}

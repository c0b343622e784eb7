package main

import (
	"os"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/weegigs/wee-deciders-go/samples/updates"
)

func NewLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func NewManifest(config Config) (updates.Manifest, error) {
	if config.ManifestPath == "" {
		return updates.DefaultManifest(), nil
	}

	return updates.LoadManifest(config.ManifestPath)
}

// NewSessionService fixes the runner options; wire cannot call variadic
// constructors.
func NewSessionService(server updates.Server) *updates.SessionRunner {
	return updates.NewSessionRunner(server)
}

type App struct {
	Config   Config
	Log      zerolog.Logger
	Manifest updates.Manifest
	Server   updates.Server
	Sessions *updates.SessionRunner
	Ids      *updates.SessionIDGenerator
}

func NewApp(
	config Config,
	log zerolog.Logger,
	manifest updates.Manifest,
	server updates.Server,
	sessions *updates.SessionRunner,
	ids *updates.SessionIDGenerator,
) *App {
	return &App{
		Config:   config,
		Log:      log,
		Manifest: manifest,
		Server:   server,
		Sessions: sessions,
		Ids:      ids,
	}
}

var Live = wire.NewSet(
	LoadConfig,
	NewLogger,
	NewManifest,
	updates.NewServer,
	NewSessionService,
	updates.NewSessionIDGenerator,
	NewApp,
)

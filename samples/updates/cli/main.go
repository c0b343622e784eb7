package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"

	deciders "github.com/weegigs/wee-deciders-go"
	"github.com/weegigs/wee-deciders-go/samples/updates"
)

func installTracing(ctx context.Context, config Config) (func(), error) {
	var exporter trace.SpanExporter
	var err error

	switch config.Trace {
	case "console":
		exporter, err = deciders.ConsoleExporter()
	case "otlp":
		exporter, err = deciders.OTLPExporter(ctx, config.OTLPEndpoint, nil)
	default:
		return func() {}, nil
	}

	if err != nil {
		return nil, err
	}

	provider := trace.NewTracerProvider(trace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)

	return func() {
		_ = provider.Shutdown(context.Background())
	}, nil
}

func check(ctx context.Context, app *App) error {
	id := app.Ids.NewSessionID(time.Now())
	logger := app.Log.With().Str("session", id.String()).Logger()

	prompt := promptui.Prompt{
		Label: "Current version",
		Validate: func(input string) error {
			if _, err := semver.NewVersion(input); err != nil {
				return fmt.Errorf("%q is not a semantic version", input)
			}

			return nil
		},
	}

	version, err := prompt.Run()
	if err != nil {
		return err
	}

	events := app.Sessions.Submit(ctx, updates.ForSession(id, updates.QueryForUpdate{CurrentVersion: version}))
	if len(events) == 0 {
		logger.Warn().Msg("query produced no response")
		return nil
	}

	switch event := events[0].Value.(type) {
	case updates.AlreadyUpToDate:
		fmt.Printf("%s is the latest version\n", version)

	case updates.UnknownVersionQueried:
		logger.Warn().Str("version", event.Version).Msg("version is not in the manifest")

	case updates.UpdateAvailable:
		if err := download(ctx, app, logger, id, event.Versions); err != nil {
			return err
		}
	}

	state := app.Sessions.State()[id.String()]
	logger.Info().
		Str("phase", string(state.Phase)).
		Bool("complete", app.Server.IsTerminal(state)).
		Msg("session finished")

	return nil
}

func download(ctx context.Context, app *App, logger zerolog.Logger, id updates.SessionID, versions []string) error {
	choose := promptui.Select{
		Label: "Version to download",
		Items: versions,
	}

	_, version, err := choose.Run()
	if err != nil {
		return err
	}

	events := app.Sessions.Submit(ctx, updates.ForSession(id, updates.DownloadUpdate{Version: version}))
	if len(events) == 0 {
		logger.Warn().Msg("download produced no response")
		return nil
	}

	switch event := events[0].Value.(type) {
	case updates.GotUpdateData:
		fmt.Println(event.Data)

	case updates.InvalidVersion:
		logger.Warn().Str("version", event.Version).Msg("no download available")
	}

	return nil
}

func run() error {
	ctx := context.Background()

	app, err := InitializeApp()
	if err != nil {
		return err
	}

	shutdown, err := installTracing(ctx, app.Config)
	if err != nil {
		return err
	}
	defer shutdown()

	app.Log.Info().Int("releases", len(app.Manifest.Releases)).Msg("update server ready")

	for {
		if err := check(ctx, app); err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}

			return err
		}

		again := promptui.Prompt{Label: "Check another version", IsConfirm: true}
		if _, err := again.Run(); err != nil {
			return nil
		}
	}
}

func main() {
	if err := run(); err != nil {
		log.Err(err).Msg("update check failed")
		os.Exit(1)
	}
}

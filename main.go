package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/waves-lite/internal/app"
	"github.com/llehouerou/waves-lite/internal/config"
	"github.com/llehouerou/waves-lite/internal/errmsg"
	"github.com/llehouerou/waves-lite/internal/loader"
	"github.com/llehouerou/waves-lite/internal/logging"
	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/state"
	"github.com/llehouerou/waves-lite/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, logFile, err := logging.Open(cfg.GetLogLevel())
	if err != nil {
		// Keep going without a log file rather than refusing to start
		log = zerolog.Nop()
	} else {
		defer logFile.Close()
	}
	log.Info().Msg("starting")

	// Capture ALSA/PulseAudio noise before the device is opened
	if err := stderr.Start(log); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	stateMgr, err := state.Open()
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	l := loader.New(cfg.GetExtensions(), loader.WithSorted(cfg.ShouldSortFiles()))

	engine := player.New(player.NewSpeakerOutput(), l,
		player.WithLogger(log.With().Str("component", "player").Logger()),
		player.WithTickInterval(cfg.GetTickInterval()),
		player.WithVolume(app.InitialVolume(stateMgr, cfg)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- engine.Run(ctx)
	}()

	m := app.New(app.Deps{
		Engine: engine,
		Loader: l,
		State:  stateMgr,
		Config: cfg,
		Log:    log.With().Str("component", "app").Logger(),
	})

	_, runErr := tea.NewProgram(m, tea.WithAltScreen()).Run()

	if err := engine.Close(); err != nil {
		log.Warn().Err(err).Msg("close engine")
	}
	if err := <-runDone; err != nil && !errors.Is(err, context.Canceled) {
		log.Warn().Err(err).Msg("engine loop")
	}
	log.Info().Msg("exiting")

	return runErr
}

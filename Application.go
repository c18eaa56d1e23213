package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pong/audio"
	"pong/config"
	"pong/core"
	"pong/game"
	"pong/logger"
	"pong/terminal"
	"pong/window"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger.Log.Init(cfg.Log)
	defer logger.Log.Close()
	logger.Log.Info(fmt.Sprintf(logger.StartupMsg, cfg.Backend, cfg.FPS))
	defer logger.Log.Info(logger.ShutdownMsg)

	music, err := startMusic(cfg)
	if err != nil {
		logger.Log.Error(err.Error())
		return err
	}
	if music != nil {
		defer func() {
			music.Stop()
			logger.Log.Info(logger.MusicStoppedMsg)
		}()
	}

	state := core.NewGameState(nil)

	switch cfg.Backend {
	case config.BackendWindow:
		ctrl := game.NewController(state, window.Keyboard{}, logger.Log)
		return window.Run(ctrl, cfg.FPS)

	default:
		screen, err := terminal.NewScreen(cfg.KeyHold)
		if err != nil {
			return err
		}
		defer screen.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ctrl := game.NewController(state, screen, logger.Log)
		return terminal.Run(ctx, screen, ctrl, cfg.FPS)
	}
}

// startMusic loads and starts the background track. A track that cannot be
// loaded ends startup.
func startMusic(cfg *config.Config) (*audio.Music, error) {
	if !cfg.MusicEnabled {
		logger.Log.Info(logger.MusicDisabledMsg)
		return nil, nil
	}

	music, err := audio.Load(cfg.MusicFile, cfg.MusicVolume)
	if err != nil {
		return nil, err
	}
	if err := music.Play(); err != nil {
		music.Stop()
		return nil, err
	}
	logger.Log.Info(fmt.Sprintf(logger.MusicLoadedMsg, music.Path(), cfg.MusicVolume))
	return music, nil
}

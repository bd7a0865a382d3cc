package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/guslan/buzzin"
	"github.com/guslan/buzzin/gui"
	"github.com/guslan/buzzin/web"
)

func runGUI(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := gui.NewApp(func(config *gui.AppConfig) {
		config.SquareSize = int32(cfg.squareSize)
		config.SoundPath = cfg.sound
		config.PointerX = cfg.pointerX
		config.PointerY = cfg.pointerY
		config.RecenterInterval = cfg.recenter
		config.FPS = int32(cfg.fps)
	})

	game, err := buzzin.NewGame(app, app, cfg.gameConfig)
	if err != nil {
		return err
	}
	app.Attach(game)
	startMirror(ctx, cfg, game)

	devices, err := game.Watch(ctx, cfg.source())
	switch {
	case err != nil:
		slog.Error("Error opening input devices", slog.Any("error", err))
		app.ShowMessage("No input devices: "+err.Error(), gui.MessageError)

	case len(devices) == 0:
		app.ShowMessage("No input devices found", gui.MessageWarning)

	default:
		app.ShowMessage(fmt.Sprintf("Watching %d devices", len(devices)), gui.MessageInfo)
	}

	return app.Run(ctx)
}

func runTerm(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keyboard := buzzin.NewTerminalKeyboard(cfg.tty)
	keyboard.OnInterrupt = cancel
	defer keyboard.Close()

	// the bell and the board share the terminal
	game, err := buzzin.NewGame(
		buzzin.NewTerminalDisplay(),
		buzzin.NewTerminalBell(os.Stdout),
		cfg.gameConfig,
	)
	if err != nil {
		return err
	}
	startMirror(ctx, cfg, game)

	for _, w := range cfg.termWatches(keyboard) {
		if _, err := game.WatchSignals(ctx, w.source, w.signals); err != nil {
			if w.required {
				return err
			}
			slog.Warn("Error opening input devices", slog.Any("error", err))
		}
	}

	if err := game.Boot(); err != nil {
		return err
	}

	if err := game.Loop(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// startMirror serves the game to browsers next to its own display, when enabled
func startMirror(ctx context.Context, cfg *Config, game *buzzin.Game) {
	if cfg.webPort == 0 {
		return
	}

	srv := web.NewServer(game.Bus, cfg.mirrorConfig)
	game.Display = buzzin.MultiDisplay{game.Display, srv}

	go func() {
		if err := srv.Listen(ctx); err != nil {
			slog.Error("Web mirror stopped", slog.Any("error", err))
		}
	}()
}

func listDevices(out io.Writer, cfg *Config) error {
	devices, err := cfg.source().Devices()
	if err != nil {
		return err
	}
	defer func() {
		for _, dev := range devices {
			dev.Close()
		}
	}()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE\tNAME")
	for _, dev := range devices {
		fmt.Fprintf(w, "%s\t%s\n", dev.ID(), dev.Name())
	}

	return w.Flush()
}

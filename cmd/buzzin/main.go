package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
)

const Version = "0.4.0"

func init() {
	// raylib must run on the main thread
	runtime.LockOSThread()
}

func newCmd() *cobra.Command {
	cfg := &Config{}
	v := newViper()

	root := &cobra.Command{
		Use:   "buzzin",
		Short: "Decides who pressed first in a quiz game.",
		Long: "Binds one input device to every participant and to the host, then\n" +
			"shows who buzzed first and locks everybody else out until the host skips.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.load(v, cmd.Flags()); err != nil {
				return err
			}
			cfg.setupLogging()

			return cfg.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), cfg)
		},
	}

	addFlags(root, cfg)

	root.CompletionOptions.HiddenDefaultCmd = true
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.SetVersionTemplate("buzzin v{{.Version}}\n")

	root.AddCommand(
		&cobra.Command{
			Use:   "gui",
			Short: "Run the game in a window (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runGUI(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "term",
			Short: "Run the game in the terminal, keys 1-9 and space act as buzzers",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTerm(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "devices",
			Short: "List the input devices that can be used as buzzers",
			RunE: func(cmd *cobra.Command, args []string) error {
				return listDevices(cmd.OutOrStdout(), cfg)
			},
		},
	)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

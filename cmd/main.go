package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pomodoro/internal/app"
	"pomodoro/internal/logger"
	"pomodoro/internal/version"
)

var (
	// configPath overrides the settings file location.
	configPath string
	// logLevel overrides the level from the settings file.
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "pomodoro",
		Short: "Pomodoro timer with a fullscreen break overlay.",
		Long: `Desktop Pomodoro timer living in the system tray.

The tray title shows the countdown. Long breaks cover the screen with an
always-on-top overlay until the break ends or is skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return app.Run(ctx, app.Options{
				ConfigPath: configPath,
				LogLevel:   logLevel,
			})
		},
	}
)

func main() {
	defer logger.Sync()

	rootCmd.AddCommand(version.NewCommand())
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to settings YAML (default: user config dir)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		logger.Logger().Errorw("pomodoro failed", "error", err)
		logger.Sync()
		os.Exit(1)
	}
}

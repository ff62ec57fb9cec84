package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlie0129/battnotify/pkg/config"
	"github.com/charlie0129/battnotify/pkg/reader"
)

const defaultLogLevel = "warn"

var (
	logLevel   = defaultLogLevel
	configPath = config.DefaultPath()
)

func setupLogger(level string) error {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(l)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

// handleCmdError logs a hint for well-known reader errors. Cobra has
// already printed the error itself.
func handleCmdError(err error) {
	switch {
	case errors.Is(err, reader.ErrManagerUnavailable):
		logrus.Info("the battery backend could not be opened, try reader = \"system\" in the config file")
	case errors.Is(err, reader.ErrNoBatteryFound):
		logrus.Info("no battery was found, is this machine running on a battery?")
	case errors.Is(err, reader.ErrBatteryQueryFailed):
		logrus.Info("the battery was found but could not be read, run with -l debug for details")
	}
}

func main() {
	// Native modal dialogs (NSAlert) must run on the main thread.
	runtime.LockOSThread()

	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

// NewCommand returns the root command. Without subcommands it runs the
// poll loop until killed.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battnotify",
		Short: "battnotify reminds you to plug in or unplug your charger",
		Long: `battnotify polls the battery and shows an alert when the charge drops to 40%
or below while discharging, or reaches 80% or above while charging.

After an alert the battery is checked again in 2 seconds, otherwise every 2 minutes.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogger(logLevel)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd)
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", defaultLogLevel, "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")

	cmd.AddCommand(
		NewCheckCommand(),
		NewStatusCommand(),
		NewVersionCommand(),
	)

	return cmd
}

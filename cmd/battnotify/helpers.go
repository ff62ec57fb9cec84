package main

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battnotify/pkg/config"
	"github.com/charlie0129/battnotify/pkg/powerinfo"
)

// newReaderFunc opens the configured reader. Replaced in tests.
var newReaderFunc = newReader

// loadConfig loads the config file. Its log level only applies when
// --log-level was not given explicitly.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return nil, err
	}

	if lvl := conf.LogLevel(); lvl != "" && !cmd.Flags().Changed("log-level") {
		if err := setupLogger(lvl); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(conf.LogrusFields()).Debug("config loaded")

	return conf, nil
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

func directionText(d powerinfo.ChargeDirection) string {
	switch d {
	case powerinfo.Charging:
		return color.GreenString(d.String())
	case powerinfo.Discharging:
		return color.RedString(d.String())
	default:
		return d.String()
	}
}

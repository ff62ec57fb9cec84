package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battnotify/pkg/alert"
	"github.com/charlie0129/battnotify/pkg/monitor"
	"github.com/charlie0129/battnotify/pkg/notify"
	"github.com/charlie0129/battnotify/pkg/version"
)

// runWatch polls forever. It returns nil when interrupted and the reader
// error otherwise.
func runWatch(cmd *cobra.Command) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	n, err := notify.New(conf.Notifier())
	if err != nil {
		return err
	}

	r, closeReader, err := newReaderFunc(conf.Reader())
	if err != nil {
		return err
	}
	defer closeReader()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.WithFields(logrus.Fields{
		"version": version.Version,
		"commit":  version.GitCommit,
	}).Info("battnotify starting")

	err = monitor.New(r, alert.NewEngine(n)).Run(ctx)
	if err != nil {
		return err
	}

	logrus.Info("exiting")
	return nil
}

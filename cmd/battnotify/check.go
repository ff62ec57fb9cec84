package main

import (
	"github.com/spf13/cobra"

	"github.com/charlie0129/battnotify/pkg/alert"
	"github.com/charlie0129/battnotify/pkg/monitor"
	"github.com/charlie0129/battnotify/pkg/notify"
)

// NewCheckCommand .
func NewCheckCommand() *cobra.Command {
	dryRun := false

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a single poll cycle and exit",
		Long: `Read the battery once, raise an alert if needed, and print the decision.

Use --dry-run to log the alert instead of showing it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			backend := conf.Notifier()
			if dryRun {
				backend = notify.BackendLog
			}
			n, err := notify.New(backend)
			if err != nil {
				return err
			}

			r, closeReader, err := newReaderFunc(conf.Reader())
			if err != nil {
				return err
			}
			defer closeReader()

			reading, alerted, err := monitor.New(r, alert.NewEngine(n)).RunOnce()
			if err != nil {
				return err
			}

			cmd.Printf("Battery: %s, %s\n", bold("%d%%", reading.Percent()), directionText(reading.Direction))
			cmd.Printf("Alert raised: %s\n", bool2Text(alerted))
			cmd.Printf("Next check in: %s\n", bold("%s", monitor.NextInterval(alerted)))

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "log the alert instead of showing it")

	return cmd
}

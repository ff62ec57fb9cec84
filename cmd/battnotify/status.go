package main

import (
	"github.com/spf13/cobra"

	"github.com/charlie0129/battnotify/pkg/alert"
)

// NewStatusCommand .
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current battery reading",
		Long:  `Print the current battery reading and whether it would raise an alert. No alert is shown.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			r, closeReader, err := newReaderFunc(conf.Reader())
			if err != nil {
				return err
			}
			defer closeReader()

			reading, err := r.Read()
			if err != nil {
				return err
			}

			cmd.Println(bold("Battery status:"))
			cmd.Printf("  Current charge: %s\n", bold("%d%%", reading.Percent()))
			cmd.Printf("  State: %s\n", bold("%s", directionText(reading.Direction)))

			cmd.Println()

			cmd.Println(bold("Alerts:"))
			cmd.Printf("  Plug in charger at or below: %s\n", bold("%d%%", int(alert.LowThreshold*100)))
			cmd.Printf("  Take out charger at or above: %s\n", bold("%d%%", int(alert.HighThreshold*100)))
			msg, ok := alert.Message(reading.Fraction, reading.Direction)
			cmd.Printf("  Alert now: %s\n", bool2Text(ok))
			if ok {
				cmd.Printf("    %s\n", msg)
			}

			return nil
		},
	}
}

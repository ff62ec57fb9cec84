package config

import (
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battnotify/pkg/notify"
)

// ReaderBackend selects where battery readings come from.
type ReaderBackend string

const (
	// ReaderSystem reads through the OS power supply interfaces.
	ReaderSystem ReaderBackend = "system"
	// ReaderSMC reads the Apple SMC directly. darwin only.
	ReaderSMC ReaderBackend = "smc"
)

// ReaderBackends lists all valid reader backends.
var ReaderBackends = []ReaderBackend{ReaderSystem, ReaderSMC}

// Config holds the optional settings of battnotify. Alert thresholds and
// poll intervals are fixed and deliberately absent.
type Config interface {
	Notifier() notify.Backend
	Reader() ReaderBackend
	// LogLevel returns the configured log level, or "" if unset.
	LogLevel() string

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
}

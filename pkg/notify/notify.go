// Package notify shows battery alerts to the user through the platform's
// native facilities.
package notify

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battnotify/pkg/alert"
)

// Title is the title of every alert.
const Title = "Battery notification"

// Backend selects how alerts are shown.
type Backend string

const (
	// BackendModal shows a blocking dialog that the user has to dismiss.
	BackendModal Backend = "modal"
	// BackendDesktop shows a non-blocking desktop notification.
	BackendDesktop Backend = "desktop"
	// BackendLog only writes alerts to the log.
	BackendLog Backend = "log"
)

// Backends lists all valid backends.
var Backends = []Backend{BackendModal, BackendDesktop, BackendLog}

// ParseBackend validates s as a Backend.
func ParseBackend(s string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown notifier %q, valid notifiers are %v", s, Backends)
}

// New returns the notifier for b.
func New(b Backend) (alert.Notifier, error) {
	switch b {
	case BackendModal:
		return newModal(), nil
	case BackendDesktop:
		return &Desktop{}, nil
	case BackendLog:
		return &Log{}, nil
	default:
		return nil, fmt.Errorf("unknown notifier %q", b)
	}
}

// Log writes alerts to the standard logrus logger at warn level.
type Log struct{}

// Notify implements alert.Notifier.
func (*Log) Notify(message string) {
	logrus.WithField("title", Title).Warn(message)
}

// logFailure logs at info level, hidden by the default warn level.
func logFailure(backend Backend, err error) {
	logrus.WithFields(logrus.Fields{
		"notifier": backend,
	}).Infof("failed to show alert: %v", err)
}

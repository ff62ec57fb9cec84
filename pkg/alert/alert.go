// Package alert decides whether a battery reading deserves the user's
// attention and, if so, hands a message to a Notifier.
//
// The decision is a pure function of the charge fraction and direction:
//
//   - fraction <= LowThreshold while discharging asks the user to plug in
//   - fraction >= HighThreshold while charging asks the user to unplug
//   - anything else (including Full, Empty and Unknown) is ignored
//
// The percentage in the message is fraction*100 rounded half away from zero
// (math.Round), so 0.125 is reported as 13%.
package alert

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battnotify/pkg/powerinfo"
)

const (
	// LowThreshold is the inclusive upper bound for the plug-in alert.
	LowThreshold = 0.40
	// HighThreshold is the inclusive lower bound for the take-out alert.
	HighThreshold = 0.80
)

// Notifier displays a message to the user. Implementations own their
// failure handling; nothing is reported back.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// Message returns the alert text for the given reading, and whether an alert
// should be raised at all. It has no side effects.
func Message(fraction float64, direction powerinfo.ChargeDirection) (string, bool) {
	switch {
	case fraction <= LowThreshold && direction == powerinfo.Discharging:
		return fmt.Sprintf("Battery at %d%% - plug in charger", powerinfo.Percent(fraction)), true
	case fraction >= HighThreshold && direction == powerinfo.Charging:
		return fmt.Sprintf("Battery at %d%% - take out charger", powerinfo.Percent(fraction)), true
	default:
		return "", false
	}
}

// Engine couples the decision with a Notifier.
type Engine struct {
	notifier Notifier
}

// NewEngine returns an Engine that sends alerts to n.
func NewEngine(n Notifier) *Engine {
	if n == nil {
		panic("notifier cannot be nil")
	}

	return &Engine{notifier: n}
}

// Decide notifies the user if the reading crosses a threshold in the matching
// direction and reports whether it did.
func (e *Engine) Decide(fraction float64, direction powerinfo.ChargeDirection) bool {
	msg, ok := Message(fraction, direction)
	if !ok {
		return false
	}

	logrus.WithFields(logrus.Fields{
		"percent":   powerinfo.Percent(fraction),
		"direction": direction,
	}).Info("raising battery alert")

	e.notifier.Notify(msg)

	return true
}

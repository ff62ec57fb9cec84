package monitor

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battnotify/pkg/powerinfo"
	"github.com/charlie0129/battnotify/pkg/reader"
)

const (
	// AlertInterval is slept after an alert so the next reading reflects
	// whatever the user did about it.
	AlertInterval = 2 * time.Second
	// IdleInterval is slept when nothing was raised.
	IdleInterval = 120 * time.Second
)

// NextInterval returns how long to sleep after a cycle.
func NextInterval(alerted bool) time.Duration {
	if alerted {
		return AlertInterval
	}
	return IdleInterval
}

// Decider turns a reading into an alert decision.
type Decider interface {
	Decide(fraction float64, direction powerinfo.ChargeDirection) bool
}

// SleepFunc blocks for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Loop polls the battery, feeds the reading to a Decider and sleeps.
type Loop struct {
	reader  reader.Reader
	decider Decider
	sleep   SleepFunc
}

// New returns a Loop using a real timer for sleeping.
func New(r reader.Reader, d Decider) *Loop {
	return &Loop{
		reader:  r,
		decider: d,
		sleep:   sleepContext,
	}
}

// RunOnce reads the battery once and returns the decision.
func (l *Loop) RunOnce() (powerinfo.Reading, bool, error) {
	r, err := l.reader.Read()
	if err != nil {
		return powerinfo.Reading{}, false, err
	}

	alerted := l.decider.Decide(r.Fraction, r.Direction)

	logrus.WithFields(logrus.Fields{
		"percent":   r.Percent(),
		"direction": r.Direction,
		"alerted":   alerted,
	}).Debug("poll cycle")

	return r, alerted, nil
}

// Run polls until ctx is cancelled or the reader fails. Reader errors are
// returned as-is and are not retried. Cancellation is only observed while
// sleeping; a blocking notifier delays it until dismissed.
func (l *Loop) Run(ctx context.Context) error {
	logrus.Debug("poll loop starts")

	for {
		_, alerted, err := l.RunOnce()
		if err != nil {
			return err
		}

		interval := NextInterval(alerted)
		logrus.Tracef("next poll in %s", interval)

		if err := l.sleep(ctx, interval); err != nil {
			logrus.Debugf("poll loop stopped: %v", err)
			return nil
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

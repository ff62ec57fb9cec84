package reader

import (
	"errors"

	"github.com/distatus/battery"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battnotify/pkg/powerinfo"
)

// Reader returns a fresh battery reading on every call.
type Reader interface {
	Read() (powerinfo.Reading, error)
}

// System reads the battery through the operating system's power supply
// interfaces (sysfs, IOKit, WMI, ...). Only the first battery is used.
type System struct {
	getAll func() ([]*battery.Battery, error)
}

var _ Reader = &System{}

// NewSystem returns a System reader.
func NewSystem() *System {
	return &System{getAll: battery.GetAll}
}

// Read returns the charge fraction and direction of the first battery.
// Zero batteries is not an error: DefaultReading is returned instead.
func (s *System) Read() (powerinfo.Reading, error) {
	batteries, err := s.getAll()
	if err != nil {
		if kind := classify(err); kind != nil {
			return powerinfo.Reading{}, kind
		}
	}

	if len(batteries) == 0 || batteries[0] == nil {
		logrus.Debug("no batteries enumerated, using default reading")
		return powerinfo.DefaultReading, nil
	}

	bat := batteries[0]
	r := powerinfo.Reading{
		Direction: directionOf(bat.State),
	}
	if bat.Full > 0 {
		r.Fraction = powerinfo.ClampFraction(bat.Current / bat.Full)
	}

	logrus.WithFields(logrus.Fields{
		"current": bat.Current,
		"full":    bat.Full,
		"state":   bat.State,
	}).Trace("battery read")

	return r, nil
}

// classify maps errors from battery.GetAll to reader errors. It returns nil
// when the first battery is still usable despite partial errors.
func classify(err error) error {
	switch e := err.(type) {
	case battery.ErrFatal:
		if errors.Is(e.Err, battery.ErrNotFound) {
			return NewError(ErrNoBatteryFound, e.Err)
		}
		// Every per-battery query failed, the manager itself is fine.
		if errors.Is(e.Err, battery.ErrAllNotNil) {
			return NewError(ErrBatteryQueryFailed, e.Err)
		}
		return NewError(ErrManagerUnavailable, e.Err)
	case battery.Errors:
		if len(e) == 0 || e[0] == nil {
			return nil
		}
		return firstBatteryError(e[0])
	default:
		return NewError(ErrNoBatteryFound, err)
	}
}

func firstBatteryError(err error) error {
	switch e := err.(type) {
	case battery.ErrPartial:
		// Only state, current and full are needed for a reading.
		if e.State == nil && e.Current == nil && e.Full == nil {
			logrus.WithError(err).Debug("ignoring partial battery error")
			return nil
		}
		return NewError(ErrBatteryQueryFailed, err)
	case battery.ErrFatal:
		return NewError(ErrBatteryQueryFailed, e.Err)
	default:
		return NewError(ErrBatteryQueryFailed, err)
	}
}

func directionOf(s battery.State) powerinfo.ChargeDirection {
	switch s {
	case battery.Charging:
		return powerinfo.Charging
	case battery.Discharging:
		return powerinfo.Discharging
	case battery.Full:
		return powerinfo.Full
	case battery.Empty:
		return powerinfo.Empty
	default:
		return powerinfo.Unknown
	}
}

//go:build darwin

package smc

import (
	"github.com/charlie0129/gosmc"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battnotify/pkg/powerinfo"
	"github.com/charlie0129/battnotify/pkg/reader"
)

// SMC keys read by battnotify. Only verified on Apple Silicon.
const (
	// BatteryChargeKey holds the charge in percent.
	BatteryChargeKey = "BUIC"
	// ACPowerKey is positive while the power adapter is connected.
	ACPowerKey = "AC-W"
	// ChargingKey is zero while the SMC allows charging.
	ChargingKey = "CH0B"
)

// Reader reads the battery state straight from the SMC.
type Reader struct {
	conn gosmc.Connection
}

var _ reader.Reader = &Reader{}

// NewReader opens the SMC and returns a Reader. Call Close when done.
func NewReader() (*Reader, error) {
	conn := gosmc.New()
	if err := conn.Open(); err != nil {
		return nil, reader.NewError(reader.ErrManagerUnavailable, pkgerrors.Wrap(err, "failed to open smc"))
	}

	return newReader(conn), nil
}

func newReader(conn gosmc.Connection) *Reader {
	return &Reader{conn: conn}
}

// Read implements reader.Reader.
func (r *Reader) Read() (powerinfo.Reading, error) {
	charge, err := r.readByte(BatteryChargeKey)
	if err != nil {
		return powerinfo.Reading{}, err
	}
	ac, err := r.readByte(ACPowerKey)
	if err != nil {
		return powerinfo.Reading{}, err
	}
	ch, err := r.readByte(ChargingKey)
	if err != nil {
		return powerinfo.Reading{}, err
	}

	percent := int(charge)
	pluggedIn := int8(ac) > 0
	chargingEnabled := ch == 0x0

	logrus.WithFields(logrus.Fields{
		"charge":          percent,
		"pluggedIn":       pluggedIn,
		"chargingEnabled": chargingEnabled,
	}).Trace("smc battery read")

	return powerinfo.Reading{
		Fraction:  powerinfo.ClampFraction(float64(percent) / 100),
		Direction: direction(percent, pluggedIn, chargingEnabled),
	}, nil
}

// Close closes the SMC connection.
func (r *Reader) Close() error {
	return r.conn.Close()
}

// readByte reads a single-byte key.
func (r *Reader) readByte(key string) (byte, error) {
	v, err := r.conn.Read(key)
	if err != nil {
		return 0, reader.NewError(reader.ErrBatteryQueryFailed, pkgerrors.Wrapf(err, "failed to read smc key %s", key))
	}
	if len(v.Bytes) != 1 {
		return 0, reader.NewError(reader.ErrBatteryQueryFailed, pkgerrors.Errorf("smc key %s: incorrect data length %d!=1", key, len(v.Bytes)))
	}

	return v.Bytes[0], nil
}

func direction(charge int, pluggedIn, chargingEnabled bool) powerinfo.ChargeDirection {
	switch {
	case charge >= 100 && pluggedIn:
		return powerinfo.Full
	case !pluggedIn && charge <= 0:
		return powerinfo.Empty
	case !pluggedIn:
		return powerinfo.Discharging
	case chargingEnabled:
		return powerinfo.Charging
	default:
		// Plugged in but held by a charge limiter.
		return powerinfo.Unknown
	}
}

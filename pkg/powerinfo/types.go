package powerinfo

import (
	"fmt"
	"math"
)

// ChargeDirection represents whether the battery is gaining or losing charge.
type ChargeDirection int

const (
	// Unknown indicates the platform could not tell the direction.
	Unknown ChargeDirection = iota
	// Charging indicates the battery is charging.
	Charging
	// Discharging indicates the battery is discharging.
	Discharging
	// Full indicates the battery is full.
	Full
	// Empty indicates the battery is empty.
	Empty
)

func (d ChargeDirection) String() string {
	switch d {
	case Charging:
		return "charging"
	case Discharging:
		return "discharging"
	case Full:
		return "full"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Reading is a single battery sample. It is produced fresh every poll cycle
// and never carried over to the next one.
type Reading struct {
	// Fraction is the state of charge in [0.0, 1.0].
	Fraction  float64         `json:"fraction"`
	Direction ChargeDirection `json:"direction"`
}

// DefaultReading is reported when the platform enumerates zero batteries.
var DefaultReading = Reading{Fraction: 0, Direction: Unknown}

// Percent returns the fraction scaled to 0-100, rounded half away from zero.
func Percent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

// Percent returns the charge of r in percent.
func (r Reading) Percent() int {
	return Percent(r.Fraction)
}

func (r Reading) String() string {
	return fmt.Sprintf("%d%% (%s)", r.Percent(), r.Direction)
}

// ClampFraction limits f to [0.0, 1.0]. NaN is treated as 0.
func ClampFraction(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

package powerinfo

import (
	"math"
	"testing"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     int
	}{
		{name: "zero", fraction: 0, want: 0},
		{name: "thirty", fraction: 0.30, want: 30},
		{name: "ninety", fraction: 0.90, want: 90},
		{name: "half rounds away from zero", fraction: 0.125, want: 13},
		{name: "just below half", fraction: 0.1249, want: 12},
		{name: "full", fraction: 1, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.fraction); got != tt.want {
				t.Errorf("Percent(%v) = %v, want %v", tt.fraction, got, tt.want)
			}
		})
	}
}

func TestClampFraction(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "in range", in: 0.42, want: 0.42},
		{name: "negative", in: -0.1, want: 0},
		{name: "above one", in: 1.02, want: 1},
		{name: "nan", in: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampFraction(tt.in); got != tt.want {
				t.Errorf("ClampFraction(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestChargeDirectionString(t *testing.T) {
	tests := []struct {
		d    ChargeDirection
		want string
	}{
		{Charging, "charging"},
		{Discharging, "discharging"},
		{Full, "full"},
		{Empty, "empty"},
		{Unknown, "unknown"},
		{ChargeDirection(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("ChargeDirection(%d).String() = %q, want %q", int(tt.d), got, tt.want)
		}
	}
}

func TestReadingString(t *testing.T) {
	r := Reading{Fraction: 0.38, Direction: Discharging}
	if got, want := r.String(), "38% (discharging)"; got != want {
		t.Errorf("Reading.String() = %q, want %q", got, want)
	}
}

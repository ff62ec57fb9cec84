//go:build darwin

package smc

import (
	"testing"

	"github.com/charlie0129/gosmc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie0129/battnotify/pkg/powerinfo"
	"github.com/charlie0129/battnotify/pkg/reader"
)

func newMockReader(t *testing.T, values map[string][]byte) *Reader {
	t.Helper()

	conn := gosmc.NewMockConnection()
	for key, value := range values {
		require.NoError(t, conn.Write(key, value))
	}

	return newReader(conn)
}

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name   string
		values map[string][]byte
		want   powerinfo.Reading
	}{
		{
			name: "on battery",
			values: map[string][]byte{
				BatteryChargeKey: {38},
				ACPowerKey:       {0},
				ChargingKey:      {0x0},
			},
			want: powerinfo.Reading{Fraction: 0.38, Direction: powerinfo.Discharging},
		},
		{
			name: "charging",
			values: map[string][]byte{
				BatteryChargeKey: {88},
				ACPowerKey:       {1},
				ChargingKey:      {0x0},
			},
			want: powerinfo.Reading{Fraction: 0.88, Direction: powerinfo.Charging},
		},
		{
			name: "charging inhibited",
			values: map[string][]byte{
				BatteryChargeKey: {80},
				ACPowerKey:       {1},
				ChargingKey:      {0x2},
			},
			want: powerinfo.Reading{Fraction: 0.8, Direction: powerinfo.Unknown},
		},
		{
			name: "full",
			values: map[string][]byte{
				BatteryChargeKey: {100},
				ACPowerKey:       {1},
				ChargingKey:      {0x0},
			},
			want: powerinfo.Reading{Fraction: 1, Direction: powerinfo.Full},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMockReader(t, tt.values)

			got, err := r.Read()
			require.NoError(t, err)
			assert.Equal(t, tt.want.Direction, got.Direction)
			assert.InDelta(t, tt.want.Fraction, got.Fraction, 1e-9)
		})
	}
}

func TestReader_ReadBadLength(t *testing.T) {
	r := newMockReader(t, map[string][]byte{
		BatteryChargeKey: {1, 2},
		ACPowerKey:       {0},
		ChargingKey:      {0x0},
	})

	_, err := r.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, reader.ErrBatteryQueryFailed)
	assert.Contains(t, err.Error(), BatteryChargeKey)
}

func TestReader_ReadMissingKey(t *testing.T) {
	r := newMockReader(t, map[string][]byte{
		BatteryChargeKey: {50},
		ACPowerKey:       {1},
	})

	_, err := r.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, reader.ErrBatteryQueryFailed)
	assert.Contains(t, err.Error(), ChargingKey)
}

func TestDirection(t *testing.T) {
	tests := []struct {
		charge          int
		pluggedIn       bool
		chargingEnabled bool
		want            powerinfo.ChargeDirection
	}{
		{50, false, true, powerinfo.Discharging},
		{0, false, true, powerinfo.Empty},
		{50, true, true, powerinfo.Charging},
		{50, true, false, powerinfo.Unknown},
		{100, true, false, powerinfo.Full},
	}
	for _, tt := range tests {
		if got := direction(tt.charge, tt.pluggedIn, tt.chargingEnabled); got != tt.want {
			t.Errorf("direction(%d, %t, %t) = %v, want %v", tt.charge, tt.pluggedIn, tt.chargingEnabled, got, tt.want)
		}
	}
}

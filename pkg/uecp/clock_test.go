package uecp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealTimeClockSetDecodeSpecExample(t *testing.T) {
	data := []byte{0x0D, 0x02, 0x09, 0x0C, 0x0A, 0x12, 0x21, 0x0F, 0x02}
	cmd, consumed, err := decodeRealTimeClockSet(data)
	require.NoError(t, err)
	assert.Equal(t, 9, consumed)

	rtc := cmd.(RealTimeClockSet)
	_, offset := rtc.Timestamp.Zone()
	assert.Equal(t, 3600, offset)
	utc := rtc.Timestamp.UTC()
	assert.Equal(t, 2002, utc.Year())
	assert.Equal(t, time.September, utc.Month())
	assert.Equal(t, 12, utc.Day())
	assert.Equal(t, 10, utc.Hour())
	assert.Equal(t, 18, utc.Minute())
	assert.Equal(t, 33, utc.Second())
	assert.Equal(t, 150000000, utc.Nanosecond())
}

func TestRealTimeClockSetRoundTrip(t *testing.T) {
	loc := time.FixedZone("", -5*1800)
	ts := time.Date(2024, time.March, 1, 13, 45, 30, 200000000, loc)
	cmd := RealTimeClockSet{Timestamp: ts}
	decoded, consumed, err := decodeRealTimeClockSet(cmd.Encode())
	require.NoError(t, err)
	assert.Equal(t, 9, consumed)
	rtc := decoded.(RealTimeClockSet)
	assert.True(t, rtc.Timestamp.Equal(ts))
	_, offset := rtc.Timestamp.Zone()
	assert.Equal(t, -5*1800, offset)
}

func TestRealTimeClockCorrectionEncode(t *testing.T) {
	cmd := RealTimeClockCorrection{AdjustmentMs: -1}
	assert.Equal(t, []byte{0x09, 0xFF, 0xFF}, cmd.Encode())
}

func TestRealTimeClockCorrectionRoundTrip(t *testing.T) {
	cmd := RealTimeClockCorrection{AdjustmentMs: 12345}
	decoded, consumed, err := decodeRealTimeClockCorrection(cmd.Encode())
	require.NoError(t, err)
	assert.Equal(t, 3, consumed)
	assert.Equal(t, int16(12345), decoded.(RealTimeClockCorrection).AdjustmentMs)
}

func TestRealTimeClockEnableRejectsInvalidByte(t *testing.T) {
	_, _, err := decodeRealTimeClockEnable([]byte{0x19, 0x02})
	require.Error(t, err)
}

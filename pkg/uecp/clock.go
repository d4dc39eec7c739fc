package uecp

import (
	"encoding/binary"
	"time"
)

// RealTimeClockSet is MEC 0x0D. Timestamp carries whatever location the
// caller set it in; Encode reads that location's offset at the instant
// represented and encodes it as the localtime-offset byte, while the
// date/time fields themselves are encoded in UTC.
type RealTimeClockSet struct {
	Timestamp time.Time
}

func (c RealTimeClockSet) Mec() byte { return 0x0D }

func (c RealTimeClockSet) Encode() []byte {
	utc := c.Timestamp.UTC()
	_, offsetSeconds := c.Timestamp.Zone()
	return []byte{
		c.Mec(),
		byte(utc.Year() % 100),
		byte(utc.Month()),
		byte(utc.Day()),
		byte(utc.Hour()),
		byte(utc.Minute()),
		byte(utc.Second()),
		byte(roundDiv(utc.Nanosecond()/1000, 10000)),
		encodeLocaltimeOffset(offsetSeconds),
	}
}

func decodeRealTimeClockSet(data []byte) (Command, int, error) {
	if len(data) < 9 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 9}
	}
	mec := data[0]
	if mec != 0x0D {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x0D}
	}
	year, month, day := data[1], data[2], data[3]
	hour, minute, second := data[4], data[5], data[6]
	centisecond := data[7]
	offsetSeconds, err := decodeLocaltimeOffset(data[8])
	if err != nil {
		return nil, 0, err
	}
	utc := time.Date(2000+int(year), time.Month(month), int(day), int(hour), int(minute), int(second),
		int(centisecond)*10000*1000, time.UTC)
	loc := time.FixedZone("", offsetSeconds)
	return RealTimeClockSet{Timestamp: utc.In(loc)}, 9, nil
}

func roundDiv(n, d int) int {
	if n < 0 {
		return -roundDiv(-n, d)
	}
	return (n + d/2) / d
}

func encodeLocaltimeOffset(offsetSeconds int) byte {
	sign := byte(0)
	if offsetSeconds < 0 {
		sign = 1
		offsetSeconds = -offsetSeconds
	}
	halfHours := byte(roundDiv(offsetSeconds, 1800))
	return sign<<6 | halfHours
}

func decodeLocaltimeOffset(b byte) (int, error) {
	if b > 0x7F {
		return 0, &InvalidFieldError{Field: "localtime_offset", Value: b}
	}
	sign := 1
	if b&(1<<6) != 0 {
		sign = -1
	}
	halfHours := int(b & 0b11111)
	return sign * halfHours * 1800, nil
}

// RealTimeClockCorrection is MEC 0x09: a signed 16-bit millisecond
// adjustment, big-endian.
type RealTimeClockCorrection struct {
	AdjustmentMs int16
}

func (c RealTimeClockCorrection) Mec() byte { return 0x09 }

func (c RealTimeClockCorrection) Encode() []byte {
	out := make([]byte, 3)
	out[0] = c.Mec()
	binary.BigEndian.PutUint16(out[1:], uint16(c.AdjustmentMs))
	return out
}

func decodeRealTimeClockCorrection(data []byte) (Command, int, error) {
	if len(data) < 3 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 3}
	}
	mec := data[0]
	if mec != 0x09 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x09}
	}
	adjustment := int16(binary.BigEndian.Uint16(data[1:3]))
	return RealTimeClockCorrection{AdjustmentMs: adjustment}, 3, nil
}

// RealTimeClockEnable is MEC 0x19.
type RealTimeClockEnable struct {
	Enable bool
}

func (c RealTimeClockEnable) Mec() byte { return 0x19 }

func (c RealTimeClockEnable) Encode() []byte {
	return []byte{c.Mec(), boolByte(c.Enable)}
}

func decodeRealTimeClockEnable(data []byte) (Command, int, error) {
	if len(data) < 2 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 2}
	}
	mec := data[0]
	if mec != 0x19 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x19}
	}
	enable := data[1]
	if enable != 0x00 && enable != 0x01 {
		return nil, 0, &InvalidFieldError{Field: "enable", Value: enable}
	}
	return RealTimeClockEnable{Enable: enable == 0x01}, 2, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func init() {
	register(0x0D, "RealTimeClockSet", false, false, decodeRealTimeClockSet)
	register(0x09, "RealTimeClockCorrection", false, false, decodeRealTimeClockCorrection)
	register(0x19, "RealTimeClockEnable", false, false, decodeRealTimeClockEnable)
}

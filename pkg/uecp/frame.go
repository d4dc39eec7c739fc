package uecp

import (
	"github.com/chrko/uecp-go/pkg/crc16"
	"github.com/chrko/uecp-go/pkg/stuffing"
)

const (
	sta byte = 0xFE
	stp byte = 0xFF
)

// Frame is the on-wire container: site/encoder address, sequence
// counter, and an ordered command list whose concatenated encoding
// must not exceed 255 bytes.
type Frame struct {
	SiteAddress     uint16
	EncoderAddress  byte
	SequenceCounter byte
	commands        []Command
	payloadLen      int
}

// NewFrame validates the addressing fields and returns an empty frame.
func NewFrame(siteAddress uint16, encoderAddress, sequenceCounter byte) (*Frame, error) {
	if siteAddress > 0x3FF {
		return nil, &InvalidFieldError{Field: "site_address", Value: siteAddress}
	}
	if encoderAddress > 0x3F {
		return nil, &InvalidFieldError{Field: "encoder_address", Value: encoderAddress}
	}
	return &Frame{SiteAddress: siteAddress, EncoderAddress: encoderAddress, SequenceCounter: sequenceCounter}, nil
}

// AddCommand appends commands to the frame, rejecting any addition that
// would push the encoded payload length above 255 bytes.
func (f *Frame) AddCommand(commands ...Command) error {
	for _, cmd := range commands {
		encoded := len(cmd.Encode())
		if f.payloadLen+encoded > 255 {
			return &PayloadOverflowError{Have: f.payloadLen, Added: encoded}
		}
		f.payloadLen += encoded
		f.commands = append(f.commands, cmd)
	}
	return nil
}

// ClearCommands empties the frame's command list.
func (f *Frame) ClearCommands() {
	f.commands = nil
	f.payloadLen = 0
}

// Commands returns a copy of the frame's command list.
func (f *Frame) Commands() []Command {
	out := make([]Command, len(f.commands))
	copy(out, f.commands)
	return out
}

// Encode produces the complete framed bytes: STA, byte-stuffed
// CRC-covered region, STP.
func (f *Frame) Encode() ([]byte, error) {
	address := f.SiteAddress<<6 | uint16(f.EncoderAddress)

	var msgData []byte
	for _, cmd := range f.commands {
		msgData = append(msgData, cmd.Encode()...)
	}
	if len(msgData) > 255 {
		return nil, &PayloadOverflowError{Have: 0, Added: len(msgData)}
	}

	raw := []byte{byte(address >> 8), byte(address & 0xFF), f.SequenceCounter, byte(len(msgData))}
	raw = append(raw, msgData...)

	crc := crc16.Checksum(raw)
	raw = append(raw, byte(crc>>8), byte(crc&0xFF))

	stuffed := stuffing.Encode(raw)

	out := make([]byte, 0, len(stuffed)+2)
	out = append(out, sta)
	out = append(out, stuffed...)
	out = append(out, stp)
	return out, nil
}

// decodeEnclosed parses the de-stuffed CRC-covered region of a frame
// (everything between STA and STP once unstuffed).
func decodeEnclosed(data []byte) (*Frame, error) {
	if len(data) < 6 {
		return nil, &NotEnoughDataError{Have: len(data), Need: 6}
	}

	body, crcHi, crcLo := data[:len(data)-2], data[len(data)-2], data[len(data)-1]
	crcWant := uint16(crcHi)<<8 | uint16(crcLo)
	crcGot := crc16.Checksum(body)
	if crcGot != crcWant {
		return nil, &CrcMismatchError{Got: crcGot, Expected: crcWant}
	}

	addressHi, addressLo, sequenceCounter := body[0], body[1], body[2]
	mel, msgData := body[3], body[4:]
	if int(mel) != len(msgData) {
		return nil, &LengthMismatchError{Declared: int(mel), Actual: len(msgData)}
	}

	address := uint16(addressHi)<<8 | uint16(addressLo)
	siteAddress := address >> 6
	encoderAddress := byte(address & 0x3F)

	commands, err := DecodeSequence(msgData)
	if err != nil {
		return nil, err
	}

	frame, err := NewFrame(siteAddress, encoderAddress, sequenceCounter)
	if err != nil {
		return nil, err
	}
	if err := frame.AddCommand(commands...); err != nil {
		return nil, err
	}
	return frame, nil
}

// Decoder is the incremental, byte-driven frame decoder: it accepts
// bytes in any chunking and yields complete frames as their STP arrives.
// It carries no concurrency of its own; callers serialize access to a
// single stream through a single Decoder.
type Decoder struct {
	startSeen bool
	buffer    []byte
	stuff     stuffing.Decoder
}

// Reset abandons any in-progress frame and returns the decoder to its
// initial state. Idempotent; this is the cancellation primitive for a
// transport that has timed out or disconnected.
func (d *Decoder) Reset() {
	d.startSeen = false
	d.buffer = d.buffer[:0]
	d.stuff.Reset()
}

// Empty reports whether the decoder holds no partial frame state.
func (d *Decoder) Empty() bool {
	return len(d.buffer) == 0 && !d.stuff.Pending()
}

// Push feeds bytes into the decoder. It returns the first complete
// frame found (nil if none yet) along with the bytes remaining in data
// after that frame's STP. Call Push again on the remainder to continue
// decoding subsequent frames in the same chunk.
func (d *Decoder) Push(data []byte) (*Frame, []byte, error) {
	for i, b := range data {
		switch {
		case b == sta:
			d.startSeen = true
			d.buffer = d.buffer[:0]
			d.stuff.Reset()
		case b == stp:
			if !d.startSeen {
				d.Reset()
				return nil, data[i+1:], &FramingError{msg: "stop delimiter seen without start delimiter"}
			}
			if len(d.buffer) <= 1 {
				d.Reset()
				return nil, data[i+1:], &FramingError{msg: "stop delimiter seen before any payload data decoded"}
			}
			frame, err := decodeEnclosed(d.buffer)
			d.Reset()
			if err != nil {
				return nil, data[i+1:], err
			}
			return frame, data[i+1:], nil
		default:
			decoded, err := d.stuff.Decode([]byte{b})
			if err != nil {
				d.Reset()
				return nil, data[i+1:], &StuffingError{Err: err}
			}
			d.buffer = append(d.buffer, decoded...)
		}
	}
	return nil, nil, nil
}

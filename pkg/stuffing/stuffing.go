// Package stuffing implements the UECP byte-stuffing (transparency)
// codec: escapes 0xFD, 0xFE and 0xFF inside a frame's enclosed data so
// the STA/STP delimiter bytes never appear in the payload.
package stuffing

import "fmt"

const (
	escape byte = 0xFD
	sta    byte = 0xFE
	stp    byte = 0xFF
)

// Error reports a malformed stuffed sequence.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// Encode escapes every occurrence of 0xFD, 0xFE and 0xFF in data.
func Encode(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		switch b {
		case escape:
			out = append(out, escape, 0x00)
		case sta:
			out = append(out, escape, 0x01)
		case stp:
			out = append(out, escape, 0x02)
		default:
			out = append(out, b)
		}
	}
	return out
}

// Decoder is an incremental byte-stuffing decoder: it can be fed data in
// arbitrary chunks and tracks whether the previous byte was an escape.
type Decoder struct {
	escaped bool
}

// Reset clears any pending escape state.
func (d *Decoder) Reset() {
	d.escaped = false
}

// Pending reports whether the decoder is mid-escape-sequence, i.e. the
// last byte fed was 0xFD and its successor has not arrived yet.
func (d *Decoder) Pending() bool {
	return d.escaped
}

// Decode unescapes data and returns the decoded bytes; an escape byte
// at the end of data is carried over to the next call. It returns an
// error if an escape byte is followed by anything other than 0x00, 0x01
// or 0x02.
func (d *Decoder) Decode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		switch {
		case d.escaped:
			switch b {
			case 0x00:
				out = append(out, escape)
			case 0x01:
				out = append(out, sta)
			case 0x02:
				out = append(out, stp)
			default:
				d.escaped = false
				return out, &Error{fmt.Sprintf("stuffing: invalid escape successor 0x%02X", b)}
			}
			d.escaped = false
		case b == escape:
			d.escaped = true
		case b == sta || b == stp:
			return out, &Error{fmt.Sprintf("stuffing: unescaped delimiter byte 0x%02X in stream", b)}
		default:
			out = append(out, b)
		}
	}
	return out, nil
}

// Finalize must be called once no more bytes for this stuffed run will
// arrive. It fails if the decoder is left mid-escape-sequence.
func (d *Decoder) Finalize() error {
	if d.escaped {
		d.escaped = false
		return &Error{"stuffing: truncated escape sequence at end of frame"}
	}
	return nil
}

// Unstuff is a convenience one-shot decode of a complete stuffed buffer.
func Unstuff(data []byte) ([]byte, error) {
	var d Decoder
	out, err := d.Decode(data)
	if err != nil {
		return out, err
	}
	if err := d.Finalize(); err != nil {
		return out, err
	}
	return out, nil
}

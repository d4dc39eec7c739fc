package uecp

import (
	"github.com/chrko/uecp-go/pkg/charset"
)

// RadioTextBufferConfiguration selects how a decoder applies new
// RadioText to its display buffer. 0b01 and 0b11 are reserved and
// rejected by the decoder.
type RadioTextBufferConfiguration byte

const (
	RadioTextTruncateBefore RadioTextBufferConfiguration = 0b00
	RadioTextAppend         RadioTextBufferConfiguration = 0b10
)

// InfiniteTransmissions is the NumberOfTransmissions sentinel meaning
// "repeat forever".
const InfiniteTransmissions byte = 0

// RadioTextSet is MEC 0x0A. Flush set to true is the flush-only form:
// no flags or text accompany it, but the DSN/PSN the element was
// addressed to are still meaningful and preserved.
type RadioTextSet struct {
	dsnPsn
	Flush                 bool
	Text                  string
	NumberOfTransmissions byte
	ABToggle              bool
	BufferConfiguration   RadioTextBufferConfiguration
}

// NewRadioTextFlush builds the flush-only form of RadioTextSet: clear
// the encoder's buffer for the given DSN/PSN without supplying new text.
func NewRadioTextFlush(dsn, psn byte) RadioTextSet {
	return RadioTextSet{dsnPsn: dsnPsn{dsn: dsn, psn: psn}, Flush: true}
}

// NewRadioTextSet validates text against the RadioText invariants: 1-64
// characters, RDS-encodable, and terminated with a carriage return if
// shorter than 61 characters unless autoAppendCR supplies one.
func NewRadioTextSet(text string, numberOfTransmissions byte, abToggle bool, bufferConfiguration RadioTextBufferConfiguration, dsn, psn byte, autoAppendCR bool) (RadioTextSet, error) {
	if bufferConfiguration != RadioTextTruncateBefore && bufferConfiguration != RadioTextAppend {
		return RadioTextSet{}, &InvalidFieldError{Field: "buffer_configuration", Value: bufferConfiguration}
	}
	if numberOfTransmissions > 0x0F {
		return RadioTextSet{}, &InvalidFieldError{Field: "number_of_transmissions", Value: numberOfTransmissions}
	}
	if len(text) == 0 {
		return RadioTextSet{}, &InvalidFieldError{Field: "text", Value: text}
	}
	if autoAppendCR && len(text) > 0 && len(text) < 61 && text[len(text)-1] != '\r' {
		text += "\r"
	}
	if err := validateRadioText(text); err != nil {
		return RadioTextSet{}, err
	}
	return RadioTextSet{
		dsnPsn:                dsnPsn{dsn: dsn, psn: psn},
		Text:                  text,
		NumberOfTransmissions: numberOfTransmissions,
		ABToggle:              abToggle,
		BufferConfiguration:   bufferConfiguration,
	}, nil
}

func validateRadioText(text string) error {
	if len(text) > 64 || len(text) == 0 {
		return &InvalidFieldError{Field: "text", Value: text}
	}
	if len(text) < 61 && text[len(text)-1] != '\r' {
		return &InvalidFieldError{Field: "text", Value: text}
	}
	if _, err := charset.Encode(text); err != nil {
		return &CharsetError{Err: err}
	}
	return nil
}

func (c RadioTextSet) Mec() byte { return 0x0A }

func (c RadioTextSet) Encode() []byte {
	if c.Flush {
		return []byte{c.Mec(), c.dsn, c.psn, 0}
	}
	textBytes, _ := charset.Encode(c.Text)
	mel := 1 + len(textBytes)
	flags := byte(c.BufferConfiguration)<<5 | c.NumberOfTransmissions<<1 | boolByte(c.ABToggle)
	out := []byte{c.Mec(), c.dsn, c.psn, byte(mel), flags}
	return append(out, textBytes...)
}

func decodeRadioTextSet(data []byte) (Command, int, error) {
	if len(data) < 4 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 4}
	}
	mec, dsn, psn, mel := data[0], data[1], data[2], data[3]
	if mec != 0x0A {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x0A}
	}
	if mel == 0 {
		return NewRadioTextFlush(dsn, psn), 4, nil
	}
	body := data[4:]
	if len(body) < int(mel) {
		return nil, 0, &NotEnoughDataError{Have: len(body), Need: int(mel)}
	}
	flags := body[0]
	bufferConfiguration := RadioTextBufferConfiguration((flags & 0b0110_0000) >> 5)
	numberOfTransmissions := (flags & 0b0001_1110) >> 1
	abToggle := flags&0b0000_0001 != 0
	textBytes := body[1:mel]
	text, err := charset.Decode(textBytes)
	if err != nil {
		return nil, 0, &CharsetError{Err: err}
	}
	if bufferConfiguration != RadioTextTruncateBefore && bufferConfiguration != RadioTextAppend {
		return nil, 0, &InvalidFieldError{Field: "buffer_configuration", Value: bufferConfiguration}
	}
	return RadioTextSet{
		dsnPsn:                dsnPsn{dsn: dsn, psn: psn},
		Text:                  text,
		NumberOfTransmissions: numberOfTransmissions,
		ABToggle:              abToggle,
		BufferConfiguration:   bufferConfiguration,
	}, 4 + int(mel), nil
}

func init() {
	register(0x0A, "RadioTextSet", true, true, decodeRadioTextSet)
}

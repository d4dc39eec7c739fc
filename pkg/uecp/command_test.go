package uecp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrySize(t *testing.T) {
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x07, 0x09, 0x0A, 0x0D, 0x0E, 0x17, 0x18, 0x19, 0x1C, 0x1E, 0x22, 0x23, 0x27, 0x2C, 0x3E}
	got := RegisteredMecs()
	assert.Equal(t, want, got)
	assert.Len(t, got, 19)
}

func TestDecodeSequenceUnknownMec(t *testing.T) {
	_, err := DecodeSequence([]byte{0x99, 0x01})
	assert.Error(t, err)
	var unknown *UnknownMecError
	assert.ErrorAs(t, err, &unknown)
}

func TestDecodeSequenceMultipleCommands(t *testing.T) {
	data := append(RDSEnable{Enable: true}.Encode(), RealTimeClockEnable{Enable: false}.Encode()...)
	commands, err := DecodeSequence(data)
	assert.NoError(t, err)
	assert.Len(t, commands, 2)
	assert.Equal(t, RDSEnable{Enable: true}, commands[0])
	assert.Equal(t, RealTimeClockEnable{Enable: false}, commands[1])
}

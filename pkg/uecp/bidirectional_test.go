package uecp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcknowledgementShortForm(t *testing.T) {
	cmd := Acknowledgement{Code: ResponseOK}
	assert.Equal(t, []byte{0x18, 0x00}, cmd.Encode())
}

func TestAcknowledgementLongForm(t *testing.T) {
	cmd := Acknowledgement{Code: ResponseMsgNotReceived, SequenceCounter: 0x42}
	assert.Equal(t, []byte{0x18, 0x02, 0x42}, cmd.Encode())
}

func TestAcknowledgementDecodeShortForm(t *testing.T) {
	decoded, consumed, err := decodeAcknowledgement([]byte{0x18, 0x00})
	require.NoError(t, err)
	assert.Equal(t, 2, consumed)
	assert.Equal(t, Acknowledgement{Code: ResponseOK}, decoded)
}

func TestRequestRoundTripWithDSNAndPSN(t *testing.T) {
	dsn, psn := byte(0x01), byte(0x02)
	req, err := NewRequest(0x01, &dsn, &psn, nil)
	require.NoError(t, err)

	encoded := req.Encode()
	assert.Equal(t, []byte{0x17, 0x03, 0x01, 0x01, 0x02}, encoded)

	decoded, consumed, err := decodeRequest(encoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), consumed)
	r := decoded.(Request)
	assert.Equal(t, byte(0x01), r.ElementCode)
	require.NotNil(t, r.DataSetNumber)
	assert.Equal(t, dsn, *r.DataSetNumber)
	require.NotNil(t, r.ProgrammeServiceNumber)
	assert.Equal(t, psn, *r.ProgrammeServiceNumber)
}

func TestRequestNoAddressFieldsForAddresslessElement(t *testing.T) {
	req, err := NewRequest(0x1E, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x17, 0x01, 0x1E}, req.Encode())
}

func TestNewRequestRejectsMissingDSN(t *testing.T) {
	psn := byte(0x01)
	_, err := NewRequest(0x01, nil, &psn, nil)
	require.Error(t, err)
}

func TestNewRequestRejectsUnknownElement(t *testing.T) {
	_, err := NewRequest(0x99, nil, nil, nil)
	require.Error(t, err)
}

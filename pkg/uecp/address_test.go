package uecp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteAddressSetRoundTrip(t *testing.T) {
	cmd := SiteAddressSet{Mode: AddressModeAddSingle, Address: 0x3FF}
	decoded, consumed, err := decodeSiteAddressSet(cmd.Encode())
	require.NoError(t, err)
	assert.Equal(t, 4, consumed)
	assert.Equal(t, cmd, decoded)
}

func TestSiteAddressSetRejectsOutOfRange(t *testing.T) {
	_, _, err := decodeSiteAddressSet([]byte{0x23, 0x01, 0xFF, 0xFF})
	require.Error(t, err)
}

func TestEncoderAddressSetRoundTrip(t *testing.T) {
	cmd := EncoderAddressSet{Mode: AddressModeRemoveAll, Address: 0x3F}
	decoded, consumed, err := decodeEncoderAddressSet(cmd.Encode())
	require.NoError(t, err)
	assert.Equal(t, 3, consumed)
	assert.Equal(t, cmd, decoded)
}

func TestCommsModeSetRoundTrip(t *testing.T) {
	cmd := CommsModeSet{Mode: CommsModeBidirectionalSpontaneous}
	decoded, _, err := decodeCommsModeSet(cmd.Encode())
	require.NoError(t, err)
	assert.Equal(t, cmd, decoded)
}

func TestDataSetSelectRejectsZero(t *testing.T) {
	_, _, err := decodeDataSetSelect([]byte{0x1C, 0x00})
	require.Error(t, err)
}

func TestNewSiteAddressSetRejectsOutOfRange(t *testing.T) {
	_, err := NewSiteAddressSet(AddressModeAddSingle, 0x400)
	require.Error(t, err)
	cmd, err := NewSiteAddressSet(AddressModeAddSingle, 0x3FF)
	require.NoError(t, err)
	assert.Equal(t, SiteAddressSet{Mode: AddressModeAddSingle, Address: 0x3FF}, cmd)
}

func TestNewEncoderAddressSetRejectsOutOfRange(t *testing.T) {
	_, err := NewEncoderAddressSet(AddressModeRemoveAll, 0x40)
	require.Error(t, err)
	cmd, err := NewEncoderAddressSet(AddressModeRemoveAll, 0x3F)
	require.NoError(t, err)
	assert.Equal(t, EncoderAddressSet{Mode: AddressModeRemoveAll, Address: 0x3F}, cmd)
}

func TestNewCommsModeSetRejectsOutOfRange(t *testing.T) {
	_, err := NewCommsModeSet(CommsMode(3))
	require.Error(t, err)
	cmd, err := NewCommsModeSet(CommsModeBidirectionalSpontaneous)
	require.NoError(t, err)
	assert.Equal(t, CommsModeSet{Mode: CommsModeBidirectionalSpontaneous}, cmd)
}

func TestNewDataSetSelectRejectsZero(t *testing.T) {
	_, err := NewDataSetSelect(0x00)
	require.Error(t, err)
	cmd, err := NewDataSetSelect(0x01)
	require.NoError(t, err)
	assert.Equal(t, DataSetSelect{DataSetNumber: 0x01}, cmd)
}

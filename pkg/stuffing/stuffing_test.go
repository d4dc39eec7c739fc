package stuffing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEscapesSpecialBytes(t *testing.T) {
	in := []byte{0x01, 0xFD, 0xFE, 0xFF, 0x02}
	want := []byte{0x01, 0xFD, 0x00, 0xFD, 0x01, 0xFD, 0x02, 0x02}
	assert.Equal(t, want, Encode(in))
}

func TestUnstuffRoundTrip(t *testing.T) {
	in := []byte{0x00, 0xFD, 0xFE, 0xFF, 0x10, 0xFD, 0x20}
	stuffed := Encode(in)
	out, err := Unstuff(stuffed)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecoderIncrementalAcrossChunks(t *testing.T) {
	in := []byte{0xAA, 0xFE, 0xBB}
	stuffed := Encode(in)

	var d Decoder
	var out []byte
	for i, b := range stuffed {
		chunk, err := d.Decode([]byte{b})
		require.NoErrorf(t, err, "byte %d", i)
		out = append(out, chunk...)
	}
	require.NoError(t, d.Finalize())
	assert.Equal(t, in, out)
}

func TestDecoderRejectsBadEscapeSuccessor(t *testing.T) {
	var d Decoder
	_, err := d.Decode([]byte{0xFD, 0x55})
	require.Error(t, err)
}

func TestDecoderFinalizeRejectsTruncatedEscape(t *testing.T) {
	var d Decoder
	_, err := d.Decode([]byte{0x01, 0xFD})
	require.NoError(t, err)
	assert.True(t, d.Pending())
	err = d.Finalize()
	require.Error(t, err)
}

func TestDecoderRejectsUnescapedDelimiterBytes(t *testing.T) {
	var d Decoder
	_, err := d.Decode([]byte{0x01, 0xFE})
	require.Error(t, err)

	var d2 Decoder
	_, err = d2.Decode([]byte{0x01, 0xFF})
	require.Error(t, err)
}

func TestDecoderResetClearsPendingEscape(t *testing.T) {
	var d Decoder
	_, err := d.Decode([]byte{0xFD})
	require.NoError(t, err)
	assert.True(t, d.Pending())
	d.Reset()
	assert.False(t, d.Pending())
}

package relay

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameSummaryCBORRoundTrip(t *testing.T) {
	summary := FrameSummary{
		SiteAddress:     0x123,
		EncoderAddress:  0x2A,
		SequenceCounter: 0xFE,
		Mecs:            []byte{0x01, 0x02},
		Encoded:         []byte{0xFE, 0x00, 0x00, 0xFD, 0x01, 0x00, 0x4B, 0xF1, 0xFF},
	}

	data, err := cbor.Marshal(summary)
	require.NoError(t, err)

	var decoded FrameSummary
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, summary, decoded)
}

func TestOutboundRequestCBORRoundTrip(t *testing.T) {
	req := OutboundRequest{
		SiteAddress:     0x001,
		EncoderAddress:  0x01,
		SequenceCounter: 0x05,
		Commands:        [][]byte{{0x02, 'A', 'B'}},
	}

	data, err := cbor.Marshal(req)
	require.NoError(t, err)

	var decoded OutboundRequest
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, req, decoded)
}

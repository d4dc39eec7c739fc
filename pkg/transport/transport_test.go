package transport

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrko/uecp-go/pkg/metrics"
	"github.com/chrko/uecp-go/pkg/uecp"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	var m dto.Metric
	require.NoError(t, (<-ch).Write(&m))
	return m.GetCounter().GetValue()
}

func TestProcessDispatchesFrameToHandler(t *testing.T) {
	var got *uecp.Frame
	s := &Serial{
		handler: func(f *uecp.Frame) { got = f },
	}

	data := []byte{0xFE, 0x00, 0x00, 0xFD, 0x01, 0x00, 0x4B, 0xF1, 0xFF}
	s.process(data)

	require.NotNil(t, got)
	assert.EqualValues(t, 0xFE, got.SequenceCounter)
}

func TestProcessDispatchesMultipleFramesInOneChunk(t *testing.T) {
	var frames []*uecp.Frame
	s := &Serial{
		handler: func(f *uecp.Frame) { frames = append(frames, f) },
	}

	one := []byte{0xFE, 0x00, 0x00, 0xFD, 0x01, 0x00, 0x4B, 0xF1, 0xFF}
	data := append(append([]byte{}, one...), one...)
	s.process(data)

	assert.Len(t, frames, 2)
}

func TestProcessReportsRecoverableErrors(t *testing.T) {
	var errs []error
	var frames int
	s := &Serial{
		handler: func(f *uecp.Frame) { frames++ },
		onError: func(err error) { errs = append(errs, err) },
	}

	bad := []byte{0xFE, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0xFF}
	good := []byte{0xFE, 0x00, 0x00, 0xFD, 0x01, 0x00, 0x4B, 0xF1, 0xFF}
	s.process(append(append([]byte{}, bad...), good...))

	require.Len(t, errs, 1)
	assert.Equal(t, 1, frames)
}

func TestProcessRecordsMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	s := &Serial{metrics: m}

	bad := []byte{0xFE, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0xFF}
	// One ProgrammeIdentificationSet (MEC 0x01) command, PI=0x00FF.
	good := []byte{0xFE, 0x00, 0x00, 0xFD, 0x01, 0x05, 0x01, 0x00, 0x00, 0x00, 0xFD, 0x02, 0x0D, 0x3D, 0xFF}
	s.process(append(append([]byte{}, bad...), good...))

	assert.Equal(t, float64(1), counterValue(t, m.FramesDecoded.WithLabelValues("ok")))
	assert.Equal(t, float64(1), counterValue(t, m.FramesDecoded.WithLabelValues("error")))
	assert.Equal(t, float64(1), counterValue(t, m.CommandsDecoded.WithLabelValues("0x01")))
}

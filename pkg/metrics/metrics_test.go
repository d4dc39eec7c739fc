package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	var m dto.Metric
	require.NoError(t, (<-ch).Write(&m))
	return m.GetCounter().GetValue()
}

func TestRecordDecodeIncrementsCorrectLabel(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordDecode(true)
	m.RecordDecode(false)
	m.RecordDecode(true)

	assert.Equal(t, float64(2), counterValue(t, m.FramesDecoded.WithLabelValues("ok")))
	assert.Equal(t, float64(1), counterValue(t, m.FramesDecoded.WithLabelValues("error")))
}

func TestRecordWrite(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RecordWrite()
	m.RecordWrite()
	assert.Equal(t, float64(2), counterValue(t, m.FramesWritten))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordDecode(true)
		m.RecordWrite()
		m.RecordCommand("0x01")
		done := m.TimeRelayPublish()
		done()
	})
}

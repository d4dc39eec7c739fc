// Package metrics exposes Prometheus counters for the UECP transport
// and relay layers. A nil *Metrics is a valid no-op receiver, so
// instrumentation call sites never need a nil check of their own.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks frame-level counters for a running uecpcat instance.
type Metrics struct {
	// FramesDecoded counts frames successfully pulled off the serial
	// link. Labels: result=[ok, error]
	FramesDecoded *prometheus.CounterVec

	// FramesWritten counts frames written to the serial link.
	FramesWritten prometheus.Counter

	// CommandsDecoded counts individual message elements decoded,
	// by MEC. Labels: mec=[0x01, 0x02, ...] (hex string)
	CommandsDecoded *prometheus.CounterVec

	// RelayPublishDuration tracks how long publishing a frame summary
	// to Redis takes.
	RelayPublishDuration prometheus.Histogram
}

// New creates and registers the UECP metrics. If registerer is nil,
// prometheus.DefaultRegisterer is used.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		FramesDecoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uecp_frames_decoded_total",
				Help: "Total frames pulled off the serial link by decode result",
			},
			[]string{"result"},
		),
		FramesWritten: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "uecp_frames_written_total",
				Help: "Total frames written to the serial link",
			},
		),
		CommandsDecoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uecp_commands_decoded_total",
				Help: "Total message elements decoded, by MEC",
			},
			[]string{"mec"},
		),
		RelayPublishDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "uecp_relay_publish_duration_seconds",
				Help:    "Time spent publishing a decoded frame summary to Redis",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	registerer.MustRegister(m.FramesDecoded, m.FramesWritten, m.CommandsDecoded, m.RelayPublishDuration)
	return m
}

// RecordDecode records the outcome of one Decoder.Push call that
// yielded either a frame or an error.
func (m *Metrics) RecordDecode(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.FramesDecoded.WithLabelValues("ok").Inc()
	} else {
		m.FramesDecoded.WithLabelValues("error").Inc()
	}
}

// RecordWrite records one frame written to the serial link.
func (m *Metrics) RecordWrite() {
	if m == nil {
		return
	}
	m.FramesWritten.Inc()
}

// RecordCommand records one decoded message element by its MEC.
func (m *Metrics) RecordCommand(mec string) {
	if m == nil {
		return
	}
	m.CommandsDecoded.WithLabelValues(mec).Inc()
}

// TimeRelayPublish returns a function that records the elapsed time
// since it was created as one RelayPublishDuration observation; call
// it when the publish attempt finishes.
func (m *Metrics) TimeRelayPublish() func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.RelayPublishDuration.Observe(time.Since(start).Seconds())
	}
}

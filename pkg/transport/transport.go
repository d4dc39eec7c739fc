// Package transport drives a UECP frame decoder off a serial byte stream.
package transport

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/chrko/uecp-go/pkg/metrics"
	"github.com/chrko/uecp-go/pkg/uecp"
)

// FrameHandler receives fully decoded frames as they come off the wire.
type FrameHandler func(*uecp.Frame)

// ErrorHandler receives decode errors; the decoder always recovers and
// keeps reading after one, so this is informational, not fatal.
type ErrorHandler func(error)

// Serial drives a UECP frame decoder over a serial port.
type Serial struct {
	port    serial.Port
	handler FrameHandler
	onError ErrorHandler

	stopChan chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	decoder uecp.Decoder

	metrics *metrics.Metrics
}

// Config holds the parameters needed to open the serial link to a UECP
// encoder or receiver.
type Config struct {
	Device   string
	BaudRate int

	// Metrics, if non-nil, is updated with frame and command counts as
	// the link runs.
	Metrics *metrics.Metrics
}

// Open opens the serial port described by cfg and starts a background
// read loop that feeds bytes into a uecp.Decoder, invoking handler for
// every fully decoded frame and onError for every recoverable decode
// failure. onError may be nil.
func Open(cfg Config, handler FrameHandler, onError ErrorHandler) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}

	s := &Serial{
		port:     port,
		handler:  handler,
		onError:  onError,
		stopChan: make(chan struct{}),
		metrics:  cfg.Metrics,
	}

	s.wg.Add(1)
	go s.readLoop()

	return s, nil
}

// Write encodes frame and writes it to the serial port in one call.
func (s *Serial) Write(frame *uecp.Frame) error {
	encoded, err := frame.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.port.Write(encoded); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	s.metrics.RecordWrite()
	return nil
}

// Close stops the read loop and closes the serial port.
func (s *Serial) Close() error {
	close(s.stopChan)
	s.wg.Wait()
	return s.port.Close()
}

func (s *Serial) readLoop() {
	defer s.wg.Done()

	buf := make([]byte, 256)
	log.Printf("uecp transport: starting serial read loop")

	for {
		select {
		case <-s.stopChan:
			return
		default:
		}

		n, err := s.port.Read(buf)
		if err != nil {
			if err != io.EOF {
				log.Printf("uecp transport: read error: %v", err)
				time.Sleep(10 * time.Millisecond)
			}
			continue
		}
		if n == 0 {
			continue
		}

		s.process(buf[:n])
	}
}

func (s *Serial) process(chunk []byte) {
	remaining := chunk
	for len(remaining) > 0 {
		frame, rest, err := s.decoder.Push(remaining)
		remaining = rest

		if err != nil {
			s.metrics.RecordDecode(false)
			if s.onError != nil {
				s.onError(err)
			}
			continue
		}

		if frame == nil {
			continue
		}

		s.metrics.RecordDecode(true)
		for _, cmd := range frame.Commands() {
			s.metrics.RecordCommand(fmt.Sprintf("0x%02X", cmd.Mec()))
		}

		if s.handler != nil {
			s.handler(frame)
		}
	}
}

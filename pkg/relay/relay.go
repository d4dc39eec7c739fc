// Package relay publishes decoded UECP frames to Redis and reads
// outbound command requests back off a Redis list. It carries no
// knowledge of target RDS state; that reconciliation is left to a
// separate, out-of-scope collaborator that consumes this relay's
// published summaries and pushes its own command requests onto the
// outbound list.
package relay

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/redis/go-redis/v9"

	"github.com/chrko/uecp-go/pkg/metrics"
	"github.com/chrko/uecp-go/pkg/uecp"
)

const (
	// FramesChannel is the Redis pub/sub channel decoded frames are
	// published to.
	FramesChannel = "uecp:frames"
	// OutboundList is the Redis list outbound command requests are
	// read from with BRPOP.
	OutboundList = "uecp:outbound"
)

// FrameSummary is the CBOR-encoded shape published for each decoded
// frame: compact enough for a subscriber to reconstruct addressing and
// MEC identity without depending on this module's Go types.
type FrameSummary struct {
	SiteAddress     uint16 `cbor:"site_address"`
	EncoderAddress  byte   `cbor:"encoder_address"`
	SequenceCounter byte   `cbor:"sequence_counter"`
	Mecs            []byte `cbor:"mecs"`
	Encoded         []byte `cbor:"encoded"`
}

// OutboundRequest is the CBOR-decoded shape read off OutboundList: a
// pre-encoded command payload (from uecp.Command.Encode) to be wrapped
// in a frame and written to the transport.
type OutboundRequest struct {
	SiteAddress     uint16 `cbor:"site_address"`
	EncoderAddress  byte   `cbor:"encoder_address"`
	SequenceCounter byte   `cbor:"sequence_counter"`
	Commands        [][]byte `cbor:"commands"`
}

// Client wraps a Redis connection used to relay UECP traffic.
type Client struct {
	client  *redis.Client
	ctx     context.Context
	metrics *metrics.Metrics
}

// New connects to the Redis instance at addr and verifies reachability.
func New(addr, password string, db int) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: client, ctx: ctx}, nil
}

// SetMetrics attaches m so subsequent PublishFrame calls record timing.
// Passing nil disables instrumentation.
func (c *Client) SetMetrics(m *metrics.Metrics) {
	c.metrics = m
}

// PublishFrame CBOR-encodes a summary of frame and publishes it on
// FramesChannel.
func (c *Client) PublishFrame(frame *uecp.Frame) error {
	done := c.metrics.TimeRelayPublish()
	defer done()

	commands := frame.Commands()
	mecs := make([]byte, len(commands))
	for i, cmd := range commands {
		mecs[i] = cmd.Mec()
	}

	encoded, err := frame.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode frame for relay: %w", err)
	}

	summary := FrameSummary{
		SiteAddress:     frame.SiteAddress,
		EncoderAddress:  frame.EncoderAddress,
		SequenceCounter: frame.SequenceCounter,
		Mecs:            mecs,
		Encoded:         encoded,
	}

	payload, err := cbor.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to CBOR-encode frame summary: %w", err)
	}

	if err := c.client.Publish(c.ctx, FramesChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish frame summary: %w", err)
	}
	return nil
}

// NextOutbound blocks up to timeout for a pending outbound request on
// OutboundList. A zero timeout blocks indefinitely. Returns (nil, nil)
// on timeout.
func (c *Client) NextOutbound(timeout time.Duration) (*OutboundRequest, error) {
	result, err := c.client.BRPop(c.ctx, timeout, OutboundList).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		log.Printf("uecp relay: BRPOP on %s failed: %v", OutboundList, err)
		return nil, err
	}
	if len(result) != 2 {
		return nil, fmt.Errorf("unexpected BRPOP result length: %d", len(result))
	}

	var req OutboundRequest
	if err := cbor.Unmarshal([]byte(result[1]), &req); err != nil {
		return nil, fmt.Errorf("failed to decode outbound request: %w", err)
	}
	return &req, nil
}

// Close closes the underlying Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}

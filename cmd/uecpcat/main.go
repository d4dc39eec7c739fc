// Command uecpcat bridges a UECP serial link to Redis: it decodes
// frames off the wire and publishes summaries, and relays outbound
// command requests from Redis back onto the wire.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chrko/uecp-go/pkg/metrics"
	"github.com/chrko/uecp-go/pkg/relay"
	"github.com/chrko/uecp-go/pkg/transport"
	"github.com/chrko/uecp-go/pkg/uecp"
)

var (
	serialDevice = flag.String("serial", "/dev/ttyUSB0", "Serial device path")
	baudRate     = flag.Int("baud", 9600, "Serial baud rate")
	redisAddr    = flag.String("redis-addr", "localhost:6379", "Redis server address")
	redisPass    = flag.String("redis-pass", "", "Redis password")
	redisDB      = flag.Int("redis-db", 0, "Redis database number")
	metricsAddr  = flag.String("metrics-addr", ":9308", "Listen address for the Prometheus /metrics endpoint")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("Starting uecpcat")
	log.Printf("Serial device: %s", *serialDevice)
	log.Printf("Baud rate: %d", *baudRate)
	log.Printf("Redis address: %s", *redisAddr)

	m := metrics.New(nil)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Printf("Serving metrics on %s/metrics", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()

	relayClient, err := relay.New(*redisAddr, *redisPass, *redisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	relayClient.SetMetrics(m)
	defer relayClient.Close()
	log.Printf("Connected to Redis")

	onFrame := func(frame *uecp.Frame) {
		if err := relayClient.PublishFrame(frame); err != nil {
			log.Printf("Failed to publish decoded frame: %v", err)
		}
	}
	onError := func(err error) {
		log.Printf("UECP decode error: %v", err)
	}

	link, err := transport.Open(transport.Config{
		Device:   *serialDevice,
		BaudRate: *baudRate,
		Metrics:  m,
	}, onFrame, onError)
	if err != nil {
		log.Fatalf("Failed to open serial port: %v", err)
	}
	defer link.Close()
	log.Printf("Connected to UECP serial link")

	seq := byte(0)
	go watchOutbound(relayClient, link, &seq)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	log.Printf("Shutting down...")
}

func watchOutbound(relayClient *relay.Client, link *transport.Serial, seq *byte) {
	for {
		req, err := relayClient.NextOutbound(5 * time.Second)
		if err != nil {
			log.Printf("Failed to read outbound request: %v", err)
			continue
		}
		if req == nil {
			continue
		}

		frame, err := uecp.NewFrame(req.SiteAddress, req.EncoderAddress, req.SequenceCounter)
		if err != nil {
			log.Printf("Rejected outbound frame addressing: %v", err)
			continue
		}

		commands, err := uecp.DecodeSequence(flatten(req.Commands))
		if err != nil {
			log.Printf("Rejected outbound command payload: %v", err)
			continue
		}
		if err := frame.AddCommand(commands...); err != nil {
			log.Printf("Rejected outbound command list: %v", err)
			continue
		}

		if err := link.Write(frame); err != nil {
			log.Printf("Failed to write outbound frame: %v", err)
		}
	}
}

func flatten(commands [][]byte) []byte {
	var out []byte
	for _, c := range commands {
		out = append(out, c...)
	}
	return out
}

package metrics

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dbehnke/p25core/pkg/logger"
)

// PrometheusConfig holds Prometheus server configuration
type PrometheusConfig struct {
	Enabled bool
	Port    int
	Path    string
}

// PrometheusHandler handles Prometheus metrics HTTP requests
type PrometheusHandler struct {
	collector *Collector
}

// NewPrometheusHandler creates a new Prometheus handler
func NewPrometheusHandler(collector *Collector) *PrometheusHandler {
	return &PrometheusHandler{
		collector: collector,
	}
}

// ServeHTTP handles HTTP requests for metrics
func (h *PrometheusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	var output strings.Builder

	// Synchronization metrics
	output.WriteString("# HELP p25_sync_locks_total Total frame synchronization locks\n")
	output.WriteString("# TYPE p25_sync_locks_total counter\n")
	output.WriteString(fmt.Sprintf("p25_sync_locks_total %d\n", h.collector.GetSyncLocks()))

	output.WriteString("# HELP p25_sync_fails_total Total frame synchronization failures\n")
	output.WriteString("# TYPE p25_sync_fails_total counter\n")
	output.WriteString(fmt.Sprintf("p25_sync_fails_total %d\n", h.collector.GetSyncFails()))

	// Packet metrics
	output.WriteString("# HELP p25_packets_decoded_total Total packets decoded\n")
	output.WriteString("# TYPE p25_packets_decoded_total counter\n")
	output.WriteString(fmt.Sprintf("p25_packets_decoded_total %d\n", h.collector.GetPacketsDecoded()))

	output.WriteString("# HELP p25_decode_errors_total Total decode errors\n")
	output.WriteString("# TYPE p25_decode_errors_total counter\n")
	output.WriteString(fmt.Sprintf("p25_decode_errors_total %d\n", h.collector.GetDecodeErrors()))

	output.WriteString("# HELP p25_corrected_symbols_total Total symbols corrected by forward error correction\n")
	output.WriteString("# TYPE p25_corrected_symbols_total counter\n")
	output.WriteString(fmt.Sprintf("p25_corrected_symbols_total %d\n", h.collector.GetCorrectedSymbols()))

	// Voice metrics
	output.WriteString("# HELP p25_voice_frames_total Total voice frames decoded\n")
	output.WriteString("# TYPE p25_voice_frames_total counter\n")
	output.WriteString(fmt.Sprintf("p25_voice_frames_total %d\n", h.collector.GetVoiceFrames()))

	// Trunking metrics
	output.WriteString("# HELP p25_tsbk_decoded_total Total trunking-signalling blocks decoded\n")
	output.WriteString("# TYPE p25_tsbk_decoded_total counter\n")
	output.WriteString(fmt.Sprintf("p25_tsbk_decoded_total %d\n", h.collector.GetTSBKDecoded()))

	// Talkgroup metrics
	output.WriteString("# HELP p25_talkgroups_active Number of currently active talkgroups\n")
	output.WriteString("# TYPE p25_talkgroups_active gauge\n")
	output.WriteString(fmt.Sprintf("p25_talkgroups_active %d\n", h.collector.GetActiveTalkGroups()))

	w.Write([]byte(output.String()))
}

// PrometheusServer is an HTTP server for Prometheus metrics
type PrometheusServer struct {
	config    PrometheusConfig
	collector *Collector
	log       *logger.Logger
	server    *http.Server
}

// NewPrometheusServer creates a new Prometheus metrics server
func NewPrometheusServer(config PrometheusConfig, collector *Collector, log *logger.Logger) *PrometheusServer {
	if log == nil {
		log = logger.New(logger.Config{Level: "info", Format: "text"})
	}

	return &PrometheusServer{
		config:    config,
		collector: collector,
		log:       log.WithComponent("metrics"),
	}
}

// Start starts the Prometheus metrics server
func (s *PrometheusServer) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.log.Info("Prometheus metrics server disabled")
		return nil
	}

	handler := NewPrometheusHandler(s.collector)
	mux := http.NewServeMux()
	mux.Handle(s.config.Path, handler)

	// Use a listener to get the actual port (useful for testing with port 0)
	addr := fmt.Sprintf(":%d", s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	actualPort := listener.Addr().(*net.TCPAddr).Port

	s.server = &http.Server{
		Handler: mux,
	}

	s.log.Info("Starting Prometheus metrics server",
		logger.Int("port", actualPort),
		logger.String("path", s.config.Path))

	// Start server
	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.log.Info("Shutting down Prometheus metrics server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown error: %w", err)
		}
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

// Stop stops the Prometheus metrics server
func (s *PrometheusServer) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.server.Shutdown(ctx)
	}
}

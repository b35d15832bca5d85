package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dbehnke/p25core/internal/p25message"
	"github.com/dbehnke/p25core/pkg/config"
	"github.com/dbehnke/p25core/pkg/eventlog"
	"github.com/dbehnke/p25core/pkg/eventpublish"
	"github.com/dbehnke/p25core/pkg/eventstream"
	"github.com/dbehnke/p25core/pkg/logger"
	"github.com/dbehnke/p25core/pkg/metrics"
	"github.com/dbehnke/p25core/pkg/sampleio"
)

var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// sampleSource yields baseband samples one at a time.
type sampleSource interface {
	Next() (float64, error, bool)
}

// rawSource reads little-endian float64 samples from a stream, for
// piping baseband samples in over stdin or a network socket.
type rawSource struct {
	r *bufio.Reader
}

func (s *rawSource) Next() (float64, error, bool) {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		if err == io.EOF {
			return 0, nil, false
		}
		return 0, err, false
	}
	bits := binary.LittleEndian.Uint64(buf[:])
	return math.Float64frombits(bits), nil, true
}

func openSource(cfg config.SourceConfig) (sampleSource, func() error, error) {
	switch cfg.Kind {
	case "wav":
		f, err := os.Open(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sample file: %w", err)
		}
		src, err := sampleio.OpenWAV(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("open wav source: %w", err)
		}
		return src, f.Close, nil

	case "stdin":
		return &rawSource{r: bufio.NewReader(os.Stdin)}, func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported source kind %q", cfg.Kind)
	}
}

func main() {
	configFile := flag.String("config", "config.yaml", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	validateOnly := flag.Bool("validate", false, "Validate configuration and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("p25core %s\n", version)
		fmt.Printf("Git Commit: %s\n", gitCommit)
		fmt.Printf("Built: %s\n", buildTime)
		os.Exit(0)
	}

	log := logger.New(logger.Config{Level: "info", Format: "text"})
	log.Info("Starting p25core",
		logger.String("version", version),
		logger.String("commit", gitCommit),
		logger.String("build_time", buildTime))

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Error("Failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	if *validateOnly {
		log.Info("Configuration is valid")
		os.Exit(0)
	}

	log = logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	metricsCollector := metrics.NewCollector()

	var logDB *eventlog.DB
	var eventRepo *eventlog.Repository
	if cfg.EventLog.Enabled {
		logDB, err = eventlog.NewDB(eventlog.Config{Path: cfg.EventLog.Path}, log.WithComponent("eventlog"))
		if err != nil {
			log.Error("Failed to initialize event log", logger.Error(err))
			os.Exit(1)
		}
		defer logDB.Close()
		eventRepo = eventlog.NewRepository(logDB.GetDB())
		log.Info("Event log initialized", logger.String("path", cfg.EventLog.Path))

		if cfg.EventLog.RetentionDays > 0 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ticker := time.NewTicker(1 * time.Hour)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						cutoff := time.Now().AddDate(0, 0, -cfg.EventLog.RetentionDays)
						if _, err := eventRepo.DeleteOlderThan(cutoff); err != nil {
							log.Error("Failed to prune event log", logger.Error(err))
						}
					}
				}
			}()
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Prometheus.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			metricsServer := metrics.NewPrometheusServer(
				metrics.PrometheusConfig{
					Enabled: cfg.Metrics.Prometheus.Enabled,
					Port:    cfg.Metrics.Prometheus.Port,
					Path:    cfg.Metrics.Prometheus.Path,
				},
				metricsCollector,
				log.WithComponent("metrics"),
			)
			if err := metricsServer.Start(ctx); err != nil && err != context.Canceled {
				log.Error("Prometheus metrics server error", logger.Error(err))
			}
		}()
		log.Info("Prometheus metrics server started",
			logger.Int("port", cfg.Metrics.Prometheus.Port),
			logger.String("path", cfg.Metrics.Prometheus.Path))
	}

	var publisher *eventpublish.Publisher
	if cfg.Publish.Enabled {
		publisher = eventpublish.New(eventpublish.Config{
			Enabled:     cfg.Publish.Enabled,
			Broker:      cfg.Publish.Broker,
			TopicPrefix: cfg.Publish.TopicPrefix,
			ClientID:    cfg.Publish.ClientID,
			Username:    cfg.Publish.Username,
			Password:    cfg.Publish.Password,
			QoS:         cfg.Publish.QoS,
			Retained:    cfg.Publish.Retained,
		}, log.WithComponent("eventpublish"))

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := publisher.Start(ctx); err != nil && err != context.Canceled {
				log.Error("Event publisher error", logger.Error(err))
			}
		}()
	}

	var hub *eventstream.Hub
	if cfg.Web.Enabled {
		hub = eventstream.NewHub(log.WithComponent("eventstream"))
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Run(ctx)
		}()

		mux := http.NewServeMux()
		mux.Handle("/events", hub.Handler())
		server := &http.Server{Addr: fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port), Handler: mux}

		wg.Add(1)
		go func() {
			defer wg.Done()
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(shutdownCtx)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("Event stream server error", logger.Error(err))
			}
		}()
		log.Info("Event stream server started",
			logger.String("host", cfg.Web.Host), logger.Int("port", cfg.Web.Port))
	}

	src, closeSrc, err := openSource(cfg.Source)
	if err != nil {
		log.Error("Failed to open sample source", logger.Error(err))
		os.Exit(1)
	}
	defer closeSrc()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runDecoder(ctx, src, log.WithComponent("decoder"), metricsCollector, eventRepo, hub, publisher)
	}()

	log.Info("p25core initialized", logger.String("server_name", cfg.Server.Name))

	sig := <-sigChan
	log.Info("Received shutdown signal", logger.String("signal", sig.String()))

	cancel()

	if publisher != nil {
		publisher.Stop()
	}

	wg.Wait()

	log.Info("p25core stopped")
}

func runDecoder(
	ctx context.Context,
	src sampleSource,
	log *logger.Logger,
	metricsCollector *metrics.Collector,
	eventRepo *eventlog.Repository,
	hub *eventstream.Hub,
	publisher *eventpublish.Publisher,
) {
	recv := p25message.NewMessageReceiver()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		s, err, ok := src.Next()
		if err != nil {
			log.Error("Sample source error", logger.Error(err))
			return
		}
		if !ok {
			log.Info("Sample source exhausted")
			return
		}

		ev, ok := recv.Feed(s)
		if !ok {
			continue
		}

		handleEvent(ev, log, metricsCollector, eventRepo, hub, publisher)
	}
}

func handleEvent(
	ev p25message.MessageEvent,
	log *logger.Logger,
	metricsCollector *metrics.Collector,
	eventRepo *eventlog.Repository,
	hub *eventstream.Hub,
	publisher *eventpublish.Publisher,
) {
	switch ev.Kind {
	case p25message.EvError:
		metricsCollector.DecodeError()
		log.Debug("decode error", logger.Error(ev.Err))
		if publisher != nil {
			publisher.PublishDecodeError(eventpublish.DecodeErrorEvent{
				Message: ev.Err.Error(), Timestamp: time.Now(),
			})
		}
	case p25message.EvPacketNID:
		metricsCollector.PacketDecoded()
	case p25message.EvVoiceFrame:
		metricsCollector.VoiceFrameDecoded()
	case p25message.EvTrunkingControl:
		metricsCollector.TSBKDecoded()
	}

	now := time.Now()
	rec := eventlog.FromMessageEvent(ev, now)

	if eventRepo != nil {
		if err := eventRepo.Create(&rec); err != nil {
			log.Error("Failed to log decoded event", logger.Error(err))
		}
	}

	if hub != nil {
		hub.BroadcastDecodedEvent(rec.Kind, map[string]interface{}{
			"nac":        rec.NAC,
			"data_unit":  rec.DataUnit,
			"src_unit":   rec.SrcUnit,
			"dest_unit":  rec.DestUnit,
			"talk_group": rec.TalkGroup,
			"opcode":     rec.Opcode,
		})
	}
}

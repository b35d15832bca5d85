package config

import (
	"fmt"
	"strings"
)

// validate validates the configuration.
func validate(cfg *Config) error {
	switch strings.ToLower(cfg.Source.Kind) {
	case "wav":
		if cfg.Source.Path == "" {
			return fmt.Errorf("source.path is required for source.kind=wav")
		}
	case "udp":
		if cfg.Source.Addr == "" {
			return fmt.Errorf("source.addr is required for source.kind=udp")
		}
	case "stdin":
	default:
		return fmt.Errorf("source.kind must be one of wav, udp, stdin, got %q", cfg.Source.Kind)
	}
	if cfg.Source.SampleRate <= 0 {
		return fmt.Errorf("source.sample_rate must be positive")
	}

	if cfg.Web.Enabled {
		if cfg.Web.Port <= 0 || cfg.Web.Port > 65535 {
			return fmt.Errorf("web.port must be between 1 and 65535")
		}
	}

	if cfg.EventLog.Enabled {
		if cfg.EventLog.Path == "" {
			return fmt.Errorf("eventlog.path is required when eventlog is enabled")
		}
		if cfg.EventLog.RetentionDays < 0 {
			return fmt.Errorf("eventlog.retention_days must not be negative")
		}
	}

	if cfg.Publish.Enabled {
		if cfg.Publish.Broker == "" {
			return fmt.Errorf("publish.broker is required when publish is enabled")
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Prometheus.Enabled {
		if cfg.Metrics.Prometheus.Port <= 0 || cfg.Metrics.Prometheus.Port > 65535 {
			return fmt.Errorf("metrics.prometheus.port must be between 1 and 65535")
		}
	}

	return nil
}

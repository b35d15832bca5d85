package eventpublish

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dbehnke/p25core/pkg/logger"
)

// Config holds event publisher configuration.
type Config struct {
	Enabled     bool
	Broker      string
	TopicPrefix string
	ClientID    string
	Username    string
	Password    string
	QoS         byte
	Retained    bool
}

// Publisher serializes decoded P25 events under broker topics. No broker
// client is connected: each serialized event is logged at debug level and
// not sent anywhere.
type Publisher struct {
	config Config
	log    *logger.Logger
}

// VoiceCallEvent represents a voice call's traffic.
type VoiceCallEvent struct {
	SrcUnit   uint32    `json:"src_unit"`
	DestUnit  uint32    `json:"dest_unit"`
	TalkGroup uint16    `json:"talk_group"`
	Timestamp time.Time `json:"timestamp"`
}

// TrunkingEvent represents a trunking control block.
type TrunkingEvent struct {
	Opcode    string    `json:"opcode"`
	SrcUnit   uint32    `json:"src_unit"`
	DestUnit  uint32    `json:"dest_unit"`
	TalkGroup uint16    `json:"talk_group"`
	Channel   uint16    `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

// DecodeErrorEvent represents a decode failure.
type DecodeErrorEvent struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates a new event publisher.
func New(config Config, log *logger.Logger) *Publisher {
	if log == nil {
		log = logger.New(logger.Config{Level: "info", Format: "text"})
	}

	return &Publisher{
		config: config,
		log:    log.WithComponent("eventpublish"),
	}
}

// Start starts the event publisher.
func (p *Publisher) Start(ctx context.Context) error {
	if !p.config.Enabled {
		p.log.Info("event publisher disabled")
		return nil
	}

	p.log.Info("starting event publisher",
		logger.String("broker", p.config.Broker),
		logger.String("client_id", p.config.ClientID))

	// TODO: connect a real broker client once one is added to the stack
	p.log.Warn("broker connection not yet implemented - events will not be published")

	return nil
}

// Stop stops the event publisher.
func (p *Publisher) Stop() {
	if !p.config.Enabled {
		return
	}

	p.log.Info("stopping event publisher")
}

// PublishVoiceCall publishes a voice call traffic event.
func (p *Publisher) PublishVoiceCall(event VoiceCallEvent) error {
	if !p.config.Enabled {
		return nil
	}
	return p.publish(p.formatTopic("voice/traffic"), event)
}

// PublishTrunking publishes a trunking control event.
func (p *Publisher) PublishTrunking(event TrunkingEvent) error {
	if !p.config.Enabled {
		return nil
	}
	return p.publish(p.formatTopic("trunking"), event)
}

// PublishDecodeError publishes a decode failure event.
func (p *Publisher) PublishDecodeError(event DecodeErrorEvent) error {
	if !p.config.Enabled {
		return nil
	}
	return p.publish(p.formatTopic("errors"), event)
}

func (p *Publisher) publish(topic string, event interface{}) error {
	payload, err := p.serializeEvent(event)
	if err != nil {
		p.log.Error("failed to serialize event",
			logger.String("topic", topic),
			logger.Error(err))
		return err
	}

	// TODO: publish via a real broker client once one is added to the stack
	p.log.Debug("would publish event",
		logger.String("topic", topic),
		logger.Int("payload_size", len(payload)))

	return nil
}

func (p *Publisher) serializeEvent(event interface{}) ([]byte, error) {
	return json.Marshal(event)
}

func (p *Publisher) formatTopic(suffix string) string {
	prefix := strings.TrimSuffix(p.config.TopicPrefix, "/")
	if prefix == "" {
		return suffix
	}
	return fmt.Sprintf("%s/%s", prefix, suffix)
}

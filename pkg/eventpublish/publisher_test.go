package eventpublish

import (
	"context"
	"testing"
	"time"
)

func TestNewPublisher(t *testing.T) {
	config := Config{
		Enabled:     true,
		Broker:      "tcp://localhost:1883",
		TopicPrefix: "p25/test",
		ClientID:    "test-client",
		QoS:         1,
		Retained:    false,
	}

	pub := New(config, nil)
	if pub == nil {
		t.Fatal("expected non-nil publisher")
	}
	if pub.config.Broker != config.Broker {
		t.Errorf("expected broker %s, got %s", config.Broker, pub.config.Broker)
	}
}

func TestPublisherStartWhenDisabled(t *testing.T) {
	pub := New(Config{Enabled: false}, nil)
	if err := pub.Start(context.Background()); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestPublisherStop(t *testing.T) {
	pub := New(Config{Enabled: false}, nil)
	pub.Stop()
}

func TestPublisherPublishVoiceCall(t *testing.T) {
	pub := New(Config{Enabled: false, TopicPrefix: "p25/test"}, nil)

	event := VoiceCallEvent{
		SrcUnit:   123456,
		DestUnit:  0,
		TalkGroup: 100,
		Timestamp: time.Now(),
	}

	if err := pub.PublishVoiceCall(event); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestPublisherPublishTrunking(t *testing.T) {
	pub := New(Config{Enabled: false, TopicPrefix: "p25/test"}, nil)

	event := TrunkingEvent{
		Opcode:    "group_voice_grant",
		SrcUnit:   123456,
		TalkGroup: 100,
		Channel:   2001,
		Timestamp: time.Now(),
	}

	if err := pub.PublishTrunking(event); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestPublisherPublishDecodeError(t *testing.T) {
	pub := New(Config{Enabled: false, TopicPrefix: "p25/test"}, nil)

	event := DecodeErrorEvent{Message: "frame sync failed", Timestamp: time.Now()}
	if err := pub.PublishDecodeError(event); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestTopicFormat(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		suffix   string
		expected string
	}{
		{"simple topic", "p25/core", "voice/traffic", "p25/core/voice/traffic"},
		{"trailing slash in prefix", "p25/core/", "voice/traffic", "p25/core/voice/traffic"},
		{"empty prefix", "", "voice/traffic", "voice/traffic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := New(Config{TopicPrefix: tt.prefix}, nil)
			topic := pub.formatTopic(tt.suffix)
			if topic != tt.expected {
				t.Errorf("expected topic %s, got %s", tt.expected, topic)
			}
		})
	}
}

func TestEventSerialization(t *testing.T) {
	tests := []struct {
		name  string
		event interface{}
	}{
		{"VoiceCallEvent", VoiceCallEvent{SrcUnit: 123456, TalkGroup: 100, Timestamp: time.Now()}},
		{"TrunkingEvent", TrunkingEvent{Opcode: "group_voice_grant", SrcUnit: 123456, Timestamp: time.Now()}},
		{"DecodeErrorEvent", DecodeErrorEvent{Message: "boom", Timestamp: time.Now()}},
	}

	pub := New(Config{Enabled: false}, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := pub.serializeEvent(tt.event)
			if err != nil {
				t.Fatalf("failed to serialize %s: %v", tt.name, err)
			}
			if len(data) == 0 {
				t.Fatalf("serialized %s is empty", tt.name)
			}
		})
	}
}

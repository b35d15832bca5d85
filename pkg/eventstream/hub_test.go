package eventstream

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dbehnke/p25core/pkg/logger"
)

func TestHubNew(t *testing.T) {
	log := logger.New(logger.Config{Level: "info"})
	hub := NewHub(log)
	if hub == nil {
		t.Fatal("NewHub returned nil")
	}
}

func TestHubRun(t *testing.T) {
	log := logger.New(logger.Config{Level: "info"})
	hub := NewHub(log)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	go hub.Run(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestHubBroadcast(t *testing.T) {
	log := logger.New(logger.Config{Level: "info"})
	hub := NewHub(log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go hub.Run(ctx)
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(Event{Type: "test", Data: map[string]interface{}{"message": "hello"}})
	time.Sleep(50 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Fatalf("client count = %d, want 0", hub.ClientCount())
	}
}

func TestHubHandler(t *testing.T) {
	log := logger.New(logger.Config{Level: "info"})
	hub := NewHub(log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go hub.Run(ctx)
	time.Sleep(50 * time.Millisecond)

	handler := hub.Handler()
	server := httptest.NewServer(handler)
	defer server.Close()

	_ = "ws" + strings.TrimPrefix(server.URL, "http")

	if handler == nil {
		t.Fatal("handler is nil")
	}
}

func TestEventMarshal(t *testing.T) {
	event := Event{
		Type:      "voice_frame",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"src_unit":   123456,
			"talk_group": 100,
		},
	}

	data, err := event.Marshal()
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("marshaled data is empty")
	}
	if !strings.Contains(string(data), "voice_frame") {
		t.Fatal("marshaled data doesn't contain event type")
	}
}

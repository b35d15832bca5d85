package metrics

import (
	"testing"
)

func TestNewCollector(t *testing.T) {
	collector := NewCollector()
	if collector == nil {
		t.Fatal("expected non-nil collector")
	}
}

func TestCollectorSyncMetrics(t *testing.T) {
	collector := NewCollector()

	collector.SyncLocked()
	collector.SyncLocked()
	collector.SyncFailed()

	if collector.GetSyncLocks() != 2 {
		t.Errorf("expected 2 sync locks, got %d", collector.GetSyncLocks())
	}
	if collector.GetSyncFails() != 1 {
		t.Errorf("expected 1 sync fail, got %d", collector.GetSyncFails())
	}
}

func TestCollectorPacketMetrics(t *testing.T) {
	collector := NewCollector()

	collector.PacketDecoded()
	collector.PacketDecoded()
	collector.DecodeError()
	collector.SymbolsCorrected(5)

	if collector.GetPacketsDecoded() != 2 {
		t.Errorf("expected 2 packets decoded, got %d", collector.GetPacketsDecoded())
	}
	if collector.GetDecodeErrors() != 1 {
		t.Errorf("expected 1 decode error, got %d", collector.GetDecodeErrors())
	}
	if collector.GetCorrectedSymbols() != 5 {
		t.Errorf("expected 5 corrected symbols, got %d", collector.GetCorrectedSymbols())
	}
}

func TestCollectorVoiceAndTrunkingMetrics(t *testing.T) {
	collector := NewCollector()

	collector.VoiceFrameDecoded()
	collector.VoiceFrameDecoded()
	collector.TSBKDecoded()

	if collector.GetVoiceFrames() != 2 {
		t.Errorf("expected 2 voice frames, got %d", collector.GetVoiceFrames())
	}
	if collector.GetTSBKDecoded() != 1 {
		t.Errorf("expected 1 tsbk decoded, got %d", collector.GetTSBKDecoded())
	}
}

func TestCollectorTalkGroupMetrics(t *testing.T) {
	collector := NewCollector()

	collector.TalkGroupActive(3100)
	active := collector.GetActiveTalkGroups()
	if active < 1 {
		t.Errorf("expected at least 1 active talkgroup, got %d", active)
	}

	collector.TalkGroupInactive(3100)
	active = collector.GetActiveTalkGroups()
	if active > 0 {
		t.Errorf("expected 0 active talkgroups, got %d", active)
	}
}

func TestCollectorReset(t *testing.T) {
	collector := NewCollector()

	collector.TalkGroupActive(3100)
	collector.PacketDecoded()

	collector.Reset()

	if collector.GetActiveTalkGroups() != 0 {
		t.Error("expected active talkgroups to be 0 after reset")
	}
	if collector.GetPacketsDecoded() != 1 {
		t.Error("expected packets decoded to remain cumulative after reset")
	}
}

func TestCollectorConcurrent(t *testing.T) {
	collector := NewCollector()

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(id int) {
			collector.PacketDecoded()
			collector.TalkGroupActive(uint16(3100 + id))
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	if collector.GetPacketsDecoded() < 10 {
		t.Error("expected at least 10 packets decoded")
	}
}

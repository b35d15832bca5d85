package eventlog

import (
	"errors"
	"testing"
	"time"

	"github.com/dbehnke/p25core/internal/p25const"
	"github.com/dbehnke/p25core/internal/p25message"
	"github.com/dbehnke/p25core/internal/p25voice"
)

func TestFromMessageEventGroupVoiceTraffic(t *testing.T) {
	var buf [p25const.LinkControlBytes]byte
	buf[0] = 0x00 // opcode 0 => LCGroupVoiceTraffic, unprotected
	buf[6], buf[7], buf[8] = 0x01, 0x02, 0x03

	ev := p25message.MessageEvent{
		Kind:        p25message.EvLinkControl,
		LinkControl: p25voice.NewLinkControlFields(buf),
	}

	when := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)
	rec := FromMessageEvent(ev, when)

	if rec.Kind != "link_control" {
		t.Fatalf("kind = %q, want link_control", rec.Kind)
	}
	if rec.SrcUnit != 0x010203 {
		t.Fatalf("src unit = %#x, want 0x010203", rec.SrcUnit)
	}
	if !rec.Timestamp.Equal(when) {
		t.Fatalf("timestamp = %v, want %v", rec.Timestamp, when)
	}
}

func TestFromMessageEventError(t *testing.T) {
	ev := p25message.MessageEvent{Kind: p25message.EvError, Err: errors.New("boom")}
	rec := FromMessageEvent(ev, time.Now())
	if rec.Kind != "error" {
		t.Fatalf("kind = %q, want error", rec.Kind)
	}
	if rec.ErrMessage != "boom" {
		t.Fatalf("err message = %q, want boom", rec.ErrMessage)
	}
}

func TestFromMessageEventPacketNID(t *testing.T) {
	nid := p25message.NewNetworkID(p25message.OtherNAC(0x293), p25message.TrunkingSignaling)
	ev := p25message.MessageEvent{Kind: p25message.EvPacketNID, NID: nid}
	rec := FromMessageEvent(ev, time.Now())

	if rec.NAC != 0x293 {
		t.Fatalf("nac = %#x, want 0x293", rec.NAC)
	}
	if rec.DataUnit != "trunking_signaling" {
		t.Fatalf("data unit = %q, want trunking_signaling", rec.DataUnit)
	}
}

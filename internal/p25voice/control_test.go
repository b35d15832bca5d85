package p25voice

import (
	"testing"

	"github.com/dbehnke/p25core/internal/p25trunking"
)

func TestLinkControlFields(t *testing.T) {
	lc := NewLinkControlFields([9]byte{
		0b00000000,
		0b00000000,
		0b10110101, 0b00000000,
		0b00000000, 0b00000001,
		0xDE, 0xAD, 0xBE,
	})

	if lc.Opcode() != LCGroupVoiceTraffic {
		t.Fatalf("opcode = %v", lc.Opcode())
	}
	if lc.Protected() {
		t.Fatal("expected unprotected")
	}

	want := []byte{
		0b00000000,
		0b10110101, 0b00000000,
		0b00000000, 0b00000001,
		0xDE, 0xAD, 0xBE,
	}
	if string(lc.Payload()) != string(want) {
		t.Fatalf("payload = %v, want %v", lc.Payload(), want)
	}
}

func TestGroupVoiceTrafficFields(t *testing.T) {
	lc := NewLinkControlFields([9]byte{
		0b00000000,
		0b00000000,
		0b10110101, 0b00000000,
		0b00000000, 0b00000001,
		0xDE, 0xAD, 0xBE,
	})

	dec := NewGroupVoiceTraffic(lc)
	opts := dec.Opts()

	if dec.Mfg() != 0 {
		t.Fatalf("mfg = %d", dec.Mfg())
	}
	if dec.TalkGroup() != p25trunking.DefaultTalkGroup {
		t.Fatalf("talk group = %v", dec.TalkGroup())
	}
	if dec.SrcUnit() != 0xDEADBE {
		t.Fatalf("src unit = %#x", dec.SrcUnit())
	}

	if !opts.Emergency() {
		t.Error("expected emergency")
	}
	if opts.Protected() {
		t.Error("expected not protected")
	}
	if !opts.Duplex() {
		t.Error("expected duplex")
	}
	if !opts.PacketSwitched() {
		t.Error("expected packet switched")
	}
	if opts.Prio() != 5 {
		t.Errorf("prio = %d", opts.Prio())
	}
}

func TestAdjacentSiteFromLinkControlPayload(t *testing.T) {
	lc := NewLinkControlFields([9]byte{
		0b10100111,
		0b11001100,
		0b00001111,
		0b01010101,
		0b11100011,
		0b00011000,
		0b11000001,
		0b11111111,
		0b01010001,
	})

	a := p25trunking.NewAdjacentSite(lc.Payload())

	if a.Area() != 0b11001100 {
		t.Errorf("area = %08b", a.Area())
	}
	if a.System() != 0b111101010101 {
		t.Errorf("system = %012b", a.System())
	}
	if a.RFSS() != 0b11100011 {
		t.Errorf("rfss = %08b", a.RFSS())
	}
	if a.Site() != 0b00011000 {
		t.Errorf("site = %08b", a.Site())
	}
	if a.Channel().ID() != 0b1100 {
		t.Errorf("channel id = %04b", a.Channel().ID())
	}
	if a.Channel().Number() != 0b000111111111 {
		t.Errorf("channel number = %012b", a.Channel().Number())
	}

	s := a.Services()
	if !s.IsComposite() || s.HasUpdates() || s.IsBackup() || !s.HasData() || s.HasVoice() || !s.HasRegistration() || s.HasAuth() {
		t.Errorf("services = %+v", s)
	}
}

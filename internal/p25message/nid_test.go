package p25message

import (
	"testing"

	"github.com/dbehnke/p25core/internal/p25bits"
)

func TestNACRoundTrip(t *testing.T) {
	cases := []NetworkAccessCode{DefaultNAC, ReceiveAnyNAC, RepeatAnyNAC, OtherNAC(0x123)}
	for _, nac := range cases {
		if got := NACFromBits(nac.Bits()); got != nac {
			t.Errorf("round trip for %+v: got %+v", nac, got)
		}
	}
}

func TestDataUnitRoundTrip(t *testing.T) {
	units := []DataUnit{
		VoiceHeader, VoiceSimpleTerminator, VoiceLCTerminator,
		VoiceLCFrameGroup, VoiceCCFrameGroup, DataPacket, TrunkingSignaling,
	}
	for _, du := range units {
		got, ok := DataUnitFromBits(du.Bits())
		if !ok || got != du {
			t.Errorf("round trip for %v: got (%v,%v)", du, got, ok)
		}
	}
}

func TestDataUnitFromBitsUnknown(t *testing.T) {
	if _, ok := DataUnitFromBits(0b0001); ok {
		t.Error("expected unknown data unit pattern to fail")
	}
}

func TestNetworkIDEncodeThenReceive(t *testing.T) {
	nid := NewNetworkID(DefaultNAC, VoiceLCFrameGroup)
	encoded := nid.Encode()

	var bits []byte
	for _, b := range encoded {
		bits = append(bits, b)
	}

	r := NewNIDReceiver()
	var gotEvent NIDEvent
	var gotOK bool
	for _, b := range bits {
		for i := 7; i >= 0; i -= 2 {
			d := p25bits.NewDibit((b >> uint(i-1)) & 0b11)
			if ev, ok := r.Feed(d); ok {
				gotEvent = ev
				gotOK = true
			}
		}
	}

	if !gotOK {
		t.Fatal("expected a decode event after 32 dibits")
	}
	if gotEvent.Err != nil {
		t.Fatalf("unexpected decode error: %v", gotEvent.Err)
	}
	if gotEvent.NID != nid {
		t.Errorf("got %+v want %+v", gotEvent.NID, nid)
	}
}

func TestNetworkIDBits(t *testing.T) {
	nid := NewNetworkID(DefaultNAC, VoiceHeader)
	want := uint16(0x293)<<4 | uint16(0b0000)
	if got := nid.Bits(); got != want {
		t.Errorf("got %#x want %#x", got, want)
	}
}

package p25voice

import (
	"testing"

	"github.com/dbehnke/p25core/internal/p25trunking"
)

func TestVoiceHeaderFields(t *testing.T) {
	h := NewVoiceHeaderFields([15]byte{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		0b00000000,
		0b10000000,
		0b00000000,
		0b00000000,
		0b11111111,
		0b11111111,
	})

	if string(h.CryptoInit()) != string([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Fatalf("crypto init = %v", h.CryptoInit())
	}
	if h.Mfg() != 0 {
		t.Fatalf("mfg = %d", h.Mfg())
	}
	alg, ok := h.CryptoAlg()
	if !ok || alg != Unencrypted {
		t.Fatalf("crypto alg = %v, %v", alg, ok)
	}
	if h.CryptoKey() != 0 {
		t.Fatalf("crypto key = %#x", h.CryptoKey())
	}
	if h.TalkGroup() != p25trunking.EverybodyTalkGroup {
		t.Fatalf("talk group = %v", h.TalkGroup())
	}
}

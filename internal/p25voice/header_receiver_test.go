package p25voice

import (
	"testing"

	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25coding"
)

func TestVoiceHeaderReceiverRoundTrip(t *testing.T) {
	var headerBytes [15]byte
	for i := range headerBytes {
		headerBytes[i] = byte(i*11 + 3)
	}

	hexbits := p25bits.UnpackHexbits(headerBytes[:])
	var data [20]uint8
	for i, h := range hexbits {
		data[i] = h.Bits()
	}
	parity := p25coding.RSEncodeLong(data)

	var word36 [36]uint8
	copy(word36[:20], data[:])
	copy(word36[20:], parity[:])

	r := NewVoiceHeaderReceiver()

	var got VoiceHeaderFields
	var lastErr error
	gotOK := false

	for _, hb := range word36 {
		cw := p25coding.GolayShortenedEncode(hb)
		for shift := 16; shift >= 0; shift -= 2 {
			d := p25bits.NewDibit(uint8(cw>>uint(shift)) & 0b11)
			fields, err, ok := r.Feed(d)
			if ok {
				got, lastErr, gotOK = fields, err, true
			}
		}
	}

	if !gotOK {
		t.Fatal("header receiver never produced a result")
	}
	if lastErr != nil {
		t.Fatalf("unexpected error: %v", lastErr)
	}
	if string(got.CryptoInit()) != string(headerBytes[:9]) {
		t.Fatalf("crypto init = %v, want %v", got.CryptoInit(), headerBytes[:9])
	}
	if got.Mfg() != headerBytes[9] {
		t.Fatalf("mfg = %d, want %d", got.Mfg(), headerBytes[9])
	}
}

package p25voice

import (
	"testing"

	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25coding"
)

func TestVoiceLCTerminatorReceiverRoundTrip(t *testing.T) {
	var lcBytes [9]byte
	for i := range lcBytes {
		lcBytes[i] = byte(i * 17)
	}

	hexbits := p25bits.UnpackHexbits(lcBytes[:])
	var data [12]uint8
	for i, h := range hexbits {
		data[i] = h.Bits()
	}
	parity := p25coding.RSEncodeShort(data)

	var word24 [24]uint8
	copy(word24[:12], data[:])
	copy(word24[12:], parity[:])

	r := NewVoiceLCTerminatorReceiver()

	var got LinkControlFields
	var lastErr error
	gotOK := false

	for i := 0; i < 12; i++ {
		d := uint16(word24[2*i])<<6 | uint16(word24[2*i+1])
		golayWord := p25coding.GolayExtendedEncode(d)
		for shift := 22; shift >= 0; shift -= 2 {
			dibit := p25bits.NewDibit(uint8(golayWord>>uint(shift)) & 0b11)
			fields, err, ok := r.Feed(dibit)
			if ok {
				got, lastErr, gotOK = fields, err, true
			}
		}
	}

	if !gotOK {
		t.Fatal("receiver never produced a result")
	}
	if lastErr != nil {
		t.Fatalf("unexpected error: %v", lastErr)
	}
	if string(got.Payload()) != string(lcBytes[1:9]) {
		t.Fatalf("decoded payload = %v, want %v", got.Payload(), lcBytes[1:9])
	}
}

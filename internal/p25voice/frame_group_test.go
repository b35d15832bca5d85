package p25voice

import (
	"testing"

	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25coding"
	"github.com/dbehnke/p25core/internal/p25const"
)

// scrambleChunk writes value's low width bits (MSB first) into dibits at
// the positions descramble would later read them back from, inverting
// voiceFrameDescrambler.descramble.
func scrambleChunk(dibits *[p25const.FrameDibits]p25bits.Dibit, idx int, value uint32, width int) {
	bitPos := width - 1
	for _, zz := range descramblers[idx] {
		di, hi, num := zz.idx, zz.hi, zz.num
		for num > 0 {
			bit := uint8(value>>uint(bitPos)) & 1
			cur := dibits[di].Bits()
			if hi {
				cur = cur&0b01 | bit<<1
			} else {
				cur = cur&0b10 | bit
			}
			dibits[di] = p25bits.NewDibit(cur)
			bitPos--
			di += 3
			hi = !hi
			num--
		}
	}
}

// encodeVoiceFrame builds a valid 72-dibit voice frame for the given 8
// chunk values, mirroring NewFrame's descramble/FEC-decode in reverse.
func encodeVoiceFrame(chunks [8]uint32) [p25const.FrameDibits]p25bits.Dibit {
	var dibits [p25const.FrameDibits]p25bits.Dibit

	scrambleChunk(&dibits, 0, p25coding.GolayStandardEncode(uint16(chunks[0])), 23)
	prand := newPseudoRand(uint16(chunks[0]))

	for idx := 1; idx < 4; idx++ {
		cw := p25coding.GolayStandardEncode(uint16(chunks[idx]))
		wire := cw ^ prand.next23()
		scrambleChunk(&dibits, idx, wire, 23)
	}
	for idx := 4; idx < 7; idx++ {
		cw := p25coding.HammingStandardEncode(uint16(chunks[idx]))
		wire := uint32(cw) ^ prand.next15()
		scrambleChunk(&dibits, idx, wire, 15)
	}
	scrambleChunk(&dibits, 7, chunks[7], 7)

	return dibits
}

func feedDibits(t *FrameGroupReceiver[LinkControlFields], dibits [p25const.FrameDibits]p25bits.Dibit) []FrameGroupEvent[LinkControlFields] {
	var events []FrameGroupEvent[LinkControlFields]
	for _, d := range dibits {
		ev, err, ok := t.Feed(d)
		if err != nil {
			panic(err)
		}
		if ok {
			events = append(events, ev)
		}
	}
	return events
}

func TestVoiceFrameReceiverDecodesValidFrame(t *testing.T) {
	chunks := [8]uint32{0x0AB, 0x123, 0x0CD, 0x0EF, 0x345, 0x123, 0x456, 0x55}
	dibits := encodeVoiceFrame(chunks)

	vfr := newVoiceFrameReceiver()
	var got Frame
	gotOK := false
	for _, d := range dibits {
		frame, err, ok := vfr.feed(d)
		if ok {
			if err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			got, gotOK = frame, true
		}
	}

	if !gotOK {
		t.Fatal("voice frame receiver never produced a frame")
	}
	if got.Chunks != chunks {
		t.Fatalf("chunks = %v, want %v", got.Chunks, chunks)
	}
}

func TestFrameGroupReceiverFirstVoiceFrame(t *testing.T) {
	chunks := [8]uint32{0x0AB, 0x123, 0x0CD, 0x0EF, 0x345, 0x123, 0x456, 0x55}
	dibits := encodeVoiceFrame(chunks)

	r := NewFrameGroupReceiver[LinkControlFields](LinkControlExtra{})
	events := feedDibits(r, dibits)

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != EventVoiceFrame {
		t.Fatalf("kind = %v, want EventVoiceFrame", events[0].Kind)
	}
	if events[0].VoiceFrame.Chunks != chunks {
		t.Fatalf("chunks = %v, want %v", events[0].VoiceFrame.Chunks, chunks)
	}
	if r.Done() {
		t.Fatal("receiver reports done after only the first frame")
	}
}

func TestDataFragmentReceiverRoundTrip(t *testing.T) {
	fr := newDataFragmentReceiver()

	feedWord := func(data uint8) (uint32, error, bool) {
		cw := p25coding.CyclicEncode(data)
		var got uint32
		var gotErr error
		var gotOK bool
		for shift := 14; shift >= 0; shift -= 2 {
			d := p25bits.NewDibit(uint8(cw>>uint(shift)) & 0b11)
			result, err, ok := fr.feed(d)
			if ok {
				got, gotErr, gotOK = result, err, true
			}
		}
		return got, gotErr, gotOK
	}

	result, err, ok := feedWord(0x12)
	if ok {
		t.Fatal("fragment receiver completed after only one word")
	}
	if err != nil {
		t.Fatalf("unexpected error after first word: %v", err)
	}

	result, err, ok = feedWord(0x34)
	if !ok {
		t.Fatal("fragment receiver did not complete after second word")
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := uint32(0x12)<<8 | uint32(0x34); result != want {
		t.Fatalf("data = %#x, want %#x", result, want)
	}
}

func TestExtraReceiverDecodesLinkControl(t *testing.T) {
	var lcBytes [9]byte
	for i := range lcBytes {
		lcBytes[i] = byte(i*23 + 7)
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

	er := newExtraReceiver[LinkControlFields](LinkControlExtra{})

	var got LinkControlFields
	gotOK := false
	for _, hb := range word24 {
		cw := p25coding.HammingShortenedEncode(hb)
		for shift := 8; shift >= 0; shift -= 2 {
			d := p25bits.NewDibit(uint8(cw>>uint(shift)) & 0b11)
			fields, err, ok := er.feed(d)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok {
				got, gotOK = fields, true
			}
		}
	}

	if !gotOK {
		t.Fatal("extra receiver never completed")
	}
	if string(got.Payload()) != string(lcBytes[1:9]) {
		t.Fatalf("payload = %v, want %v", got.Payload(), lcBytes[1:9])
	}
}

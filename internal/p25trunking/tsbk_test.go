package p25trunking

import (
	"testing"

	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25coding"
	"github.com/dbehnke/p25core/internal/p25const"
	"github.com/dbehnke/p25core/internal/p25data"
)

func TestTSBKOpcodeFromBits(t *testing.T) {
	cases := []struct {
		bits byte
		want TSBKOpcode
	}{
		{0b000000, OpGroupVoiceGrant},
		{0b000010, OpGroupVoiceUpdate},
		{0b000100, OpUnitVoiceGrant},
		{0b111001, OpAltControlBroadcast},
		{0b111011, OpNetworkStatusBroadcast},
		{0b111101, OpChannelParamsUpdate},
		{0b000001, OpUnknownReserved},
		{0b001101, OpUnknownReserved},
	}
	for _, c := range cases {
		if got := TSBKOpcodeFromBits(c.bits); got != c.want {
			t.Errorf("opcode(%06b) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestTSBKHeaderFields(t *testing.T) {
	buf := [12]byte{0b11000000, 0x12, 0, 0, 0, 0, 0, 0, 0, 0, 0xAB, 0xCD}
	tsbk := NewTSBK(buf)

	if !tsbk.IsTail() {
		t.Error("expected IsTail")
	}
	if tsbk.Opcode() != OpGroupVoiceGrant {
		t.Errorf("opcode = %v", tsbk.Opcode())
	}
	if tsbk.Mfg() != 0x12 {
		t.Errorf("mfg = %#x", tsbk.Mfg())
	}
	if tsbk.CRC() != 0xABCD {
		t.Errorf("crc = %#x", tsbk.CRC())
	}
}

func TestTSBKCalcCRCMatchesEncoded(t *testing.T) {
	body := [10]byte{0, 0x12, 1, 2, 3, 4, 5, 6, 7, 8}
	crc := uint16(p25coding.NewCRC16().FeedBytes(body[:]).Finish())

	var buf [12]byte
	copy(buf[:10], body[:])
	buf[10] = byte(crc >> 8)
	buf[11] = byte(crc)

	tsbk := NewTSBK(buf)
	if tsbk.CalcCRC() != tsbk.CRC() {
		t.Errorf("calc crc %#x != embedded crc %#x", tsbk.CalcCRC(), tsbk.CRC())
	}
}

func TestGroupVoiceGrantFields(t *testing.T) {
	buf := [12]byte{0, 0, 0x87, 0, 0, 0x12, 0x34, 0x12, 0x34, 0x56, 0, 0}
	g := NewGroupVoiceGrant(NewTSBK(buf))

	if !g.Opts().Emergency() {
		t.Error("expected emergency flag set")
	}
	if g.TalkGroup() != OtherTalkGroup(0x1234) {
		t.Errorf("talk group = %v", g.TalkGroup())
	}
	if g.SrcUnit() != 0x123456 {
		t.Errorf("src unit = %#x", g.SrcUnit())
	}
}

func TestChannelParamsUpdateFields(t *testing.T) {
	buf := [12]byte{0, 0, 0x30, 0, 0, 0, 0x00, 0x00, 0x27, 0x10, 0, 0}
	c := NewChannelParamsUpdate(NewTSBK(buf))

	if c.ChannelID() != 3 {
		t.Errorf("channel id = %d", c.ChannelID())
	}
	params := c.Params()
	if params.RxFreq(0) != 0x2710*5 {
		t.Errorf("rx freq = %d", params.RxFreq(0))
	}
}

func TestTSBKDecoderRoundTrip(t *testing.T) {
	var payload [48]uint8
	for i := range payload {
		payload[i] = uint8(i % 4)
	}

	encoded := p25coding.DibitTrellisEncode(payload[:])

	var interleaved [p25const.CodingDibits]p25bits.Dibit
	for i, b := range encoded {
		interleaved[i] = p25bits.NewDibit(b)
	}
	onAir := p25data.Interleave(&interleaved)

	dec := NewTSBKDecoder()
	var lastErr error
	var got TSBK
	gotOK := false
	for _, dib := range onAir {
		tsbk, err, ok := dec.Feed(dib)
		if ok {
			got, lastErr, gotOK = tsbk, err, true
		}
	}

	if !gotOK {
		t.Fatal("decoder never produced a block")
	}
	if lastErr != nil {
		t.Fatalf("unexpected decode error: %v", lastErr)
	}
	if got.buf[0] == 0xFF {
		t.Fatalf("sanity check failed: %v", got.buf)
	}
}

package p25coding

import "testing"

func TestCRCCalc(t *testing.T) {
	p := crcParams{gen: 0b100011011, inv: 0b111, shift: 0}
	c := &CRC{params: p}
	c.FeedBytes([]byte{0b00111111, 0b01111110})
	if got := c.Finish(); got != 0b110 {
		t.Errorf("got %b want %b", got, 0b110)
	}
}

func TestCRCShift(t *testing.T) {
	p := crcParams{gen: 0b10001101100, inv: 0b111, shift: 2}
	c := &CRC{params: p}
	c.FeedBytes([]byte{0b00111111, 0b01111110})
	if got := c.Finish(); got != 0b011 {
		t.Errorf("got %b want %b", got, 0b011)
	}
}

func TestCRC32Vector(t *testing.T) {
	c := NewCRC32()
	c.FeedBytes([]byte{0b1010})
	want := uint64(0b11010000011101010010100100101001)
	if got := c.Finish(); got != want {
		t.Errorf("got %b want %b", got, want)
	}
}

func TestCRCDegree(t *testing.T) {
	if d := degree(crc9Params.gen); int(d) >= 64-8 {
		t.Errorf("crc9 gen degree %d exceeds feed window", d)
	}
	if d := degree(crc16Params.gen); int(d) >= 64-8 {
		t.Errorf("crc16 gen degree %d exceeds feed window", d)
	}
	if d := degree(crc32Params.gen); int(d) >= 64-8 {
		t.Errorf("crc32 gen degree %d exceeds feed window", d)
	}
}

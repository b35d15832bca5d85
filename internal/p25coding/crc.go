package p25coding

import "math/bits"

// crcParams bundles a CRC's generator polynomial, inversion mask, and the
// final left-shift amount (equal to the CRC's bit width).
type crcParams struct {
	gen   uint64
	inv   uint64
	shift int
}

var crc9Params = crcParams{gen: 0b1001011001, inv: 0b111111111, shift: 9}
var crc16Params = crcParams{gen: 0b10001000000100001, inv: 0b1111111111111111, shift: 16}
var crc32Params = crcParams{gen: 0b100000100110000010001110110110111, inv: 0b11111111111111111111111111111111, shift: 32}

// CRC computes a CRC via long division, using a 64-bit word as the
// division buffer since P25's CRCs (9, 16, 32 bit) all fit comfortably.
type CRC struct {
	params crcParams
	word   uint64
}

// NewCRC9 returns a calculator for P25's 9-bit data CRC.
func NewCRC9() *CRC { return &CRC{params: crc9Params} }

// NewCRC16 returns a calculator for P25's 16-bit data CRC.
func NewCRC16() *CRC { return &CRC{params: crc16Params} }

// NewCRC32 returns a calculator for P25's 32-bit data CRC.
func NewCRC32() *CRC { return &CRC{params: crc32Params} }

// FeedBits feeds in the low num bits of bits (num <= 8).
func (c *CRC) FeedBits(b uint8, num int) *CRC {
	c.word <<= uint(num)
	c.word |= uint64(b)
	c.div()
	return c
}

// FeedBytes feeds in a full byte stream, 8 bits at a time.
func (c *CRC) FeedBytes(data []byte) *CRC {
	for _, b := range data {
		c.FeedBits(b, 8)
	}
	return c
}

// Finish performs the final shift-and-divide and returns the resulting
// CRC value, XORed with the inversion mask.
func (c *CRC) Finish() uint64 {
	c.flush()
	return c.word ^ c.params.inv
}

func (c *CRC) div() {
	genDeg := degree(c.params.gen)
	for c.word != 0 {
		diff := int(degree(c.word)) - int(genDeg)
		if diff < 0 {
			break
		}
		c.word ^= c.params.gen << uint(diff)
	}
}

func (c *CRC) flush() {
	for i := 0; i < c.params.shift; i++ {
		c.word <<= 1
		c.div()
	}
}

// degree returns the degree of the polynomial represented by x, x > 0.
func degree(x uint64) uint32 {
	return uint32(64 - 1 - bits.LeadingZeros64(x))
}

// Package p25galois implements GF(2^6) codeword arithmetic, characterised
// by the field polynomial a^6+a+1, and a fixed-capacity polynomial type
// over that field used by every P25 block code (BCH, Reed-Solomon) for
// Berlekamp-Massey error-location and Chien/Forney error-value search.
package p25galois

// FieldSize is the number of nonzero elements of GF(2^6): 2^6 - 1.
const FieldSize = 63

// codewords[p] is the codeword for power p, i.e. a^p in GF(2^6).
// powers[c-1] is the discrete log (power) of nonzero codeword c.
// Both tables are characterised by the field polynomial a^6+a+1 and are
// generated the same way the reference implementation's offline table
// generator does: repeatedly multiply by a, reducing by a^6 = a+1
// whenever the top bit overflows 6 bits.
var codewords [FieldSize]uint8
var powers [FieldSize]int

func init() {
	c := uint8(1)
	for p := 0; p < FieldSize; p++ {
		codewords[p] = c
		powers[c-1] = p

		// Multiply by the primitive element a (left shift) and reduce
		// modulo the field polynomial a^6 + a + 1 (0b1000011) when the
		// result overflows 6 bits.
		c <<= 1
		if c&0x40 != 0 {
			c ^= 0x43 // x^6 + x + 1: clears the x^6 bit and adds x + 1
		}
	}
}

// Codeword is an element of GF(2^6), represented as a 6-bit pattern.
type Codeword uint8

// Zero is the additive identity.
const Zero Codeword = 0

// ForPower returns a^(power mod 63).
func ForPower(power int) Codeword {
	power %= FieldSize
	if power < 0 {
		power += FieldSize
	}
	return Codeword(codewords[power])
}

// Zero reports whether the codeword is the additive identity.
func (c Codeword) Zero() bool { return c == 0 }

// Power returns the discrete log of c, or ok=false for the zero codeword
// (which has no defined power).
func (c Codeword) Power() (int, bool) {
	if c == 0 {
		return 0, false
	}
	return powers[uint8(c)-1], true
}

// Add returns c+other, which in GF(2^n) is simply XOR.
func (c Codeword) Add(other Codeword) Codeword { return c ^ other }

// Sub is identical to Add in characteristic 2.
func (c Codeword) Sub(other Codeword) Codeword { return c ^ other }

// Mul returns c*other.
func (c Codeword) Mul(other Codeword) Codeword {
	if c == 0 || other == 0 {
		return 0
	}
	pc, _ := c.Power()
	po, _ := other.Power()
	return ForPower(pc + po)
}

// Div returns c/other. Panics if other is zero.
func (c Codeword) Div(other Codeword) Codeword {
	if other == 0 {
		panic("p25galois: division by zero codeword")
	}
	if c == 0 {
		return 0
	}
	pc, _ := c.Power()
	po, _ := other.Power()
	return ForPower(pc - po)
}

// Invert returns 1/c. Panics if c is zero.
func (c Codeword) Invert() Codeword {
	if c == 0 {
		panic("p25galois: inversion of zero codeword")
	}
	p, _ := c.Power()
	return ForPower(FieldSize - p)
}

// Bits returns the raw 6-bit pattern.
func (c Codeword) Bits() uint8 { return uint8(c) }

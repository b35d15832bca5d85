package p25coding

import "github.com/dbehnke/p25core/internal/p25galois"

// bchGen is the (63,16,23) BCH generator matrix, one 16-bit row per parity
// bit (47 parity bits) plus a final row producing the extra P25 parity bit
// appended to make the 64-bit on-air word. Exact transcription of the
// reference matrix.
var bchGen = []uint64{
	0b1110110001000111,
	0b1001101001100100,
	0b0100110100110010,
	0b0010011010011001,
	0b1111111100001011,
	0b1001001111000010,
	0b0100100111100001,
	0b1100100010110111,
	0b1000100000011100,
	0b0100010000001110,
	0b0010001000000111,
	0b1111110101000100,
	0b0111111010100010,
	0b0011111101010001,
	0b1111001111101111,
	0b1001010110110000,
	0b0100101011011000,
	0b0010010101101100,
	0b0001001010110110,
	0b0000100101011011,
	0b1110100011101010,
	0b0111010001110101,
	0b1101011001111101,
	0b1000011101111001,
	0b1010111111111011,
	0b1011101110111010,
	0b0101110111011101,
	0b1100001010101001,
	0b1000110100010011,
	0b1010101011001110,
	0b0101010101100111,
	0b1100011011110100,
	0b0110001101111010,
	0b0011000110111101,
	0b1111010010011001,
	0b1001011000001011,
	0b1010011101000010,
	0b0101001110100001,
	0b1100010110010111,
	0b1000111010001100,
	0b0100011101000110,
	0b0010001110100011,
	0b1111110110010110,
	0b0111111011001011,
	0b1101001100100010,
	0b0110100110010001,
	0b1101100010001111,
	0b0000000000000011,
}

// bchSyndromeCount is 2t for the (63,16,23) code: t=11 correctable errors.
const bchSyndromeCount = 22

// BCHEncode encodes 16 data bits into a 64-bit on-air word (63-bit BCH
// codeword plus one extra P25 parity bit).
func BCHEncode(word uint16) uint64 {
	return matrixMulSystematic(uint64(word), bchGen)
}

// BCHDecode tries to correct the given 64-bit word to the nearest (63,16,23)
// BCH codeword, correcting up to 11 bit errors. Returns the 16 data bits and
// the number of bits corrected, or ok=false if the word is unrecoverable.
func BCHDecode(bits64 uint64) (data uint16, corrected int, ok bool) {
	word := bits64 >> 1 // strip the extra P25 parity bit; BCH covers 63 bits

	syn := bchSyndromes(word)
	if syn.Degree() < 0 {
		// No errors: the received word is already a valid codeword.
		return uint16(word >> 47), 0, true
	}

	corrections, expected := p25galois.Decode(syn, bchSyndromeCount)
	if expected <= 0 || len(corrections) != expected {
		return 0, 0, false
	}

	fixed := word
	for _, e := range corrections {
		if e.Value != p25galois.ForPower(0) {
			return 0, 0, false
		}
		fixed ^= 1 << uint(e.Location)
	}

	return uint16(fixed >> 47), expected, true
}

// bchSyndromes computes the syndrome polynomial s(x) = s_1 + s_2 x + ... +
// s_2t x^(2t-1) for the received 63-bit word, where s_i = r(a^i).
func bchSyndromes(word uint64) p25galois.Polynomial {
	syn := p25galois.NewPolynomial(bchSyndromeCount + 2)
	for p := 1; p <= bchSyndromeCount; p++ {
		var s p25galois.Codeword
		for b := 0; b < p25galois.FieldSize; b++ {
			if word>>uint(b)&1 == 0 {
				continue
			}
			s = s.Add(p25galois.ForPower(b * p))
		}
		syn.Set(p-1, s)
	}
	return syn
}

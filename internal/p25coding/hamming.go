package p25coding

// hammingStandardGen is the (15,11,3) generator matrix (without the
// identity part): 4 rows, each spanning the 11 data bits.
var hammingStandardGen = []uint64{
	0b11111110000,
	0b11110001110,
	0b11001101101,
	0b10101011011,
}

// hammingStandardPar is the (15,11,3) parity-check matrix, derived from
// the generator by the standard method.
var hammingStandardPar = []uint64{
	0b111111100001000,
	0b111100011100100,
	0b110011011010010,
	0b101010110110001,
}

// hammingStandardLocations maps a 4-bit syndrome to the single bit-error
// location it implies (index 0 means no error; unused syndromes that map
// to no valid single-bit error are 0 for indices that can't occur in this
// code's 15-bit space, though the standard code has a location for every
// nonzero syndrome).
var hammingStandardLocations = []uint64{
	0,
	0b0000000000000001,
	0b0000000000000010,
	0b0000000000010000,
	0b0000000000000100,
	0b0000000000100000,
	0b0000000001000000,
	0b0000000010000000,
	0b0000000000001000,
	0b0000000100000000,
	0b0000001000000000,
	0b0000010000000000,
	0b0000100000000000,
	0b0001000000000000,
	0b0010000000000000,
	0b0100000000000000,
}

// hammingShortenedGen is the (10,6,3) generator matrix (without identity).
var hammingShortenedGen = []uint64{
	0b111001,
	0b110101,
	0b101110,
	0b011110,
}

// hammingShortenedPar is the (10,6,3) parity-check matrix.
var hammingShortenedPar = []uint64{
	0b1110011000,
	0b1101010100,
	0b1011100010,
	0b0111100001,
}

// hammingShortenedLocations maps a 4-bit syndrome to its single bit-error
// location; some syndromes can't occur for this shortened code and map to
// 0 (treated as unrecoverable), matching the reference exactly.
var hammingShortenedLocations = []uint64{
	0,
	0b0000000000000001,
	0b0000000000000010,
	0b0000000000100000,
	0b0000000000000100,
	0,
	0,
	0b0000000001000000,
	0b0000000000001000,
	0,
	0,
	0b0000000010000000,
	0b0000000000010000,
	0b0000000100000000,
	0b0000001000000000,
	0,
}

// HammingStandardEncode encodes 11 data bits into a 15-bit (15,11,3)
// codeword.
func HammingStandardEncode(data uint16) uint16 {
	return uint16(matrixMulSystematic(uint64(data), hammingStandardGen))
}

// HammingStandardDecode tries to correct up to 1 error in a 15-bit
// (15,11,3) word, returning the 11 data bits.
func HammingStandardDecode(word uint16) (data uint16, corrected int, ok bool) {
	w, n, ok := hammingDecode(uint64(word), hammingStandardPar, hammingStandardLocations)
	if !ok {
		return 0, 0, false
	}
	return uint16(w >> 4), n, true
}

// HammingShortenedEncode encodes 6 data bits into a 10-bit (10,6,3)
// codeword.
func HammingShortenedEncode(data uint8) uint16 {
	return uint16(matrixMulSystematic(uint64(data), hammingShortenedGen))
}

// HammingShortenedDecode tries to correct up to 1 error in a 10-bit
// (10,6,3) word, returning the 6 data bits.
func HammingShortenedDecode(word uint16) (data uint8, corrected int, ok bool) {
	w, n, ok := hammingDecode(uint64(word), hammingShortenedPar, hammingShortenedLocations)
	if !ok {
		return 0, 0, false
	}
	return uint8(w >> 4), n, true
}

// hammingDecode computes the syndrome of word against par and looks it up
// in locs to find the (at most one) bit to flip.
func hammingDecode(word uint64, par, locs []uint64) (uint64, int, bool) {
	s := matrixMul(word, par)
	if s == 0 {
		return word, 0, true
	}
	if int(s) >= len(locs) {
		return 0, 0, false
	}
	loc := locs[s]
	if loc == 0 {
		return 0, 0, false
	}
	return word ^ loc, 1, true
}

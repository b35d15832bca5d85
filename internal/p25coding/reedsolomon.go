package p25coding

import "github.com/dbehnke/p25core/internal/p25galois"

// Reed-Solomon generator matrix entries are literal GF(2^6) codeword bit
// patterns (not powers), written in octal as the reference does, one row
// per parity hexbit with one column per data hexbit.

// rsShortGen is the (24,12,13) short code's generator matrix (12 rows,
// 12 columns): corrects up to 6 hexbit errors.
var rsShortGen = [][]uint8{
	{0o62, 0o11, 0o03, 0o21, 0o30, 0o01, 0o61, 0o24, 0o72, 0o72, 0o73, 0o71},
	{0o44, 0o12, 0o01, 0o70, 0o22, 0o41, 0o76, 0o22, 0o42, 0o14, 0o65, 0o05},
	{0o03, 0o11, 0o05, 0o27, 0o03, 0o27, 0o21, 0o71, 0o05, 0o65, 0o36, 0o55},
	{0o25, 0o11, 0o75, 0o45, 0o75, 0o56, 0o55, 0o56, 0o20, 0o54, 0o61, 0o03},
	{0o14, 0o16, 0o14, 0o16, 0o15, 0o76, 0o76, 0o21, 0o43, 0o35, 0o42, 0o71},
	{0o16, 0o64, 0o06, 0o67, 0o15, 0o64, 0o01, 0o35, 0o47, 0o25, 0o22, 0o34},
	{0o27, 0o67, 0o20, 0o23, 0o33, 0o21, 0o63, 0o73, 0o33, 0o41, 0o17, 0o60},
	{0o03, 0o55, 0o44, 0o64, 0o15, 0o53, 0o35, 0o42, 0o56, 0o16, 0o04, 0o11},
	{0o53, 0o01, 0o66, 0o73, 0o51, 0o04, 0o30, 0o57, 0o01, 0o15, 0o44, 0o74},
	{0o04, 0o76, 0o06, 0o33, 0o03, 0o25, 0o13, 0o74, 0o16, 0o40, 0o20, 0o02},
	{0o36, 0o26, 0o70, 0o44, 0o53, 0o01, 0o64, 0o43, 0o13, 0o71, 0o25, 0o41},
	{0o47, 0o73, 0o66, 0o21, 0o50, 0o12, 0o70, 0o76, 0o76, 0o26, 0o05, 0o50},
}

// rsMediumGen is the (24,16,9) medium code's generator matrix (8 rows, 16
// columns): corrects up to 4 hexbit errors.
var rsMediumGen = [][]uint8{
	{0o51, 0o57, 0o05, 0o73, 0o75, 0o20, 0o02, 0o24, 0o42, 0o32, 0o65, 0o64, 0o62, 0o55, 0o24, 0o67},
	{0o45, 0o25, 0o01, 0o07, 0o15, 0o32, 0o75, 0o74, 0o64, 0o32, 0o36, 0o06, 0o63, 0o43, 0o23, 0o75},
	{0o67, 0o63, 0o31, 0o47, 0o51, 0o14, 0o43, 0o15, 0o07, 0o55, 0o25, 0o54, 0o74, 0o34, 0o23, 0o45},
	{0o15, 0o73, 0o04, 0o14, 0o51, 0o42, 0o05, 0o72, 0o22, 0o41, 0o07, 0o32, 0o70, 0o71, 0o05, 0o60},
	{0o64, 0o71, 0o16, 0o41, 0o17, 0o75, 0o01, 0o24, 0o61, 0o57, 0o50, 0o76, 0o05, 0o57, 0o50, 0o57},
	{0o67, 0o22, 0o54, 0o77, 0o67, 0o42, 0o40, 0o26, 0o20, 0o66, 0o16, 0o46, 0o27, 0o76, 0o70, 0o24},
	{0o52, 0o40, 0o25, 0o47, 0o17, 0o70, 0o12, 0o74, 0o40, 0o21, 0o40, 0o14, 0o37, 0o50, 0o42, 0o06},
	{0o12, 0o15, 0o76, 0o11, 0o57, 0o54, 0o64, 0o61, 0o65, 0o77, 0o51, 0o36, 0o46, 0o64, 0o23, 0o26},
}

// rsLongGen is the (36,20,17) long code's generator matrix (16 rows, 20
// columns): corrects up to 8 hexbit errors.
var rsLongGen = [][]uint8{
	{0o74, 0o04, 0o07, 0o26, 0o23, 0o24, 0o52, 0o55, 0o54, 0o74, 0o54, 0o51, 0o01, 0o11, 0o06, 0o34, 0o63, 0o71, 0o02, 0o34},
	{0o37, 0o17, 0o23, 0o05, 0o73, 0o51, 0o33, 0o62, 0o51, 0o41, 0o70, 0o07, 0o65, 0o70, 0o02, 0o31, 0o43, 0o21, 0o01, 0o35},
	{0o34, 0o50, 0o37, 0o07, 0o73, 0o25, 0o14, 0o56, 0o32, 0o30, 0o11, 0o72, 0o32, 0o05, 0o65, 0o01, 0o25, 0o70, 0o53, 0o02},
	{0o06, 0o24, 0o46, 0o63, 0o41, 0o23, 0o02, 0o25, 0o65, 0o41, 0o03, 0o30, 0o70, 0o10, 0o11, 0o15, 0o44, 0o44, 0o74, 0o23},
	{0o02, 0o11, 0o56, 0o63, 0o72, 0o22, 0o20, 0o73, 0o77, 0o43, 0o13, 0o65, 0o13, 0o65, 0o41, 0o44, 0o77, 0o56, 0o02, 0o21},
	{0o07, 0o05, 0o75, 0o27, 0o34, 0o41, 0o06, 0o60, 0o12, 0o22, 0o22, 0o54, 0o44, 0o24, 0o20, 0o64, 0o63, 0o04, 0o14, 0o27},
	{0o44, 0o30, 0o43, 0o63, 0o21, 0o74, 0o14, 0o15, 0o54, 0o51, 0o16, 0o06, 0o73, 0o15, 0o45, 0o16, 0o17, 0o30, 0o52, 0o22},
	{0o64, 0o57, 0o45, 0o40, 0o51, 0o66, 0o25, 0o30, 0o13, 0o06, 0o57, 0o21, 0o24, 0o77, 0o42, 0o24, 0o17, 0o74, 0o74, 0o33},
	{0o26, 0o33, 0o55, 0o06, 0o67, 0o74, 0o52, 0o13, 0o35, 0o64, 0o03, 0o36, 0o12, 0o22, 0o46, 0o52, 0o64, 0o04, 0o12, 0o64},
	{0o14, 0o03, 0o21, 0o04, 0o16, 0o65, 0o23, 0o17, 0o32, 0o33, 0o45, 0o63, 0o52, 0o24, 0o54, 0o16, 0o14, 0o23, 0o57, 0o42},
	{0o26, 0o02, 0o50, 0o40, 0o31, 0o70, 0o35, 0o20, 0o56, 0o03, 0o72, 0o50, 0o21, 0o24, 0o35, 0o06, 0o40, 0o71, 0o24, 0o05},
	{0o44, 0o02, 0o31, 0o45, 0o74, 0o36, 0o74, 0o02, 0o12, 0o47, 0o31, 0o61, 0o55, 0o74, 0o12, 0o62, 0o74, 0o70, 0o63, 0o73},
	{0o54, 0o15, 0o45, 0o47, 0o11, 0o67, 0o75, 0o70, 0o75, 0o27, 0o30, 0o64, 0o12, 0o07, 0o40, 0o20, 0o31, 0o63, 0o15, 0o51},
	{0o13, 0o16, 0o27, 0o30, 0o21, 0o45, 0o75, 0o55, 0o01, 0o12, 0o56, 0o52, 0o35, 0o44, 0o64, 0o13, 0o72, 0o45, 0o42, 0o46},
	{0o77, 0o25, 0o71, 0o75, 0o12, 0o64, 0o43, 0o14, 0o72, 0o55, 0o35, 0o01, 0o14, 0o07, 0o65, 0o55, 0o54, 0o56, 0o52, 0o73},
	{0o05, 0o26, 0o62, 0o07, 0o21, 0o01, 0o27, 0o47, 0o63, 0o47, 0o22, 0o60, 0o72, 0o46, 0o33, 0o57, 0o06, 0o43, 0o33, 0o60},
}

// rsEncode computes the parity hexbits for data using gen (one row per
// parity symbol, one column per data symbol) and writes them into parity.
func rsEncode(data []uint8, parity []uint8, gen [][]uint8) {
	for row, cols := range gen {
		var s p25galois.Codeword
		for i, col := range cols {
			s = s.Add(p25galois.Codeword(data[i]).Mul(p25galois.Codeword(col)))
		}
		parity[row] = s.Bits()
	}
}

// RSEncodeShort computes the 12 parity hexbits for 12 data hexbits of the
// (24,12,13) short code.
func RSEncodeShort(data [12]uint8) (parity [12]uint8) {
	rsEncode(data[:], parity[:], rsShortGen)
	return parity
}

// RSEncodeMedium computes the 8 parity hexbits for 16 data hexbits of the
// (24,16,9) medium code.
func RSEncodeMedium(data [16]uint8) (parity [8]uint8) {
	rsEncode(data[:], parity[:], rsMediumGen)
	return parity
}

// RSEncodeLong computes the 16 parity hexbits for 20 data hexbits of the
// (36,20,17) long code.
func RSEncodeLong(data [20]uint8) (parity [16]uint8) {
	rsEncode(data[:], parity[:], rsLongGen)
	return parity
}

// rsDecode tries to correct errors in a hexbit word (data symbols
// followed by parity symbols) via Berlekamp-Massey + Chien/Forney,
// correcting up to twoT/2 hexbit symbols. Returns the dataLen data
// symbols in their original order, the number of corrected symbols, and
// ok=false if unrecoverable.
func rsDecode(word []uint8, dataLen int, twoT int) (data []uint8, corrected int, ok bool) {
	n := len(word)
	poly := p25galois.NewPolynomial(n)
	for i, b := range word {
		poly.Set(n-1-i, p25galois.Codeword(b))
	}

	syn := p25galois.NewPolynomial(twoT + 2)
	for p := 1; p <= twoT; p++ {
		syn.Set(p-1, poly.Eval(p25galois.ForPower(p)))
	}

	corrections, expected := p25galois.Decode(syn, twoT)
	if expected > 0 {
		if len(corrections) != expected {
			return nil, 0, false
		}
		for _, e := range corrections {
			poly.Set(e.Location, poly.At(e.Location).Add(e.Value))
		}
	} else {
		expected = 0
	}

	data = make([]uint8, dataLen)
	for i := 0; i < dataLen; i++ {
		data[i] = poly.At(n - 1 - i).Bits()
	}
	return data, expected, true
}

// RSDecodeShort tries to correct up to 6 hexbit errors in a 24-hexbit
// (24,12,13) word, returning the 12 data hexbits.
func RSDecodeShort(word [24]uint8) (data [12]uint8, corrected int, ok bool) {
	d, c, ok := rsDecode(word[:], 12, 12)
	if !ok {
		return data, 0, false
	}
	copy(data[:], d)
	return data, c, true
}

// RSDecodeMedium tries to correct up to 4 hexbit errors in a 24-hexbit
// (24,16,9) word, returning the 16 data hexbits.
func RSDecodeMedium(word [24]uint8) (data [16]uint8, corrected int, ok bool) {
	d, c, ok := rsDecode(word[:], 16, 8)
	if !ok {
		return data, 0, false
	}
	copy(data[:], d)
	return data, c, true
}

// RSDecodeLong tries to correct up to 8 hexbit errors in a 36-hexbit
// (36,20,17) word, returning the 20 data hexbits.
func RSDecodeLong(word [36]uint8) (data [20]uint8, corrected int, ok bool) {
	d, c, ok := rsDecode(word[:], 20, 16)
	if !ok {
		return data, 0, false
	}
	copy(data[:], d)
	return data, c, true
}

// Package p25coding implements the P25 Common Air Interface's family of
// block and convolutional codes: BCH(63,16,23), the three Golay variants,
// the two Hamming variants, the shortened (16,8,5) cyclic code, the three
// Reed-Solomon variants, half/3-quarter rate trellis coding, and CRC-9/16/32.
package p25coding

import "math/bits"

// matrixMulSystematic multiplies word (wordBits wide) against a generator
// matrix given as rows (each row the same width as word), producing a
// systematic codeword: the original word in the high bits followed by one
// parity bit per row, each parity bit the XOR (popcount mod 2) of word
// masked by that row. This mirrors the reference implementation's
// binfield_matrix::matrix_mul_systematic used to build every P25 block
// code's generator matrix application.
func matrixMulSystematic(word uint64, rows []uint64) uint64 {
	var parity uint64
	for _, row := range rows {
		bit := bits.OnesCount64(word&row) & 1
		parity = parity<<1 | uint64(bit)
	}
	return word<<uint(len(rows)) | parity
}

// matrixMul multiplies word against mat, producing a single packed output
// with one bit per row (MSB first), without prepending word itself. Used
// for syndrome/parity computation where the systematic word isn't part of
// the output (e.g. Golay/Hamming syndrome matrices).
func matrixMul(word uint64, rows []uint64) uint64 {
	var out uint64
	for _, row := range rows {
		bit := bits.OnesCount64(word&row) & 1
		out = out<<1 | uint64(bit)
	}
	return out
}

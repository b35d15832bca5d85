package p25voice

import (
	"errors"

	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25coding"
	"github.com/dbehnke/p25core/internal/p25const"
)

// ErrGolayUnrecoverable is returned when an IMBE voice frame's
// Golay(23,12)-coded chunk has more errors than the code can correct.
var ErrGolayUnrecoverable = errors.New("p25voice: golay-coded chunk unrecoverable")

// ErrHammingUnrecoverable is returned when a voice frame's Hamming-coded
// chunk has more errors than the code can correct.
var ErrHammingUnrecoverable = errors.New("p25voice: hamming-coded chunk unrecoverable")

// Frame is one decoded 72-dibit IMBE voice frame: 8 chunks recovering the
// encoded speech vector parameters, plus the bit-error count the FEC
// correction made in each of the first 7 (chunk 7 carries no coding).
type Frame struct {
	Chunks [8]uint32
	Errors [7]int
}

// NewFrame descrambles and FEC-decodes a frame's 72 dibits.
func NewFrame(dibits *[p25const.FrameDibits]p25bits.Dibit) (Frame, error) {
	var f Frame

	init, err0, ok := p25coding.GolayStandardDecode(descramble(dibits, 0))
	if !ok {
		return Frame{}, ErrGolayUnrecoverable
	}
	prand := newPseudoRand(init)
	f.Chunks[0] = uint32(init)
	f.Errors[0] = err0

	for idx := 1; idx < 4; idx++ {
		bits := descramble(dibits, idx) ^ prand.next23()
		data, errN, ok := p25coding.GolayStandardDecode(uint32(bits))
		if !ok {
			return Frame{}, ErrGolayUnrecoverable
		}
		f.Errors[idx] = errN
		f.Chunks[idx] = uint32(data)
	}

	for idx := 4; idx < 7; idx++ {
		bits := descramble(dibits, idx) ^ prand.next15()
		data, errN, ok := p25coding.HammingStandardDecode(uint16(bits))
		if !ok {
			return Frame{}, ErrHammingUnrecoverable
		}
		f.Errors[idx] = errN
		f.Chunks[idx] = uint32(data)
	}

	f.Chunks[7] = descramble(dibits, 7)

	return f, nil
}

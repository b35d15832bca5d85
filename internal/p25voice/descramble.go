// Package p25voice decodes IMBE voice frames and the voice header,
// terminator, and frame-group packets that carry them, plus the link
// control and crypto control words interleaved with voice frames.
package p25voice

import (
	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25const"
)

// zigZag walks a fixed stride-3 run of dibit half-bits (hi or lo),
// alternating which half is read at each step, the scrambling pattern
// IMBE voice frames are laid out in across the 72-dibit frame.
type zigZag struct {
	hi  bool
	idx int
	num int
}

func zigZagHi(start, num int) zigZag { return zigZag{hi: true, idx: start, num: num} }
func zigZagLo(start, num int) zigZag { return zigZag{hi: false, idx: start, num: num} }

// fold applies f to each (idx, hi) step in turn, threading an
// accumulator through exactly as descramble's bit-packing loop needs.
func (z zigZag) fold(acc uint32, f func(acc uint32, idx int, hi bool) uint32) uint32 {
	idx, hi, num := z.idx, z.hi, z.num
	for num > 0 {
		acc = f(acc, idx, hi)
		idx += 3
		hi = !hi
		num--
	}
	return acc
}

// voiceFrameDescrambler is one of the 8 chunk descramblers, each a
// sequence of zigZag runs whose half-bits are packed MSB-first into the
// chunk's recovered word.
type voiceFrameDescrambler []zigZag

var descramblers = [8]voiceFrameDescrambler{
	{zigZagHi(0, 23)},
	{zigZagLo(69, 1), zigZagLo(0, 22)},
	{zigZagLo(66, 2), zigZagHi(1, 21)},
	{zigZagLo(1, 20), zigZagLo(64, 3)},
	{zigZagLo(61, 4), zigZagHi(2, 11)},
	{zigZagLo(35, 13), zigZagLo(2, 2)},
	{zigZagLo(8, 15)},
	{zigZagHi(53, 7)},
}

func (d voiceFrameDescrambler) descramble(dibits *[p25const.FrameDibits]p25bits.Dibit) uint32 {
	var word uint32
	for _, zz := range d {
		word = zz.fold(word, func(acc uint32, idx int, hi bool) uint32 {
			var bit uint32
			if hi {
				bit = uint32(dibits[idx].Hi())
			} else {
				bit = uint32(dibits[idx].Lo())
			}
			return acc<<1 | bit
		})
	}
	return word
}

// descramble recovers chunk idx's scrambled word from a full voice
// frame's 72 dibits.
func descramble(dibits *[p25const.FrameDibits]p25bits.Dibit, idx int) uint32 {
	return descramblers[idx].descramble(dibits)
}

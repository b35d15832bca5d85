package p25voice

import (
	"errors"

	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25buffer"
	"github.com/dbehnke/p25core/internal/p25coding"
	"github.com/dbehnke/p25core/internal/p25const"
)

// ErrReedSolomonUnrecoverable is returned when the Reed-Solomon codeword
// of a voice header, frame-group extra, or LC terminator has more errors
// than the code can correct.
var ErrReedSolomonUnrecoverable = errors.New("p25voice: reed-solomon decode unrecoverable")

// VoiceLCTerminatorReceiver decodes the extended-Golay/short-Reed-Solomon
// doubly-coded link control word that ends a voice call.
type VoiceLCTerminatorReceiver struct {
	outer *p25buffer.Buffer[p25bits.Dibit]
	inner *p25buffer.Buffer[p25bits.Hexbit]
}

// NewVoiceLCTerminatorReceiver creates a terminator receiver ready to
// accept dibits.
func NewVoiceLCTerminatorReceiver() *VoiceLCTerminatorReceiver {
	return &VoiceLCTerminatorReceiver{
		outer: p25buffer.New[p25bits.Dibit](12),
		inner: p25buffer.New[p25bits.Hexbit](24),
	}
}

// Feed accumulates one dibit, returning decoded link control fields
// once a full terminator word (12 extended-Golay words, 24 hexbits of
// short Reed-Solomon) has arrived.
func (r *VoiceLCTerminatorReceiver) Feed(dibit p25bits.Dibit) (LinkControlFields, error, bool) {
	buf := r.outer.Feed(dibit)
	if buf == nil {
		return LinkControlFields{}, nil, false
	}

	var word uint32
	for _, d := range buf {
		word = word<<2 | uint32(d.Bits())
	}

	data, _, ok := p25coding.GolayExtendedDecode(word)
	if !ok {
		return LinkControlFields{}, errors.New("p25voice: golay-coded terminator word unrecoverable"), true
	}

	if hexbits := r.inner.Feed(p25bits.NewHexbit(uint8(data >> 6))); hexbits != nil {
		panic("p25voice: terminator hexbit buffer desynchronized")
	}

	hexbits := r.inner.Feed(p25bits.NewHexbit(uint8(data & 0x3F)))
	if hexbits == nil {
		return LinkControlFields{}, nil, false
	}

	var word24 [24]uint8
	for i, h := range hexbits {
		word24[i] = h.Bits()
	}

	rsData, _, ok := p25coding.RSDecodeShort(word24)
	if !ok {
		return LinkControlFields{}, ErrReedSolomonUnrecoverable, true
	}

	var bytes [p25const.LinkControlBytes]byte
	copy(bytes[:], p25bits.PackHexbits(rsHexbits(rsData)))

	return NewLinkControlFields(bytes), nil, true
}

func rsHexbits(data [12]uint8) []p25bits.Hexbit {
	out := make([]p25bits.Hexbit, len(data))
	for i, b := range data {
		out[i] = p25bits.NewHexbit(b)
	}
	return out
}

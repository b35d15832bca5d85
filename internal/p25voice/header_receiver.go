package p25voice

import (
	"errors"

	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25buffer"
	"github.com/dbehnke/p25core/internal/p25coding"
	"github.com/dbehnke/p25core/internal/p25const"
)

// ErrGolayShortenedUnrecoverable is returned when a voice header's
// shortened-Golay-coded word has more errors than the code can correct.
var ErrGolayShortenedUnrecoverable = errors.New("p25voice: shortened-golay word unrecoverable")

// VoiceHeaderReceiver decodes the shortened-Golay/long-Reed-Solomon
// doubly-coded word that precedes a voice call's first frame group.
type VoiceHeaderReceiver struct {
	outer *p25buffer.Buffer[p25bits.Dibit]
	inner *p25buffer.Buffer[p25bits.Hexbit]
}

// NewVoiceHeaderReceiver creates a header receiver ready to accept dibits.
func NewVoiceHeaderReceiver() *VoiceHeaderReceiver {
	return &VoiceHeaderReceiver{
		outer: p25buffer.New[p25bits.Dibit](p25const.HeaderWordDibits),
		inner: p25buffer.New[p25bits.Hexbit](p25const.HeaderHexbits),
	}
}

// Feed accumulates one dibit, returning decoded header fields once a
// full header (shortened-Golay words feeding a long Reed-Solomon
// codeword) has arrived.
func (r *VoiceHeaderReceiver) Feed(dibit p25bits.Dibit) (VoiceHeaderFields, error, bool) {
	buf := r.outer.Feed(dibit)
	if buf == nil {
		return VoiceHeaderFields{}, nil, false
	}

	var word uint32
	for _, d := range buf {
		word = word<<2 | uint32(d.Bits())
	}

	data, _, ok := p25coding.GolayShortenedDecode(word)
	if !ok {
		return VoiceHeaderFields{}, ErrGolayShortenedUnrecoverable, true
	}

	hexbits := r.inner.Feed(p25bits.NewHexbit(data))
	if hexbits == nil {
		return VoiceHeaderFields{}, nil, false
	}

	var word36 [p25const.HeaderHexbits]uint8
	for i, h := range hexbits {
		word36[i] = h.Bits()
	}

	rsData, _, ok := p25coding.RSDecodeLong(word36)
	if !ok {
		return VoiceHeaderFields{}, ErrReedSolomonUnrecoverable, true
	}

	var bytes [p25const.HeaderBytes]byte
	copy(bytes[:], p25bits.PackHexbits(toHexbits(rsData[:])))

	return NewVoiceHeaderFields(bytes), nil, true
}

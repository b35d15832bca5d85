package p25voice

import (
	"errors"

	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25buffer"
	"github.com/dbehnke/p25core/internal/p25coding"
	"github.com/dbehnke/p25core/internal/p25const"
)

// ErrCyclicUnrecoverable is returned when a voice data fragment's cyclic
// code has more errors than it can correct.
var ErrCyclicUnrecoverable = errors.New("p25voice: cyclic code unrecoverable")

// ExtraDecoder completes the Reed-Solomon stage and field parsing for
// the "extra" slot carried within a voice frame group, which holds
// either link control or crypto control data depending on stream type.
type ExtraDecoder[F any] interface {
	DecodeRS(hexbits [p25const.ExtraHexbits]p25bits.Hexbit) ([]p25bits.Hexbit, bool)
	DecodeExtra(hexbits []p25bits.Hexbit) F
}

// LinkControlExtra decodes the extra slot of an unencrypted voice
// stream's frame group as link control fields.
type LinkControlExtra struct{}

func (LinkControlExtra) DecodeRS(hexbits [p25const.ExtraHexbits]p25bits.Hexbit) ([]p25bits.Hexbit, bool) {
	var word [24]uint8
	for i, h := range hexbits {
		word[i] = h.Bits()
	}
	data, _, ok := p25coding.RSDecodeShort(word)
	if !ok {
		return nil, false
	}
	return toHexbits(data[:]), true
}

func (LinkControlExtra) DecodeExtra(hexbits []p25bits.Hexbit) LinkControlFields {
	var bytes [p25const.LinkControlBytes]byte
	copy(bytes[:], p25bits.PackHexbits(hexbits))
	return NewLinkControlFields(bytes)
}

// CryptoControlExtra decodes the extra slot of an encrypted voice
// stream's frame group as crypto control fields.
type CryptoControlExtra struct{}

func (CryptoControlExtra) DecodeRS(hexbits [p25const.ExtraHexbits]p25bits.Hexbit) ([]p25bits.Hexbit, bool) {
	var word [24]uint8
	for i, h := range hexbits {
		word[i] = h.Bits()
	}
	data, _, ok := p25coding.RSDecodeMedium(word)
	if !ok {
		return nil, false
	}
	return toHexbits(data[:]), true
}

func (CryptoControlExtra) DecodeExtra(hexbits []p25bits.Hexbit) CryptoControlFields {
	var bytes [p25const.CryptoControlBytes]byte
	copy(bytes[:], p25bits.PackHexbits(hexbits))
	return NewCryptoControlFields(bytes)
}

func toHexbits(data []uint8) []p25bits.Hexbit {
	out := make([]p25bits.Hexbit, len(data))
	for i, b := range data {
		out[i] = p25bits.NewHexbit(b)
	}
	return out
}

// FrameGroupEventKind distinguishes the three event types a frame
// group receiver can emit.
type FrameGroupEventKind int

const (
	EventVoiceFrame FrameGroupEventKind = iota
	EventExtra
	EventDataFragment
)

// FrameGroupEvent is one decoded unit from a voice frame group: a
// voice frame, the stream's extra (link/crypto control) data, or a
// voice data fragment word.
type FrameGroupEvent[F any] struct {
	Kind         FrameGroupEventKind
	VoiceFrame   Frame
	Extra        F
	DataFragment uint32
}

type frameGroupStateKind int

const (
	fgDecodeVoiceFrame frameGroupStateKind = iota
	fgDecodeExtra
	fgDecodeDataFragment
	fgDone
)

// FrameGroupReceiver decodes the 9-frame voice/extra/data-fragment
// group that makes up one link-control or crypto-control voice
// superframe: 2 voice frames, then 6 interleaved extra-slot/voice-frame
// pairs, then a data fragment slot, then a final voice frame.
type FrameGroupReceiver[F any] struct {
	decoder ExtraDecoder[F]
	state   frameGroupStateKind
	voice   *voiceFrameReceiver
	extra   *extraReceiver[F]
	frag    *dataFragmentReceiver
	frame   int
}

// NewFrameGroupReceiver creates a frame group receiver using the given
// extra-slot decoder (LinkControlExtra or CryptoControlExtra).
func NewFrameGroupReceiver[F any](decoder ExtraDecoder[F]) *FrameGroupReceiver[F] {
	return &FrameGroupReceiver[F]{
		decoder: decoder,
		state:   fgDecodeVoiceFrame,
		voice:   newVoiceFrameReceiver(),
		extra:   newExtraReceiver[F](decoder),
		frag:    newDataFragmentReceiver(),
	}
}

// Done reports whether the frame group has fully arrived.
func (r *FrameGroupReceiver[F]) Done() bool { return r.state == fgDone }

// Feed processes one dibit, returning a decoded event when a voice
// frame, extra field, or data fragment completes.
func (r *FrameGroupReceiver[F]) Feed(dibit p25bits.Dibit) (FrameGroupEvent[F], error, bool) {
	switch r.state {
	case fgDecodeVoiceFrame:
		vf, err, ok := r.voice.feed(dibit)
		if !ok {
			return FrameGroupEvent[F]{}, nil, false
		}
		if err != nil {
			return FrameGroupEvent[F]{}, err, true
		}

		r.frame++
		switch {
		case r.frame == 1:
			r.state = fgDecodeVoiceFrame
		case r.frame >= 2 && r.frame <= 7:
			r.state = fgDecodeExtra
		case r.frame == 8:
			r.state = fgDecodeDataFragment
		case r.frame == 9:
			r.state = fgDone
		}
		return FrameGroupEvent[F]{Kind: EventVoiceFrame, VoiceFrame: vf}, nil, true

	case fgDecodeExtra:
		extra, err, ok := r.extra.feed(dibit)
		if err != nil {
			return FrameGroupEvent[F]{}, err, true
		}
		if ok {
			r.state = fgDecodeVoiceFrame
			return FrameGroupEvent[F]{Kind: EventExtra, Extra: extra}, nil, true
		}
		if r.extra.pieceDone() {
			r.state = fgDecodeVoiceFrame
		}
		return FrameGroupEvent[F]{}, nil, false

	case fgDecodeDataFragment:
		data, err, ok := r.frag.feed(dibit)
		if err != nil {
			return FrameGroupEvent[F]{}, err, true
		}
		if !ok {
			return FrameGroupEvent[F]{}, nil, false
		}
		r.state = fgDecodeVoiceFrame
		return FrameGroupEvent[F]{Kind: EventDataFragment, DataFragment: data}, nil, true

	default:
		panic("p25voice: frame group receiver fed after completion")
	}
}

type voiceFrameReceiver struct {
	dibits *p25buffer.Buffer[p25bits.Dibit]
}

func newVoiceFrameReceiver() *voiceFrameReceiver {
	return &voiceFrameReceiver{dibits: p25buffer.New[p25bits.Dibit](p25const.FrameDibits)}
}

func (v *voiceFrameReceiver) feed(dibit p25bits.Dibit) (Frame, error, bool) {
	buf := v.dibits.Feed(dibit)
	if buf == nil {
		return Frame{}, nil, false
	}
	var arr [p25const.FrameDibits]p25bits.Dibit
	copy(arr[:], buf)
	frame, err := NewFrame(&arr)
	return frame, err, true
}

type extraReceiver[F any] struct {
	decoder ExtraDecoder[F]
	dibits  *p25buffer.Buffer[p25bits.Dibit]
	hexbits *p25buffer.Buffer[p25bits.Hexbit]
	dibit   int
}

func newExtraReceiver[F any](decoder ExtraDecoder[F]) *extraReceiver[F] {
	return &extraReceiver[F]{
		decoder: decoder,
		dibits:  p25buffer.New[p25bits.Dibit](p25const.ExtraWordDibits),
		hexbits: p25buffer.New[p25bits.Hexbit](p25const.ExtraHexbits),
	}
}

func (e *extraReceiver[F]) pieceDone() bool { return e.dibit%p25const.ExtraPieceDibits == 0 }

func (e *extraReceiver[F]) feed(dibit p25bits.Dibit) (F, error, bool) {
	var zero F
	e.dibit++

	buf := e.dibits.Feed(dibit)
	if buf == nil {
		return zero, nil, false
	}

	var word uint16
	for _, d := range buf {
		word = word<<2 | uint16(d.Bits())
	}

	bits, _, ok := p25coding.HammingShortenedDecode(word)
	if !ok {
		return zero, errors.New("p25voice: hamming-coded extra word unrecoverable"), false
	}

	hexbitsBuf := e.hexbits.Feed(p25bits.NewHexbit(bits))
	if hexbitsBuf == nil {
		return zero, nil, false
	}

	var word24 [p25const.ExtraHexbits]p25bits.Hexbit
	copy(word24[:], hexbitsBuf)

	data, ok := e.decoder.DecodeRS(word24)
	if !ok {
		return zero, ErrReedSolomonUnrecoverable, false
	}

	return e.decoder.DecodeExtra(data), nil, true
}

type dataFragmentReceiver struct {
	dibits *p25buffer.Buffer[p25bits.Dibit]
	words  int
	data   uint32
}

func newDataFragmentReceiver() *dataFragmentReceiver {
	return &dataFragmentReceiver{dibits: p25buffer.New[p25bits.Dibit](p25const.DataFragDibits)}
}

func (d *dataFragmentReceiver) feed(dibit p25bits.Dibit) (uint32, error, bool) {
	buf := d.dibits.Feed(dibit)
	if buf == nil {
		return 0, nil, false
	}

	var word uint16
	for _, dib := range buf {
		word = word<<2 | uint16(dib.Bits())
	}

	bits, _, ok := p25coding.CyclicDecode(word)
	if !ok {
		return 0, ErrCyclicUnrecoverable, false
	}

	d.words++
	d.data = d.data<<8 | uint32(bits)

	if d.words == 2 {
		result := d.data
		d.words = 0
		d.data = 0
		return result, nil, true
	}
	return 0, nil, false
}

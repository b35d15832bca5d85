package p25voice

import (
	"github.com/dbehnke/p25core/internal/p25const"
	"github.com/dbehnke/p25core/internal/p25trunking"
)

// VoiceHeaderFields is the field view over a decoded voice header
// packet: the stream's crypto initialization vector, manufacturer
// code, crypto algorithm/key, and destination talkgroup.
type VoiceHeaderFields struct {
	buf [p25const.HeaderBytes]byte
}

// NewVoiceHeaderFields wraps a decoded voice header word.
func NewVoiceHeaderFields(buf [p25const.HeaderBytes]byte) VoiceHeaderFields {
	return VoiceHeaderFields{buf: buf}
}

func (h VoiceHeaderFields) CryptoInit() []byte { return h.buf[:9] }
func (h VoiceHeaderFields) Mfg() byte          { return h.buf[9] }

// CryptoAlg decodes the header's crypto algorithm byte. ok is false for
// a value outside the known algorithm set.
func (h VoiceHeaderFields) CryptoAlg() (CryptoAlgorithm, bool) {
	return CryptoAlgorithmFromBits(h.buf[10])
}

func (h VoiceHeaderFields) CryptoKey() uint16 { return sliceU16(h.buf[11:13]) }

func (h VoiceHeaderFields) TalkGroup() p25trunking.TalkGroup {
	return p25trunking.TalkGroupFromBits(sliceU16(h.buf[13:15]))
}

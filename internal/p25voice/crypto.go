package p25voice

import "github.com/dbehnke/p25core/internal/p25const"

func sliceU16(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }

func sliceU24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// CryptoAlgorithm identifies the encryption algorithm, if any, applied
// to a voice stream's traffic.
type CryptoAlgorithm int

const (
	Accordion CryptoAlgorithm = iota
	BatonEven
	Firefly
	Mayfly
	Saville
	BatonOdd
	Unencrypted
	DES
	TripleDES
	AES
)

// CryptoAlgorithmFromBits decodes the 1-byte algorithm identifier,
// returning ok=false for any value outside the known set.
func CryptoAlgorithmFromBits(bits byte) (alg CryptoAlgorithm, ok bool) {
	switch bits {
	case 0x00:
		return Accordion, true
	case 0x01:
		return BatonEven, true
	case 0x02:
		return Firefly, true
	case 0x03:
		return Mayfly, true
	case 0x04:
		return Saville, true
	case 0x41:
		return BatonOdd, true
	case 0x80:
		return Unencrypted, true
	case 0x81:
		return DES, true
	case 0x83:
		return TripleDES, true
	case 0x84:
		return AES, true
	default:
		return 0, false
	}
}

// CryptoControlFields is the field view over a decoded crypto control
// word: the initialization vector, algorithm, and key ID for an
// encrypted voice stream.
type CryptoControlFields struct {
	buf [p25const.CryptoControlBytes]byte
}

// NewCryptoControlFields wraps a decoded crypto control word.
func NewCryptoControlFields(buf [p25const.CryptoControlBytes]byte) CryptoControlFields {
	return CryptoControlFields{buf: buf}
}

func (c CryptoControlFields) CryptoInit() []byte { return c.buf[:9] }

func (c CryptoControlFields) CryptoAlg() (CryptoAlgorithm, bool) {
	return CryptoAlgorithmFromBits(c.buf[9])
}

func (c CryptoControlFields) CryptoKey() uint16 { return sliceU16(c.buf[10:12]) }

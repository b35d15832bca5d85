package p25bits

// symParams mirrors the IterParams parameterization of the reference
// implementation: bits is the width of an emitted symbol, buffer is the
// number of input symbols consumed per refill, shift is the number of bits
// each input symbol contributes to the refill register.
type symParams struct {
	bits, buffer, shift int
}

func (p symParams) postShift() int { return 32 - p.shift*p.buffer }
func (p symParams) iterations() int {
	n := p.shift * p.buffer / p.bits
	if n == 0 {
		n = 1
	}
	return n
}

// subByteIter is the generic sub-byte (bit-level) packer/unpacker. In
// consumes a source of In, refilling a 32-bit register every p.buffer
// inputs, and emits p.iterations() Out values of p.bits width per refill.
type subByteIter[In, Out any] struct {
	src     []In
	pos     int
	toByte  func(In) uint8
	fromBit func(uint8) Out
	params  symParams

	buf uint32
	idx int
}

func newSubByteIter[In, Out any](src []In, params symParams, toByte func(In) uint8, fromBit func(uint8) Out) *subByteIter[In, Out] {
	return &subByteIter[In, Out]{src: src, toByte: toByte, fromBit: fromBit, params: params}
}

// refill consumes up to params.buffer source items and loads the register.
// Returns false when the source is exhausted on a clean (post-iteration)
// boundary; panics if the source runs out mid-group.
func (s *subByteIter[In, Out]) refill() bool {
	added := 0
	var buf uint32
	for added < s.params.buffer {
		if s.pos >= len(s.src) {
			break
		}
		buf = buf<<uint(s.params.shift) | uint32(s.toByte(s.src[s.pos]))
		s.pos++
		added++
	}
	if added == 0 {
		return false
	}
	if added != s.params.buffer {
		panic("p25bits: incomplete source group")
	}
	s.buf = buf << uint(s.params.postShift())
	return true
}

// Next returns the next output symbol, or ok=false at a clean end of input.
func (s *subByteIter[In, Out]) Next() (Out, bool) {
	var zero Out
	if s.idx == 0 {
		if !s.refill() {
			return zero, false
		}
	}

	bits := s.buf >> uint(32-s.params.bits)
	s.buf <<= uint(s.params.bits)

	s.idx++
	s.idx %= s.params.iterations()

	return s.fromBit(uint8(bits)), true
}

// All drains the iterator into a slice.
func (s *subByteIter[In, Out]) All() []Out {
	out := make([]Out, 0, len(s.src))
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

var (
	dibitParams  = symParams{bits: 2, buffer: 1, shift: 8}
	tribitParams = symParams{bits: 3, buffer: 3, shift: 8}
	hexbitParams = symParams{bits: 6, buffer: 3, shift: 8}

	dibitByteParams  = symParams{bits: 8, buffer: 4, shift: 2}
	tribitByteParams = symParams{bits: 8, buffer: 8, shift: 3}
	hexbitByteParams = symParams{bits: 8, buffer: 4, shift: 6}
)

func identityByte(b uint8) uint8 { return b }

// UnpackDibits splits bytes into dibits, MSB-first within each byte. Each
// byte yields four dibits, so b may have any length.
func UnpackDibits(b []byte) []Dibit {
	it := newSubByteIter[byte, Dibit](b, dibitParams, identityByte, func(bits uint8) Dibit { return NewDibit(bits) })
	return it.All()
}

// UnpackTribits splits bytes into tribits. len(b) must be a multiple of 3.
func UnpackTribits(b []byte) []Tribit {
	it := newSubByteIter[byte, Tribit](b, tribitParams, identityByte, func(bits uint8) Tribit { return NewTribit(bits) })
	return it.All()
}

// UnpackHexbits splits bytes into hexbits. len(b) must be a multiple of 3.
func UnpackHexbits(b []byte) []Hexbit {
	it := newSubByteIter[byte, Hexbit](b, hexbitParams, identityByte, func(bits uint8) Hexbit { return NewHexbit(bits) })
	return it.All()
}

// PackDibits groups dibits into bytes. len(d) must be a multiple of 4.
func PackDibits(d []Dibit) []byte {
	it := newSubByteIter[Dibit, byte](d, dibitByteParams, func(x Dibit) uint8 { return x.Bits() }, identityByte)
	return it.All()
}

// PackTribits groups tribits into bytes. len(t) must be a multiple of 8.
func PackTribits(t []Tribit) []byte {
	it := newSubByteIter[Tribit, byte](t, tribitByteParams, func(x Tribit) uint8 { return x.Bits() }, identityByte)
	return it.All()
}

// PackHexbits groups hexbits into bytes. len(h) must be a multiple of 4.
func PackHexbits(h []Hexbit) []byte {
	it := newSubByteIter[Hexbit, byte](h, hexbitByteParams, func(x Hexbit) uint8 { return x.Bits() }, identityByte)
	return it.All()
}

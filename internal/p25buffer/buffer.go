// Package p25buffer provides a fixed-length accumulating buffer used by
// every packet receiver in the core to collect a run of symbols before
// handing the completed group to a decoder.
package p25buffer

// Buffer accumulates exactly Size items of T, returning a borrow of the
// full backing slice every Size items fed and nil otherwise. It never
// allocates after construction and is reusable across packets.
type Buffer[T any] struct {
	buf  []T
	pos  int
	size int
}

// New constructs a Buffer accumulating size items of T.
func New[T any](size int) *Buffer[T] {
	return &Buffer[T]{buf: make([]T, size), size: size}
}

// Reset rewinds the buffer to empty without clearing its contents.
func (b *Buffer[T]) Reset() { b.pos = 0 }

// Feed adds one item. It returns the full backing slice (valid until the
// next call to Feed) exactly once every Size items, and nil otherwise.
func (b *Buffer[T]) Feed(item T) []T {
	b.buf[b.pos] = item
	b.pos++

	if b.pos == b.size {
		b.pos = 0
		return b.buf
	}
	return nil
}

// Len reports how many items have been fed since the last completed group.
func (b *Buffer[T]) Len() int { return b.pos }

// Size reports the configured group size.
func (b *Buffer[T]) Size() int { return b.size }

// DibitWordBuffer accumulates dibits directly into a uint64 word, used by
// receivers (NID, BCH/Golay-coded words) that want the packed bit pattern
// rather than a slice of symbols.
type DibitWordBuffer struct {
	word uint64
	pos  int
	size int
}

// NewDibitWordBuffer constructs a word buffer accumulating size dibits
// (size*2 bits) into a uint64. size must be <= 32.
func NewDibitWordBuffer(size int) *DibitWordBuffer {
	if size > 32 {
		panic("p25buffer: dibit word buffer too large for uint64")
	}
	return &DibitWordBuffer{size: size}
}

// Feed adds one dibit's two bits to the accumulating word, returning the
// completed word exactly once every Size dibits and ok=false otherwise.
func (b *DibitWordBuffer) Feed(bits uint8) (uint64, bool) {
	if b.pos == 0 {
		b.word = 0
	}
	b.word = b.word<<2 | uint64(bits&0b11)
	b.pos++

	if b.pos == b.size {
		b.pos = 0
		return b.word, true
	}
	return 0, false
}

// Reset clears the in-progress word.
func (b *DibitWordBuffer) Reset() { b.pos = 0; b.word = 0 }

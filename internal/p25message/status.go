// Package p25message assembles decoded dibits into P25 messages: status
// symbol interleaving, network ID parsing, and the top-level per-data-unit
// receiver state machine that dispatches to voice, trunking, and data
// sub-receivers.
package p25message

import "github.com/dbehnke/p25core/internal/p25bits"

// dibitsPerUpdate is the number of data dibits between status symbols:
// one status symbol every 70 bits (35 dibits).
const dibitsPerUpdate = 70 / 2

// StatusCode is the 2-bit inbound-channel status symbol interleaved into
// the outbound P25 dibit stream every 35 data dibits.
type StatusCode int

const (
	InboundIdle StatusCode = iota
	InboundBusy
	SubscriberRepeater
	SubscriberDirect
)

// StatusCodeFromDibit decodes a status symbol from its wire dibit.
func StatusCodeFromDibit(d p25bits.Dibit) StatusCode {
	switch d.Bits() {
	case 0b01:
		return InboundBusy
	case 0b00:
		return SubscriberDirect
	case 0b10:
		return SubscriberRepeater
	default:
		return InboundIdle
	}
}

// Dibit encodes the status symbol to its wire dibit.
func (c StatusCode) Dibit() p25bits.Dibit {
	switch c {
	case InboundBusy:
		return p25bits.NewDibit(0b01)
	case SubscriberDirect:
		return p25bits.NewDibit(0b00)
	case SubscriberRepeater:
		return p25bits.NewDibit(0b10)
	default:
		return p25bits.NewDibit(0b11)
	}
}

// StatusSource supplies the status symbol to interleave at each update
// point, e.g. from the local repeater's current inbound channel state.
type StatusSource interface {
	Status() StatusCode
}

// StatusInterleaver weaves status symbols from a StatusSource into a
// stream of data dibits, emitting a status symbol every dibitsPerUpdate
// data dibits and padding with 0b00 dibits if the data source runs dry
// before the next update point.
type StatusInterleaver struct {
	src    func() (p25bits.Dibit, bool)
	status StatusSource
	pos    uint32
}

// NewStatusInterleaver builds an interleaver pulling data dibits from src
// (returning ok=false once exhausted) and status symbols from status.
func NewStatusInterleaver(src func() (p25bits.Dibit, bool), status StatusSource) *StatusInterleaver {
	return &StatusInterleaver{src: src, status: status}
}

// Next returns the next dibit in the interleaved stream. A source that
// runs dry partway through a block is padded with 0b00 up to the next
// update point; ok=false is returned once the source is exhausted at the
// start of a block (right after an update, or before any dibit).
func (it *StatusInterleaver) Next() (p25bits.Dibit, bool) {
	if it.pos == dibitsPerUpdate {
		it.pos = 0
		return it.status.Status().Dibit(), true
	}

	it.pos++

	if d, ok := it.src(); ok {
		return d, true
	}
	if it.pos == 1 {
		return 0, false
	}
	return p25bits.NewDibit(0b00), true
}

// StreamSymbolKind distinguishes the two kinds of symbol a
// StatusDeinterleaver can yield.
type StreamSymbolKind int

const (
	SymbolData StreamSymbolKind = iota
	SymbolStatus
)

// StreamSymbol is one symbol pulled off a status-interleaved dibit stream:
// either a data dibit or a decoded status code.
type StreamSymbol struct {
	Kind   StreamSymbolKind
	Data   p25bits.Dibit
	Status StatusCode
}

// StatusDeinterleaver recovers the original data dibit stream and status
// updates from an interleaved P25 dibit stream, starting at the offset a
// receiver locks in at mid-frame (pos starts at 24, i.e. 11 data dibits
// remain before the first status symbol).
type StatusDeinterleaver struct {
	pos uint32
}

// NewStatusDeinterleaver returns a deinterleaver synced to a frame's fixed
// sync-to-first-status offset.
func NewStatusDeinterleaver() *StatusDeinterleaver {
	return &StatusDeinterleaver{pos: 24}
}

func (d *StatusDeinterleaver) reset() { d.pos = 0 }

// Feed consumes one dibit from the interleaved stream, returning either
// the original data dibit or a decoded status update.
func (d *StatusDeinterleaver) Feed(dibit p25bits.Dibit) StreamSymbol {
	if d.pos == dibitsPerUpdate {
		d.reset()
		return StreamSymbol{Kind: SymbolStatus, Status: StatusCodeFromDibit(dibit)}
	}
	d.pos++
	return StreamSymbol{Kind: SymbolData, Data: dibit}
}

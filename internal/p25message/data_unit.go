package p25message

import (
	"errors"

	"github.com/dbehnke/p25core/internal/p25baseband"
)

// ErrSyncFailed is returned when the expected P25 frame sync waveform
// isn't found; the receiver automatically restarts frame synchronization
// after reporting it.
var ErrSyncFailed = errors.New("p25message: frame sync failed")

// ReceiverEventKind distinguishes the two event types a DataUnitReceiver
// can emit.
type ReceiverEventKind int

const (
	EventSymbol ReceiverEventKind = iota
	EventNetworkID
)

// ReceiverEvent is one event produced by a DataUnitReceiver: a decoded
// data/status symbol, or a decoded network ID introducing a new packet.
type ReceiverEvent struct {
	Kind   ReceiverEventKind
	Symbol StreamSymbol
	NID    NetworkID
}

// symbolReceiver decodes baseband samples into dibits, then deinterleaves
// status symbols out of the resulting dibit stream.
type symbolReceiver struct {
	decoder *p25baseband.Decoder
	status  *StatusDeinterleaver
}

func newSymbolReceiver(decoder *p25baseband.Decoder) *symbolReceiver {
	return &symbolReceiver{decoder: decoder, status: NewStatusDeinterleaver()}
}

func (r *symbolReceiver) feed(s float64) (StreamSymbol, bool) {
	dibit, ok := r.decoder.Feed(s)
	if !ok {
		return StreamSymbol{}, false
	}
	return r.status.Feed(dibit), true
}

type dataUnitStateKind int

const (
	duSync dataUnitStateKind = iota
	duDecodeNID
	duDecodePacket
	duFlushPads
)

// DataUnitReceiver is the low-level receiver shared by every P25 data
// unit: it locks onto frame synchronization, decodes baseband samples
// into dibit symbols, deinterleaves status symbols, and decodes the
// network ID introducing each packet.
type DataUnitReceiver struct {
	state dataUnitStateKind

	sync    *p25baseband.SyncDetector
	symRecv *symbolReceiver
	nidRecv *NIDReceiver
}

// NewDataUnitReceiver returns a receiver starting in frame
// synchronization.
func NewDataUnitReceiver() *DataUnitReceiver {
	return &DataUnitReceiver{state: duSync, sync: p25baseband.NewSyncDetector()}
}

// Resync forces the receiver back into frame synchronization,
// discarding any partially-decoded packet.
func (r *DataUnitReceiver) Resync() {
	r.state = duSync
	r.sync = p25baseband.NewSyncDetector()
}

// FlushPads discards samples until the next status symbol boundary, then
// reenters frame synchronization. Valid only while decoding a packet's
// data symbols (or already resyncing, which is a no-op).
func (r *DataUnitReceiver) FlushPads() {
	switch r.state {
	case duDecodePacket:
		r.state = duFlushPads
	case duSync:
	default:
		panic("p25message: flush pads requested while not decoding a packet")
	}
}

// Feed processes one baseband sample, returning a receiver event, an
// error, or neither if no event occurred yet.
func (r *DataUnitReceiver) Feed(s float64) (ReceiverEvent, error, bool) {
	switch r.state {
	case duSync:
		result, decoder, err := r.sync.Feed(s)
		switch result {
		case p25baseband.SyncLocked:
			r.symRecv = newSymbolReceiver(decoder)
			r.nidRecv = NewNIDReceiver()
			r.state = duDecodeNID
		case p25baseband.SyncFailed:
			r.sync = p25baseband.NewSyncDetector()
			if err == nil {
				err = ErrSyncFailed
			}
			return ReceiverEvent{}, err, true
		}
		return ReceiverEvent{}, nil, false

	case duDecodeNID:
		sym, ok := r.symRecv.feed(s)
		if !ok {
			return ReceiverEvent{}, nil, false
		}
		if sym.Kind != SymbolData {
			return ReceiverEvent{Kind: EventSymbol, Symbol: sym}, nil, true
		}

		ev, ok := r.nidRecv.Feed(sym.Data)
		if !ok {
			return ReceiverEvent{}, nil, false
		}
		if ev.Err != nil {
			r.Resync()
			return ReceiverEvent{}, ev.Err, true
		}
		r.state = duDecodePacket
		return ReceiverEvent{Kind: EventNetworkID, NID: ev.NID}, nil, true

	case duDecodePacket:
		sym, ok := r.symRecv.feed(s)
		if !ok {
			return ReceiverEvent{}, nil, false
		}
		return ReceiverEvent{Kind: EventSymbol, Symbol: sym}, nil, true

	case duFlushPads:
		sym, ok := r.symRecv.feed(s)
		if !ok {
			return ReceiverEvent{}, nil, false
		}
		if sym.Kind == SymbolStatus {
			r.state = duSync
			r.sync = p25baseband.NewSyncDetector()
		}
		return ReceiverEvent{}, nil, false

	default:
		panic("p25message: data unit receiver in unknown state")
	}
}

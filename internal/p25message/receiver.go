package p25message

import (
	"github.com/dbehnke/p25core/internal/p25stats"
	"github.com/dbehnke/p25core/internal/p25trunking"
	"github.com/dbehnke/p25core/internal/p25voice"
)

// MessageEventKind distinguishes the event types a MessageReceiver can
// emit.
type MessageEventKind int

const (
	EvError MessageEventKind = iota
	EvPacketNID
	EvVoiceHeader
	EvVoiceFrame
	EvLinkControl
	EvCryptoControl
	EvLowSpeedDataFragment
	EvTrunkingControl
	EvVoiceTerm
)

// MessageEvent is one decoded event surfaced by a MessageReceiver while
// consuming a stream of baseband samples.
type MessageEvent struct {
	Kind MessageEventKind

	Err error

	NID           NetworkID
	VoiceHeader   p25voice.VoiceHeaderFields
	VoiceFrame    p25voice.Frame
	LinkControl   p25voice.LinkControlFields
	CryptoControl p25voice.CryptoControlFields
	DataFragment  uint32
	Trunking      p25trunking.TSBK
}

type messageStateKind int

const (
	msIdle messageStateKind = iota
	msDecodeHeader
	msDecodeLCFrameGroup
	msDecodeCCFrameGroup
	msDecodeLCTerminator
	msDecodeTSBK
)

// MessageReceiver is the top-level receiver for P25 voice, data, and
// trunking messages: it feeds baseband samples through a
// DataUnitReceiver and dispatches the resulting dibits to a sub-receiver
// chosen by the network ID's data unit type.
type MessageReceiver struct {
	recv  *DataUnitReceiver
	state messageStateKind

	header *p25voice.VoiceHeaderReceiver
	lcFG   *p25voice.FrameGroupReceiver[p25voice.LinkControlFields]
	ccFG   *p25voice.FrameGroupReceiver[p25voice.CryptoControlFields]
	lcTerm *p25voice.VoiceLCTerminatorReceiver
	tsbk   *p25trunking.TSBKDecoder

	stats *p25stats.Stats
}

// NewMessageReceiver returns a receiver in its initial idle state.
func NewMessageReceiver() *MessageReceiver {
	return &MessageReceiver{
		recv:  NewDataUnitReceiver(),
		state: msIdle,
		stats: p25stats.New(),
	}
}

// Stats returns the receiver's accumulated decode statistics.
func (m *MessageReceiver) Stats() *p25stats.Stats { return m.stats }

// Resync forces the receiver back into frame synchronization.
func (m *MessageReceiver) Resync() {
	m.recv.Resync()
	m.state = msIdle
}

// Feed processes one baseband sample, returning the next decoded event
// if one occurred.
func (m *MessageReceiver) Feed(s float64) (MessageEvent, bool) {
	ev, err, ok := m.recv.Feed(s)
	if !ok {
		return MessageEvent{}, false
	}
	if err != nil {
		m.recv.Resync()
		m.state = msIdle
		return MessageEvent{Kind: EvError, Err: err}, true
	}

	var dibit = ev.Symbol.Data

	switch ev.Kind {
	case EventNetworkID:
		switch ev.NID.DataUnit {
		case VoiceHeader:
			m.header = p25voice.NewVoiceHeaderReceiver()
			m.state = msDecodeHeader
		case VoiceSimpleTerminator:
			m.recv.FlushPads()
			m.state = msIdle
		case VoiceLCTerminator:
			m.lcTerm = p25voice.NewVoiceLCTerminatorReceiver()
			m.state = msDecodeLCTerminator
		case VoiceLCFrameGroup:
			m.lcFG = p25voice.NewFrameGroupReceiver[p25voice.LinkControlFields](p25voice.LinkControlExtra{})
			m.state = msDecodeLCFrameGroup
		case VoiceCCFrameGroup:
			m.ccFG = p25voice.NewFrameGroupReceiver[p25voice.CryptoControlFields](p25voice.CryptoControlExtra{})
			m.state = msDecodeCCFrameGroup
		case TrunkingSignaling:
			m.tsbk = p25trunking.NewTSBKDecoder()
			m.state = msDecodeTSBK
		case DataPacket:
			m.recv.Resync()
			m.state = msIdle
		}
		return MessageEvent{Kind: EvPacketNID, NID: ev.NID}, true

	case EventSymbol:
		if ev.Symbol.Kind == SymbolStatus {
			return MessageEvent{}, false
		}
	}

	switch m.state {
	case msDecodeHeader:
		fields, herr, hok := m.header.Feed(dibit)
		if !hok {
			return MessageEvent{}, false
		}
		if herr != nil {
			m.recv.Resync()
			m.state = msIdle
			return MessageEvent{Kind: EvError, Err: herr}, true
		}
		m.recv.FlushPads()
		m.state = msIdle
		return MessageEvent{Kind: EvVoiceHeader, VoiceHeader: fields}, true

	case msDecodeLCFrameGroup:
		fgEv, ferr, fok := m.lcFG.Feed(dibit)
		if !fok {
			return MessageEvent{}, false
		}
		if ferr != nil {
			m.recv.Resync()
			m.state = msIdle
			return MessageEvent{Kind: EvError, Err: ferr}, true
		}
		if m.lcFG.Done() {
			m.recv.FlushPads()
			m.state = msIdle
		}
		switch fgEv.Kind {
		case p25voice.EventVoiceFrame:
			return MessageEvent{Kind: EvVoiceFrame, VoiceFrame: fgEv.VoiceFrame}, true
		case p25voice.EventExtra:
			return MessageEvent{Kind: EvLinkControl, LinkControl: fgEv.Extra}, true
		case p25voice.EventDataFragment:
			return MessageEvent{Kind: EvLowSpeedDataFragment, DataFragment: fgEv.DataFragment}, true
		}
		return MessageEvent{}, false

	case msDecodeCCFrameGroup:
		fgEv, ferr, fok := m.ccFG.Feed(dibit)
		if !fok {
			return MessageEvent{}, false
		}
		if ferr != nil {
			m.recv.Resync()
			m.state = msIdle
			return MessageEvent{Kind: EvError, Err: ferr}, true
		}
		switch fgEv.Kind {
		case p25voice.EventVoiceFrame:
			if m.ccFG.Done() {
				m.recv.FlushPads()
				m.state = msIdle
			}
			return MessageEvent{Kind: EvVoiceFrame, VoiceFrame: fgEv.VoiceFrame}, true
		case p25voice.EventExtra:
			return MessageEvent{Kind: EvCryptoControl, CryptoControl: fgEv.Extra}, true
		case p25voice.EventDataFragment:
			return MessageEvent{Kind: EvLowSpeedDataFragment, DataFragment: fgEv.DataFragment}, true
		}
		return MessageEvent{}, false

	case msDecodeLCTerminator:
		fields, terr, tok := m.lcTerm.Feed(dibit)
		if !tok {
			return MessageEvent{}, false
		}
		if terr != nil {
			m.recv.Resync()
			m.state = msIdle
			return MessageEvent{Kind: EvError, Err: terr}, true
		}
		m.recv.FlushPads()
		m.state = msIdle
		return MessageEvent{Kind: EvVoiceTerm, LinkControl: fields}, true

	case msDecodeTSBK:
		tsbk, terr, tok := m.tsbk.Feed(dibit)
		if !tok {
			return MessageEvent{}, false
		}
		if terr != nil {
			m.recv.Resync()
			m.state = msIdle
			return MessageEvent{Kind: EvError, Err: terr}, true
		}
		if tsbk.IsTail() {
			m.recv.FlushPads()
		}
		return MessageEvent{Kind: EvTrunkingControl, Trunking: tsbk}, true

	default:
		return MessageEvent{}, false
	}
}

package p25trunking

import (
	"errors"

	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25buffer"
	"github.com/dbehnke/p25core/internal/p25coding"
	"github.com/dbehnke/p25core/internal/p25const"
	"github.com/dbehnke/p25core/internal/p25data"
)

// ErrViterbiUnrecoverable is returned when the half-rate trellis decode
// of a trunking-signalling block fails to converge on every symbol.
var ErrViterbiUnrecoverable = errors.New("p25trunking: viterbi decode unrecoverable")

// TSBKDecoder accumulates 98 interleaved, half-rate-coded dibits into one
// decoded 12-byte trunking-signalling block.
type TSBKDecoder struct {
	dibits *p25buffer.Buffer[p25bits.Dibit]
}

// NewTSBKDecoder creates a TSBK decoder ready to receive dibits.
func NewTSBKDecoder() *TSBKDecoder {
	return &TSBKDecoder{dibits: p25buffer.New[p25bits.Dibit](p25const.CodingDibits)}
}

// Feed accumulates one dibit, returning a decoded block once 98 dibits
// (one full TSBK payload) have arrived.
func (d *TSBKDecoder) Feed(dibit p25bits.Dibit) (TSBK, error, bool) {
	buf := d.dibits.Feed(dibit)
	if buf == nil {
		return TSBK{}, nil, false
	}

	var arr [p25const.CodingDibits]p25bits.Dibit
	copy(arr[:], buf)
	deinterleaved := p25data.Deinterleave(&arr)

	raw := make([]uint8, len(deinterleaved))
	for i, dib := range deinterleaved {
		raw[i] = dib.Bits()
	}

	decoded := p25coding.DibitTrellisDecode(raw)

	var dibits [48]p25bits.Dibit
	count := 0
	for _, r := range decoded {
		if !r.OK {
			continue
		}
		if count >= len(dibits) {
			break
		}
		dibits[count] = p25bits.NewDibit(r.Value)
		count++
	}

	if count != len(dibits) {
		return TSBK{}, ErrViterbiUnrecoverable, true
	}

	var bytes [12]byte
	for i := 0; i < 12; i++ {
		bytes[i] = dibits[4*i].Bits()<<6 | dibits[4*i+1].Bits()<<4 | dibits[4*i+2].Bits()<<2 | dibits[4*i+3].Bits()
	}

	return NewTSBK(bytes), nil, true
}

// TSBKOpcode identifies the purpose and field layout of a trunking
// block's payload.
type TSBKOpcode int

const (
	OpGroupVoiceGrant TSBKOpcode = iota
	OpReserved0001
	OpGroupVoiceUpdate
	OpGroupVoiceUpdateExplicit
	OpUnitVoiceGrant
	OpUnitCallRequest
	OpUnitVoiceUpdate
	OpReserved0111
	OpPhoneGrant
	OpReserved1001
	OpPhoneCallRequest
	OpReserved001011to1111
	OpUnitDataGrant
	OpGroupDataGrant
	OpGroupDataAnnounce
	OpGroupDataAnnounceExplicit
	OpReserved010100to0111
	OpUnitStatusUpdate
	OpReserved011001
	OpUnitStatusQuery
	OpReserved011011
	OpUnitShortMessage
	OpUnitMonitor
	OpReserved011110
	OpUnitCallAlert
	OpAckResponse
	OpQueuedResponse
	OpReserved100010
	OpReserved100011
	OpExtendedFunctionResponse
	OpReserved100101
	OpReserved100110
	OpDenyResponse
	OpGroupAffiliationResponse
	OpReserved101001
	OpGroupAffiliationQuery
	OpLocRegistrationResponse
	OpUnitRegistrationResponse
	OpUnitRegistrationCommand
	OpAuthCommand
	OpDeregistrationAck
	OpReserved110000to0101
	OpRoamingAddrCommand
	OpRoamingAddrUpdate
	OpSystemServiceBroadcast
	OpAltControlBroadcast
	OpRFSSStatusBroadcast
	OpNetworkStatusBroadcast
	OpAdjacentSiteBroadcast
	OpChannelParamsUpdate
	OpProtectionParamBroadcast
	OpProtectionParamUpdate
	OpUnknownReserved
)

// TSBKOpcodeFromBits decodes the 6-bit opcode field of a trunking block.
func TSBKOpcodeFromBits(bits byte) TSBKOpcode {
	switch {
	case bits == 0b000000:
		return OpGroupVoiceGrant
	case bits == 0b000001:
		return OpUnknownReserved
	case bits == 0b000010:
		return OpGroupVoiceUpdate
	case bits == 0b000011:
		return OpGroupVoiceUpdateExplicit
	case bits == 0b000100:
		return OpUnitVoiceGrant
	case bits == 0b000101:
		return OpUnitCallRequest
	case bits == 0b000110:
		return OpUnitVoiceUpdate
	case bits == 0b000111:
		return OpUnknownReserved
	case bits == 0b001000:
		return OpPhoneGrant
	case bits == 0b001001:
		return OpUnknownReserved
	case bits == 0b001010:
		return OpPhoneCallRequest
	case bits >= 0b001011 && bits <= 0b001111:
		return OpUnknownReserved
	case bits == 0b010000:
		return OpUnitDataGrant
	case bits == 0b010001:
		return OpGroupDataGrant
	case bits == 0b010010:
		return OpGroupDataAnnounce
	case bits == 0b010011:
		return OpGroupDataAnnounceExplicit
	case bits >= 0b010100 && bits <= 0b010111:
		return OpUnknownReserved
	case bits == 0b011000:
		return OpUnitStatusUpdate
	case bits == 0b011001:
		return OpUnknownReserved
	case bits == 0b011010:
		return OpUnitStatusQuery
	case bits == 0b011011:
		return OpUnknownReserved
	case bits == 0b011100:
		return OpUnitShortMessage
	case bits == 0b011101:
		return OpUnitMonitor
	case bits == 0b011110:
		return OpUnknownReserved
	case bits == 0b011111:
		return OpUnitCallAlert
	case bits == 0b100000:
		return OpAckResponse
	case bits == 0b100001:
		return OpQueuedResponse
	case bits == 0b100010, bits == 0b100011:
		return OpUnknownReserved
	case bits == 0b100100:
		return OpExtendedFunctionResponse
	case bits == 0b100101, bits == 0b100110:
		return OpUnknownReserved
	case bits == 0b100111:
		return OpDenyResponse
	case bits == 0b101000:
		return OpGroupAffiliationResponse
	case bits == 0b101001:
		return OpUnknownReserved
	case bits == 0b101010:
		return OpGroupAffiliationQuery
	case bits == 0b101011:
		return OpLocRegistrationResponse
	case bits == 0b101100:
		return OpUnitRegistrationResponse
	case bits == 0b101101:
		return OpUnitRegistrationCommand
	case bits == 0b101110:
		return OpAuthCommand
	case bits == 0b101111:
		return OpDeregistrationAck
	case bits >= 0b110000 && bits <= 0b110101:
		return OpUnknownReserved
	case bits == 0b110110:
		return OpRoamingAddrCommand
	case bits == 0b110111:
		return OpRoamingAddrUpdate
	case bits == 0b111000:
		return OpSystemServiceBroadcast
	case bits == 0b111001:
		return OpAltControlBroadcast
	case bits == 0b111010:
		return OpRFSSStatusBroadcast
	case bits == 0b111011:
		return OpNetworkStatusBroadcast
	case bits == 0b111100:
		return OpAdjacentSiteBroadcast
	case bits == 0b111101:
		return OpChannelParamsUpdate
	case bits == 0b111110:
		return OpProtectionParamBroadcast
	case bits == 0b111111:
		return OpProtectionParamUpdate
	default:
		return OpUnknownReserved
	}
}

// TSBK is a decoded 12-byte trunking-signalling block, with the is_tail
// flag, protection flag, opcode, manufacturer code, and CRC-16 common to
// every block, plus a raw byte view for opcode-specific field accessors.
type TSBK struct {
	buf [12]byte
}

// NewTSBK wraps an already-decoded 12-byte trunking block.
func NewTSBK(buf [12]byte) TSBK { return TSBK{buf: buf} }

func (t TSBK) IsTail() bool        { return t.buf[0]>>7 == 1 }
func (t TSBK) Protected() bool     { return t.buf[0]>>6&1 == 1 }
func (t TSBK) Opcode() TSBKOpcode  { return TSBKOpcodeFromBits(t.buf[0] & 0x3F) }
func (t TSBK) Mfg() byte           { return t.buf[1] }
func (t TSBK) CRC() uint16         { return sliceU16(t.buf[10:12]) }

// CalcCRC computes the expected CRC-16 over the block's first 10 bytes.
func (t TSBK) CalcCRC() uint16 {
	return uint16(p25coding.NewCRC16().FeedBytes(t.buf[:10]).Finish())
}

// GroupVoiceGrant is the field view of a voice-channel grant to a talkgroup.
type GroupVoiceGrant struct{ buf [12]byte }

func NewGroupVoiceGrant(t TSBK) GroupVoiceGrant { return GroupVoiceGrant{buf: t.buf} }

func (g GroupVoiceGrant) Opts() ServiceOptions { return NewServiceOptions(g.buf[2]) }
func (g GroupVoiceGrant) TalkGroup() TalkGroup { return NewTalkGroup(g.buf[5:7]) }
func (g GroupVoiceGrant) SrcUnit() uint32      { return sliceU24(g.buf[7:10]) }

// GroupVoiceUpdate advertises up to two active group calls and their
// channels, for idle subscribers to join without a full grant.
type GroupVoiceUpdate struct{ buf [12]byte }

func NewGroupVoiceUpdate(t TSBK) GroupVoiceUpdate { return GroupVoiceUpdate{buf: t.buf} }

func (g GroupVoiceUpdate) ChannelA() Channel     { return NewChannel(g.buf[2:4]) }
func (g GroupVoiceUpdate) TalkGroupA() TalkGroup { return NewTalkGroup(g.buf[4:6]) }
func (g GroupVoiceUpdate) ChannelB() Channel     { return NewChannel(g.buf[6:8]) }
func (g GroupVoiceUpdate) TalkGroupB() TalkGroup { return NewTalkGroup(g.buf[8:10]) }

// UnitVoiceGrant is a voice-channel grant to an individual subscriber unit.
type UnitVoiceGrant struct{ buf [12]byte }

func NewUnitVoiceGrant(t TSBK) UnitVoiceGrant { return UnitVoiceGrant{buf: t.buf} }

func (u UnitVoiceGrant) Channel() Channel  { return NewChannel(u.buf[2:4]) }
func (u UnitVoiceGrant) DestUnit() uint32  { return sliceU24(u.buf[4:7]) }
func (u UnitVoiceGrant) SrcUnit() uint32   { return sliceU24(u.buf[7:10]) }

// UnitDataGrant is a data-channel grant to an individual subscriber unit.
type UnitDataGrant struct{ buf [12]byte }

func NewUnitDataGrant(t TSBK) UnitDataGrant { return UnitDataGrant{buf: t.buf} }

func (u UnitDataGrant) Channel() Channel { return NewChannel(u.buf[2:4]) }
func (u UnitDataGrant) DestUnit() uint32 { return sliceU24(u.buf[4:7]) }
func (u UnitDataGrant) SrcUnit() uint32  { return sliceU24(u.buf[7:10]) }

// AltControlBroadcast advertises up to two alternate control channels.
type AltControlBroadcast struct{ buf [12]byte }

func NewAltControlBroadcast(t TSBK) AltControlBroadcast { return AltControlBroadcast{buf: t.buf} }

func (a AltControlBroadcast) RFSS() byte             { return a.buf[2] }
func (a AltControlBroadcast) Site() byte             { return a.buf[3] }
func (a AltControlBroadcast) ChannelA() Channel       { return NewChannel(a.buf[4:6]) }
func (a AltControlBroadcast) ServicesA() SystemServices { return NewSystemServices(a.buf[6]) }
func (a AltControlBroadcast) ChannelB() Channel       { return NewChannel(a.buf[7:9]) }
func (a AltControlBroadcast) ServicesB() SystemServices { return NewSystemServices(a.buf[9]) }

// NetworkStatusBroadcast advertises the WACN/system identity and the
// control channel's own parameters.
type NetworkStatusBroadcast struct{ buf [12]byte }

func NewNetworkStatusBroadcast(t TSBK) NetworkStatusBroadcast {
	return NetworkStatusBroadcast{buf: t.buf}
}

func (n NetworkStatusBroadcast) Area() byte     { return n.buf[2] }
func (n NetworkStatusBroadcast) WACN() uint32   { return sliceU24(n.buf[3:6]) >> 4 }
func (n NetworkStatusBroadcast) System() uint16 { return sliceU16(n.buf[5:7]) & 0xFFF }
func (n NetworkStatusBroadcast) Channel() Channel { return NewChannel(n.buf[7:9]) }
func (n NetworkStatusBroadcast) Services() SystemServices { return NewSystemServices(n.buf[9]) }

// SiteStatusBroadcast advertises this site's own operating condition.
type SiteStatusBroadcast struct{ buf [12]byte }

func NewSiteStatusBroadcast(t TSBK) SiteStatusBroadcast { return SiteStatusBroadcast{buf: t.buf} }

func (s SiteStatusBroadcast) Area() byte              { return s.buf[2] }
func (s SiteStatusBroadcast) IsConventional() bool    { return s.buf[3]&0x80 != 0 }
func (s SiteStatusBroadcast) IsDown() bool            { return s.buf[3]&0x40 != 0 }
func (s SiteStatusBroadcast) IsCurrent() bool         { return s.buf[3]&0x20 != 0 }
func (s SiteStatusBroadcast) HasNetwork() bool        { return s.buf[3]&0x10 != 0 }
func (s SiteStatusBroadcast) System() uint16          { return sliceU16(s.buf[3:5]) & 0xFFF }
func (s SiteStatusBroadcast) RFSS() byte              { return s.buf[5] }
func (s SiteStatusBroadcast) Site() byte              { return s.buf[6] }
func (s SiteStatusBroadcast) Channel() Channel        { return NewChannel(s.buf[7:9]) }
func (s SiteStatusBroadcast) Services() SystemServices { return NewSystemServices(s.buf[9]) }

// ChannelParamsUpdate carries the base frequency, bandwidth, TX offset
// and spacing needed to compute absolute frequencies for one of a
// site's 16 channel-ID slots.
type ChannelParamsUpdate struct{ buf [12]byte }

func NewChannelParamsUpdate(t TSBK) ChannelParamsUpdate { return ChannelParamsUpdate{buf: t.buf} }

// ChannelID is the 4-bit slot this update configures.
func (c ChannelParamsUpdate) ChannelID() byte { return c.buf[2] >> 4 }

func (c ChannelParamsUpdate) bandwidth() uint16 {
	return uint16(c.buf[2]&0xF)<<5 | uint16(c.buf[3]>>3)
}

func (c ChannelParamsUpdate) offset() uint16 {
	return uint16(c.buf[3]&0x7)<<6 | uint16(c.buf[4]>>2)
}

func (c ChannelParamsUpdate) spacing() uint16 {
	return uint16(c.buf[4]&0x3)<<8 | uint16(c.buf[5])
}

func (c ChannelParamsUpdate) baseFreq() uint32 { return sliceU32(c.buf[6:10]) }

// Params computes the frequency parameters this update describes.
func (c ChannelParamsUpdate) Params() ChannelParams {
	return NewChannelParams(c.baseFreq(), c.bandwidth(), c.offset(), c.spacing())
}

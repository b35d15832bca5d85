package p25voice

import (
	"github.com/dbehnke/p25core/internal/p25const"
	"github.com/dbehnke/p25core/internal/p25trunking"
)

// LinkControlOpcode identifies the purpose and field layout of a link
// control word carried within a voice stream.
type LinkControlOpcode int

const (
	LCGroupVoiceTraffic LinkControlOpcode = iota
	LCGroupVoiceUpdate
	LCUnitVoiceTraffic
	LCGroupVoiceUpdateExplicit
	LCUnitVoiceRequest
	LCPhoneVoiceTraffic
	LCPhoneVoiceRequest
	LCCallTermination
	LCGroupAffiliationQuery
	LCUnitRegistrationRequest
	LCUnitAuthenticationRequest
	LCUnitStatusRequest
	LCSystemServiceBroadcast
	LCAltControlChannel
	LCAdjacentSite
	LCRFSSStatusBroadcast
	LCNetworkStatusBroadcast
	LCUnitStatusUpdate
	LCUnitShortMessage
	LCUnitCallAlert
	LCExtendedFunction
	LCChannelParamsUpdate
	LCProtectionParamBroadcast
	LCAltControlChannelExplicit
	LCAdjacentSiteExplicit
	LCChannelParamsExplicit
	LCRFSSStatusExplicit
	LCNetworkStatusExplicit
	LCUnknownReserved
)

// LinkControlOpcodeFromBits decodes the 6-bit opcode field of a link
// control word.
func LinkControlOpcodeFromBits(bits byte) LinkControlOpcode {
	switch bits {
	case 0b000000:
		return LCGroupVoiceTraffic
	case 0b000010:
		return LCGroupVoiceUpdate
	case 0b000011:
		return LCUnitVoiceTraffic
	case 0b000100:
		return LCGroupVoiceUpdateExplicit
	case 0b000101:
		return LCUnitVoiceRequest
	case 0b000110:
		return LCPhoneVoiceTraffic
	case 0b000111:
		return LCPhoneVoiceRequest
	case 0b001111:
		return LCCallTermination
	case 0b010000:
		return LCGroupAffiliationQuery
	case 0b010001:
		return LCUnitRegistrationRequest
	case 0b010010:
		return LCUnitAuthenticationRequest
	case 0b010011:
		return LCUnitStatusRequest
	case 0b100000:
		return LCSystemServiceBroadcast
	case 0b100001:
		return LCAltControlChannel
	case 0b100010:
		return LCAdjacentSite
	case 0b100011:
		return LCRFSSStatusBroadcast
	case 0b100100:
		return LCNetworkStatusBroadcast
	case 0b010100:
		return LCUnitStatusUpdate
	case 0b010101:
		return LCUnitShortMessage
	case 0b010110:
		return LCUnitCallAlert
	case 0b010111:
		return LCExtendedFunction
	case 0b011000:
		return LCChannelParamsUpdate
	case 0b100101:
		return LCProtectionParamBroadcast
	case 0b100110:
		return LCAltControlChannelExplicit
	case 0b100111:
		return LCAdjacentSiteExplicit
	case 0b011001:
		return LCChannelParamsExplicit
	case 0b101000:
		return LCRFSSStatusExplicit
	case 0b101001:
		return LCNetworkStatusExplicit
	default:
		return LCUnknownReserved
	}
}

// LinkControlFields is the field view over a decoded link control word
// carried within a voice stream.
type LinkControlFields struct {
	buf [p25const.LinkControlBytes]byte
}

// NewLinkControlFields wraps a decoded link control word.
func NewLinkControlFields(buf [p25const.LinkControlBytes]byte) LinkControlFields {
	return LinkControlFields{buf: buf}
}

func (l LinkControlFields) Protected() bool { return l.buf[0]>>7 == 1 }

func (l LinkControlFields) Opcode() LinkControlOpcode {
	return LinkControlOpcodeFromBits(l.buf[0] & 0x3F)
}

// Payload is the 8 bytes of opcode-specific data following the opcode byte.
func (l LinkControlFields) Payload() []byte { return l.buf[1:9] }

// GroupVoiceTraffic carries a group voice call's service options,
// talkgroup, and originating unit.
type GroupVoiceTraffic struct{ buf [p25const.LinkControlBytes]byte }

func NewGroupVoiceTraffic(lc LinkControlFields) GroupVoiceTraffic {
	return GroupVoiceTraffic{buf: lc.buf}
}

func (g GroupVoiceTraffic) Mfg() byte { return g.buf[1] }
func (g GroupVoiceTraffic) Opts() p25trunking.ServiceOptions {
	return p25trunking.NewServiceOptions(g.buf[2])
}
func (g GroupVoiceTraffic) TalkGroup() p25trunking.TalkGroup {
	return p25trunking.NewTalkGroup(g.buf[4:6])
}
func (g GroupVoiceTraffic) SrcUnit() uint32 { return sliceU24(g.buf[6:9]) }

// GroupVoiceUpdate advertises up to two active group calls and their channels.
type GroupVoiceUpdate struct{ buf [p25const.LinkControlBytes]byte }

func NewGroupVoiceUpdate(lc LinkControlFields) GroupVoiceUpdate {
	return GroupVoiceUpdate{buf: lc.buf}
}

func (g GroupVoiceUpdate) Updates() [2]p25trunking.ChannelUpdate {
	return p25trunking.ParseChannelUpdates(g.buf[1:9])
}

// UnitVoiceTraffic carries a unit-to-unit voice call's service options
// and source/destination units.
type UnitVoiceTraffic struct{ buf [p25const.LinkControlBytes]byte }

func NewUnitVoiceTraffic(lc LinkControlFields) UnitVoiceTraffic {
	return UnitVoiceTraffic{buf: lc.buf}
}

func (u UnitVoiceTraffic) Mfg() byte { return u.buf[1] }
func (u UnitVoiceTraffic) Opts() p25trunking.ServiceOptions {
	return p25trunking.NewServiceOptions(u.buf[2])
}
func (u UnitVoiceTraffic) DestUnit() uint32 { return sliceU24(u.buf[3:6]) }
func (u UnitVoiceTraffic) SrcUnit() uint32  { return sliceU24(u.buf[6:9]) }

// CallTermination marks the end of a call, naming the releasing unit.
type CallTermination struct{ buf [p25const.LinkControlBytes]byte }

func NewCallTermination(lc LinkControlFields) CallTermination {
	return CallTermination{buf: lc.buf}
}

func (c CallTermination) Unit() uint32 { return sliceU24(c.buf[6:9]) }

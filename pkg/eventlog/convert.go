package eventlog

import (
	"time"

	"github.com/dbehnke/p25core/internal/p25message"
	"github.com/dbehnke/p25core/internal/p25trunking"
	"github.com/dbehnke/p25core/internal/p25voice"
)

var kindNames = map[p25message.MessageEventKind]string{
	p25message.EvError:              "error",
	p25message.EvPacketNID:          "packet_nid",
	p25message.EvVoiceHeader:        "voice_header",
	p25message.EvVoiceFrame:         "voice_frame",
	p25message.EvLinkControl:        "link_control",
	p25message.EvCryptoControl:      "crypto_control",
	p25message.EvLowSpeedDataFragment: "low_speed_data",
	p25message.EvTrunkingControl:    "trunking_control",
	p25message.EvVoiceTerm:          "voice_term",
}

// FromMessageEvent converts a decoded message event into a loggable
// record, stamped with the supplied timestamp.
func FromMessageEvent(ev p25message.MessageEvent, when time.Time) DecodedEvent {
	rec := DecodedEvent{
		Kind:      kindNames[ev.Kind],
		Timestamp: when,
	}

	if ev.Err != nil {
		rec.ErrMessage = ev.Err.Error()
	}

	switch ev.Kind {
	case p25message.EvPacketNID:
		rec.NAC = ev.NID.AccessCode.Bits()
		rec.DataUnit = dataUnitName(ev.NID.DataUnit)

	case p25message.EvLinkControl:
		fillFromLinkControl(&rec, ev.LinkControl)

	case p25message.EvVoiceTerm:
		fillFromLinkControl(&rec, ev.LinkControl)

	case p25message.EvTrunkingControl:
		fillFromTSBK(&rec, ev.Trunking)
	}

	return rec
}

func fillFromLinkControl(rec *DecodedEvent, lc p25voice.LinkControlFields) {
	switch lc.Opcode() {
	case p25voice.LCGroupVoiceTraffic:
		gvt := p25voice.NewGroupVoiceTraffic(lc)
		rec.SrcUnit = gvt.SrcUnit()
		rec.TalkGroup = gvt.TalkGroup().Bits()
	case p25voice.LCUnitVoiceTraffic:
		uvt := p25voice.NewUnitVoiceTraffic(lc)
		rec.SrcUnit = uvt.SrcUnit()
		rec.DestUnit = uvt.DestUnit()
	case p25voice.LCCallTermination:
		rec.SrcUnit = p25voice.NewCallTermination(lc).Unit()
	}
}

func fillFromTSBK(rec *DecodedEvent, t p25trunking.TSBK) {
	rec.Opcode = tsbkOpcodeName(t.Opcode())

	switch t.Opcode() {
	case p25trunking.OpGroupVoiceGrant:
		g := p25trunking.NewGroupVoiceGrant(t)
		rec.SrcUnit = g.SrcUnit()
		rec.TalkGroup = g.TalkGroup().Bits()
	case p25trunking.OpUnitVoiceGrant:
		u := p25trunking.NewUnitVoiceGrant(t)
		rec.SrcUnit = u.SrcUnit()
		rec.DestUnit = u.DestUnit()
		rec.Channel = u.Channel().Number()
	}
}

func dataUnitName(d p25message.DataUnit) string {
	switch d {
	case p25message.VoiceHeader:
		return "voice_header"
	case p25message.VoiceSimpleTerminator:
		return "voice_simple_terminator"
	case p25message.VoiceLCTerminator:
		return "voice_lc_terminator"
	case p25message.VoiceLCFrameGroup:
		return "voice_lc_frame_group"
	case p25message.VoiceCCFrameGroup:
		return "voice_cc_frame_group"
	case p25message.DataPacket:
		return "data_packet"
	case p25message.TrunkingSignaling:
		return "trunking_signaling"
	default:
		return "unknown"
	}
}

func tsbkOpcodeName(op p25trunking.TSBKOpcode) string {
	switch op {
	case p25trunking.OpGroupVoiceGrant:
		return "group_voice_grant"
	case p25trunking.OpGroupVoiceUpdate:
		return "group_voice_update"
	case p25trunking.OpUnitVoiceGrant:
		return "unit_voice_grant"
	case p25trunking.OpUnitDataGrant:
		return "unit_data_grant"
	case p25trunking.OpGroupDataGrant:
		return "group_data_grant"
	case p25trunking.OpSystemServiceBroadcast:
		return "system_service_broadcast"
	case p25trunking.OpRFSSStatusBroadcast:
		return "rfss_status_broadcast"
	case p25trunking.OpNetworkStatusBroadcast:
		return "network_status_broadcast"
	case p25trunking.OpAdjacentSiteBroadcast:
		return "adjacent_site_broadcast"
	case p25trunking.OpChannelParamsUpdate:
		return "channel_params_update"
	default:
		return "other"
	}
}

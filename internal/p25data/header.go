package p25data

import "github.com/dbehnke/p25core/internal/p25coding"

// DataPacketFormat distinguishes a confirmed (block-acknowledged) data
// packet from an unconfirmed one.
type DataPacketFormat int

const (
	ConfirmedPacket DataPacketFormat = iota
	UnconfirmedPacket
)

func (f DataPacketFormat) bits() byte {
	switch f {
	case ConfirmedPacket:
		return 0b10110
	case UnconfirmedPacket:
		return 0b10101
	default:
		panic("p25data: unknown data packet format")
	}
}

// ServiceAccessPoint identifies which upper-layer service a data packet
// is addressed to.
type ServiceAccessPoint byte

const (
	SAPPacketData         ServiceAccessPoint = 4
	SAPPaging             ServiceAccessPoint = 38
	SAPExtendedAddressing ServiceAccessPoint = 31
)

func (s ServiceAccessPoint) bits() byte { return byte(s) }

// Preamble is the first byte of every data packet header: the
// confirmed/unconfirmed format and the inbound/outbound direction.
type Preamble struct {
	Confirmed bool
	Outbound  bool
}

// ConfirmedOutboundPreamble builds the preamble for a confirmed,
// base-to-subscriber data packet.
func ConfirmedOutboundPreamble() Preamble { return Preamble{Confirmed: true, Outbound: true} }

// ConfirmedInboundPreamble builds the preamble for a confirmed,
// subscriber-to-base data packet.
func ConfirmedInboundPreamble() Preamble { return Preamble{Confirmed: true, Outbound: false} }

// UnconfirmedOutboundPreamble builds the preamble for an unconfirmed,
// base-to-subscriber data packet.
func UnconfirmedOutboundPreamble() Preamble { return Preamble{Confirmed: false, Outbound: true} }

// UnconfirmedInboundPreamble builds the preamble for an unconfirmed,
// subscriber-to-base data packet.
func UnconfirmedInboundPreamble() Preamble { return Preamble{Confirmed: false, Outbound: false} }

func (p Preamble) format() DataPacketFormat {
	if p.Confirmed {
		return ConfirmedPacket
	}
	return UnconfirmedPacket
}

func (p Preamble) byte() byte {
	return boolBit(p.Confirmed)<<6 | boolBit(p.Outbound)<<5 | p.format().bits()
}

// BlockCount is the "full packet" flag and data block count fields.
type BlockCount struct {
	FullPacket bool
	Count      byte
}

func (b BlockCount) byte() byte {
	if b.Count>>7 != 0 {
		panic("p25data: block count overflows 7 bits")
	}
	return boolBit(b.FullPacket)<<7 | b.Count
}

// Sequencing is the resync flag plus packet/fragment sequence numbers.
type Sequencing struct {
	Resync  bool
	PktSeq  byte
	FragSeq byte
}

func (s Sequencing) byte() byte {
	if s.PktSeq>>3 != 0 {
		panic("p25data: packet sequence overflows 3 bits")
	}
	if s.FragSeq>>4 != 0 {
		panic("p25data: fragment sequence overflows 4 bits")
	}
	return boolBit(s.Resync)<<7 | s.PktSeq<<4 | s.FragSeq
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// ConfirmedFields is the full set of header fields for a confirmed data
// packet, in wire order.
type ConfirmedFields struct {
	Preamble   Preamble
	SAP        ServiceAccessPoint
	Mfg        byte
	Addr       uint32
	Blocks     BlockCount
	Pads       byte
	Seq        Sequencing
	DataOffset byte
}

func (f ConfirmedFields) write(buf []byte) {
	buf[0] = f.Preamble.byte()
	buf[1] = 0b11000000 | f.SAP.bits()
	buf[2] = f.Mfg
	if f.Addr>>24 != 0 {
		panic("p25data: logical link address overflows 24 bits")
	}
	buf[3] = byte(f.Addr >> 16)
	buf[4] = byte(f.Addr >> 8)
	buf[5] = byte(f.Addr)
	buf[6] = f.Blocks.byte()
	if f.Pads>>5 != 0 {
		panic("p25data: pad count overflows 5 bits")
	}
	buf[7] = f.Pads
	buf[8] = f.Seq.byte()
	if f.DataOffset>>6 != 0 {
		panic("p25data: data offset overflows 6 bits")
	}
	buf[9] = f.DataOffset
}

// UnconfirmedFields is the full set of header fields for an unconfirmed
// data packet; it has no sequencing field, replaced by a reserved byte.
type UnconfirmedFields struct {
	Preamble   Preamble
	SAP        ServiceAccessPoint
	Mfg        byte
	Addr       uint32
	Blocks     BlockCount
	Pads       byte
	DataOffset byte
}

func (f UnconfirmedFields) write(buf []byte) {
	buf[0] = f.Preamble.byte()
	buf[1] = 0b11000000 | f.SAP.bits()
	buf[2] = f.Mfg
	if f.Addr>>24 != 0 {
		panic("p25data: logical link address overflows 24 bits")
	}
	buf[3] = byte(f.Addr >> 16)
	buf[4] = byte(f.Addr >> 8)
	buf[5] = byte(f.Addr)
	buf[6] = f.Blocks.byte()
	if f.Pads>>5 != 0 {
		panic("p25data: pad count overflows 5 bits")
	}
	buf[7] = f.Pads
	buf[8] = 0
	if f.DataOffset>>6 != 0 {
		panic("p25data: data offset overflows 6 bits")
	}
	buf[9] = f.DataOffset
}

// BuildConfirmedHeader assembles a confirmed data packet's 10-byte field
// block and its 16-bit CRC.
func BuildConfirmedHeader(fields ConfirmedFields) (bytes [10]byte, crc [2]byte) {
	fields.write(bytes[:])
	return bytes, checksum(bytes[:])
}

// BuildUnconfirmedHeader assembles an unconfirmed data packet's 10-byte
// field block and its 16-bit CRC.
func BuildUnconfirmedHeader(fields UnconfirmedFields) (bytes [10]byte, crc [2]byte) {
	fields.write(bytes[:])
	return bytes, checksum(bytes[:])
}

func checksum(fields []byte) [2]byte {
	sum := p25coding.NewCRC16().FeedBytes(fields).Finish()
	return [2]byte{byte(sum >> 8), byte(sum)}
}

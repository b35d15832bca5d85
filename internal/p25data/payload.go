package p25data

import "github.com/dbehnke/p25core/internal/p25coding"

// Payload splits a data packet's payload bytes into fixed-size blocks
// per the packet's confirmed/unconfirmed parameters, with the packet's
// checksum carried by the final (tail) block.
type Payload struct {
	params PacketParams
	data   []byte
}

// NewPayload wraps the bytes to be split into blocks. data must not
// exceed params.PacketBytes().
func NewPayload(params PacketParams, data []byte) Payload {
	if len(data) > params.PacketBytes() {
		panic("p25data: payload exceeds packet byte limit")
	}
	return Payload{params: params, data: data}
}

// Blocks is the total block count (normal plus tail) for this payload.
func (p Payload) Blocks() int { return p.params.Blocks(len(p.data)) }

// Pads is the number of pad bytes appended to round out the final blocks.
func (p Payload) Pads() int { return p.params.Pads(len(p.data)) }

// Iter returns the normal (non-tail) blocks in order.
func (p Payload) Iter() []PayloadBlock {
	full := p.params.FullBlocks(len(p.data))
	out := make([]PayloadBlock, 0, full)
	for b := 0; b < full; b++ {
		start := b * p.params.BlockBytes
		stop := start + p.params.BlockBytes
		if stop > len(p.data) {
			stop = len(p.data)
		}
		out = append(out, PayloadBlock{params: p.params, data: p.data[start:stop]})
	}
	return out
}

// Tail returns the payload's final block, carrying the packet checksum.
func (p Payload) Tail() TailBlock {
	start := p.params.FullBlocks(len(p.data)) * p.params.BlockBytes
	if start > len(p.data) {
		start = len(p.data)
	}
	return TailBlock{params: p.params, data: p.data[start:], checksum: p.checksum()}
}

func (p Payload) checksum() uint32 {
	crc := p25coding.NewCRC32().FeedBytes(p.data)
	pads := make([]byte, p.Pads())
	crc.FeedBytes(pads)
	return uint32(crc.Finish())
}

// PayloadBlock is one normal (non-tail) data block.
type PayloadBlock struct {
	params PacketParams
	data   []byte
}

// Build returns the block's data bytes and pad count.
func (b PayloadBlock) Build() (data []byte, pads int) {
	return b.data, b.params.BlockBytes - len(b.data)
}

// TailBlock is a payload's final block, carrying the packet checksum.
type TailBlock struct {
	params   PacketParams
	data     []byte
	checksum uint32
}

// Build returns the block's data bytes, pad count, and the packet
// checksum as big-endian bytes.
func (t TailBlock) Build() (data []byte, pads int, checksum [4]byte) {
	return t.data, t.params.TailBytes - len(t.data), [4]byte{
		byte(t.checksum >> 24), byte(t.checksum >> 16), byte(t.checksum >> 8), byte(t.checksum),
	}
}

// ConfirmedBlockHeader is the 2-byte per-block header (serial number
// plus 9-bit checksum) prepended to every block in a confirmed packet.
type ConfirmedBlockHeader struct {
	serialNumber byte
	checksum     uint16
}

// NewConfirmedBlockHeader builds a block header for the given 7-bit
// serial number, computing the CRC-9 over the block's data and pads.
func NewConfirmedBlockHeader(serialNumber byte, data []byte, pads int) ConfirmedBlockHeader {
	if serialNumber>>7 != 0 {
		panic("p25data: block serial number overflows 7 bits")
	}
	crc := p25coding.NewCRC9().FeedBits(serialNumber, 7).FeedBytes(data)
	crc.FeedBytes(make([]byte, pads))
	return ConfirmedBlockHeader{serialNumber: serialNumber, checksum: uint16(crc.Finish())}
}

// Build returns the header's 2 wire bytes.
func (h ConfirmedBlockHeader) Build() [2]byte {
	return [2]byte{
		h.serialNumber<<1 | byte(h.checksum>>8),
		byte(h.checksum),
	}
}

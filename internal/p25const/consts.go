// Package p25const collects the P25 Common Air Interface's fixed wire-format
// sizes shared across the baseband, message, voice, trunking, and data
// packages.
package p25const

const (
	// SymbolRate is the number of dibits transmitted per second.
	SymbolRate = 4800
	// SampleRate is the number of baseband samples per second.
	SampleRate = 48000
	// SymbolPeriod is the number of baseband samples per dibit.
	SymbolPeriod = SampleRate / SymbolRate

	// SyncSymbols is the number of dibits in the frame sync sequence.
	SyncSymbols = 24
	// NIDDibits is the number of dibits in a coded NID word.
	NIDDibits = 32
	// CodingDibits is the number of dibits output by the 1/2 or 3/4-rate
	// trellis coder for a single TSBK or data block.
	CodingDibits = 98
	// TSBKDibits is the number of dibits in an uncoded TSBK packet.
	TSBKDibits = 48
	// TSBKBytes is the number of bytes in an uncoded TSBK packet.
	TSBKBytes = TSBKDibits / 4
	// FrameDibits is the number of dibits in a coded voice frame.
	FrameDibits = 72
	// HeaderHexbits is the number of hexbits in a coded voice header packet.
	HeaderHexbits = 36
	// HeaderBytes is the number of bytes in an uncoded voice header packet.
	HeaderBytes = 15
	// ExtraHexbits is the number of hexbits in a coded voice extra packet.
	ExtraHexbits = 24
	// LinkControlBytes is the number of bytes in a link control word.
	LinkControlBytes = 9
	// CryptoControlBytes is the number of bytes in a crypto control word.
	CryptoControlBytes = 12
	// ExtraPieceDibits is the number of dibits in an LC/CC piece: an LC/CC
	// word spreads over 6 equal pieces in each frame group.
	ExtraPieceDibits = 20
	// ExtraWordDibits is the number of dibits in each coded word making up
	// a voice extra component.
	ExtraWordDibits = 5
	// DataFragDibits is the number of dibits in the voice data fragment.
	DataFragDibits = 8
	// HeaderWordDibits is the number of dibits in each coded word making
	// up the voice header packet.
	HeaderWordDibits = 9
	// LCTermWordDibits is the number of dibits in each coded word making
	// up the voice LC terminator packet.
	LCTermWordDibits = 12
)

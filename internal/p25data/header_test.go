package p25data

import "testing"

func TestPreambleByte(t *testing.T) {
	if got := ConfirmedOutboundPreamble().byte(); got != 0b01110110 {
		t.Errorf("outbound preamble = %08b", got)
	}
	if got := ConfirmedInboundPreamble().byte(); got != 0b01010110 {
		t.Errorf("inbound preamble = %08b", got)
	}
}

func TestServiceAccessPointByte(t *testing.T) {
	if got := 0b11000000 | SAPExtendedAddressing.bits(); got != 0b11011111 {
		t.Errorf("sap byte = %08b", got)
	}
}

func TestBlockCountByte(t *testing.T) {
	b := BlockCount{FullPacket: true, Count: 127}
	if got := b.byte(); got != 0b11111111 {
		t.Errorf("block count byte = %08b", got)
	}
}

func TestSequencingByte(t *testing.T) {
	s := Sequencing{Resync: false, PktSeq: 6, FragSeq: 10}
	if got := s.byte(); got != 0b01101010 {
		t.Errorf("sequencing byte = %08b", got)
	}
}

func TestConfirmedFieldsWrite(t *testing.T) {
	f := ConfirmedFields{
		Preamble: ConfirmedOutboundPreamble(),
		SAP:      SAPPaging,
		Mfg:      0x12,
		Addr:     0x342134,
		Blocks:   BlockCount{FullPacket: true, Count: 127},
		Pads:     3,
		Seq:      Sequencing{Resync: false, PktSeq: 5, FragSeq: 2},
		DataOffset: 0,
	}

	var buf [10]byte
	f.write(buf[:])

	want := [10]byte{
		0b01110110,
		0b11100110,
		0b00010010,
		0b00110100,
		0b00100001,
		0b00110100,
		0b11111111,
		0b00000011,
		0b01010010,
		0b00000000,
	}
	if buf != want {
		t.Fatalf("fields = %08b, want %08b", buf, want)
	}
}

func TestBuildConfirmedHeaderMatchesFixture(t *testing.T) {
	fields := ConfirmedFields{
		Preamble:   ConfirmedOutboundPreamble(),
		SAP:        SAPPacketData,
		Mfg:        0x12,
		Addr:       0x342134,
		Blocks:     BlockCount{FullPacket: true, Count: 127},
		Pads:       3,
		Seq:        Sequencing{Resync: false, PktSeq: 5, FragSeq: 2},
		DataOffset: 0,
	}

	bytes, crc := BuildConfirmedHeader(fields)

	wantBytes := [10]byte{
		0b01110110,
		0b11000100,
		0b00010010,
		0b00110100,
		0b00100001,
		0b00110100,
		0b11111111,
		0b00000011,
		0b01010010,
		0b00000000,
	}
	if bytes != wantBytes {
		t.Fatalf("header bytes = %08b, want %08b", bytes, wantBytes)
	}

	wantCRC := [2]byte{0b10001010, 0b01110010}
	if crc != wantCRC {
		t.Fatalf("header crc = %08b, want %08b", crc, wantCRC)
	}
}

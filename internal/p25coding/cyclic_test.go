package p25coding

import "testing"

func TestCyclicDecode(t *testing.T) {
	const w = uint8(0b10101011)
	e := CyclicEncode(w)

	cases := []struct {
		flip    uint16
		wantErr int
	}{
		{0b0000000000000000, 0},
		{0b1000000000000001, 2},
		{0b0001000000000000, 1},
		{0b0011000000000000, 2},
		{0b1000000000000000, 1},
		{0b0100000000000000, 1},
		{0b0010000000000001, 2},
		{0b0001000000000010, 2},
		{0b0000100000000100, 2},
		{0b0000010000001000, 2},
		{0b0000001000010000, 2},
		{0b0000000100100000, 2},
		{0b0000000011000000, 2},
		{0b0000000001010000, 2},
		{0b0000000010001000, 2},
		{0b0000000100000100, 2},
		{0b0000001000000010, 2},
		{0b0000010000000001, 2},
		{0b0000100000000000, 1},
		{0b0001000000000000, 1},
		{0b0010000000000001, 2},
		{0b0100000000000100, 2},
		{0b1000000000001000, 2},
	}

	for _, c := range cases {
		data, corrected, ok := CyclicDecode(e ^ c.flip)
		if !ok {
			t.Errorf("flip %016b: decode failed", c.flip)
			continue
		}
		if data != w {
			t.Errorf("flip %016b: got data %08b want %08b", c.flip, data, w)
		}
		if corrected != c.wantErr {
			t.Errorf("flip %016b: got %d corrections want %d", c.flip, corrected, c.wantErr)
		}
	}
}

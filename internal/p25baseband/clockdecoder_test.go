package p25baseband

import "testing"

func TestClockDecider(t *testing.T) {
	d := NewClockDecider(-0.004, -0.1, -0.196)

	cases := []struct {
		in   float32
		want uint8
	}{
		{0.044, 0b01},
		{-0.052, 0b00},
		{-0.148, 0b10},
		{-0.244, 0b11},
	}
	for _, c := range cases {
		if got := d.Decide(c.in).Bits(); got != c.want {
			t.Errorf("decide(%v): got %02b want %02b", c.in, got, c.want)
		}
	}
}

func TestClockDecoder(t *testing.T) {
	dec := NewClockDecoder(NewClockDecider(0.0, 0.0, 0.0))

	samples := []float32{
		0.2099609375000000,
		0.2165222167968750,
		0.2179870605468750,
		0.2152709960937500,
		0.2094726562500000,
		0.2018737792968750,
		0.1937255859375000,
		0.1861572265625000,
		0.1799926757812500,
		0.1752929687500000,
		0.1726684570312500,
		0.1720886230468750,
		0.1732177734375000,
		0.1754455566406250,
		0.1780395507812500,
		0.1803588867187500,
		0.1817321777343750,
		0.1816711425781250,
		0.1799926757812500,
	}
	wantSome := map[int]bool{8: true, 18: true}

	for i, s := range samples {
		_, ok := dec.Feed(s)
		if ok != wantSome[i] {
			t.Errorf("sample %d: got some=%v want %v", i, ok, wantSome[i])
		}
	}
}

package p25baseband

import "testing"

func TestDCOffsetCorrector(t *testing.T) {
	c := NewDCOffsetCorrector(0.5)
	if got := c.Feed(1.0); got != 1.5 {
		t.Errorf("got %v want 1.5", got)
	}
	if got := c.Feed(-2.0); got != -1.5 {
		t.Errorf("got %v want -1.5", got)
	}
}

func TestCorrelatorReadyAfterFullPeriod(t *testing.T) {
	c := NewCorrelator()
	var got float64
	ready := false
	for i := 0; i < len(matchedFilter); i++ {
		s, ok := c.Feed(1.0)
		if ok {
			got = s
			ready = true
		}
	}
	if !ready {
		t.Fatal("expected correlator ready after a full matched-filter window")
	}

	var want float64
	for _, m := range matchedFilter {
		want += m
	}
	if got != want {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestCorrelatorResetReseedsWithOneSample(t *testing.T) {
	c := NewCorrelator()
	for i := 0; i < len(matchedFilter); i++ {
		c.Feed(1.0)
	}

	c.Reset(2.0)
	var got float64
	ready := false
	for i := 0; i < len(matchedFilter)-1; i++ {
		s, ok := c.Feed(0.0)
		if ok {
			got = s
			ready = true
		}
	}
	if !ready {
		t.Fatal("expected correlator ready after reset + remaining window")
	}
	if want := 2.0 * matchedFilter[0]; got != want {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestDecider(t *testing.T) {
	d := NewDecider(1.0)

	if got := d.Decide(1.0).Bits(); got != 0b01 {
		t.Errorf("got %02b want 01", got)
	}
	if got := d.Decide(0.1).Bits(); got != 0b00 {
		t.Errorf("got %02b want 00", got)
	}
	if got := d.Decide(-1.0).Bits(); got != 0b11 {
		t.Errorf("got %02b want 11", got)
	}
	if got := d.Decide(-0.1).Bits(); got != 0b10 {
		t.Errorf("got %02b want 10", got)
	}
}

func TestDecoderDecodesOncePerPeriod(t *testing.T) {
	dec := NewDecoder(NewDCOffsetCorrector(0), NewCorrelator(), NewDecider(1.0))

	decodes := 0
	for i := 0; i < len(matchedFilter)+2*(len(matchedFilter)-1); i++ {
		if _, ok := dec.Feed(1.0); ok {
			decodes++
		}
	}
	if decodes != 3 {
		t.Errorf("got %d decodes want 3", decodes)
	}
}

package p25baseband

import (
	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25const"
)

// ClockDecider decides a dibit from a single sample using three fixed
// thresholds, without any matched filtering.
type ClockDecider struct {
	pthresh, mthresh, nthresh float32
}

// NewClockDecider builds a decider from a positive, mid, and negative
// threshold.
func NewClockDecider(pthresh, mthresh, nthresh float32) ClockDecider {
	return ClockDecider{pthresh: pthresh, mthresh: mthresh, nthresh: nthresh}
}

// Decide maps sample to the dibit it is closest to.
func (d ClockDecider) Decide(sample float32) p25bits.Dibit {
	switch {
	case sample > d.pthresh:
		return p25bits.NewDibit(0b01)
	case sample > d.mthresh:
		return p25bits.NewDibit(0b00)
	case sample > d.nthresh:
		return p25bits.NewDibit(0b10)
	default:
		return p25bits.NewDibit(0b11)
	}
}

// ClockDecoder decides a dibit at each symbol clock tick, without relying
// on per-symbol matched-filter correlation: used when the sample stream
// is already known to be symbol-clock aligned.
type ClockDecoder struct {
	pos     int
	decider ClockDecider
}

// NewClockDecoder builds a ClockDecoder. pos starts at 1 since the
// decoder is constructed right after the first sample of the first
// symbol following sync has already been consumed.
func NewClockDecoder(decider ClockDecider) *ClockDecoder {
	return &ClockDecoder{pos: 1, decider: decider}
}

// Feed examines sample against the symbol clock, returning a decoded
// dibit only at the clock boundary.
func (d *ClockDecoder) Feed(sample float32) (p25bits.Dibit, bool) {
	d.pos++
	d.pos %= p25const.SymbolPeriod
	if d.pos == 0 {
		return d.decider.Decide(sample), true
	}
	return 0, false
}

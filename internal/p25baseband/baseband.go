// Package p25baseband implements the C4FM demodulated-sample-to-dibit
// receive path: DC offset correction, matched-filter correlation, and
// threshold decision, plus the inverse impulse generator used to build a
// baseband waveform for a transmitted dibit stream.
package p25baseband

import (
	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25const"
)

// matchedFilter is the raised-cosine matched filter the Correlator applies
// to each symbol: one tap per sample, SymbolPeriod+1 taps in all.
var matchedFilter = []float64{
	0.6290605212918821,
	0.7507772559612889,
	0.8542215065015759,
	0.933168001531859,
	0.9827855224082289,
	1.0,
	0.9827855224082289,
	0.933168001531859,
	0.8542215065015759,
	0.7507772559612889,
	0.6290605212918821,
}

// DCOffsetCorrector adds a fixed correction to every sample to cancel a
// DC bias introduced upstream in the signal chain.
type DCOffsetCorrector struct {
	correction float64
}

// NewDCOffsetCorrector returns a corrector that adds correction to every
// sample fed to it.
func NewDCOffsetCorrector(correction float64) DCOffsetCorrector {
	return DCOffsetCorrector{correction: correction}
}

// Feed applies the correction to s.
func (c DCOffsetCorrector) Feed(s float64) float64 { return s + c.correction }

// Correlator accumulates the dot product of the matched filter against a
// symbol period's worth of samples, signalling when a full period has
// been correlated.
type Correlator struct {
	pos int
	sum float64
}

// NewCorrelator returns an empty correlator.
func NewCorrelator() *Correlator { return &Correlator{} }

// Reset clears the correlator and seeds it with s as the first sample of
// a new symbol period.
func (c *Correlator) Reset(s float64) {
	c.pos = 0
	c.sum = 0
	c.add(s)
}

// NewPrimedCorrelator returns a correlator already seeded with s, as if
// Reset(s) had just been called on a fresh Correlator.
func NewPrimedCorrelator(s float64) *Correlator {
	c := NewCorrelator()
	c.Reset(s)
	return c
}

// Feed adds a sample to the running correlation. Returns the accumulated
// sum once a full symbol period's worth of samples has been seen.
func (c *Correlator) Feed(s float64) (float64, bool) {
	c.add(s)
	if c.pos > p25const.SymbolPeriod {
		return c.sum, true
	}
	return 0, false
}

func (c *Correlator) add(s float64) {
	c.sum += s * matchedFilter[c.pos]
	c.pos++
}

// Decider maps a correlator sum to the dibit it most closely represents,
// using a threshold scaled down from the expected full-deflection level.
type Decider struct {
	highThresh float64
}

// decisionFudge scales the theoretical high threshold down since real
// correlation sums rarely reach full deflection.
const decisionFudge = 0.75

// NewDecider returns a decider whose positive/negative decision
// boundaries are at +/- highThresh*0.75.
func NewDecider(highThresh float64) Decider {
	return Decider{highThresh: highThresh * decisionFudge}
}

// Decide maps a correlation sum to a dibit.
func (d Decider) Decide(sum float64) p25bits.Dibit {
	switch {
	case sum >= d.highThresh:
		return p25bits.NewDibit(0b01)
	case sum >= 0:
		return p25bits.NewDibit(0b00)
	case sum <= -d.highThresh:
		return p25bits.NewDibit(0b11)
	default:
		return p25bits.NewDibit(0b10)
	}
}

// Decoder chains a DC offset corrector, matched-filter correlator, and
// threshold decider into a single per-sample feed loop: the sample that
// completes one symbol period's correlation also seeds the next one's.
type Decoder struct {
	corrector DCOffsetCorrector
	correlator *Correlator
	decider   Decider
}

// NewDecoder builds a Decoder from its three stages.
func NewDecoder(corrector DCOffsetCorrector, correlator *Correlator, decider Decider) *Decoder {
	return &Decoder{corrector: corrector, correlator: correlator, decider: decider}
}

// Feed processes one baseband sample, returning a decoded dibit once per
// symbol period. The correlator resets with the raw (pre-correction)
// sample, matching the reference's reset call.
func (d *Decoder) Feed(s float64) (p25bits.Dibit, bool) {
	corrected := d.corrector.Feed(s)
	sum, ok := d.correlator.Feed(corrected)
	if !ok {
		return 0, false
	}
	d.correlator.Reset(s)
	return d.decider.Decide(sum), true
}

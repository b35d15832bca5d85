package p25baseband

import (
	"github.com/dbehnke/p25core/internal/p25bits"
	"github.com/dbehnke/p25core/internal/p25const"
)

// c4fmDeviation maps a dibit to its scaled frequency-deviation impulse.
func c4fmDeviation(d p25bits.Dibit) float32 {
	switch d.Bits() {
	case 0b01:
		return 1800.0
	case 0b00:
		return 600.0
	case 0b10:
		return -600.0
	case 0b11:
		return -1800.0
	default:
		panic("p25baseband: invalid dibit")
	}
}

// C4FMImpulses generates a scaled-impulse-per-sample stream from a dibit
// stream: one nonzero impulse at the start of each symbol period,
// interspersed with zeros for the remaining samples of that period.
// Exhausts once src is exhausted.
func C4FMImpulses(src []p25bits.Dibit) []float32 {
	out := make([]float32, 0, len(src)*p25const.SymbolPeriod)
	for _, d := range src {
		out = append(out, c4fmDeviation(d))
		for i := 1; i < p25const.SymbolPeriod; i++ {
			out = append(out, 0.0)
		}
	}
	return out
}

// C4FMDeviationDibits generates the alternating dibit sequence used for
// the C4FM deviation test: the filtered waveform approximates a 1200Hz
// sine wave.
func C4FMDeviationDibits(n int) []p25bits.Dibit {
	out := make([]p25bits.Dibit, n)
	idx := 0
	for i := range out {
		if idx < 2 {
			out[i] = p25bits.NewDibit(0b01)
		} else {
			out[i] = p25bits.NewDibit(0b11)
		}
		idx++
		idx %= 4
	}
	return out
}

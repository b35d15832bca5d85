package p25baseband

import (
	"math"

	"github.com/dbehnke/p25core/internal/p25const"
)

// peakType identifies whether a detected inflection in a waveform was a
// local maximum or minimum.
type peakType int

const (
	maximumPeak peakType = iota
	minimumPeak
)

// peaks finds local maxima/minima in a sample stream, comparing each
// incoming sample to the previous one.
type peaks struct {
	state peakType
	prev  float64
}

func newPeaks(state peakType, start float64) *peaks {
	return &peaks{state: state, prev: start}
}

// feed reports whether the previous sample was an inflection point, and
// if so, which kind.
func (p *peaks) feed(s float64) (peakType, bool) {
	prev := p.prev
	p.prev = s

	switch p.state {
	case maximumPeak:
		if s <= prev {
			return 0, false
		}
		p.state = minimumPeak
		return minimumPeak, true
	default:
		if s >= prev {
			return 0, false
		}
		p.state = maximumPeak
		return maximumPeak, true
	}
}

// runResult is the tri-state outcome of feeding a sample to a runCheck.
type runResult int

const (
	runNone runResult = iota
	runFail
	runOK
)

// runCheck looks for a run of positive samples of a required length,
// optionally skipping a bounded number of leading non-positive samples.
type runCheck struct {
	length     int
	hasSkip    bool
	skipRemain int
	run        int
}

func newRunCheck(length int) *runCheck {
	return &runCheck{length: length}
}

func newRunCheckSkip(length, maxSkip int) *runCheck {
	return &runCheck{length: length, hasSkip: true, skipRemain: maxSkip}
}

func (r *runCheck) feed(s float64) runResult {
	switch {
	case s > 0.0:
		r.run++
		return runNone
	case r.run == 0:
		if !r.hasSkip {
			return runNone
		}
		if r.skipRemain == 0 {
			return runFail
		}
		r.skipRemain--
		return runNone
	case r.run < r.length:
		return runFail
	default:
		return runOK
	}
}

// sums accumulates 5 correlator sums (as magnitudes) used to set the
// decider's high threshold once sync locks.
type sums struct {
	vals [5]float64
	pos  int
}

func (s *sums) add(sum float64) bool {
	s.vals[s.pos] = math.Abs(sum)
	s.pos++
	return s.pos == 5
}

func (s *sums) min() float64 {
	m := s.vals[0]
	for _, v := range s.vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// dcOffset estimates the DC offset from 3 successive peak samples (high,
// low, high) spanning the "small sine" portion of the sync waveform.
type dcOffset struct {
	vals [3]float64
	pos  int
}

const dcExpectedDiff = 0.032776727

func (d *dcOffset) add(s float64) {
	d.vals[d.pos] = s
	d.pos++
}

func (d *dcOffset) min() float64 { return d.vals[1] }
func (d *dcOffset) max() float64 { return (d.vals[0] + d.vals[2]) / 2.0 }

func (d *dcOffset) delta() float64 {
	lo, hi := d.min(), d.max()
	return (hi-lo)*dcExpectedDiff - (hi + lo)
}

func (d *dcOffset) correction() float64 { return d.delta() / 2.0 }

// timing recovers symbol impulse timing from 7 peak times across the
// "big sine" and "small sine" portions of the sync waveform.
type timing struct {
	times [7]int
	pos   int
}

func (t *timing) add(tm int) {
	t.times[t.pos] = tm
	t.pos++
}

// expand turns the 7 peak times into the 10 underlying impulse times (the
// big-sine peaks are each made by two impulses straddling the peak).
func (t *timing) expand() [10]int {
	half := p25const.SymbolPeriod / 2
	return [10]int{
		t.times[0],
		t.times[1] - half,
		t.times[1] + half,
		t.times[2] - half,
		t.times[2] + half,
		t.times[3] - half,
		t.times[3] + half,
		t.times[4],
		t.times[5],
		t.times[6],
	}
}

func (t *timing) start() int { return t.times[0] }

// correction computes the average difference between the observed
// impulse times and their expected positions.
func (t *timing) correction() float64 {
	expectedTimes := [10]int{0, 1, 2, 3, 4, 5, 6, 11, 12, 13}
	expanded := t.expand()
	start := t.start()

	sum := 0
	for i, v := range expanded {
		diff := v - start
		expected := expectedTimes[i] * p25const.SymbolPeriod
		sum += diff - expected
	}
	return float64(sum) / float64(len(expanded))
}

func (t *timing) correctedStart() int {
	return t.start() + int(math.Round(t.correction()))
}

// symbolClock determines which sample times fall on symbol impulses or
// boundaries, given the impulse clock's starting time.
type symbolClock struct {
	start int
}

func (c symbolClock) impulse(t int) bool {
	return (t-c.start)%p25const.SymbolPeriod == 0
}

func (c symbolClock) boundary(t int) bool {
	return c.impulse(t + p25const.SymbolPeriod/2)
}

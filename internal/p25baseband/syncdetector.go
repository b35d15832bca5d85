package p25baseband

import (
	"errors"

	"github.com/dbehnke/p25core/internal/p25const"
)

// ErrInvalidRun is returned when the sync waveform's expected positive or
// negative run of samples doesn't match.
var ErrInvalidRun = errors.New("p25baseband: invalid sync run")

// ErrInvalidSine is returned when a peak in the sync waveform's sine
// sections arrives at an unexpected position or polarity.
var ErrInvalidSine = errors.New("p25baseband: invalid sync sine")

type syncStateKind int

const (
	stateBootstrapRun syncStateKind = iota
	stateBigSine
	stateMidRun
	stateSmallSine
	stateLockBoundary
	stateEndRun
	stateLocked
	stateError
)

// SyncResult is the outcome of feeding one sample to a SyncDetector.
type SyncResult int

const (
	// SyncNone means no event occurred; keep feeding samples.
	SyncNone SyncResult = iota
	// SyncLocked means frame sync was acquired; a calibrated Decoder is
	// now available for decoding the rest of the packet.
	SyncLocked
	// SyncFailed means the expected sync waveform wasn't found.
	SyncFailed
)

// SyncDetector locks onto the P25 frame sync waveform by tracking the
// "big sine" then "small sine" sections of the known waveform, recording
// peak times to recover symbol timing, then running a calibration
// correlator to set the eventual decider's high threshold.
type SyncDetector struct {
	state syncStateKind

	run   *runCheck
	pk    *peaks
	clock symbolClock

	dcoCorrector DCOffsetCorrector
	corr         *Correlator

	timing timing
	sums   sums
	dco    dcOffset

	t int
}

// NewSyncDetector returns a detector in its initial bootstrap state.
func NewSyncDetector() *SyncDetector {
	return &SyncDetector{
		state: stateBootstrapRun,
		run:   newRunCheck(4 * p25const.SymbolPeriod),
	}
}

// Feed processes one baseband sample. On SyncLocked, decoder is the
// calibrated symbol decoder to use for the rest of the packet. On
// SyncFailed, err names which expectation was violated; the detector must
// be discarded (construct a new one to try again).
func (d *SyncDetector) Feed(s float64) (result SyncResult, decoder *Decoder, err error) {
	d.t++
	t := d.t

	switch d.state {
	case stateBootstrapRun:
		switch d.run.feed(s) {
		case runOK:
			d.state = stateBigSine
			d.pk = newPeaks(maximumPeak, s)
		case runFail:
			d.state = stateError
			return SyncFailed, nil, ErrInvalidRun
		}

	case stateBigSine:
		m, ok := d.pk.feed(s)
		if !ok {
			break
		}
		switch {
		case m == maximumPeak && (d.timing.pos > 4 || d.timing.pos%2 == 0):
			d.state = stateError
			return SyncFailed, nil, ErrInvalidSine
		case m == minimumPeak && (d.timing.pos > 3 || d.timing.pos%2 != 0):
			d.state = stateError
			return SyncFailed, nil, ErrInvalidSine
		default:
			d.timing.add(t - 1)
			if m == maximumPeak && d.timing.pos == 4 {
				d.state = stateMidRun
				d.run = newRunCheckSkip(3*p25const.SymbolPeriod, p25const.SymbolPeriod)
			}
		}

	case stateMidRun:
		switch d.run.feed(-s) {
		case runOK:
			d.state = stateSmallSine
			d.pk = newPeaks(minimumPeak, s)
		case runFail:
			d.state = stateError
			return SyncFailed, nil, ErrInvalidRun
		}

	case stateSmallSine:
		m, ok := d.pk.feed(s)
		if !ok {
			break
		}
		switch {
		case m == maximumPeak && (d.timing.pos > 7 || d.timing.pos%2 != 0):
			d.state = stateError
			return SyncFailed, nil, ErrInvalidSine
		case m == minimumPeak && (d.timing.pos > 6 || d.timing.pos%2 == 0):
			d.state = stateError
			return SyncFailed, nil, ErrInvalidSine
		default:
			d.dco.add(s)
			d.timing.add(t - 1)
			if m == maximumPeak && d.timing.pos == 7 {
				d.state = stateLockBoundary
				d.clock = symbolClock{start: d.timing.correctedStart()}
			}
		}

	case stateLockBoundary:
		if d.clock.boundary(t + 1) {
			d.state = stateEndRun
			d.dcoCorrector = NewDCOffsetCorrector(d.dco.correction())
			d.corr = NewCorrelator()
		}

	case stateEndRun:
		corrected := d.dcoCorrector.Feed(s)
		sum, ok := d.corr.Feed(corrected)
		if !ok {
			break
		}
		if sum > 0.0 {
			d.state = stateError
			return SyncFailed, nil, ErrInvalidRun
		}
		if d.sums.add(sum) {
			dec := NewDecoder(d.dcoCorrector, NewPrimedCorrelator(s), NewDecider(d.sums.min()))
			d.state = stateLocked
			return SyncLocked, dec, nil
		}
		d.corr = NewPrimedCorrelator(s)

	case stateError, stateLocked:
		panic("p25baseband: sync detector fed after terminal state")
	}

	return SyncNone, nil, nil
}

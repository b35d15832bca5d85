package p25baseband

// FIRFilter convolves a stream of samples against a fixed set of
// coefficients using a ring-buffered history.
type FIRFilter struct {
	coefs   []float32
	history []float32
	idx     int
}

// NewFIRFilter constructs an order-(len(coefs)-1) filter.
func NewFIRFilter(coefs []float32) *FIRFilter {
	return &FIRFilter{coefs: coefs, history: make([]float32, len(coefs))}
}

// calc computes y[n] = c0*x[n] + c1*x[n-1] + ... + cN*x[n-N], walking the
// ring buffer backward from the most recently written slot.
func (f *FIRFilter) calc() float32 {
	cur := f.idx
	var sum float32
	for _, coef := range f.coefs {
		if cur == 0 {
			cur = len(f.history) - 1
		} else {
			cur--
		}
		sum += coef * f.history[cur]
	}
	return sum
}

// Feed stores sample in the ring buffer and returns the filter's output.
func (f *FIRFilter) Feed(sample float32) float32 {
	f.history[f.idx] = sample
	f.idx++
	f.idx %= len(f.history)
	return f.calc()
}

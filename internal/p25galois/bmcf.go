package p25galois

// Syndromes is the number of syndrome terms 2t a code corrects for; it
// determines the fixed capacity (2t+2) every polynomial in a
// Berlekamp-Massey run for that code must carry.
type Syndromes int

// berlMassey is the iterative part of the Berlekamp-Massey algorithm,
// grounded on the shared structure of original_source's coding/bmcf.rs and
// p25/bmcf.rs (both implement the same iteration; this consolidates them
// into a single decode entry point per spec.md §4.2).
type berlMassey struct {
	pSaved, pCur Polynomial
	qSaved, qCur Polynomial
	degSaved     int
	degCur       int
	syndromes    int
}

func newBerlMassey(syn Polynomial) *berlMassey {
	cap := syn.Cap()

	// q starts as 1 + x*s(x): a unit constant followed by the syndromes.
	q := NewPolynomial(cap)
	q.Set(0, ForPower(0))
	for i := 0; i+1 < cap; i++ {
		q.Set(i+1, syn.At(i))
	}

	// p starts as x^(cap-1): zeroes with a unit term in the top slot, so
	// p_cur = p.shift() carries the unit term at x^(cap-2).
	unit := NewPolynomial(cap)
	unit.Set(cap-1, ForPower(0))

	return &berlMassey{
		qSaved:    q,
		qCur:      q.Shift(),
		pSaved:    unit,
		pCur:      unit.Shift(),
		degSaved:  0,
		degCur:    1,
		syndromes: syn.Degree() + 1,
	}
}

// Decode runs the algorithm for `steps` iterations (2t for a (n,k,d) code
// with t = (d-1)/2) and returns the error-locator polynomial Λ(x).
func (b *berlMassey) decode(steps int) Polynomial {
	for i := 0; i < steps; i++ {
		b.step()
	}
	return b.pCur
}

func (b *berlMassey) step() {
	var save bool
	var q, p Polynomial
	var d int

	if b.qCur.Constant().Zero() {
		save, q, p, d = false, b.qCur.Shift(), b.pCur.Shift(), 2+b.degCur
	} else {
		mult := b.qCur.Constant().Div(b.qSaved.Constant())
		save = b.degCur >= b.degSaved
		q = b.qCur.Add(b.qSaved.MulScalar(mult)).Shift()
		p = b.pCur.Add(b.pSaved.MulScalar(mult)).Shift()
		d = 2 + min(b.degCur, b.degSaved)
	}

	if save {
		b.qSaved, b.pSaved, b.degSaved = b.qCur, b.pCur, b.degCur
	}
	b.qCur, b.pCur, b.degCur = q, p, d
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ErrorLocation is one correction found by Chien/Forney search: Location
// is the bit/symbol index (as a field power) of the error, Value is the
// GF(2^6) error magnitude at that location (always the unit codeword for
// strictly-binary codes like BCH).
type ErrorLocation struct {
	Location int
	Value    Codeword
}

// errorsFrom performs Chien search for the roots of the error-locator
// polynomial epoly and the Forney algorithm for the associated error
// values, given the syndrome polynomial syn. Grounded on the Errors
// iterator shared by coding/bmcf.rs and p25/bmcf.rs.
func errorsFrom(epoly, syn Polynomial) []ErrorLocation {
	deriv := epoly.Deriv()
	vpoly := epoly.Mul(syn).Truncate(syn.Cap() - 3)

	working := NewPolynomial(epoly.Cap())
	for i := 0; i < epoly.Cap(); i++ {
		c := epoly.At(i)
		if i == 0 {
			working.Set(i, c)
			continue
		}
		// First update_terms() call multiplies by alpha^i; pre-divide so
		// that cancels out on the first pass, matching the reference.
		working.Set(i, c.Div(ForPower(i)))
	}

	var out []ErrorLocation
	for pow := 0; pow < FieldSize; pow++ {
		for i := 0; i < working.Cap(); i++ {
			working.Set(i, working.At(i).Mul(ForPower(i)))
		}

		var sum Codeword
		for i := 0; i < working.Cap(); i++ {
			sum = sum.Add(working.At(i))
		}

		if sum.Zero() {
			root := ForPower(pow)
			loc := root.Invert()
			locPow, _ := loc.Power()
			value := vpoly.Eval(root).Div(deriv.Eval(root))
			out = append(out, ErrorLocation{Location: locPow, Value: value})
		}
	}
	return out
}

// Decode computes the error-locator polynomial from the syndrome
// polynomial syn (degree <= 2t-1) by Berlekamp-Massey, then finds every
// correctable error location/value by Chien/Forney search. t is half the
// number of syndromes (2t). Returns the found corrections and the
// error-locator's degree, which is the expected number of errors: callers
// should treat len(corrections) != degree as an uncorrectable word.
func Decode(syn Polynomial, twoT int) (corrections []ErrorLocation, expected int) {
	bm := newBerlMassey(syn)
	lambda := bm.decode(twoT)
	expected = lambda.Degree()
	if expected <= 0 {
		return nil, expected
	}
	corrections = errorsFrom(lambda, syn)
	return corrections, expected
}

package p25galois

// Polynomial is a fixed-capacity polynomial over GF(2^6), coefficients
// ordered from the constant term up. It carries a logical origin index so
// that "shift by x" (dividing out a zero constant term, the operation
// Berlekamp-Massey performs every iteration) is O(1): rather than
// memmove-ing the backing array, the origin simply advances and wraps.
//
// The capacity is fixed at construction and never grows; this mirrors the
// load-bearing fixed 2t+2 buffer size the reference Berlekamp-Massey
// implementation depends on (see spec.md's Design Notes).
type Polynomial struct {
	coefs []Codeword // backing storage, len == capacity
	start int        // logical origin into coefs
}

// NewPolynomial constructs a zero polynomial with the given capacity.
func NewPolynomial(capacity int) Polynomial {
	return Polynomial{coefs: make([]Codeword, capacity)}
}

// PolynomialFromCoefs constructs a polynomial from coefficients given
// lowest-degree first, padded with zeros up to capacity.
func PolynomialFromCoefs(capacity int, coefs ...Codeword) Polynomial {
	p := NewPolynomial(capacity)
	for i, c := range coefs {
		if i >= capacity {
			break
		}
		p.coefs[i] = c
	}
	return p
}

// Cap returns the fixed capacity (number of representable coefficients).
func (p Polynomial) Cap() int { return len(p.coefs) }

// At returns the coefficient of x^i.
func (p Polynomial) At(i int) Codeword {
	return p.coefs[(p.start+i)%len(p.coefs)]
}

// Set sets the coefficient of x^i.
func (p *Polynomial) Set(i int, v Codeword) {
	p.coefs[(p.start+i)%len(p.coefs)] = v
}

// Constant returns the degree-0 coefficient.
func (p Polynomial) Constant() Codeword { return p.At(0) }

// Shift divides the polynomial by x (drops the constant term, which the
// caller must already know is handled appropriately - Berlekamp-Massey
// only shifts when it is meaningful to do so). O(1): advances the logical
// origin and clears the vacated top coefficient.
func (p Polynomial) Shift() Polynomial {
	n := len(p.coefs)
	next := Polynomial{coefs: p.coefs, start: (p.start + 1) % n}
	// Copy-on-write: callers treat Polynomial as a value type, so clone
	// the backing array before mutating the vacated slot.
	cp := make([]Codeword, n)
	copy(cp, p.coefs)
	next.coefs = cp
	next.coefs[(next.start+n-1)%n] = 0
	return next
}

// Degree returns the highest power with a nonzero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p.coefs) - 1; i >= 0; i-- {
		if p.At(i) != 0 {
			return i
		}
	}
	return -1
}

// Eval evaluates the polynomial at x via Horner's method.
func (p Polynomial) Eval(x Codeword) Codeword {
	var acc Codeword
	for i := len(p.coefs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.At(i))
	}
	return acc
}

// Truncate returns a copy truncated to degree <= deg (higher terms
// zeroed), keeping the same capacity.
func (p Polynomial) Truncate(deg int) Polynomial {
	out := NewPolynomial(len(p.coefs))
	for i := 0; i <= deg && i < len(p.coefs); i++ {
		out.Set(i, p.At(i))
	}
	return out
}

// Deriv returns the formal derivative in GF(2^6): odd-degree terms vanish
// (characteristic 2 kills the even multiplier), and the coefficient that
// lands at position 2i is the original coefficient at position 2i+1.
func (p Polynomial) Deriv() Polynomial {
	out := NewPolynomial(len(p.coefs))
	for i := 0; i < len(p.coefs); i += 2 {
		if i+1 < len(p.coefs) {
			out.Set(i, p.At(i+1))
		}
	}
	return out
}

// Add returns p+other coefficient-wise (both must share capacity).
func (p Polynomial) Add(other Polynomial) Polynomial {
	out := NewPolynomial(len(p.coefs))
	for i := 0; i < len(p.coefs); i++ {
		out.Set(i, p.At(i).Add(other.At(i)))
	}
	return out
}

// MulScalar returns p scaled by a constant.
func (p Polynomial) MulScalar(s Codeword) Polynomial {
	out := NewPolynomial(len(p.coefs))
	for i := 0; i < len(p.coefs); i++ {
		out.Set(i, p.At(i).Mul(s))
	}
	return out
}

// Mul returns p*other, silently truncated to the fixed capacity (terms of
// degree >= capacity are dropped, matching the reference implementation's
// fixed-size polynomial multiply).
func (p Polynomial) Mul(other Polynomial) Polynomial {
	out := NewPolynomial(len(p.coefs))
	for i := 0; i < len(p.coefs); i++ {
		var acc Codeword
		for j := 0; j <= i; j++ {
			acc = acc.Add(p.At(j).Mul(other.At(i - j)))
		}
		out.Set(i, acc)
	}
	return out
}

// Coefs returns the logical coefficients, lowest degree first, as a plain
// slice (a copy) for callers that want to iterate or mutate in place.
func (p Polynomial) Coefs() []Codeword {
	out := make([]Codeword, len(p.coefs))
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// IterMut applies f to every coefficient in place, lowest degree first.
func (p *Polynomial) IterMut(f func(i int, c Codeword) Codeword) {
	for i := 0; i < len(p.coefs); i++ {
		p.Set(i, f(i, p.At(i)))
	}
}

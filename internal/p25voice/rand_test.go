package p25voice

import "testing"

func TestPseudoRandSequence(t *testing.T) {
	p := newPseudoRand(0xABC)

	states := []uint16{18137, 5822, 38015, 36844, 30869, 45770, 2203, 1752, 54801, 57238, 20087, 15492, 6989, 43298, 33299}
	bits := []uint16{0, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 1, 1}

	for i := range states {
		if got := p.nextState(); got != states[i] {
			t.Fatalf("step %d: nextState() = %d, want %d", i, got, states[i])
		}
		if got := p.advance(); got != bits[i] {
			t.Fatalf("step %d: advance() = %d, want %d", i, got, bits[i])
		}
	}
}

func TestPseudoRandNext15(t *testing.T) {
	p := newPseudoRand(0xABC)
	if got := p.next15(); got != 0b001101001100011 {
		t.Errorf("next15() = %015b, want 001101001100011", got)
	}
}

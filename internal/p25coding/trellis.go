package p25coding

// trellisPairs is the shared "constellation point" table: each entry is
// the (hi, lo) dibit pair transmitted for a given state transition index,
// shared by both the half-rate (dibit) and 3/4-rate (tribit) codes.
var trellisPairs = [16][2]uint8{
	{0b00, 0b10},
	{0b10, 0b10},
	{0b01, 0b11},
	{0b11, 0b11},
	{0b11, 0b10},
	{0b01, 0b10},
	{0b10, 0b11},
	{0b00, 0b11},
	{0b11, 0b01},
	{0b01, 0b01},
	{0b10, 0b00},
	{0b00, 0b00},
	{0b00, 0b01},
	{0b10, 0b01},
	{0b01, 0b00},
	{0b11, 0b00},
}

// dibitStateTable is the half-rate code's 4-state transition table,
// indexed [cur][next] giving the trellisPairs index.
var dibitStateTable = [4][4]int{
	{0, 15, 12, 3},
	{4, 11, 8, 7},
	{13, 2, 1, 14},
	{9, 6, 5, 10},
}

// tribitStateTable is the 3/4-rate code's 8-state transition table.
var tribitStateTable = [8][8]int{
	{0, 8, 4, 12, 2, 10, 6, 14},
	{4, 12, 2, 10, 6, 14, 0, 8},
	{1, 9, 5, 13, 3, 11, 7, 15},
	{5, 13, 3, 11, 7, 15, 1, 9},
	{3, 11, 7, 15, 1, 9, 5, 13},
	{7, 15, 1, 9, 5, 13, 3, 11},
	{2, 10, 6, 14, 0, 8, 4, 12},
	{6, 14, 0, 8, 4, 12, 2, 10},
}

// trellisFSM is the convolutional encoder's state machine: each fed-in
// symbol becomes the next state, and the transition emits a dibit pair.
type trellisFSM struct {
	state int
	table func(cur, next int) int
}

func newDibitFSM() *trellisFSM {
	return &trellisFSM{table: func(cur, next int) int { return dibitStateTable[cur][next] }}
}

func newTribitFSM() *trellisFSM {
	return &trellisFSM{table: func(cur, next int) int { return tribitStateTable[cur][next] }}
}

// feed applies the given symbol (dibit 0-3 or tribit 0-7, depending on
// which FSM was constructed) and returns the transmitted dibit pair.
func (f *trellisFSM) feed(symbol int) (hi, lo uint8) {
	idx := f.table(f.state, symbol)
	p := trellisPairs[idx]
	f.state = symbol
	return p[0], p[1]
}

// DibitTrellisEncode encodes a stream of dibit symbols (values 0-3) with
// the half-rate convolutional code, flushing with a final zero symbol,
// and returns the transmitted dibit stream (2 output dibits per input
// symbol, plus 2 for the flush).
func DibitTrellisEncode(symbols []uint8) []uint8 {
	fsm := newDibitFSM()
	out := make([]uint8, 0, (len(symbols)+1)*2)
	for _, s := range symbols {
		hi, lo := fsm.feed(int(s))
		out = append(out, hi, lo)
	}
	hi, lo := fsm.feed(0)
	return append(out, hi, lo)
}

// TribitTrellisEncode encodes a stream of tribit symbols (values 0-7)
// with the 3/4-rate convolutional code, flushing with a final zero
// symbol.
func TribitTrellisEncode(symbols []uint8) []uint8 {
	fsm := newTribitFSM()
	out := make([]uint8, 0, (len(symbols)+1)*2)
	for _, s := range symbols {
		hi, lo := fsm.feed(int(s))
		out = append(out, hi, lo)
	}
	hi, lo := fsm.feed(0)
	return append(out, hi, lo)
}

const trellisHistory = 4
const trellisMaxDistance = 1 << 30

// trellisWalk is one state's surviving path through the trellis: distance
// is its accumulated Hamming distance from the received symbols, history
// holds the last trellisHistory decoded states (newest first, -1 for an
// undetermined/ambiguous position).
type trellisWalk struct {
	distance int
	history  [trellisHistory]int
}

func newTrellisWalk(state int) trellisWalk {
	w := trellisWalk{distance: trellisMaxDistance}
	if state == 0 {
		w.distance = 0
	}
	for i := range w.history {
		w.history[i] = -1
	}
	w.history[0] = state
	return w
}

func extendTrellisWalk(pred trellisWalk, state, distance int) trellisWalk {
	w := trellisWalk{distance: distance}
	w.history[0] = state
	copy(w.history[1:], pred.history[:trellisHistory-1])
	return w
}

func combineTrellisWalk(a, b trellisWalk) trellisWalk {
	out := trellisWalk{distance: a.distance}
	for i := range out.history {
		if a.history[i] == b.history[i] {
			out.history[i] = a.history[i]
		} else {
			out.history[i] = -1
		}
	}
	return out
}

// trellisViterbi implements a truncated Viterbi decoder over a trellis
// with `size` states, using `pairIdx` to look up the constellation point
// for a transition.
type trellisViterbi struct {
	size    int
	pairIdx func(cur, next int) int
	walks   [2][]trellisWalk
	cur     int
	prev    int
}

func newTrellisViterbi(size int, pairIdx func(cur, next int) int) *trellisViterbi {
	v := &trellisViterbi{size: size, pairIdx: pairIdx, cur: 1, prev: 0}
	for b := 0; b < 2; b++ {
		walks := make([]trellisWalk, size)
		for s := 0; s < size; s++ {
			walks[s] = newTrellisWalk(s)
		}
		v.walks[b] = walks
	}
	return v
}

func edgeBits(hi, lo uint8) uint8 { return hi<<2 | lo }

func popcountByte(v uint8) int {
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}

// step consumes one received dibit pair, advancing every state's walk.
func (v *trellisViterbi) step(hi, lo uint8) {
	input := edgeBits(hi, lo)
	v.cur, v.prev = v.prev, v.cur

	next := make([]trellisWalk, v.size)
	for s := 0; s < v.size; s++ {
		best := trellisWalk{distance: trellisMaxDistance}
		for i := range best.history {
			best.history[i] = -1
		}

		for i := 0; i < v.size; i++ {
			p := trellisPairs[v.pairIdx(i, s)]
			dist := popcountByte(input ^ edgeBits(p[0], p[1]))
			sum := v.walks[v.prev][i].distance + dist

			switch {
			case sum < best.distance:
				best = extendTrellisWalk(v.walks[v.prev][i], s, sum)
			case sum == best.distance && sum != trellisMaxDistance:
				best = combineTrellisWalk(best, extendTrellisWalk(v.walks[v.prev][i], s, sum))
			}
		}
		next[s] = best
	}
	v.walks[v.cur] = next
}

// decodeAt returns the globally best walk's state at history depth, or
// ok=false if multiple walks tie for best distance and disagree there.
func (v *trellisViterbi) decodeAt(depth int) (state int, ok bool) {
	minDist := trellisMaxDistance
	val := -1
	ambiguous := false

	for _, w := range v.walks[v.cur] {
		switch {
		case w.distance < minDist:
			minDist = w.distance
			val = w.history[depth]
			ambiguous = false
		case w.distance == minDist && w.history[depth] != val:
			ambiguous = true
		}
	}

	if ambiguous || val < 0 {
		return 0, false
	}
	return val, true
}

// trellisDecode runs a truncated Viterbi decode over pairs (dibit hi/lo
// pairs), returning one decoded state per input pair (delayed by the
// truncation depth, drained at the end the same way the reference's
// iterator keeps yielding after input exhausts).
func trellisDecode(pairs [][2]uint8, size int, pairIdx func(cur, next int) int) []struct {
	Value int
	OK    bool
} {
	v := newTrellisViterbi(size, pairIdx)

	idx := 0
	for i := 1; i < trellisHistory && idx < len(pairs); i++ {
		v.step(pairs[idx][0], pairs[idx][1])
		idx++
	}
	remain := trellisHistory - 1

	var out []struct {
		Value int
		OK    bool
	}
	for {
		stepped := false
		if idx < len(pairs) {
			v.step(pairs[idx][0], pairs[idx][1])
			idx++
			remain++
			stepped = true
		}
		if !stepped && remain == 0 {
			break
		}
		remain--
		val, ok := v.decodeAt(remain)
		out = append(out, struct {
			Value int
			OK    bool
		}{val, ok})
	}
	return out
}

// dibitsToPairs groups a flat dibit stream into hi/lo pairs.
func dibitsToPairs(dibits []uint8) [][2]uint8 {
	pairs := make([][2]uint8, len(dibits)/2)
	for i := range pairs {
		pairs[i] = [2]uint8{dibits[2*i], dibits[2*i+1]}
	}
	return pairs
}

// DibitTrellisDecode decodes a received dibit stream with the half-rate
// code's truncated Viterbi decoder, returning one dibit symbol (and
// success flag) per transmitted symbol pair.
func DibitTrellisDecode(dibits []uint8) []struct {
	Value uint8
	OK    bool
} {
	results := trellisDecode(dibitsToPairs(dibits), 4, func(cur, next int) int { return dibitStateTable[cur][next] })
	out := make([]struct {
		Value uint8
		OK    bool
	}, len(results))
	for i, r := range results {
		out[i] = struct {
			Value uint8
			OK    bool
		}{uint8(r.Value), r.OK}
	}
	return out
}

// TribitTrellisDecode decodes a received dibit stream with the
// 3/4-rate code's truncated Viterbi decoder.
func TribitTrellisDecode(dibits []uint8) []struct {
	Value uint8
	OK    bool
} {
	results := trellisDecode(dibitsToPairs(dibits), 8, func(cur, next int) int { return tribitStateTable[cur][next] })
	out := make([]struct {
		Value uint8
		OK    bool
	}, len(results))
	for i, r := range results {
		out[i] = struct {
			Value uint8
			OK    bool
		}{uint8(r.Value), r.OK}
	}
	return out
}

// Package p25stats tracks per-code error-correction counters: how many
// words were seen by each FEC code, how many symbols were corrected,
// and how many words were unrecoverable.
package p25stats

// CodeStats counts words, corrected symbols, and unrecoverable errors
// for a single error-correction code.
type CodeStats struct {
	// Size is the number of symbols per word for this code.
	Size  int
	Words int
	Fixed int
	Err   int
}

func newCodeStats(size int) CodeStats { return CodeStats{Size: size} }

// RecordFixes records a word decoded with err corrected symbols.
func (c *CodeStats) RecordFixes(err int) {
	c.Words++
	c.Fixed += err
}

// RecordErr records a word that could not be decoded.
func (c *CodeStats) RecordErr() {
	c.Words++
	c.Err++
}

// merge adds other's counts into c and resets other.
func (c *CodeStats) merge(other *CodeStats) {
	c.Words += other.Words
	c.Err += other.Err
	c.Fixed += other.Fixed
	*other = newCodeStats(other.Size)
}

func (c *CodeStats) clear() { *c = newCodeStats(c.Size) }

// CodeKind identifies one of the error-correction codes tracked by Stats.
type CodeKind int

const (
	BCH CodeKind = iota
	Cyclic
	GolayStandard
	GolayExtended
	GolayShortened
	HammingStandard
	HammingShortened
	RSShort
	RSMedium
	RSLong
	ViterbiDibit
	ViterbiTribit
)

// Stats records runtime decode statistics across every FEC code used
// throughout the receive pipeline.
type Stats struct {
	BCH            CodeStats
	Cyclic         CodeStats
	GolayStandard  CodeStats
	GolayExtended  CodeStats
	GolayShortened CodeStats
	HammingStd     CodeStats
	HammingShort   CodeStats
	RSShort        CodeStats
	RSMedium       CodeStats
	RSLong         CodeStats
	ViterbiDibit   CodeStats
	ViterbiTribit  CodeStats
}

// New returns a Stats with each code's counters zeroed, sized for that
// code's word width in bits (in hexbit symbols, for the Reed-Solomon
// codes).
func New() *Stats {
	return &Stats{
		BCH:            newCodeStats(64),
		Cyclic:         newCodeStats(16),
		GolayStandard:  newCodeStats(23),
		GolayExtended:  newCodeStats(24),
		GolayShortened: newCodeStats(18),
		HammingStd:     newCodeStats(15),
		HammingShort:   newCodeStats(10),
		RSShort:        newCodeStats(24),
		RSMedium:       newCodeStats(24),
		RSLong:         newCodeStats(36),
		ViterbiDibit:   newCodeStats(196),
		ViterbiTribit:  newCodeStats(196),
	}
}

func (s *Stats) code(kind CodeKind) *CodeStats {
	switch kind {
	case BCH:
		return &s.BCH
	case Cyclic:
		return &s.Cyclic
	case GolayStandard:
		return &s.GolayStandard
	case GolayExtended:
		return &s.GolayExtended
	case GolayShortened:
		return &s.GolayShortened
	case HammingStandard:
		return &s.HammingStd
	case HammingShortened:
		return &s.HammingShort
	case RSShort:
		return &s.RSShort
	case RSMedium:
		return &s.RSMedium
	case RSLong:
		return &s.RSLong
	case ViterbiDibit:
		return &s.ViterbiDibit
	case ViterbiTribit:
		return &s.ViterbiTribit
	default:
		panic("p25stats: unknown code kind")
	}
}

// RecordFixes records a decoded word for the given code.
func (s *Stats) RecordFixes(kind CodeKind, corrected int) { s.code(kind).RecordFixes(corrected) }

// RecordErr records an unrecoverable word for the given code.
func (s *Stats) RecordErr(kind CodeKind) { s.code(kind).RecordErr() }

// Merge adds other's counters into s and resets other to zero.
func (s *Stats) Merge(other *Stats) {
	s.BCH.merge(&other.BCH)
	s.Cyclic.merge(&other.Cyclic)
	s.GolayStandard.merge(&other.GolayStandard)
	s.GolayExtended.merge(&other.GolayExtended)
	s.GolayShortened.merge(&other.GolayShortened)
	s.HammingStd.merge(&other.HammingStd)
	s.HammingShort.merge(&other.HammingShort)
	s.RSShort.merge(&other.RSShort)
	s.RSMedium.merge(&other.RSMedium)
	s.RSLong.merge(&other.RSLong)
	s.ViterbiDibit.merge(&other.ViterbiDibit)
	s.ViterbiTribit.merge(&other.ViterbiTribit)
}

// Clear resets every code's counters to zero.
func (s *Stats) Clear() { *s = *New() }

// HasStats is implemented by receivers that accumulate decode stats and
// can hand them off to be merged into an aggregate.
type HasStats interface {
	Stats() *Stats
}

// Package align scores and aligns pairs of sequences with a dynamic
// programming matrix. Global alignment runs end to end across both
// sequences, local alignment reports the best scoring sub-region.
//
// The scoring model is a simplified gap model: a gap step always costs
// GapOpening, and GapExtension is charged on a diagonal step as an
// alternative to the match/mismatch score. It is not a textbook
// affine-gap alignment.
package align

import "fmt"

const gap = '-'

const (
	matchSymbol = '|'
	blankSymbol = ' '
)

// Mode selects between global and local alignment.
type Mode int

const (
	// ModeGlobal aligns both sequences end to end (Needleman-Wunsch style).
	ModeGlobal Mode = iota

	// ModeLocal aligns the best scoring pair of sub-regions (Smith-Waterman style).
	ModeLocal
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeGlobal:
		return "global"
	case ModeLocal:
		return "local"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Params are the scoring parameters of a single alignment. The values are
// used as given: Validate checks the sign convention callers expect.
type Params struct {
	// Match is added for identical aligned symbols
	Match int `json:"match"`

	// Mismatch is added for differing aligned symbols
	Mismatch int `json:"mismatch"`

	// GapOpening is added for every gap column
	GapOpening int `json:"gapOpening"`

	// GapExtension is added on the alternative diagonal branch
	GapExtension int `json:"gapExtension"`
}

// DefaultParams are the scores used when nothing else is configured.
var DefaultParams = Params{
	Match:        3,
	Mismatch:     -2,
	GapOpening:   -3,
	GapExtension: -2,
}

// substitution is the diagonal score for aligning a against b.
func (p Params) substitution(a, b byte) int {
	if a == b {
		return p.Match
	}
	return p.Mismatch
}

// Result is a single alignment. The three strings have the same length:
// one column per aligned pair of symbols.
type Result struct {
	// Aligned1 is the first sequence with gap markers
	Aligned1 string `json:"alignedSequence1"`

	// Symbols has '|' where the column's symbols are identical and ' ' elsewhere
	Symbols string `json:"alignmentSymbols"`

	// Aligned2 is the second sequence with gap markers
	Aligned2 string `json:"alignedSequence2"`

	// Score is the matrix value the traceback started from
	Score int `json:"score"`
}

// LocalResult is a local alignment and, when they could be found, the
// 1-based start positions of the aligned region in both input sequences.
type LocalResult struct {
	Result

	// Positions is nil when either aligned region can't be located
	Positions *[2]int `json:"positions"`
}

// Output is the pair of alignments reported for two sequences.
type Output struct {
	Global Result      `json:"global"`
	Local  LocalResult `json:"local"`
}

// Global aligns seq1 and seq2 end to end.
func Global(seq1, seq2 string, p Params) Result {
	return Align(seq1, seq2, p, ModeGlobal).Result
}

// Local finds the best scoring local alignment of seq1 and seq2.
func Local(seq1, seq2 string, p Params) LocalResult {
	return Align(seq1, seq2, p, ModeLocal)
}

// Align fills the scoring matrix for seq1 and seq2 and traces an optimal
// alignment back through it. Positions are only resolved in ModeLocal.
func Align(seq1, seq2 string, p Params, mode Mode) LocalResult {
	s := strategyFor(mode)
	m, bestI, bestJ := fill(seq1, seq2, p, s)

	i, j := len(seq1), len(seq2)
	if s.fromBest {
		i, j = bestI, bestJ
	}

	a1, symbols, a2 := traceback(m, seq1, seq2, p, s, i, j)
	result := LocalResult{
		Result: Result{
			Aligned1: string(a1),
			Symbols:  string(symbols),
			Aligned2: string(a2),
			Score:    m.at(i, j),
		},
	}

	if mode == ModeLocal {
		result.Positions = locate(result.Result, seq1, seq2)
	}

	return result
}

// strategy holds the behaviors that differ between alignment modes.
type strategy struct {
	// boundary scales GapOpening along row and column 0
	boundary bool

	// floor clamps cells, and the gap-opening branch, at zero
	floor bool

	// fromBest starts traceback at the highest cell, stopping at the first zero cell
	fromBest bool

	// flush pads the leftover prefix of either sequence as gap columns
	flush bool
}

func strategyFor(mode Mode) strategy {
	if mode == ModeLocal {
		return strategy{floor: true, fromBest: true}
	}
	return strategy{boundary: true, flush: true}
}

package seqstat

import (
	"errors"

	"github.com/jjtimmons/seqlab/internal/fasta"
)

// ErrNoSequences is returned when there is nothing to summarize.
var ErrNoSequences = errors.New("no sequences to summarize")

// Stats summarizes a set of sequences.
type Stats struct {
	Shortest       fasta.Sequence `json:"shortestSequence"`
	ShortestLength int            `json:"shortestLength"`
	Longest        fasta.Sequence `json:"longestSequence"`
	LongestLength  int            `json:"longestLength"`
	AverageLength  float64        `json:"averageLength"`

	// TotalBases counts only A, C, G and T (either case)
	TotalBases int `json:"totalBases"`

	Count int `json:"numSequences"`
}

// Summarize finds the shortest and longest sequence (the first one wins
// a tie), the average length and the total base count.
func Summarize(seqs []fasta.Sequence) (Stats, error) {
	if len(seqs) == 0 {
		return Stats{}, ErrNoSequences
	}

	st := Stats{
		Shortest:       seqs[0],
		ShortestLength: len(seqs[0].Seq),
		Longest:        seqs[0],
		LongestLength:  len(seqs[0].Seq),
		Count:          len(seqs),
	}

	total := 0
	for _, s := range seqs {
		n := len(s.Seq)
		total += n
		st.TotalBases += bases(s.Seq)

		if n < st.ShortestLength {
			st.Shortest, st.ShortestLength = s, n
		}
		if n > st.LongestLength {
			st.Longest, st.LongestLength = s, n
		}
	}
	st.AverageLength = float64(total) / float64(len(seqs))

	return st, nil
}

// bases counts the A, C, G and T symbols of seq.
func bases(seq string) (n int) {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
			n++
		}
	}
	return n
}

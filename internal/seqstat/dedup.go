package seqstat

import (
	"sort"
	"strings"

	"github.com/jjtimmons/seqlab/internal/fasta"
)

// Dedup drops sequences that are contained in a longer (or earlier, equal
// length) sequence. Sequences are returned longest first; equal lengths
// keep their input order. The input slice is not modified.
func Dedup(seqs []fasta.Sequence) []fasta.Sequence {
	sorted := make([]fasta.Sequence, len(seqs))
	copy(sorted, seqs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Seq) > len(sorted[j].Seq)
	})

	var unique []fasta.Sequence
	seen := make(map[string]bool) // proper substrings of kept sequences

	for _, s := range sorted {
		contained := false
		for _, u := range unique {
			if strings.Contains(u.Seq, s.Seq) {
				contained = true
				break
			}
		}
		if contained || seen[s.Seq] {
			continue
		}

		unique = append(unique, s)
		for size := 1; size < len(s.Seq); size++ {
			for start := 0; start+size <= len(s.Seq); start++ {
				seen[s.Seq[start:start+size]] = true
			}
		}
	}

	return unique
}

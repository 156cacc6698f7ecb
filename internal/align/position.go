package align

import "strings"

// locate finds the 1-based start of a local alignment's regions in the
// input sequences. Only the first gap of each aligned string is
// removed before the search, and only the first occurrence is found, so
// a region with two or more gaps in one sequence usually comes back nil.
func locate(r Result, seq1, seq2 string) *[2]int {
	if r.Aligned1 == "" || r.Aligned2 == "" {
		return nil
	}

	start1 := strings.Index(seq1, strings.Replace(r.Aligned1, string(gap), "", 1))
	start2 := strings.Index(seq2, strings.Replace(r.Aligned2, string(gap), "", 1))
	if start1 < 0 || start2 < 0 {
		return nil
	}

	return &[2]int{start1 + 1, start2 + 1}
}

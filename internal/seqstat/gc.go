package seqstat

import "math"

// GC returns the percentage of G and C among the A, C, G and T bases of
// seq, ignoring case and any other symbol. It is NaN when seq has no
// A, C, G or T.
func GC(seq string) float64 {
	gc, at := 0, 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		case 'A', 'T', 'a', 't':
			at++
		}
	}

	if gc+at == 0 {
		return math.NaN()
	}
	return float64(gc) / float64(gc+at) * 100
}

// Package seqstat holds single pass analyses over FASTA sequences: k-mer
// profiles, GC content, subsequence deduplication and summary stats.
package seqstat

import "errors"

// ErrKmerSize is returned for a k below one.
var ErrKmerSize = errors.New("k must be a positive integer")

// KmerCount is the number of times a k-mer occurs in a sequence.
type KmerCount struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}

// Kmers returns every overlapping substring of length k, in order.
// A sequence shorter than k has none.
func Kmers(seq string, k int) ([]string, error) {
	if k < 1 {
		return nil, ErrKmerSize
	}

	var kmers []string
	for i := 0; i+k <= len(seq); i++ {
		kmers = append(kmers, seq[i:i+k])
	}
	return kmers, nil
}

// KmerCounts counts the k-mers of seq, ordered by first occurrence.
func KmerCounts(seq string, k int) ([]KmerCount, error) {
	kmers, err := Kmers(seq, k)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var counts []KmerCount
	for _, kmer := range kmers {
		if i, seen := index[kmer]; seen {
			counts[i].Count++
			continue
		}
		index[kmer] = len(counts)
		counts = append(counts, KmerCount{Kmer: kmer, Count: 1})
	}
	return counts, nil
}

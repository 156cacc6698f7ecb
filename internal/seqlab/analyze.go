package seqlab

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/jjtimmons/seqlab/config"
	"github.com/jjtimmons/seqlab/internal/fasta"
	"github.com/jjtimmons/seqlab/internal/seqstat"
	"github.com/spf13/cobra"
)

// kmerProfile is the k-mer profile of one sequence.
type kmerProfile struct {
	ID    string              `json:"id"`
	Kmers []seqstat.KmerCount `json:"kmers"`
}

// gcContent is the GC percentage of one sequence, null when it has no A, C, G or T.
type gcContent struct {
	ID string   `json:"id"`
	GC *float64 `json:"gcContent"`
}

// KmersCmd takes a cobra command (with its flags) and runs Kmers.
func KmersCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)
	if err := Kmers(flags, conf); err != nil {
		stderr.Fatalln(err)
	}
}

// Kmers writes the k-mer counts of every input sequence.
func Kmers(flags *Flags, conf *config.Config) error {
	seqs, err := fasta.Read(flags.in)
	if err != nil {
		return err
	}

	profiles := make([]kmerProfile, 0, len(seqs))
	for _, s := range seqs {
		counts, err := seqstat.KmerCounts(s.Seq, flags.k)
		if err != nil {
			return fmt.Errorf("failed to count k-mers of %s: %w", s.ID, err)
		}
		profiles = append(profiles, kmerProfile{ID: s.ID, Kmers: counts})
	}

	if conf.Verbose {
		stderr.Printf("counted %d-mers in %d sequences", flags.k, len(seqs))
	}

	return writeOutput(flags.out, conf.JSON, profiles, func(w *outputWriter) {
		w.line("ID\tK-mer\tCount\t")
		for _, p := range profiles {
			for _, c := range p.Kmers {
				w.line("%s\t%s\t%d\t", p.ID, c.Kmer, c.Count)
			}
		}
	})
}

// GCCmd takes a cobra command (with its flags) and runs GC.
func GCCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)
	if err := GC(flags, conf); err != nil {
		stderr.Fatalln(err)
	}
}

// GC writes the GC content of every input sequence.
func GC(flags *Flags, conf *config.Config) error {
	seqs, err := fasta.Read(flags.in)
	if err != nil {
		return err
	}

	contents := make([]gcContent, 0, len(seqs))
	for _, s := range seqs {
		c := gcContent{ID: s.ID}
		if gc := seqstat.GC(s.Seq); !math.IsNaN(gc) {
			c.GC = &gc
		}
		contents = append(contents, c)
	}

	return writeOutput(flags.out, conf.JSON, contents, func(w *outputWriter) {
		w.line("ID\tGC Content\t")
		for _, c := range contents {
			if c.GC == nil {
				w.line("%s\tn/a\t", c.ID)
				continue
			}
			w.line("%s\t%.3f\t", c.ID, *c.GC)
		}
	})
}

// DedupCmd takes a cobra command (with its flags) and runs Dedup.
func DedupCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)
	if err := Dedup(flags, conf); err != nil {
		stderr.Fatalln(err)
	}
}

// Dedup writes the input sequences that aren't contained in another, as FASTA.
func Dedup(flags *Flags, conf *config.Config) error {
	seqs, err := fasta.Read(flags.in)
	if err != nil {
		return err
	}

	unique := seqstat.Dedup(seqs)
	if conf.Verbose {
		stderr.Printf("kept %d of %d sequences", len(unique), len(seqs))
	}

	return writeOutput(flags.out, conf.JSON, unique, func(w *outputWriter) {
		w.fasta(unique)
	})
}

// StatsCmd takes a cobra command (with its flags) and runs Stats.
func StatsCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)
	if err := Stats(flags, conf); err != nil {
		stderr.Fatalln(err)
	}
}

// Stats writes the length and base count summary of the input sequences.
func Stats(flags *Flags, conf *config.Config) error {
	seqs, err := fasta.Read(flags.in)
	if err != nil {
		return err
	}

	st, err := seqstat.Summarize(seqs)
	if err != nil {
		return fmt.Errorf("failed to summarize %s: %w", flags.in, err)
	}

	return writeOutput(flags.out, conf.JSON, st, func(w *outputWriter) {
		w.line("Shortest Sequence: %s (Length: %s)", st.Shortest.ID, humanize.Comma(int64(st.ShortestLength)))
		w.line("Longest Sequence: %s (Length: %s)", st.Longest.ID, humanize.Comma(int64(st.LongestLength)))
		w.line("Average Length: %s", humanize.CommafWithDigits(st.AverageLength, 2))
		w.line("Total Number of Bases: %s", humanize.Comma(int64(st.TotalBases)))
		w.line("Number of Sequences: %s", humanize.Comma(int64(st.Count)))
	})
}

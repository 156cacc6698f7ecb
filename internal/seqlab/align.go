package seqlab

import (
	"fmt"
	"time"

	"github.com/jjtimmons/seqlab/config"
	"github.com/jjtimmons/seqlab/internal/align"
	"github.com/jjtimmons/seqlab/internal/fasta"
	"github.com/spf13/cobra"
)

// AlignCmd takes a cobra command (with its flags) and runs Align.
func AlignCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)
	scoringFlags(cmd, conf)

	if err := Align(flags, conf); err != nil {
		stderr.Fatalln(err)
	}
}

// Align reads the two sequences of the input FASTA and writes their global
// and local alignments. Nothing is written if the input doesn't hold
// exactly two sequences or either set of scores is invalid.
func Align(flags *Flags, conf *config.Config) error {
	start := time.Now()

	seqs, err := fasta.Read(flags.in)
	if err != nil {
		return err
	}

	out, err := align.Pair(seqs, params(conf.Global), params(conf.Local))
	if err != nil {
		return fmt.Errorf("failed to align %s: %w", flags.in, err)
	}

	if conf.Verbose {
		stderr.Printf("aligned %s (%d bp) and %s (%d bp) in %s", seqs[0].ID, len(seqs[0].Seq), seqs[1].ID, len(seqs[1].Seq), time.Since(start))
	}

	return writeOutput(flags.out, conf.JSON, out, func(w *outputWriter) {
		w.alignment("Global Alignment", out.Global)
		w.line("")
		w.alignment("Local Alignment", out.Local.Result)
		w.line("Aligned Sequence 1 Position: %s", position(out.Local.Positions, 0))
		w.line("Aligned Sequence 2 Position: %s", position(out.Local.Positions, 1))
	})
}

// position renders one of the 1-based local alignment starts, or n/a.
func position(p *[2]int, i int) string {
	if p == nil {
		return "n/a"
	}
	return fmt.Sprint(p[i])
}

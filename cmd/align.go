package cmd

import (
	"github.com/jjtimmons/seqlab/internal/seqlab"
	"github.com/spf13/cobra"
)

// alignCmd is for aligning the two sequences of a FASTA file
var alignCmd = &cobra.Command{
	Use:                        "align [fasta]",
	Short:                      "Globally and locally align the two sequences in a FASTA file",
	Run:                        seqlab.AlignCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Align the two sequences of a FASTA file end to end (global alignment)
and find their best scoring shared region (local alignment).

Each alignment is written as the first sequence, a match track ('|' for identical
symbols) and the second sequence, followed by its score. The local alignment also
reports the 1-based start of the aligned region in each sequence, or n/a when the
region can't be found.

Scores default to those in the settings file ("global" and "local" sections).
The scoring flags override both alignments. Match must be zero or positive,
the mismatch and gap scores zero or negative.`,
	Example: "  seqlab align pair.fa --match 1 --mismatch -1 --gap-open -1 --gap-extend -1",
	Aliases: []string{"aln"},
}

// set flags
func init() {
	alignCmd.Flags().StringP("in", "i", "", "input FASTA with exactly two sequences")
	alignCmd.Flags().StringP("out", "o", "", "output file name")
	alignCmd.Flags().IntP("match", "m", 3, "score for identical symbols (>= 0)")
	alignCmd.Flags().IntP("mismatch", "x", -2, "score for differing symbols (<= 0)")
	alignCmd.Flags().IntP("gap-open", "g", -3, "score for each gap column (<= 0)")
	alignCmd.Flags().IntP("gap-extend", "e", -2, "score for the gap-extension branch (<= 0)")

	RootCmd.AddCommand(alignCmd)
}

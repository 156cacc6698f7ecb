package cmd

import (
	"github.com/jjtimmons/seqlab/internal/seqlab"
	"github.com/spf13/cobra"
)

// dedupCmd is for removing sequences contained in others
var dedupCmd = &cobra.Command{
	Use:                        "dedup [fasta]",
	Short:                      "Remove sequences that are contained in another sequence",
	Run:                        seqlab.DedupCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Remove duplicate sequences and sequences that are a substring of a longer one.
The remaining sequences are written as FASTA, longest first.`,
	Aliases: []string{"deduplicate"},
}

// set flags
func init() {
	dedupCmd.Flags().StringP("in", "i", "", "input FASTA")
	dedupCmd.Flags().StringP("out", "o", "", "output FASTA file name")

	RootCmd.AddCommand(dedupCmd)
}

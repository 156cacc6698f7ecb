package cmd

import (
	"github.com/jjtimmons/seqlab/internal/seqlab"
	"github.com/spf13/cobra"
)

// gcCmd is for reporting the GC content of each sequence
var gcCmd = &cobra.Command{
	Use:                        "gc [fasta]",
	Short:                      "Report the GC content of each sequence in a FASTA file",
	Run:                        seqlab.GCCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Report the percentage of G and C among the A, C, G and T bases of each sequence.
Other symbols are ignored. Sequences without any A, C, G or T are reported as n/a.`,
}

// set flags
func init() {
	gcCmd.Flags().StringP("in", "i", "", "input FASTA")
	gcCmd.Flags().StringP("out", "o", "", "output file name")

	RootCmd.AddCommand(gcCmd)
}

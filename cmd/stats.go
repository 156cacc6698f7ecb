package cmd

import (
	"github.com/jjtimmons/seqlab/internal/seqlab"
	"github.com/spf13/cobra"
)

// statsCmd is for summarizing the sequences of a FASTA file
var statsCmd = &cobra.Command{
	Use:                        "stats [fasta]",
	Short:                      "Summarize the lengths and base counts of a FASTA file",
	Run:                        seqlab.StatsCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Report the shortest and longest sequence, the average length,
the number of A, C, G and T bases and the number of sequences.`,
	Aliases: []string{"stat"},
}

// set flags
func init() {
	statsCmd.Flags().StringP("in", "i", "", "input FASTA")
	statsCmd.Flags().StringP("out", "o", "", "output file name")

	RootCmd.AddCommand(statsCmd)
}

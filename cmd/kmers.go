package cmd

import (
	"github.com/jjtimmons/seqlab/internal/seqlab"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// kmersCmd is for counting the k-mers of each sequence
var kmersCmd = &cobra.Command{
	Use:                        "kmers [fasta]",
	Short:                      "Count the k-mers of each sequence in a FASTA file",
	Run:                        seqlab.KmersCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Count every overlapping substring of length k in each sequence.
K-mers are listed in the order they first occur.`,
	Example: "  seqlab kmers reads.fa -k 4",
	Aliases: []string{"kmer"},
}

// set flags
func init() {
	kmersCmd.Flags().StringP("in", "i", "", "input FASTA")
	kmersCmd.Flags().StringP("out", "o", "", "output file name")
	kmersCmd.Flags().IntP("kmer", "k", 3, "k-mer length")

	viper.BindPFlag("kmer-size", kmersCmd.Flags().Lookup("kmer"))

	RootCmd.AddCommand(kmersCmd)
}

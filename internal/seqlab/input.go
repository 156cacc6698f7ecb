// Package seqlab runs the seqlab commands: it parses their flags, reads
// the input FASTA, calls into the analysis packages and writes results.
package seqlab

import (
	"errors"
	"log"
	"os"

	"github.com/jjtimmons/seqlab/config"
	"github.com/jjtimmons/seqlab/internal/align"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	errNoInput = errors.New("no input FASTA: pass --in or a path argument")
)

// Flags contains parsed cobra Flags like "in", "out" and "k" that are used by multiple commands.
type Flags struct {
	// the path of the FASTA file to read, "-" for stdin
	in string

	// the name of the file to write the output to, stdout if empty
	out string

	// k-mer size for the kmers command
	k int
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out string, k int) *Flags {
	return &Flags{in: in, out: out, k: k}
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object
// and returns them with the settings Config.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	c := config.New()
	fs := &Flags{k: c.KmerSize}

	in, err := cmd.Flags().GetString("in")
	if err != nil || in == "" {
		if len(args) < 1 {
			cmd.Help()
			stderr.Fatal(errNoInput)
		}
		in = args[0]
	}
	fs.in = in

	if fs.out, err = cmd.Flags().GetString("out"); err != nil {
		stderr.Fatalf("failed to parse out flag: %v", err)
	}

	if cmd.Flags().Lookup("kmer") != nil && cmd.Flags().Changed("kmer") {
		if fs.k, err = cmd.Flags().GetInt("kmer"); err != nil {
			stderr.Fatalf("failed to parse kmer flag: %v", err)
		}
	}

	return fs, c
}

// scoringFlags overrides both modes' scores with any scoring flag set on the command.
func scoringFlags(cmd *cobra.Command, c *config.Config) {
	overrides := []struct {
		flag string
		set  func(s *config.Scoring, v int)
	}{
		{"match", func(s *config.Scoring, v int) { s.Match = v }},
		{"mismatch", func(s *config.Scoring, v int) { s.Mismatch = v }},
		{"gap-open", func(s *config.Scoring, v int) { s.GapOpening = v }},
		{"gap-extend", func(s *config.Scoring, v int) { s.GapExtension = v }},
	}

	for _, o := range overrides {
		if cmd.Flags().Lookup(o.flag) == nil || !cmd.Flags().Changed(o.flag) {
			continue
		}

		v, err := cmd.Flags().GetInt(o.flag)
		if err != nil {
			stderr.Fatalf("failed to parse %s flag: %v", o.flag, err)
		}
		o.set(&c.Global, v)
		o.set(&c.Local, v)
	}
}

// params converts configured scores to alignment parameters.
func params(s config.Scoring) align.Params {
	return align.Params{
		Match:        s.Match,
		Mismatch:     s.Mismatch,
		GapOpening:   s.GapOpening,
		GapExtension: s.GapExtension,
	}
}

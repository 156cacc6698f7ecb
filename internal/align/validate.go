package align

import (
	"errors"
	"fmt"

	"github.com/jjtimmons/seqlab/internal/fasta"
)

var (
	// ErrSequenceCount is returned when anything but two sequences are passed to Pair
	ErrSequenceCount = errors.New("exactly two sequences are required for alignment")

	// ErrScoringParam is matched by every *ParamError
	ErrScoringParam = errors.New("invalid scoring parameter")
)

// ParamError reports a scoring parameter outside its sign convention.
type ParamError struct {
	Name  string
	Value int

	// Want describes the accepted range, ex: "zero or negative"
	Want string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s must be %s, got %d", e.Name, e.Want, e.Value)
}

// Unwrap lets errors.Is match ErrScoringParam.
func (e *ParamError) Unwrap() error {
	return ErrScoringParam
}

// Validate checks the sign convention: match must be zero or positive,
// mismatch and both gap scores zero or negative. The first violation is
// returned.
func (p Params) Validate() error {
	if p.Match < 0 {
		return &ParamError{Name: "match", Value: p.Match, Want: "zero or positive"}
	}

	checks := []struct {
		name  string
		value int
	}{
		{"mismatch", p.Mismatch},
		{"gap-opening", p.GapOpening},
		{"gap-extension", p.GapExtension},
	}
	for _, c := range checks {
		if c.value > 0 {
			return &ParamError{Name: c.name, Value: c.value, Want: "zero or negative"}
		}
	}

	return nil
}

// Pair runs a global alignment with the global params and a local
// alignment with the local params on exactly two sequences. Nothing is
// aligned unless the sequence count and both parameter sets are valid.
func Pair(seqs []fasta.Sequence, global, local Params) (Output, error) {
	if len(seqs) != 2 {
		return Output{}, fmt.Errorf("%w: got %d", ErrSequenceCount, len(seqs))
	}

	if err := global.Validate(); err != nil {
		return Output{}, fmt.Errorf("global alignment: %w", err)
	}
	if err := local.Validate(); err != nil {
		return Output{}, fmt.Errorf("local alignment: %w", err)
	}

	seq1, seq2 := seqs[0].Seq, seqs[1].Seq
	return Output{
		Global: Global(seq1, seq2, global),
		Local:  Local(seq1, seq2, local),
	}, nil
}

package align

import (
	"errors"
	"testing"

	"github.com/jjtimmons/seqlab/internal/fasta"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		wantName string
	}{
		{"defaults", DefaultParams, ""},
		{"all zero", Params{}, ""},
		{"negative match", Params{-1, -2, -3, -2}, "match"},
		{"positive mismatch", Params{3, 1, -3, -2}, "mismatch"},
		{"positive gap opening", Params{3, -2, 2, -2}, "gap-opening"},
		{"positive gap extension", Params{3, -2, -3, 4}, "gap-extension"},
		{"first violation wins", Params{-1, 1, 1, 1}, "match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantName == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("Validate() = %v, want a *ParamError", err)
			}
			if pe.Name != tt.wantName {
				t.Errorf("Validate() failed on %s, want %s", pe.Name, tt.wantName)
			}
			if !errors.Is(err, ErrScoringParam) {
				t.Errorf("Validate() = %v, want it to match ErrScoringParam", err)
			}
		})
	}
}

func TestPair(t *testing.T) {
	two := []fasta.Sequence{
		{ID: "first", Seq: "TTGACCTTGACC"},
		{ID: "second", Seq: "GACC"},
	}

	tests := []struct {
		name    string
		seqs    []fasta.Sequence
		global  Params
		local   Params
		wantErr error
	}{
		{"two sequences", two, DefaultParams, DefaultParams, nil},
		{"no sequences", nil, DefaultParams, DefaultParams, ErrSequenceCount},
		{"one sequence", two[:1], DefaultParams, DefaultParams, ErrSequenceCount},
		{"three sequences", append(two, fasta.Sequence{ID: "third", Seq: "A"}), DefaultParams, DefaultParams, ErrSequenceCount},
		{"bad global params", two, Params{-1, 0, 0, 0}, DefaultParams, ErrScoringParam},
		{"bad local params", two, DefaultParams, Params{1, 0, 0, 1}, ErrScoringParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Pair(tt.seqs, tt.global, tt.local)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Pair() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				if out != (Output{}) {
					t.Errorf("Pair() returned a partial result %+v alongside %v", out, err)
				}
				return
			}

			if out.Global.Score != -12 {
				t.Errorf("Pair() global score = %d, want -12", out.Global.Score)
			}
			if out.Local.Aligned1 != "GACC" || out.Local.Score != 12 {
				t.Errorf("Pair() local = %+v, want GACC scored 12", out.Local.Result)
			}
			if out.Local.Positions == nil || *out.Local.Positions != [2]int{3, 1} {
				t.Errorf("Pair() local positions = %v, want [3 1]", out.Local.Positions)
			}
		})
	}
}

func TestPair_separateParams(t *testing.T) {
	seqs := []fasta.Sequence{{ID: "a", Seq: "GATTACA"}, {ID: "b", Seq: "GCATGCU"}}

	out, err := Pair(seqs, Params{1, -1, -1, -1}, DefaultParams)
	if err != nil {
		t.Fatal(err)
	}

	if out.Global.Score != 0 {
		t.Errorf("global score = %d, want 0 from the unit scores", out.Global.Score)
	}
	if out.Local.Score != 6 {
		t.Errorf("local score = %d, want 6 from the default scores", out.Local.Score)
	}
}

package align

import (
	"reflect"
	"strings"
	"testing"
)

func positions(p1, p2 int) *[2]int {
	return &[2]int{p1, p2}
}

func TestGlobal(t *testing.T) {
	type args struct {
		seq1 string
		seq2 string
		p    Params
	}
	tests := []struct {
		name string
		args args
		want Result
	}{
		{
			"textbook pair with unit scores",
			args{"GATTACA", "GCATGCU", Params{1, -1, -1, -1}},
			Result{
				Aligned1: "G-ATTACA",
				Symbols:  "| | | | ",
				Aligned2: "GCA-TGCU",
				Score:    0,
			},
		},
		{
			"textbook pair with default scores",
			args{"GATTACA", "GCATGCU", DefaultParams},
			Result{"G-ATTACA", "| | | | ", "GCA-TGCU", 2},
		},
		{
			"single identical symbol",
			args{"A", "A", DefaultParams},
			Result{"A", "|", "A", 3},
		},
		{
			"single differing symbol takes the mismatch",
			args{"A", "C", DefaultParams},
			Result{"A", " ", "C", -2},
		},
		{
			"shorter sequence is padded at the boundary",
			args{"TTGACCTTGACC", "GACC", DefaultParams},
			Result{"TTGACCTTGACC", "        ||||", "--------GACC", -12},
		},
		{
			"leftover rows flushed as gaps",
			args{"AAAA", "CCC", DefaultParams},
			Result{"AAAA", "    ", "-CCC", -9},
		},
		{
			"leftover columns flushed as gaps",
			args{"AC", "ACGT", DefaultParams},
			Result{"AC--", "||  ", "ACGT", 0},
		},
		{
			"single gap inside",
			args{"ACGTACGT", "ACGACGT", Params{2, -1, -2, -1}},
			Result{"ACGTACGT", "||| ||||", "ACG-ACGT", 12},
		},
		{
			"gaps on both sides",
			args{"AGCTAGGA", "GGAGCTA", DefaultParams},
			Result{"--AGCTAGGA", "  ||||   |", "GGAGCT---A", 0},
		},
		{
			"free gap extension",
			args{"ACCGT", "AGT", Params{1, -1, -2, 0}},
			Result{"ACCGT", "|  ||", "A--GT", -1},
		},
		{
			"mismatch column inside padding",
			args{"ACGTTTGCA", "TTGA", Params{2, -3, -2, -1}},
			Result{"ACGTTTGCA", "    ||| |", "----TTG-A", -2},
		},
		{
			"empty first sequence",
			args{"", "ACG", DefaultParams},
			Result{"---", "   ", "ACG", -9},
		},
		{
			"both sequences empty",
			args{"", "", DefaultParams},
			Result{"", "", "", 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Global(tt.args.seq1, tt.args.seq2, tt.args.p); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Global() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLocal(t *testing.T) {
	type args struct {
		seq1 string
		seq2 string
		p    Params
	}
	tests := []struct {
		name string
		args args
		want LocalResult
	}{
		{
			"recovers an embedded query",
			args{"TTGACCTTGACC", "GACC", DefaultParams},
			LocalResult{Result{"GACC", "||||", "GACC", 12}, positions(3, 1)},
		},
		{
			"textbook pair with unit scores",
			args{"GATTACA", "GCATGCU", Params{1, -1, -1, -1}},
			LocalResult{Result{"AT", "||", "AT", 2}, positions(2, 3)},
		},
		{
			"single identical symbol",
			args{"A", "A", DefaultParams},
			LocalResult{Result{"A", "|", "A", 3}, positions(1, 1)},
		},
		{
			"disjoint alphabets score zero",
			args{"AAAA", "CCC", DefaultParams},
			LocalResult{Result{"", "", "", 0}, nil},
		},
		{
			"ties keep the first best cell",
			args{"AGCTAGGA", "GGAGCTA", DefaultParams},
			LocalResult{Result{"AGCTA", "|||||", "AGCTA", 15}, positions(1, 3)},
		},
		{
			"single gap is stripped before the lookup",
			args{"ACGTACGT", "ACGACGT", Params{2, -1, -2, -1}},
			LocalResult{Result{"ACGTACGT", "||| ||||", "ACG-ACGT", 12}, positions(1, 1)},
		},
		{
			"second gap defeats the lookup",
			args{"AAACCCGGGTTT", "CCCATTT", Params{2, -1, -1, -2}},
			LocalResult{Result{"CCCGGGTTT", "|||   |||", "CCC--ATTT", 9}, nil},
		},
		{
			"region found at a later offset",
			args{"ACGTTTGCA", "TTGA", Params{2, -3, -2, -1}},
			LocalResult{Result{"TTG", "|||", "TTG", 6}, positions(5, 1)},
		},
		{
			"empty input",
			args{"", "ACGT", DefaultParams},
			LocalResult{Result{"", "", "", 0}, nil},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Local(tt.args.seq1, tt.args.seq2, tt.args.p); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Local() = %+v (positions %v), want %+v (positions %v)", got, got.Positions, tt.want, tt.want.Positions)
			}
		})
	}
}

// pairs used for the property checks below
var propertyPairs = []struct {
	seq1, seq2 string
	p          Params
}{
	{"GATTACA", "GCATGCU", Params{1, -1, -1, -1}},
	{"TTGACCTTGACC", "GACC", DefaultParams},
	{"AAACCCGGGTTT", "CCCATTT", Params{2, -1, -1, -2}},
	{"ACGTCCGTAAGT", "ACGTGTAAGT", Params{2, -2, -1, -2}},
	{"ACCGT", "AGT", Params{1, -1, -2, 0}},
	{"CATCATCATGGG", "GGGCAT", Params{5, -4, -1, -3}},
	{"A", "TTTTTTTT", Params{0, 0, 0, 0}},
	{"NNACGTNN", "ACGT", Params{1, 0, -1, -1}},
}

func TestAlign_columns(t *testing.T) {
	for _, pp := range propertyPairs {
		for _, mode := range []Mode{ModeGlobal, ModeLocal} {
			r := Align(pp.seq1, pp.seq2, pp.p, mode)
			name := mode.String() + " " + pp.seq1 + "/" + pp.seq2

			if len(r.Aligned1) != len(r.Symbols) || len(r.Symbols) != len(r.Aligned2) {
				t.Errorf("%s: column counts differ: %q %q %q", name, r.Aligned1, r.Symbols, r.Aligned2)
				continue
			}

			for k := range r.Symbols {
				a, b := r.Aligned1[k], r.Aligned2[k]
				identical := a != gap && b != gap && a == b
				if (r.Symbols[k] == matchSymbol) != identical {
					t.Errorf("%s: column %d is %q over %q with symbol %q", name, k, a, b, r.Symbols[k])
				}
			}
		}
	}
}

func TestGlobal_consumesBothSequences(t *testing.T) {
	for _, pp := range propertyPairs {
		r := Global(pp.seq1, pp.seq2, pp.p)
		if got := strings.ReplaceAll(r.Aligned1, "-", ""); got != pp.seq1 {
			t.Errorf("Global(%s, %s) first row = %s, want %s", pp.seq1, pp.seq2, got, pp.seq1)
		}
		if got := strings.ReplaceAll(r.Aligned2, "-", ""); got != pp.seq2 {
			t.Errorf("Global(%s, %s) second row = %s, want %s", pp.seq1, pp.seq2, got, pp.seq2)
		}
	}
}

func TestLocal_contiguousRegions(t *testing.T) {
	for _, pp := range propertyPairs {
		r := Local(pp.seq1, pp.seq2, pp.p)
		if !strings.Contains(pp.seq1, strings.ReplaceAll(r.Aligned1, "-", "")) {
			t.Errorf("Local(%s, %s) region %s is not in the first sequence", pp.seq1, pp.seq2, r.Aligned1)
		}
		if !strings.Contains(pp.seq2, strings.ReplaceAll(r.Aligned2, "-", "")) {
			t.Errorf("Local(%s, %s) region %s is not in the second sequence", pp.seq1, pp.seq2, r.Aligned2)
		}
		if r.Score < 0 {
			t.Errorf("Local(%s, %s) score = %d, want >= 0", pp.seq1, pp.seq2, r.Score)
		}
	}
}

func TestAlign_scoreIsStartCell(t *testing.T) {
	for _, pp := range propertyPairs {
		g := Global(pp.seq1, pp.seq2, pp.p)
		gm, _, _ := fill(pp.seq1, pp.seq2, pp.p, strategyFor(ModeGlobal))
		if want := gm.at(len(pp.seq1), len(pp.seq2)); g.Score != want {
			t.Errorf("Global(%s, %s) score = %d, want corner %d", pp.seq1, pp.seq2, g.Score, want)
		}

		l := Local(pp.seq1, pp.seq2, pp.p)
		lm, bestI, bestJ := fill(pp.seq1, pp.seq2, pp.p, strategyFor(ModeLocal))
		if want := lm.at(bestI, bestJ); l.Score != want {
			t.Errorf("Local(%s, %s) score = %d, want best cell %d", pp.seq1, pp.seq2, l.Score, want)
		}
	}
}

func TestAlign_idempotent(t *testing.T) {
	for _, pp := range propertyPairs {
		for _, mode := range []Mode{ModeGlobal, ModeLocal} {
			first := Align(pp.seq1, pp.seq2, pp.p, mode)
			second := Align(pp.seq1, pp.seq2, pp.p, mode)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("Align(%s, %s, %s) not repeatable: %+v != %+v", pp.seq1, pp.seq2, mode, first, second)
			}
		}
	}
}

func Test_fill_localFloor(t *testing.T) {
	m, bestI, bestJ := fill("AAAA", "CCC", DefaultParams, strategyFor(ModeLocal))
	for i, v := range m.cells {
		if v != 0 {
			t.Fatalf("cell %d = %d, want every cell at zero", i, v)
		}
	}
	if bestI != 0 || bestJ != 0 {
		t.Errorf("best cell = (%d, %d), want (0, 0)", bestI, bestJ)
	}
}

func Test_fill_globalBoundary(t *testing.T) {
	p := Params{Match: 1, Mismatch: -1, GapOpening: -4, GapExtension: -1}
	m, _, _ := fill("ACG", "AC", p, strategyFor(ModeGlobal))

	for i := 0; i < m.rows; i++ {
		if got := m.at(i, 0); got != i*p.GapOpening {
			t.Errorf("m[%d][0] = %d, want %d", i, got, i*p.GapOpening)
		}
	}
	for j := 0; j < m.cols; j++ {
		if got := m.at(0, j); got != j*p.GapOpening {
			t.Errorf("m[0][%d] = %d, want %d", j, got, j*p.GapOpening)
		}
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeGlobal, "global"},
		{ModeLocal, "local"},
		{Mode(7), "Mode(7)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode.String() = %q, want %q", got, tt.want)
		}
	}
}

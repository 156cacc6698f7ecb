package seqstat

import (
	"math"
	"testing"
)

func TestGC(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{"half", "ACGT", 50},
		{"all gc", "GGCC", 100},
		{"no gc", "ATTA", 0},
		{"lowercase", "ggat", 50},
		{"other symbols ignored", "GNNNNA-", 50},
		{"thirds", "GAT", 100.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GC(tt.seq); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("GC(%s) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}

	if got := GC("NNNN"); !math.IsNaN(got) {
		t.Errorf("GC(NNNN) = %v, want NaN", got)
	}
}

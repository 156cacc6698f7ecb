package align

// branch is one term of the fill recurrence, re-derived during traceback.
// di and dj are the predecessor offsets: a branch consuming a symbol of
// seq1 moves up one row, one consuming a symbol of seq2 moves left.
type branch struct {
	name   string
	di, dj int
	cost   func(p Params, a, b byte) int
}

// branches are checked in order and the first whose source value equals
// the current cell wins. The order picks between equally optimal paths.
var branches = []branch{
	{
		name: "match",
		di:   1,
		dj:   1,
		cost: func(p Params, a, b byte) int { return p.substitution(a, b) },
	},
	{
		name: "up",
		di:   1,
		dj:   0,
		cost: func(p Params, _, _ byte) int { return p.GapOpening },
	},
	{
		name: "left",
		di:   0,
		dj:   1,
		cost: func(p Params, _, _ byte) int { return p.GapOpening },
	},
	{
		name: "extend",
		di:   1,
		dj:   1,
		cost: func(p Params, _, _ byte) int { return p.GapExtension },
	},
}

// traceback walks from (i, j) toward the origin, building the alignment
// columns back to front.
func traceback(m *matrix, seq1, seq2 string, p Params, s strategy, i, j int) (a1, symbols, a2 []byte) {
	n := i + j
	a1 = make([]byte, 0, n)
	symbols = make([]byte, 0, n)
	a2 = make([]byte, 0, n)

	column := func(c1, c2 byte, identical bool) {
		a1 = append(a1, c1)
		a2 = append(a2, c2)
		if identical {
			symbols = append(symbols, matchSymbol)
		} else {
			symbols = append(symbols, blankSymbol)
		}
	}

	for i > 0 && j > 0 {
		score := m.at(i, j)
		if s.fromBest && score == 0 {
			break
		}

		a, b := seq1[i-1], seq2[j-1]
		matched := false
		for _, br := range branches {
			if m.at(i-br.di, j-br.dj)+br.cost(p, a, b) != score {
				continue
			}

			c1, c2 := byte(gap), byte(gap)
			if br.di == 1 {
				c1 = a
			}
			if br.dj == 1 {
				c2 = b
			}
			column(c1, c2, br.di == 1 && br.dj == 1 && a == b)

			i -= br.di
			j -= br.dj
			matched = true
			break
		}

		if !matched {
			panic("align: no traceback branch reproduces the cell score")
		}
	}

	if s.flush {
		for ; i > 0; i-- {
			column(seq1[i-1], gap, false)
		}
		for ; j > 0; j-- {
			column(gap, seq2[j-1], false)
		}
	}

	reverse(a1)
	reverse(symbols)
	reverse(a2)
	return a1, symbols, a2
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

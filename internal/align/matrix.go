package align

// matrix is a (len(seq1)+1) x (len(seq2)+1) grid of scores. Row 0 and
// column 0 are the empty-prefix boundary.
type matrix struct {
	rows, cols int
	cells      []int
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

func (m *matrix) at(i, j int) int {
	return m.cells[i*m.cols+j]
}

func (m *matrix) set(i, j, v int) {
	m.cells[i*m.cols+j] = v
}

// fill scores every cell of the matrix in row-major order. It also returns
// the coordinates of the first cell holding the highest positive score,
// or (0, 0) if no cell is positive.
func fill(seq1, seq2 string, p Params, s strategy) (m *matrix, bestI, bestJ int) {
	rows, cols := len(seq1)+1, len(seq2)+1
	m = newMatrix(rows, cols)

	if s.boundary {
		for i := 0; i < rows; i++ {
			m.set(i, 0, i*p.GapOpening)
		}
		for j := 0; j < cols; j++ {
			m.set(0, j, j*p.GapOpening)
		}
	}

	best := 0
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			diag := m.at(i-1, j-1) + p.substitution(seq1[i-1], seq2[j-1])
			open := max(m.at(i-1, j)+p.GapOpening, m.at(i, j-1)+p.GapOpening)
			extend := m.at(i-1, j-1) + p.GapExtension
			if s.floor {
				open = max(open, 0)
			}

			score := max(diag, open, extend)
			if s.floor {
				score = max(score, 0)
			}
			m.set(i, j, score)

			if score > best {
				best, bestI, bestJ = score, i, j
			}
		}
	}

	return m, bestI, bestJ
}

package chess

// Direction is a (row, column) step.
type Direction struct {
	DRow, DCol int
}

// Direction tables. These are read-only.
var (
	Orthogonals = [4]Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	Diagonals   = [4]Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	// AllDirections lists orthogonals first, then diagonals.
	AllDirections = [8]Direction{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}

	KnightOffsets = [8]Direction{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
)

// IsZero reports whether d is the zero direction.
func (d Direction) IsZero() bool {
	return d.DRow == 0 && d.DCol == 0
}

// IsDiagonal reports whether d moves along a diagonal.
func (d Direction) IsDiagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// IsOrthogonal reports whether d moves along a rank or file.
func (d Direction) IsOrthogonal() bool {
	return (d.DRow == 0) != (d.DCol == 0)
}

// Contains reports whether to lies on the line through from along d,
// on either side of from.
func (d Direction) Contains(from, to Square) bool {
	dr := to.row - from.row
	dc := to.col - from.col
	return dr*d.DCol == dc*d.DRow
}

package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Square identifies a board square by row and column. Row 0 is rank 8
// and column 0 is file a. The fields are unexported so every Square value
// is on the board.
type Square struct {
	row, col int
}

// rowsToRanks and colsToFiles convert array indices to notation characters.
var (
	rowsToRanks = [BoardSize]byte{'8', '7', '6', '5', '4', '3', '2', '1'}
	colsToFiles = [BoardSize]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}
)

// NewSquare creates a square, rejecting coordinates outside [0,8).
func NewSquare(row, col int) (Square, error) {
	if !onBoard(row, col) {
		return Square{}, fmt.Errorf("row %d col %d: %w", row, col, errors.ErrInvalidSquare)
	}
	return Square{row: row, col: col}, nil
}

// MustSquare is like NewSquare but panics on invalid coordinates.
// It is intended for literals.
func MustSquare(row, col int) Square {
	sq, err := NewSquare(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	col, ok := FileToCol(s[0])
	if !ok {
		return Square{}, fmt.Errorf("square %q: bad file: %w", s, errors.ErrInvalidSquare)
	}
	row, ok := RankToRow(s[1])
	if !ok {
		return Square{}, fmt.Errorf("square %q: bad rank: %w", s, errors.ErrInvalidSquare)
	}
	return Square{row: row, col: col}, nil
}

// MustParseSquare is like ParseSquare but panics on error.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Row returns the row index.
func (s Square) Row() int { return s.row }

// Col returns the column index.
func (s Square) Col() int { return s.col }

// Offset returns the square dr rows and dc columns away, and false if that
// square is off the board.
func (s Square) Offset(dr, dc int) (Square, bool) {
	r, c := s.row+dr, s.col+dc
	if !onBoard(r, c) {
		return Square{}, false
	}
	return Square{row: r, col: c}, true
}

// Step returns the square n steps along d.
func (s Square) Step(d Direction, n int) (Square, bool) {
	return s.Offset(d.DRow*n, d.DCol*n)
}

// Index returns row*8+col.
func (s Square) Index() int {
	return s.row*BoardSize + s.col
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	return string([]byte{colsToFiles[s.col], rowsToRanks[s.row]})
}

// RowToRank returns the rank character for a row.
func RowToRank(row int) byte {
	return rowsToRanks[row]
}

// ColToFile returns the file character for a column.
func ColToFile(col int) byte {
	return colsToFiles[col]
}

// RankToRow converts a rank character to a row index.
func RankToRow(rank byte) (int, bool) {
	if rank < '1' || rank > '8' {
		return 0, false
	}
	return int('8' - rank), true
}

// FileToCol converts a file character to a column index.
func FileToCol(file byte) (int, bool) {
	if file < 'a' || file > 'h' {
		return 0, false
	}
	return int(file - 'a'), true
}

func onBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

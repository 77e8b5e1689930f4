package testutil

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// SquareOpts lets cmp compare values containing chess.Square.
var SquareOpts = []cmp.Option{cmp.Comparer(func(a, b chess.Square) bool { return a == b })}

// BoardFromDiagram builds a board from eight rows of eight characters,
// rank 8 first. Upper-case letters KQRBNP are white, lower-case are black,
// and '.' is an empty square. Spaces are ignored.
func BoardFromDiagram(rows ...string) (chess.Board, error) {
	var board chess.Board
	if len(rows) != chess.BoardSize {
		return board, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != chess.BoardSize {
			return board, fmt.Errorf("diagram row %d has %d squares, want %d", row, len(line), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			piece, err := pieceFromLetter(line[col])
			if err != nil {
				return board, fmt.Errorf("diagram row %d col %d: %w", row, col, err)
			}
			board.Set(chess.MustSquare(row, col), piece)
		}
	}
	return board, nil
}

// MustBoard is like BoardFromDiagram but calls t.Fatal on error.
func MustBoard(t *testing.T, rows ...string) chess.Board {
	t.Helper()
	board, err := BoardFromDiagram(rows...)
	if err != nil {
		t.Fatalf("bad diagram: %v", err)
	}
	return board
}

// MoveStrings returns the coordinate form of each move, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// Destinations returns the sorted destination squares of the moves that
// start on from.
func Destinations(moves []chess.Move, from string) []string {
	var out []string
	for _, m := range moves {
		if m.From.String() == from {
			out = append(out, m.To.String())
		}
	}
	sort.Strings(out)
	return out
}

func pieceFromLetter(c byte) (chess.Piece, error) {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	switch c {
	case '.':
		return chess.NoPiece, nil
	case 'K':
		return chess.NewPiece(chess.King, colour), nil
	case 'Q':
		return chess.NewPiece(chess.Queen, colour), nil
	case 'R':
		return chess.NewPiece(chess.Rook, colour), nil
	case 'B':
		return chess.NewPiece(chess.Bishop, colour), nil
	case 'N':
		return chess.NewPiece(chess.Knight, colour), nil
	case 'P':
		return chess.NewPiece(chess.Pawn, colour), nil
	}
	return chess.NoPiece, fmt.Errorf("unknown piece letter %q", c)
}

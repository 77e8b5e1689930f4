package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

func TestBoardFromDiagram_Initial(t *testing.T) {
	board := MustBoard(t,
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	)
	if board != *chess.NewInitialBoard() {
		t.Error("diagram of the initial position does not match NewInitialBoard")
	}
}

func TestBoardFromDiagram_Spaces(t *testing.T) {
	board := MustBoard(t,
		". . . . k . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . K . . .",
	)
	AssertEqual(t, board.At(chess.MustParseSquare("e8")).String(), "bK")
	AssertEqual(t, board.At(chess.MustParseSquare("e1")).String(), "wK")
}

func TestBoardFromDiagram_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", []string{"........"}},
		{"short row", []string{"....", "", "", "", "", "", "", ""}},
		{"bad letter", []string{"....x...", "........", "........", "........", "........", "........", "........", "........"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BoardFromDiagram(tt.rows...); err == nil {
				t.Error("expected error but got nil")
			}
		})
	}
}

func TestMoveStringsAndDestinations(t *testing.T) {
	board := chess.NewInitialBoard()
	e2 := chess.MustParseSquare("e2")
	moves := []chess.Move{
		chess.NewMove(e2, chess.MustParseSquare("e4"), board),
		chess.NewMove(chess.MustParseSquare("d2"), chess.MustParseSquare("d4"), board),
		chess.NewMove(e2, chess.MustParseSquare("e3"), board),
	}
	AssertEqual(t, MoveStrings(moves), []string{"d2d4", "e2e3", "e2e4"})
	AssertEqual(t, Destinations(moves, "e2"), []string{"e3", "e4"})
}

package hashing

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

func TestKey_SideToMove(t *testing.T) {
	board := chess.NewInitialBoard()
	white := Key(board, chess.White)
	black := Key(board, chess.Black)
	if white == black {
		t.Error("Expected side to move to change the key")
	}
	if Key(board, chess.White) != white {
		t.Error("Expected Key to be deterministic")
	}
}

func TestKey_DifferentBoards(t *testing.T) {
	a := chess.NewInitialBoard()
	b := chess.NewInitialBoard()
	b.Set(chess.MustParseSquare("e2"), chess.NoPiece)
	if Key(a, chess.White) == Key(b, chess.White) {
		t.Error("Expected different boards to have different keys")
	}
}

func TestMoveDelta_MatchesFullKey(t *testing.T) {
	pos := engine.NewPosition()
	board := pos.Board()
	key := Key(&board, pos.ToMove())

	// 1. e4 d5 2. exd5 includes a capture.
	for _, text := range []string{"e2e4", "d7d5", "e4d5"} {
		from, to, err := chess.ParseCoordinateMove(text)
		if err != nil {
			t.Fatalf("ParseCoordinateMove(%q): %v", text, err)
		}
		m := pos.NewMove(from, to)
		key ^= MoveDelta(m)
		pos.Apply(m)

		board = pos.Board()
		if want := Key(&board, pos.ToMove()); key != want {
			t.Fatalf("after %s: incremental key %x, want %x", text, key, want)
		}
	}

	for pos.Ply() > 0 {
		m, _ := pos.Undo()
		key ^= MoveDelta(m)
	}
	board = pos.Board()
	if want := Key(&board, chess.White); key != want {
		t.Errorf("after undo: key %x, want %x", key, want)
	}
}

func BenchmarkKey(b *testing.B) {
	board := chess.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Key(board, chess.White)
	}
}

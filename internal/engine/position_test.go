package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// mustPosition builds a position from a diagram, rank 8 first.
func mustPosition(t *testing.T, toMove chess.Colour, rows ...string) *Position {
	t.Helper()
	pos, err := NewPositionFromBoard(testutil.MustBoard(t, rows...), toMove)
	if err != nil {
		t.Fatalf("NewPositionFromBoard error: %v", err)
	}
	return pos
}

func sq(s string) chess.Square {
	return chess.MustParseSquare(s)
}

func TestNewPosition(t *testing.T) {
	pos := NewPosition()

	if pos.ToMove() != chess.White {
		t.Errorf("ToMove() = %v, want White", pos.ToMove())
	}
	if got := pos.KingSquare(chess.White); got != sq("e1") {
		t.Errorf("KingSquare(White) = %v, want e1", got)
	}
	if got := pos.KingSquare(chess.Black); got != sq("e8") {
		t.Errorf("KingSquare(Black) = %v, want e8", got)
	}
	if pos.Board() != *chess.NewInitialBoard() {
		t.Error("Board() does not hold the initial arrangement")
	}
	if pos.Ply() != 0 || len(pos.History()) != 0 {
		t.Errorf("Ply() = %d, want 0", pos.Ply())
	}
}

func TestNewPositionFromBoard_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{
			name: "no white king",
			rows: []string{"....k...", "........", "........", "........", "........", "........", "........", "........"},
		},
		{
			name: "no black king",
			rows: []string{"........", "........", "........", "........", "........", "........", "........", "....K..."},
		},
		{
			name: "two black kings",
			rows: []string{"k...k...", "........", "........", "........", "........", "........", "........", "....K..."},
		},
		{
			name: "two white kings",
			rows: []string{"....k...", "........", "........", "........", "........", "........", "K.......", "....K..."},
		},
		{
			name: "side not to move in check",
			rows: []string{"....k...", "........", "........", "........", "....R...", "........", "........", "....K..."},
		},
		{
			name: "kings adjacent",
			rows: []string{"........", "........", "........", "........", "...k....", "....K...", "........", "........"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.rows...)
			pos, err := NewPositionFromBoard(board, chess.White)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)
			if pos != nil {
				t.Error("expected nil position on error")
			}
		})
	}
}

func TestNewPositionFromBoard_MoverInCheckAccepted(t *testing.T) {
	pos := mustPosition(t, chess.Black,
		"....k...",
		"........",
		"........",
		"........",
		"....R...",
		"........",
		"........",
		"....K...",
	)
	if !pos.InCheck() {
		t.Error("expected Black to be in check")
	}
	for _, m := range pos.LegalMoves() {
		if m.Captured.Kind == chess.King {
			t.Errorf("legal move %s captures a king", m)
		}
	}
}

func TestNewPositionFromBoard_BadSide(t *testing.T) {
	_, err := NewPositionFromBoard(*chess.NewInitialBoard(), chess.Colour(7))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)
}

func TestApply(t *testing.T) {
	pos := NewPosition()
	move := pos.NewMove(sq("e2"), sq("e4"))
	pos.Apply(move)

	if got := pos.At(sq("e2")); got != chess.NoPiece {
		t.Errorf("At(e2) = %v, want empty", got)
	}
	if got := pos.At(sq("e4")); got != chess.W(chess.Pawn) {
		t.Errorf("At(e4) = %v, want wP", got)
	}
	if pos.ToMove() != chess.Black {
		t.Errorf("ToMove() = %v, want Black", pos.ToMove())
	}
	if h := pos.History(); len(h) != 1 || !h[0].Equal(move) {
		t.Errorf("History() = %v, want [e2e4]", h)
	}
}

func TestApplyUndo_KingSquares(t *testing.T) {
	pos := mustPosition(t, chess.White,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"...q....",
		"....K...",
	)

	capture := pos.NewMove(sq("e1"), sq("d2"))
	pos.Apply(capture)
	if got := pos.KingSquare(chess.White); got != sq("d2") {
		t.Fatalf("after Kxd2 KingSquare(White) = %v, want d2", got)
	}

	undone, ok := pos.Undo()
	if !ok || !undone.Equal(capture) {
		t.Fatalf("Undo() = %v, %v, want Kxd2, true", undone, ok)
	}
	// The king returns to the start square, not the end square.
	if got := pos.KingSquare(chess.White); got != sq("e1") {
		t.Errorf("after undo KingSquare(White) = %v, want e1", got)
	}
	if got := pos.At(sq("d2")); got != chess.B(chess.Queen) {
		t.Errorf("after undo At(d2) = %v, want bQ", got)
	}
	if got := pos.At(sq("e1")); got != chess.W(chess.King) {
		t.Errorf("after undo At(e1) = %v, want wK", got)
	}
}

func TestUndo_EmptyHistory(t *testing.T) {
	pos := NewPosition()
	before := pos.Board()

	if _, ok := pos.Undo(); ok {
		t.Error("Undo() on empty history returned true")
	}
	if pos.Board() != before || pos.ToMove() != chess.White {
		t.Error("Undo() on empty history changed the position")
	}
}

type positionState struct {
	board     chess.Board
	toMove    chess.Colour
	whiteKing chess.Square
	blackKing chess.Square
}

func stateOf(p *Position) positionState {
	return positionState{
		board:     p.Board(),
		toMove:    p.ToMove(),
		whiteKing: p.KingSquare(chess.White),
		blackKing: p.KingSquare(chess.Black),
	}
}

// checkRoundTrip applies and undoes every legal move down to depth and
// verifies the position is restored exactly each time.
func checkRoundTrip(t *testing.T, pos *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	for _, m := range pos.LegalMoves() {
		before := stateOf(pos)
		pos.Apply(m)
		checkRoundTrip(t, pos, depth-1)
		pos.Undo()
		if after := stateOf(pos); after != before {
			t.Fatalf("apply/undo of %s changed the position at ply %d", m, pos.Ply())
		}
	}
}

func TestApplyUndo_RoundTrip(t *testing.T) {
	t.Run("initial position", func(t *testing.T) {
		checkRoundTrip(t, NewPosition(), 3)
	})
	t.Run("king walks", func(t *testing.T) {
		pos := mustPosition(t, chess.White,
			"r...k..r",
			"p..q...p",
			"........",
			"...n....",
			"....N...",
			"........",
			"P..Q...P",
			"R...K..R",
		)
		checkRoundTrip(t, pos, 3)
	})
}

func TestClone_Independent(t *testing.T) {
	pos := NewPosition()
	pos.Apply(pos.NewMove(sq("e2"), sq("e4")))

	clone := pos.Clone()
	clone.Apply(clone.NewMove(sq("e7"), sq("e5")))

	if pos.Ply() != 1 || clone.Ply() != 2 {
		t.Errorf("Ply() = %d / %d, want 1 / 2", pos.Ply(), clone.Ply())
	}
	if pos.At(sq("e5")) != chess.NoPiece {
		t.Error("applying to the clone changed the original board")
	}
	clone.Undo()
	clone.Undo()
	if pos.Ply() != 1 {
		t.Error("undoing on the clone changed the original history")
	}
}

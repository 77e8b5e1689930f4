package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestWriteBoard_Initial(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBoard(&buf, chess.NewInitialBoard(), true); err != nil {
		t.Fatalf("WriteBoard: %v", err)
	}
	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
	}, "\n") + "\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestWriteBoard_NoCoordinates(t *testing.T) {
	board := testutil.MustBoard(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K..Q",
	)
	var buf bytes.Buffer
	if err := WriteBoard(&buf, &board, false); err != nil {
		t.Fatalf("WriteBoard: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	testutil.AssertEqual(t, lines[0], ". . . . k . . .")
	testutil.AssertEqual(t, lines[7], ". . . . K . . Q")
}

func TestFormatMoves(t *testing.T) {
	board := chess.NewInitialBoard()
	moves := []chess.Move{
		chess.NewMove(chess.MustParseSquare("e2"), chess.MustParseSquare("e4"), board),
		chess.NewMove(chess.MustParseSquare("g1"), chess.MustParseSquare("f3"), board),
	}

	testutil.AssertEqual(t, FormatMoves(moves, config.CoordinateNotation), []string{"e2e4", "g1f3"})
	testutil.AssertEqual(t, FormatMoves(moves, config.ShortNotation), []string{"e4", "Nf3"})
}

func TestWriteMoves(t *testing.T) {
	var buf bytes.Buffer
	WriteMoves(&buf, nil, config.CoordinateNotation)
	testutil.AssertEqual(t, buf.String(), "(none)\n")
}

func TestLineWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf, 10)
	for _, s := range []string{"e2e4", "d2d4", "g1f3"} {
		lw.Write(s)
	}
	lw.NewLine()
	testutil.AssertEqual(t, buf.String(), "e2e4 d2d4\ng1f3\n")
}

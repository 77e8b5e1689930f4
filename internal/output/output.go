// Package output formats boards, move lists and perft reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
)

// LineWriter writes space separated tokens, wrapping before a line would
// exceed its maximum length.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, adding a space separator if needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatMove writes a move in the given notation.
func FormatMove(m chess.Move, notation config.Notation) string {
	if notation == config.ShortNotation {
		return chess.Notation(m)
	}
	return m.String()
}

// FormatMoves formats every move in order.
func FormatMoves(moves []chess.Move, notation config.Notation) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = FormatMove(m, notation)
	}
	return out
}

// WriteMoves writes a move list wrapped at 80 columns, followed by a
// newline. An empty list writes "(none)".
func WriteMoves(w io.Writer, moves []chess.Move, notation config.Notation) {
	lw := NewLineWriter(w, 80)
	if len(moves) == 0 {
		lw.Write("(none)")
	}
	for _, s := range FormatMoves(moves, notation) {
		lw.Write(s)
	}
	lw.NewLine()
}

// pieceChar returns the diagram character of a piece: upper case for
// White, lower case for Black, '.' for an empty square.
func pieceChar(p chess.Piece) string {
	if p.IsEmpty() {
		return "."
	}
	letter := p.Kind.Letter()
	if p.Kind == chess.Pawn {
		letter = "P"
	}
	if p.Colour == chess.Black {
		return strings.ToLower(letter)
	}
	return letter
}

// WriteBoard writes a text diagram of board with rank 8 at the top. With
// coordinates set, ranks are labelled on the left and files underneath.
func WriteBoard(w io.Writer, board *chess.Board, coordinates bool) error {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if coordinates {
			sb.WriteByte(chess.RowToRank(row))
			sb.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(pieceChar(board.Squares[row][col]))
		}
		sb.WriteByte('\n')
	}
	if coordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

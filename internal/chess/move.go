package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Move is a single from/to transition together with a snapshot of the
// pieces that stood on both squares when it was built. Moves carry no
// behaviour beyond their own fields.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece on From before the move.
	Moved Piece

	// The piece on To before the move (NoPiece if none).
	Captured Piece
}

// NewMove creates a move from the pieces currently on board. The board is
// not modified.
func NewMove(from, to Square, board *Board) Move {
	return Move{
		From:     from,
		To:       to,
		Moved:    board.At(from),
		Captured: board.At(to),
	}
}

// ID returns the identifier derived from the four coordinates. Two moves
// are equal iff their identifiers are equal.
func (m Move) ID() int {
	return m.From.row*1000 + m.From.col*100 + m.To.row*10 + m.To.col
}

// Equal reports whether m and other have the same identifier.
func (m Move) Equal(other Move) bool {
	return m.ID() == other.ID()
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Notation renders the minimal algebraic form: the moved piece's letter
// (empty for pawns) followed by the destination square.
func Notation(m Move) string {
	return m.Moved.Kind.Letter() + m.To.String()
}

// ParseCoordinateMove parses coordinate move text such as "e2e4" or "e2-e4".
func ParseCoordinateMove(text string) (from, to Square, err error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(s) != 4 {
		return Square{}, Square{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
	}
	from, err = ParseSquare(s[:2])
	if err != nil {
		return Square{}, Square{}, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrInvalidMoveText)
	}
	to, err = ParseSquare(s[2:])
	if err != nil {
		return Square{}, Square{}, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrInvalidMoveText)
	}
	return from, to, nil
}

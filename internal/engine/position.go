// Package engine provides position state, move generation and legality
// filtering.
package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Pin records a friendly piece standing between its king and an enemy
// slider. The piece may only move along Dir, measured from the king.
type Pin struct {
	Square chess.Square
	Dir    chess.Direction
}

// Check records an attacker giving check. Dir points from the king towards
// the attacker and is zero for knight checks.
type Check struct {
	Attacker chess.Square
	Dir      chess.Direction
}

// Position is the authoritative game state. It is mutated in place through
// Apply and Undo only and has no synchronisation of its own; concurrent
// readers must work on a Clone.
type Position struct {
	board  chess.Board
	toMove chess.Colour

	// Keep track of where the two kings are for check detection.
	whiteKing chess.Square
	blackKing chess.Square

	history []chess.Move

	// Check state for the side to move, refreshed by DetectChecksAndPins.
	inCheck bool
	pins    []Pin
	checks  []Check
}

// NewPosition creates a position holding the standard starting arrangement
// with White to move.
func NewPosition() *Position {
	pos, err := NewPositionFromBoard(*chess.NewInitialBoard(), chess.White)
	if err != nil {
		panic(err)
	}
	return pos
}

// NewPositionFromBoard creates a position from an arbitrary board. The board
// must hold exactly one king of each colour, and the side not to move must
// not be in check, since its king could otherwise be captured.
func NewPositionFromBoard(board chess.Board, toMove chess.Colour) (*Position, error) {
	if toMove != chess.White && toMove != chess.Black {
		return nil, fmt.Errorf("side to move %d: %w", toMove, errors.ErrInvalidPosition)
	}
	p := &Position{board: board, toMove: toMove}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := board.Kings(colour)
		if len(kings) != 1 {
			return nil, fmt.Errorf("%d %s kings: %w", len(kings), colour, errors.ErrInvalidPosition)
		}
		p.setKing(colour, kings[0])
	}
	if p.AttackedBy(p.KingSquare(toMove.Opposite()), toMove) {
		return nil, fmt.Errorf("%s to move but %s is in check: %w", toMove, toMove.Opposite(), errors.ErrInvalidPosition)
	}
	return p, nil
}

// Board returns a copy of the current board.
func (p *Position) Board() chess.Board {
	return p.board
}

// At returns the piece on sq.
func (p *Position) At(sq chess.Square) chess.Piece {
	return p.board.At(sq)
}

// ToMove returns the side to move.
func (p *Position) ToMove() chess.Colour {
	return p.toMove
}

// KingSquare returns the square of the given colour's king.
func (p *Position) KingSquare(colour chess.Colour) chess.Square {
	if colour == chess.White {
		return p.whiteKing
	}
	return p.blackKing
}

// History returns a copy of the applied moves, oldest first.
func (p *Position) History() []chess.Move {
	h := make([]chess.Move, len(p.history))
	copy(h, p.history)
	return h
}

// Ply returns the number of applied moves.
func (p *Position) Ply() int {
	return len(p.history)
}

// NewMove builds a move against the current board.
func (p *Position) NewMove(from, to chess.Square) chess.Move {
	return chess.NewMove(from, to, &p.board)
}

// Apply makes a move. The move must have been built against the current
// board; no legality check is performed.
func (p *Position) Apply(move chess.Move) {
	p.board.Set(move.From, chess.NoPiece)
	p.board.Set(move.To, move.Moved)
	p.history = append(p.history, move)

	if move.Moved.Kind == chess.King {
		p.setKing(move.Moved.Colour, move.To)
	}
	p.toMove = p.toMove.Opposite()
}

// Undo takes back the last applied move. With an empty history it does
// nothing and returns false.
func (p *Position) Undo() (chess.Move, bool) {
	if len(p.history) == 0 {
		return chess.Move{}, false
	}
	move := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.board.Set(move.From, move.Moved)
	p.board.Set(move.To, move.Captured)

	// The king goes back to where the move started.
	if move.Moved.Kind == chess.King {
		p.setKing(move.Moved.Colour, move.From)
	}
	p.toMove = p.toMove.Opposite()
	return move, true
}

// Clone returns an independent deep copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	c.history = p.History()
	c.pins = append([]Pin(nil), p.pins...)
	c.checks = append([]Check(nil), p.checks...)
	return &c
}

func (p *Position) setKing(colour chess.Colour, sq chess.Square) {
	if colour == chess.White {
		p.whiteKing = sq
	} else {
		p.blackKing = sq
	}
}

// Package game wraps a Position in an interactive session that accepts or
// rejects moves by origin and destination square.
package game

import (
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Game is a single play session. It is not safe for concurrent use.
type Game struct {
	ID  uuid.UUID
	pos *engine.Position
	cfg *config.Config

	// legal is the cached legal move list for the current position; nil
	// after every apply or undo.
	legal []chess.Move
}

// New starts a game from the initial position.
func New(cfg *config.Config) *Game {
	return newGame(engine.NewPosition(), cfg)
}

// NewFromPosition starts a game from an arbitrary position. The game takes
// ownership of pos.
func NewFromPosition(pos *engine.Position, cfg *config.Config) *Game {
	return newGame(pos, cfg)
}

func newGame(pos *engine.Position, cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{ID: uuid.New(), pos: pos, cfg: cfg}
	g.cfg.Logf(config.Commentary, "game %s: started, %s to move", g.ID, pos.ToMove())
	return g
}

// CurrentBoard returns a copy of the board.
func (g *Game) CurrentBoard() chess.Board {
	return g.pos.Board()
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.pos.ToMove()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.pos.InCheck()
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []chess.Move {
	return g.pos.History()
}

// Position returns a clone of the current position.
func (g *Game) Position() *engine.Position {
	return g.pos.Clone()
}

// LegalMoves returns the legal moves for the side to move. The result is
// computed once per position and copied on every call.
func (g *Game) LegalMoves() []chess.Move {
	if g.legal == nil {
		g.legal = g.pos.LegalMoves()
	}
	return slices.Clone(g.legal)
}

// TryMove plays the legal move from -> to. If no legal move has that
// origin and destination the game is unchanged and the error wraps
// errors.ErrIllegalMove.
func (g *Game) TryMove(from, to chess.Square) (chess.Move, error) {
	attempt := g.pos.NewMove(from, to)
	legal := g.LegalMoves()
	i := slices.IndexFunc(legal, func(m chess.Move) bool { return m.Equal(attempt) })
	if i < 0 {
		g.cfg.Logf(config.Commentary, "game %s: rejected %s", g.ID, attempt)
		return chess.Move{}, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			GameID:   g.ID.String(),
			PlyNum:   g.pos.Ply() + 1,
			MoveText: attempt.String(),
		}
	}

	m := legal[i]
	g.pos.Apply(m)
	g.legal = nil
	g.cfg.Logf(config.Commentary, "game %s: ply %d %s", g.ID, g.pos.Ply(), m)
	return m, nil
}

// TryMoveText parses coordinate text such as "e2e4" and plays it.
func (g *Game) TryMoveText(text string) (chess.Move, error) {
	from, to, err := chess.ParseCoordinateMove(text)
	if err != nil {
		return chess.Move{}, &errors.MoveError{
			Err:      err,
			GameID:   g.ID.String(),
			PlyNum:   g.pos.Ply() + 1,
			MoveText: text,
		}
	}
	return g.TryMove(from, to)
}

// UndoLast takes back the most recent move. It returns false when no move
// has been played.
func (g *Game) UndoLast() (chess.Move, bool) {
	m, ok := g.pos.Undo()
	if !ok {
		return chess.Move{}, false
	}
	g.legal = nil
	g.cfg.Logf(config.Commentary, "game %s: undo %s", g.ID, m)
	return m, true
}

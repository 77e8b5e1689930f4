package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// LegalMoves returns the legal moves for the side to move.
//
// Out of check every pseudo-legal move is kept. Under a single check a
// non-king move must capture the checker or interpose on its ray. Under
// double check only king moves remain. Pinned pieces are confined to the
// line through their king in every case.
func (p *Position) LegalMoves() []chess.Move {
	p.DetectChecksAndPins()
	pseudo := p.PseudoLegalMoves()
	if len(p.checks) == 0 && len(p.pins) == 0 {
		return pseudo
	}

	var blocking [chess.BoardSize * chess.BoardSize]bool
	if len(p.checks) == 1 {
		for _, sq := range p.BlockingSquares(p.checks[0]) {
			blocking[sq.Index()] = true
		}
	}

	king := p.KingSquare(p.toMove)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if m.Moved.Kind == chess.King {
			legal = append(legal, m)
			continue
		}
		if len(p.checks) > 1 {
			continue
		}
		if len(p.checks) == 1 && !blocking[m.To.Index()] {
			continue
		}
		if pin, ok := p.pinAt(m.From); ok && !pin.Dir.Contains(king, m.To) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

// BlockingSquares returns the squares a non-king move may land on to
// resolve check c: the ray from the king up to and including the attacker,
// or only the attacker for a knight check.
func (p *Position) BlockingSquares(c Check) []chess.Square {
	if c.Dir.IsZero() {
		return []chess.Square{c.Attacker}
	}
	king := p.KingSquare(p.toMove)
	var squares []chess.Square
	for n := 1; ; n++ {
		sq, ok := king.Step(c.Dir, n)
		if !ok {
			break
		}
		squares = append(squares, sq)
		if sq == c.Attacker {
			break
		}
	}
	return squares
}

func (p *Position) pinAt(sq chess.Square) (Pin, bool) {
	for _, pin := range p.pins {
		if pin.Square == sq {
			return pin, true
		}
	}
	return Pin{}, false
}

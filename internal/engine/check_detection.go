package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// DetectChecksAndPins recomputes the check and pin state of the side to
// move. Rays are cast from the king in all eight directions: the first
// friendly piece on a ray is a pin candidate, and the first enemy piece
// either checks, pins the candidate, or blocks the ray, depending on
// whether it can attack along that direction. Knight checks are probed
// separately and carry a zero direction.
func (p *Position) DetectChecksAndPins() {
	us := p.toMove
	king := p.KingSquare(us)

	p.pins = p.pins[:0]
	p.checks = p.checks[:0]

	for _, d := range chess.AllDirections {
		var candidate chess.Square
		shielded := false
		for n := 1; ; n++ {
			sq, ok := king.Step(d, n)
			if !ok {
				break
			}
			piece := p.board.At(sq)
			if piece.IsEmpty() {
				continue
			}
			if piece.Colour == us {
				if shielded {
					break // Two friendly pieces: no pin
				}
				candidate, shielded = sq, true
				continue
			}
			if attacksAlong(piece, d, n) {
				if shielded {
					p.pins = append(p.pins, Pin{Square: candidate, Dir: d})
				} else {
					p.checks = append(p.checks, Check{Attacker: sq, Dir: d})
				}
			}
			break
		}
	}

	knight := chess.NewPiece(chess.Knight, us.Opposite())
	for _, d := range chess.KnightOffsets {
		sq, ok := king.Offset(d.DRow, d.DCol)
		if ok && p.board.At(sq) == knight {
			p.checks = append(p.checks, Check{Attacker: sq})
		}
	}

	p.inCheck = len(p.checks) > 0
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	p.DetectChecksAndPins()
	return p.inCheck
}

// Checks returns the checks against the side to move.
func (p *Position) Checks() []Check {
	p.DetectChecksAndPins()
	return append([]Check(nil), p.checks...)
}

// Pins returns the pinned pieces of the side to move.
func (p *Position) Pins() []Pin {
	p.DetectChecksAndPins()
	return append([]Pin(nil), p.pins...)
}

// IsAttacked reports whether sq is attacked by the opponent of the side
// to move.
func (p *Position) IsAttacked(sq chess.Square) bool {
	return p.attacked(sq, p.toMove.Opposite(), sq)
}

// AttackedBy reports whether sq is attacked by a piece of the given colour.
func (p *Position) AttackedBy(sq chess.Square, by chess.Colour) bool {
	return p.attacked(sq, by, sq)
}

// attacked reports whether target is attacked by colour by. The square
// ignore is treated as empty; passing target itself ignores nothing.
func (p *Position) attacked(target chess.Square, by chess.Colour, ignore chess.Square) bool {
	knight := chess.NewPiece(chess.Knight, by)
	for _, d := range chess.KnightOffsets {
		sq, ok := target.Offset(d.DRow, d.DCol)
		if ok && p.board.At(sq) == knight {
			return true
		}
	}

	for _, d := range chess.AllDirections {
		for n := 1; ; n++ {
			sq, ok := target.Step(d, n)
			if !ok {
				break
			}
			if sq == ignore {
				continue
			}
			piece := p.board.At(sq)
			if piece.IsEmpty() {
				continue
			}
			if piece.Colour == by && attacksAlong(piece, d, n) {
				return true
			}
			break // Blocked
		}
	}
	return false
}

// attacksAlong reports whether piece, found dist squares from a target
// along d, attacks that target. d points from the target to the piece.
func attacksAlong(piece chess.Piece, d chess.Direction, dist int) bool {
	switch piece.Kind {
	case chess.King:
		return dist == 1
	case chess.Queen:
		return true
	case chess.Rook:
		return d.IsOrthogonal()
	case chess.Bishop:
		return d.IsDiagonal()
	case chess.Pawn:
		// A pawn attacks diagonally forward, so it sits behind its target.
		return dist == 1 && d.IsDiagonal() && d.DRow == -piece.Colour.Forward()
	}
	return false
}

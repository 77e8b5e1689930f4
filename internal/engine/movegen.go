package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// PseudoLegalMoves returns every move for the side to move that satisfies
// piece geometry and occupancy, without regard to pins or checks. King
// moves are already restricted to squares the opponent does not attack.
func (p *Position) PseudoLegalMoves() []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.MustSquare(row, col)
			piece := p.board.At(from)
			if !piece.Is(p.toMove) {
				continue
			}
			moves = p.appendPieceMoves(moves, from, piece)
		}
	}
	return moves
}

// appendPieceMoves dispatches on piece kind.
func (p *Position) appendPieceMoves(moves []chess.Move, from chess.Square, piece chess.Piece) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return p.appendPawnMoves(moves, from, piece.Colour)
	case chess.Knight:
		return p.appendStepMoves(moves, from, piece.Colour, chess.KnightOffsets[:])
	case chess.Bishop:
		return p.appendSlidingMoves(moves, from, piece.Colour, chess.Diagonals[:])
	case chess.Rook:
		return p.appendSlidingMoves(moves, from, piece.Colour, chess.Orthogonals[:])
	case chess.Queen:
		return p.appendSlidingMoves(moves, from, piece.Colour, chess.AllDirections[:])
	case chess.King:
		return p.appendKingMoves(moves, from, piece.Colour)
	}
	return moves
}

// appendPawnMoves generates pushes and diagonal captures.
func (p *Position) appendPawnMoves(moves []chess.Move, from chess.Square, colour chess.Colour) []chess.Move {
	dir := colour.Forward()

	if one, ok := from.Offset(dir, 0); ok && p.board.At(one).IsEmpty() {
		moves = append(moves, p.NewMove(from, one))

		// Double push from the home row
		if from.Row() == colour.HomeRow() {
			if two, ok := from.Offset(2*dir, 0); ok && p.board.At(two).IsEmpty() {
				moves = append(moves, p.NewMove(from, two))
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		if p.board.At(to).Is(colour.Opposite()) {
			moves = append(moves, p.NewMove(from, to))
		}
	}
	return moves
}

// appendStepMoves generates single-step moves to empty or enemy squares.
func (p *Position) appendStepMoves(moves []chess.Move, from chess.Square, colour chess.Colour, offsets []chess.Direction) []chess.Move {
	for _, d := range offsets {
		to, ok := from.Offset(d.DRow, d.DCol)
		if !ok || p.board.At(to).Is(colour) {
			continue
		}
		moves = append(moves, p.NewMove(from, to))
	}
	return moves
}

// appendSlidingMoves walks each ray until it leaves the board or meets a
// piece. An enemy piece ends the ray with a capture.
func (p *Position) appendSlidingMoves(moves []chess.Move, from chess.Square, colour chess.Colour, dirs []chess.Direction) []chess.Move {
	for _, d := range dirs {
		for n := 1; ; n++ {
			to, ok := from.Step(d, n)
			if !ok {
				break
			}
			target := p.board.At(to)
			if target.Is(colour) {
				break
			}
			moves = append(moves, p.NewMove(from, to))
			if !target.IsEmpty() {
				break // Capture
			}
		}
	}
	return moves
}

// appendKingMoves generates king steps onto squares the opponent does not
// attack. The king's own square is treated as empty while testing, so it
// cannot retreat along the ray of a checking slider.
func (p *Position) appendKingMoves(moves []chess.Move, from chess.Square, colour chess.Colour) []chess.Move {
	for _, d := range chess.AllDirections {
		to, ok := from.Offset(d.DRow, d.DCol)
		if !ok || p.board.At(to).Is(colour) {
			continue
		}
		if p.attacked(to, colour.Opposite(), from) {
			continue
		}
		moves = append(moves, p.NewMove(from, to))
	}
	return moves
}

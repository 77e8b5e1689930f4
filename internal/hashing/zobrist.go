// Package hashing provides Zobrist position keys and a perft transposition
// cache.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

const numKinds = int(chess.Queen) + 1

// Zobrist tables, indexed [colour][kind][square]. Filled once at init from
// a fixed seed so keys are reproducible across runs.
var (
	zobristPiece [2][numKinds][chess.BoardSize * chess.BoardSize]uint64
	zobristSide  uint64 // XORed in when Black is to move
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for colour := range zobristPiece {
		for kind := 1; kind < numKinds; kind++ {
			for sq := range zobristPiece[colour][kind] {
				zobristPiece[colour][kind][sq] = rnd.Uint64()
			}
		}
	}
	zobristSide = rnd.Uint64()
}

// Key returns the Zobrist key of a board with the given side to move.
func Key(board *chess.Board, toMove chess.Colour) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			key ^= zobristPiece[p.Colour][p.Kind][row*chess.BoardSize+col]
		}
	}
	if toMove == chess.Black {
		key ^= zobristSide
	}
	return key
}

// MoveDelta returns the value to XOR into a key to apply move: it removes
// the moved and captured pieces from their squares, places the moved piece
// on the destination and flips the side to move. XORing it again undoes
// the move.
func MoveDelta(m chess.Move) uint64 {
	from, to := m.From.Index(), m.To.Index()
	delta := zobristPiece[m.Moved.Colour][m.Moved.Kind][from] ^
		zobristPiece[m.Moved.Colour][m.Moved.Kind][to] ^
		zobristSide
	if !m.Captured.IsEmpty() {
		delta ^= zobristPiece[m.Captured.Colour][m.Captured.Kind][to]
	}
	return delta
}

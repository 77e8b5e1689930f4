package chess

// Board is an 8x8 grid of pieces indexed [row][col]. It is a value type:
// assigning a Board copies the grid, and two boards holding the same pieces
// compare equal with ==.
type Board struct {
	// Squares must only hold normalised pieces: every empty square is
	// NoPiece. Writes should go through Set, which normalises its argument;
	// Key and board equality rely on this.
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting arrangement.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// At returns the piece on sq.
func (b *Board) At(sq Square) Piece {
	return b.Squares[sq.row][sq.col]
}

// Set places a piece on sq.
func (b *Board) Set(sq Square, piece Piece) {
	b.Squares[sq.row][sq.col] = NewPiece(piece.Kind, piece.Colour)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Kings returns every square holding a king of the given colour.
func (b *Board) Kings(colour Colour) []Square {
	var kings []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.Kind == King && p.Colour == colour {
				kings = append(kings, Square{row: row, col: col})
			}
		}
	}
	return kings
}

// Count returns the number of pieces of the given colour, kings included.
func (b *Board) Count(colour Colour) int {
	n := 0
	for row := range b.Squares {
		for _, p := range b.Squares[row] {
			if p.Is(colour) {
				n++
			}
		}
	}
	return n
}

// Package chess provides the core value types of the rules engine: colours,
// pieces, squares, directions, boards and moves.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance for this colour.
// Row 0 is rank 8, so White pawns move towards lower rows.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the row this colour's pawns start on.
func (c Colour) HomeRow() int {
	if c == White {
		return 6
	}
	return 1
}

// Kind represents a chess piece type without colour.
type Kind int

const (
	Empty Kind = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the notation letter of a kind. Pawns and empty squares
// have no letter.
func (k Kind) Letter() string {
	switch k {
	case King:
		return "K"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	default:
		return ""
	}
}

// IsSlider reports whether the kind moves along rays.
func (k Kind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// Piece is a tagged value of kind and colour. The colour of an empty piece
// is meaningless and always normalised to the zero value.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// NewPiece creates a piece, normalising empty pieces to NoPiece.
func NewPiece(kind Kind, colour Colour) Piece {
	if kind == Empty {
		return NoPiece
	}
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty reports whether the piece is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether the piece is non-empty and of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p.Kind != Empty && p.Colour == colour
}

// String returns a two letter code such as "wK", or "--" for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "--"
	}
	code := "w"
	if p.Colour == Black {
		code = "b"
	}
	if p.Kind == Pawn {
		return code + "P"
	}
	return code + p.Kind.Letter()
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

package output

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
)

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Move     string `json:"move"`
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
}

// JSONDivide is one root move of a perft report.
type JSONDivide struct {
	JSONMove
	Nodes uint64 `json:"nodes"`
}

// JSONPerft represents a perft report in JSON format.
type JSONPerft struct {
	Depth     int          `json:"depth"`
	Nodes     uint64       `json:"nodes"`
	ElapsedMS int64        `json:"elapsedMs"`
	Divide    []JSONDivide `json:"divide,omitempty"`
}

// MoveToJSON converts a move, naming it in the given notation.
func MoveToJSON(m chess.Move, notation config.Notation) JSONMove {
	jm := JSONMove{
		Move:  FormatMove(m, notation),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: m.Moved.Kind.String(),
	}
	if m.IsCapture() {
		jm.Captured = m.Captured.Kind.String()
	}
	return jm
}

// ReportToJSON converts a perft report to JSON format.
func ReportToJSON(r *Report, notation config.Notation) *JSONPerft {
	jp := &JSONPerft{
		Depth:     r.Depth,
		Nodes:     r.Nodes,
		ElapsedMS: r.Elapsed.Milliseconds(),
	}
	for _, e := range r.Divide {
		jp.Divide = append(jp.Divide, JSONDivide{
			JSONMove: MoveToJSON(e.Move, notation),
			Nodes:    e.Nodes,
		})
	}
	return jp
}

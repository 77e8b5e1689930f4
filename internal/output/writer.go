package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Report is the outcome of one perft run.
type Report struct {
	Depth   int
	Nodes   uint64
	Divide  []engine.DivideEntry // nil unless a divide was requested
	Elapsed time.Duration
}

// ReportWriter is the interface for writing perft reports.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error
}

// TextWriter writes reports as plain text, one divide line per root move.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes the divide lines, then the total.
func (tw *TextWriter) WriteReport(r *Report) error {
	if err := WriteDivide(tw.w, r.Divide, tw.cfg.Output.Notation); err != nil {
		return err
	}
	_, err := fmt.Fprintf(tw.w, "perft(%d) = %d\n", r.Depth, r.Nodes)
	return err
}

// WriteDivide writes one "move: nodes" line per entry.
func WriteDivide(w io.Writer, entries []engine.DivideEntry, notation config.Notation) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", FormatMove(e.Move, notation), e.Nodes); err != nil {
			return err
		}
	}
	return nil
}

// JSONWriter writes each report as an indented JSON object.
type JSONWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteReport encodes r.
func (jw *JSONWriter) WriteReport(r *Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r, jw.cfg.Output.Notation))
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/tilegame/internal/api/response"
	"github.com/mcoot/tilegame/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Board:
		o.printBoard(v)
	case response.Evaluation:
		o.printEvaluation(v)
	case response.PlaceResponse:
		o.printEvaluation(v.Evaluation)
		fmt.Fprintln(o.w)
		o.printBoard(v.Board)
	case response.HistoryResponse:
		fmt.Fprintf(o.w, "Squares changed: %d\n\n", len(v.Tiles))
		o.printBoard(v.Board)
	case response.Candidates:
		o.printCandidates(v)
	case response.MoveResponse:
		o.printMove(v)
	case response.Layouts:
		for _, name := range v.Names {
			fmt.Fprintln(o.w, name)
		}
	case model.Layout:
		o.printLayout(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
		fmt.Fprintf(o.w, "Dictionary: %d words\n", v.Dictionary)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printBoard(b response.Board) {
	if len(b.Rows) == 0 {
		return
	}
	size := len(b.Rows)

	// Column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, "%2d", col)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("--", size) + "-+"
	fmt.Fprintln(o.w, border)
	for row, line := range b.Rows {
		fmt.Fprintf(o.w, "%2d |", row)
		for _, r := range line {
			fmt.Fprintf(o.w, " %c", r)
		}
		fmt.Fprintln(o.w, " |")
	}
	fmt.Fprintln(o.w, border)
	fmt.Fprintf(o.w, "Tiles: %d\n", b.Tiles)
}

func (o *Output) printEvaluation(e response.Evaluation) {
	if !e.Accepted {
		fmt.Fprintf(o.w, "Rejected: %s\n", e.Reason)
		return
	}
	fmt.Fprintf(o.w, "Score: %d\n", e.Score)
	for _, w := range e.Words {
		fmt.Fprintf(o.w, "  %-15s %3d  at %d,%d %s\n", w.Word, w.Score, w.Row, w.Col, direction(w.Horizontal))
	}
}

func (o *Output) printCandidates(c response.Candidates) {
	if len(c.Words) == 0 {
		fmt.Fprintln(o.w, "No candidate words")
		return
	}
	fmt.Fprintf(o.w, "Candidates (%d):\n", len(c.Words))
	for _, w := range c.Words {
		fmt.Fprintf(o.w, "  %s\n", w)
	}
}

func (o *Output) printMove(m response.MoveResponse) {
	if !m.Found || m.Move == nil {
		fmt.Fprintln(o.w, "No scoring move; pass")
		return
	}
	mv := m.Move
	fmt.Fprintf(o.w, "Move: %s at %d,%d %s\n", mv.Word, mv.Row, mv.Col, direction(mv.Horizontal))
	fmt.Fprintf(o.w, "Tiles: %s\n", mv.Letters)
	fmt.Fprintf(o.w, "Score: %d\n", mv.Score)
}

func (o *Output) printLayout(l model.Layout) {
	fmt.Fprintf(o.w, "Layout: %s\n", l.Name)
	letterRows, wordRows := l.LetterRows(), l.WordRows()
	fmt.Fprintf(o.w, "%-*s  %s\n", model.BoardSize, "letter", "word")
	for i := range letterRows {
		fmt.Fprintf(o.w, "%s  %s\n", letterRows[i], wordRows[i])
	}
}

func direction(horizontal bool) string {
	if horizontal {
		return "across"
	}
	return "down"
}

package model

import (
	"fmt"
	"strings"
)

// Layout holds the premium-square multipliers for a grid
type Layout struct {
	Name              string                    `json:"name"`
	LetterMultipliers [BoardSize][BoardSize]int `json:"letter_multipliers"`
	WordMultipliers   [BoardSize][BoardSize]int `json:"word_multipliers"`
}

// DefaultLayoutName is the name the standard layout is registered under
const DefaultLayoutName = "standard"

// Standard premium layout, one digit per square
var (
	defaultLetterRows = []string{
		"111211111112111",
		"111113111311111",
		"111111212111111",
		"211111121111112",
		"111111111111111",
		"131113111311131",
		"112111212111211",
		"111211111112111",
		"112111212111211",
		"131113111311131",
		"111111111111111",
		"211111121111112",
		"111111212111111",
		"111113111311111",
		"111211111112111",
	}
	defaultWordRows = []string{
		"311111131111113",
		"121111111111121",
		"112111111111211",
		"111211111112111",
		"111121111121111",
		"111111111111111",
		"111111111111111",
		"311111121111113",
		"111111111111111",
		"111111111111111",
		"111121111121111",
		"111211111112111",
		"112111111111211",
		"121111111111121",
		"311111131111113",
	}
)

// NewLayout returns a layout with every multiplier set to 1
func NewLayout(name string) Layout {
	l := Layout{Name: name}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			l.LetterMultipliers[row][col] = 1
			l.WordMultipliers[row][col] = 1
		}
	}
	return l
}

// DefaultLayout returns the standard premium layout
func DefaultLayout() Layout {
	l, err := LayoutFromRows(DefaultLayoutName, defaultLetterRows, defaultWordRows)
	if err != nil {
		panic(fmt.Sprintf("default layout: %v", err))
	}
	return l
}

// LayoutFromRows parses two 15-row digit matrices into a Layout
func LayoutFromRows(name string, letterRows, wordRows []string) (Layout, error) {
	l := Layout{Name: name}
	if err := parseMultiplierRows(letterRows, &l.LetterMultipliers); err != nil {
		return Layout{}, fmt.Errorf("letter multipliers: %w", err)
	}
	if err := parseMultiplierRows(wordRows, &l.WordMultipliers); err != nil {
		return Layout{}, fmt.Errorf("word multipliers: %w", err)
	}
	return l, nil
}

func parseMultiplierRows(rows []string, dst *[BoardSize][BoardSize]int) error {
	if len(rows) != BoardSize {
		return fmt.Errorf("%w: want %d rows, got %d", ErrInvalidLayout, BoardSize, len(rows))
	}
	for row, line := range rows {
		if len(line) != BoardSize {
			return fmt.Errorf("%w: row %d has %d squares", ErrInvalidLayout, row, len(line))
		}
		for col, ch := range line {
			if ch < '1' || ch > '9' {
				return fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidLayout, ch, row, col)
			}
			dst[row][col] = int(ch - '0')
		}
	}
	return nil
}

// Set assigns a letter or word multiplier, ignoring off-grid positions and
// values outside 1-9. It reports whether the value was applied.
func (l *Layout) Set(kind MultiplierKind, pos Position, value int) bool {
	if !pos.InBounds() || value < 1 || value > 9 {
		return false
	}
	switch kind {
	case MultiplierLetter:
		l.LetterMultipliers[pos.Row][pos.Col] = value
	case MultiplierWord:
		l.WordMultipliers[pos.Row][pos.Col] = value
	default:
		return false
	}
	return true
}

// LetterRows renders the letter multipliers as digit rows
func (l Layout) LetterRows() []string {
	return multiplierRows(&l.LetterMultipliers)
}

// WordRows renders the word multipliers as digit rows
func (l Layout) WordRows() []string {
	return multiplierRows(&l.WordMultipliers)
}

func multiplierRows(src *[BoardSize][BoardSize]int) []string {
	rows := make([]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		var sb strings.Builder
		for col := 0; col < BoardSize; col++ {
			fmt.Fprintf(&sb, "%d", src[row][col])
		}
		rows[row] = sb.String()
	}
	return rows
}

// MultiplierKind distinguishes letter and word premium squares
type MultiplierKind string

const (
	MultiplierLetter MultiplierKind = "letter"
	MultiplierWord   MultiplierKind = "word"
)

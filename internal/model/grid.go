package model

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// BoardSize is the dimension of the square grid
	BoardSize = 15
	// RackSize is the number of tile slots on a rack
	RackSize = 7
)

// Center is the square every opening play must cover
var Center = Position{Row: 7, Col: 7}

// Position identifies a square on the grid
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// InBounds returns true if the position lies on the grid
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Neighbours returns the in-bounds orthogonal neighbours of p
func (p Position) Neighbours() []Position {
	candidates := [4]Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
	result := make([]Position, 0, 4)
	for _, c := range candidates {
		if c.InBounds() {
			result = append(result, c)
		}
	}
	return result
}

// Step returns the position n squares further along the given orientation
func (p Position) Step(horizontal bool, n int) Position {
	if horizontal {
		return Position{Row: p.Row, Col: p.Col + n}
	}
	return Position{Row: p.Row + n, Col: p.Col}
}

// Less orders positions row-major
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Surface is the letter and multiplier store the placement validator works against.
// Both Grid and Overlay implement it.
type Surface interface {
	Get(pos Position) rune
	Set(pos Position, letter rune)
	LetterMultiplier(pos Position) int
	WordMultiplier(pos Position) int
}

// Grid is the 15x15 board: placed letters plus the premium-square multipliers.
// A zero letter means the square is empty. Blank tiles are stored as the
// lowercase form of the letter they stand for.
type Grid struct {
	letters           [BoardSize][BoardSize]rune
	letterMultipliers [BoardSize][BoardSize]int
	wordMultipliers   [BoardSize][BoardSize]int
}

var _ Surface = (*Grid)(nil)

// NewGrid creates an empty grid using the given premium layout
func NewGrid(layout Layout) *Grid {
	g := &Grid{}
	g.ReplaceMultipliers(layout)
	return g
}

// NewDefaultGrid creates an empty grid with the standard premium layout
func NewDefaultGrid() *Grid {
	return NewGrid(DefaultLayout())
}

// Get returns the letter at pos, or 0 if the square is empty or off the grid
func (g *Grid) Get(pos Position) rune {
	if !pos.InBounds() {
		return 0
	}
	return g.letters[pos.Row][pos.Col]
}

// Set writes a letter at pos. Off-grid writes are ignored.
func (g *Grid) Set(pos Position, letter rune) {
	if !pos.InBounds() {
		return
	}
	g.letters[pos.Row][pos.Col] = letter
}

// LetterMultiplier returns the letter multiplier at pos (1 off the grid)
func (g *Grid) LetterMultiplier(pos Position) int {
	if !pos.InBounds() {
		return 1
	}
	return g.letterMultipliers[pos.Row][pos.Col]
}

// WordMultiplier returns the word multiplier at pos (1 off the grid)
func (g *Grid) WordMultiplier(pos Position) int {
	if !pos.InBounds() {
		return 1
	}
	return g.wordMultipliers[pos.Row][pos.Col]
}

// ReplaceMultipliers swaps in the multipliers of a new layout, leaving letters untouched
func (g *Grid) ReplaceMultipliers(layout Layout) {
	g.letterMultipliers = layout.LetterMultipliers
	g.wordMultipliers = layout.WordMultipliers
}

// Layout returns the grid's current multipliers as a Layout
func (g *Grid) Layout() Layout {
	return Layout{
		LetterMultipliers: g.letterMultipliers,
		WordMultipliers:   g.wordMultipliers,
	}
}

// IsEmpty returns true if the square at pos holds no letter
func (g *Grid) IsEmpty(pos Position) bool {
	return g.Get(pos) == 0
}

// IsBlank returns true if no square on the grid holds a letter
func (g *Grid) IsBlank() bool {
	return g.TileCount() == 0
}

// TileCount returns the number of occupied squares
func (g *Grid) TileCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if g.letters[row][col] != 0 {
				count++
			}
		}
	}
	return count
}

// Occupied returns every occupied square in row-major order
func (g *Grid) Occupied() []Cell {
	var cells []Cell
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if letter := g.letters[row][col]; letter != 0 {
				cells = append(cells, Cell{Pos: Position{Row: row, Col: col}, Letter: letter})
			}
		}
	}
	return cells
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Equal reports whether two grids hold the same letters and multipliers
func (g *Grid) Equal(other *Grid) bool {
	return *g == *other
}

// Rows renders the letters one string per row, '.' for empty squares
func (g *Grid) Rows() []string {
	rows := make([]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		var sb strings.Builder
		for col := 0; col < BoardSize; col++ {
			if letter := g.letters[row][col]; letter != 0 {
				sb.WriteRune(letter)
			} else {
				sb.WriteByte('.')
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// ParseGrid builds a default-layout grid from text rows. '.' and ' ' are empty
// squares, uppercase letters are regular tiles and lowercase letters are blanks.
// Fewer than BoardSize rows (or shorter rows) leave the remainder empty.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) > BoardSize {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidGrid, len(rows))
	}
	g := NewDefaultGrid()
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) > BoardSize {
			return nil, fmt.Errorf("%w: row %d has %d squares", ErrInvalidGrid, row, len(runes))
		}
		for col, r := range runes {
			if r == '.' || r == ' ' {
				continue
			}
			if !IsTileLetter(r) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidLetter, r, row, col)
			}
			g.letters[row][col] = r
		}
	}
	return g, nil
}

// IsTileLetter returns true for A-Z and for a-z (blank designations)
func IsTileLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// Normalize maps a grid letter to the uppercase letter used for dictionary lookups
func Normalize(r rune) rune {
	return unicode.ToUpper(r)
}

// Cell pairs a position with the letter it holds
type Cell struct {
	Pos    Position
	Letter rune
}

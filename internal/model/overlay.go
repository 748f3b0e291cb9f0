package model

import "sort"

// Overlay layers tentative writes over a read-only surface. Reads fall through
// to the base for squares the overlay has not written.
type Overlay struct {
	base   Surface
	writes map[Position]rune
}

var _ Surface = (*Overlay)(nil)

// NewOverlay creates an empty overlay over base
func NewOverlay(base Surface) *Overlay {
	return &Overlay{
		base:   base,
		writes: make(map[Position]rune),
	}
}

func (o *Overlay) Get(pos Position) rune {
	if letter, ok := o.writes[pos]; ok {
		return letter
	}
	return o.base.Get(pos)
}

// Set records a tentative write. Writing back the base letter drops the entry.
func (o *Overlay) Set(pos Position, letter rune) {
	if !pos.InBounds() {
		return
	}
	if o.base.Get(pos) == letter {
		delete(o.writes, pos)
		return
	}
	o.writes[pos] = letter
}

func (o *Overlay) LetterMultiplier(pos Position) int {
	return o.base.LetterMultiplier(pos)
}

func (o *Overlay) WordMultiplier(pos Position) int {
	return o.base.WordMultiplier(pos)
}

// Changes returns the overlay's writes in row-major order
func (o *Overlay) Changes() []Cell {
	cells := make([]Cell, 0, len(o.writes))
	for pos, letter := range o.writes {
		cells = append(cells, Cell{Pos: pos, Letter: letter})
	}
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Pos.Less(cells[j].Pos)
	})
	return cells
}

// Dirty reports whether the overlay holds any writes
func (o *Overlay) Dirty() bool {
	return len(o.writes) > 0
}

// Reset discards every tentative write
func (o *Overlay) Reset() {
	clear(o.writes)
}

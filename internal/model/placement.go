package model

// Placement is a proposed set of tiles for one turn. Positions and Tiles are
// parallel; a nil tile marks a square already on the board that the play runs
// through. Only non-nil tiles are written and earn multipliers.
type Placement struct {
	Positions []Position
	Tiles     []*Tile
}

// Add appends one square to the placement
func (p *Placement) Add(pos Position, tile *Tile) {
	p.Positions = append(p.Positions, pos)
	p.Tiles = append(p.Tiles, tile)
}

// Len returns the number of squares in the placement
func (p Placement) Len() int {
	return len(p.Positions)
}

// NewTileCount returns the number of tiles the placement puts down
func (p Placement) NewTileCount() int {
	count := 0
	for _, t := range p.Tiles {
		if t != nil {
			count++
		}
	}
	return count
}

// Cells returns the squares the placement writes, with their grid letters
func (p Placement) Cells() []Cell {
	cells := make([]Cell, 0, len(p.Tiles))
	for i, t := range p.Tiles {
		if t != nil && i < len(p.Positions) {
			cells = append(cells, Cell{Pos: p.Positions[i], Letter: t.Face()})
		}
	}
	return cells
}

// WordOccurrence is a word formed on the grid by a placement
type WordOccurrence struct {
	Word       string
	Score      int
	Start      Position
	End        Position
	Horizontal bool
}

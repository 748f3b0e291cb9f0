package model

import (
	"fmt"
	"strings"
	"unicode"
)

// BlankRune marks an undesignated blank tile in rack strings
const BlankRune = '?'

// Tile is a single playing piece. A blank carries the letter it was designated
// as, or 0 while it is still on a rack.
type Tile struct {
	Letter rune
	Blank  bool
}

// NewTile creates a regular tile
func NewTile(letter rune) *Tile {
	return &Tile{Letter: unicode.ToUpper(letter)}
}

// NewBlankTile creates a blank tile designated as the given letter
func NewBlankTile(letter rune) *Tile {
	return &Tile{Letter: unicode.ToUpper(letter), Blank: true}
}

// Face returns the rune written to the grid for this tile
func (t *Tile) Face() rune {
	if t.Blank {
		return unicode.ToLower(t.Letter)
	}
	return t.Letter
}

func (t *Tile) String() string {
	if t.Blank && t.Letter == 0 {
		return string(BlankRune)
	}
	return string(t.Face())
}

// TileFromFace is the inverse of Face
func TileFromFace(r rune) *Tile {
	if unicode.IsLower(r) {
		return NewBlankTile(r)
	}
	return NewTile(r)
}

// Rack is a fixed set of slots; empty slots are nil
type Rack [RackSize]*Tile

// ParseRack reads a rack from a string such as "TESTAB?" where '?' is a blank
func ParseRack(s string) (Rack, error) {
	var rack Rack
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > RackSize {
		return rack, fmt.Errorf("%w: %d tiles", ErrInvalidRack, len(runes))
	}
	for i, r := range runes {
		switch {
		case r == BlankRune || r == '_':
			rack[i] = &Tile{Blank: true}
		case unicode.IsLetter(r) && unicode.ToUpper(r) >= 'A' && unicode.ToUpper(r) <= 'Z':
			rack[i] = NewTile(r)
		default:
			return rack, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
		}
	}
	return rack, nil
}

// Tiles returns the occupied slots in order
func (r Rack) Tiles() []*Tile {
	tiles := make([]*Tile, 0, RackSize)
	for _, t := range r {
		if t != nil {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Letters returns the letters of the non-blank tiles
func (r Rack) Letters() []rune {
	letters := make([]rune, 0, RackSize)
	for _, t := range r {
		if t != nil && !t.Blank {
			letters = append(letters, t.Letter)
		}
	}
	return letters
}

func (r Rack) String() string {
	var sb strings.Builder
	for _, t := range r {
		if t != nil {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}

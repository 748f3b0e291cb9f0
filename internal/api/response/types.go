package response

import (
	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/bot"
	"github.com/mcoot/tilegame/internal/services/scoring"
)

// Board represents the live grid in API responses
type Board struct {
	Rows  []string `json:"rows"`
	Tiles int      `json:"tiles"`
}

// BoardFromModel converts a model.Grid to a response Board
func BoardFromModel(g *model.Grid) Board {
	return Board{
		Rows:  g.Rows(),
		Tiles: g.TileCount(),
	}
}

// Tile is a square written by a play
type Tile struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// TilesFromCells converts written cells
func TilesFromCells(cells []model.Cell) []Tile {
	tiles := make([]Tile, 0, len(cells))
	for _, c := range cells {
		tiles = append(tiles, Tile{Row: c.Pos.Row, Col: c.Pos.Col, Letter: string(c.Letter)})
	}
	return tiles
}

// Word is a word formed by a play
type Word struct {
	Word       string `json:"word"`
	Score      int    `json:"score"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Horizontal bool   `json:"horizontal"`
}

// Evaluation is the outcome of scoring a placement
type Evaluation struct {
	Accepted bool   `json:"accepted"`
	Score    int    `json:"score"`
	Words    []Word `json:"words"`
	Placed   []Tile `json:"placed"`
	Reason   string `json:"reason,omitempty"`
}

// EvaluationFromResult converts a scoring.Result
func EvaluationFromResult(r scoring.Result) Evaluation {
	e := Evaluation{
		Accepted: r.Accepted(),
		Score:    r.Score,
		Words:    make([]Word, 0, len(r.Words)),
		Placed:   TilesFromCells(r.Placed),
	}
	for _, w := range r.Words {
		e.Words = append(e.Words, Word{
			Word:       w.Word,
			Score:      w.Score,
			Row:        w.Start.Row,
			Col:        w.Start.Col,
			Horizontal: w.Horizontal,
		})
	}
	if r.Reason != nil {
		e.Reason = r.Reason.Error()
	}
	return e
}

// PlaceResponse is the response for a committed placement
type PlaceResponse struct {
	Evaluation Evaluation `json:"evaluation"`
	Board      Board      `json:"board"`
}

// HistoryResponse is the response for undo and redo. Tiles are the squares
// cleared or restored.
type HistoryResponse struct {
	Tiles []Tile `json:"tiles"`
	Board Board  `json:"board"`
}

// Candidates lists the words a rack could form
type Candidates struct {
	Words []string `json:"words"`
}

// Move is a move found by the search
type Move struct {
	Word       string `json:"word"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Horizontal bool   `json:"horizontal"`
	Letters    string `json:"letters"`
	Score      int    `json:"score"`
	Tiles      []Tile `json:"tiles"`
}

// MoveFromModel converts a bot.Move
func MoveFromModel(m *bot.Move) Move {
	return Move{
		Word:       m.Word,
		Row:        m.Start.Row,
		Col:        m.Start.Col,
		Horizontal: m.Horizontal,
		Letters:    m.Letters,
		Score:      m.Score,
		Tiles:      TilesFromCells(m.Cells()),
	}
}

// MoveResponse wraps an optional move; Found is false when the search came up empty
type MoveResponse struct {
	Found bool  `json:"found"`
	Move  *Move `json:"move,omitempty"`
}

// MoveResponseFromModel converts a possibly nil bot.Move
func MoveResponseFromModel(m *bot.Move) MoveResponse {
	if m == nil {
		return MoveResponse{}
	}
	move := MoveFromModel(m)
	return MoveResponse{Found: true, Move: &move}
}

// Layouts lists the available layout names
type Layouts struct {
	Names []string `json:"names"`
}

// Health is the response for the health endpoint
type Health struct {
	Status     string `json:"status"`
	Dictionary int    `json:"dictionary_words"`
}

package bot

import (
	"github.com/mcoot/tilegame/internal/dependencies/random"
	"github.com/mcoot/tilegame/internal/model"
)

// RandomStrategy picks uniformly among every legal scoring move
type RandomStrategy struct {
	searcher *Searcher
	random   random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(searcher *Searcher, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{searcher: searcher, random: rnd}
}

// ChooseMove returns a random legal move, or nil if there is none
func (s *RandomStrategy) ChooseMove(grid *model.Grid, rack model.Rack) *Move {
	candidates := s.searcher.FindCandidateWords(rack)
	if candidates == nil {
		return nil
	}
	moves := s.searcher.AllMoves(grid, rack, candidates)
	if len(moves) == 0 {
		return nil
	}
	return &moves[s.random.Intn(len(moves))]
}

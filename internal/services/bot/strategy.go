package bot

import "github.com/mcoot/tilegame/internal/model"

// Strategy decides which move a bot plays
type Strategy interface {
	// ChooseMove returns the move to play, or nil to pass
	ChooseMove(grid *model.Grid, rack model.Rack) *Move
}

// Strategy names accepted by the bot service
const (
	StrategyGreedy = "greedy"
	StrategyRandom = "random"
)

// GreedyStrategy always plays the highest scoring move
type GreedyStrategy struct {
	searcher *Searcher
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(searcher *Searcher) *GreedyStrategy {
	return &GreedyStrategy{searcher: searcher}
}

// ChooseMove runs the full best-move search
func (s *GreedyStrategy) ChooseMove(grid *model.Grid, rack model.Rack) *Move {
	candidates := s.searcher.FindCandidateWords(rack)
	if candidates == nil {
		return nil
	}
	return s.searcher.FindBestMove(grid, rack, candidates)
}

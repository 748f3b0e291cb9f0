package bot

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/board"
)

// Service lets a bot choose a move for a rack and commit it to the board
type Service struct {
	boardService board.ServiceInterface
	strategies   map[string]Strategy
	logger       *slog.Logger
}

// NewService creates a new bot Service
func NewService(boardService board.ServiceInterface, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		boardService: boardService,
		strategies:   strategies,
		logger:       logger.With(slog.String("component", "bot-service")),
	}
}

// Strategies returns the registered strategy names in sorted order
func (s *Service) Strategies() []string {
	names := lo.Keys(s.strategies)
	sort.Strings(names)
	return names
}

// Suggest returns the move the named strategy would play without committing it
func (s *Service) Suggest(strategy string, rack model.Rack) (*Move, error) {
	st, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	return st.ChooseMove(s.boardService.Snapshot(), rack), nil
}

// Play chooses a move with the named strategy and commits it. It returns nil
// when the strategy passes.
func (s *Service) Play(strategy string, rack model.Rack) (*Move, error) {
	move, err := s.Suggest(strategy, rack)
	if err != nil {
		return nil, err
	}
	if move == nil {
		s.logger.Info("bot passes", slog.String("strategy", strategy), slog.String("rack", rack.String()))
		return nil, nil
	}

	result := s.boardService.Play(move.Placement)
	if !result.Accepted() {
		// The board moved on between the snapshot and the commit
		return nil, fmt.Errorf("commit %s: %w", move.Word, result.Reason)
	}
	move.Score = result.Score

	s.logger.Info("bot played",
		slog.String("strategy", strategy),
		slog.String("word", move.Word),
		slog.String("start", move.Start.String()),
		slog.Bool("horizontal", move.Horizontal),
		slog.Int("score", move.Score),
	)
	return move, nil
}

// ErrUnknownStrategy is returned for a strategy name with no registration
var ErrUnknownStrategy = model.ErrUnknownStrategy

package board

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/scoring"
)

// Observer is told about every change to the live grid
type Observer interface {
	// OnBoardChanged receives the cells written by a committed play
	OnBoardChanged(cells []model.Cell)
	// Rebuild is called when the whole grid is replaced
	Rebuild(grid *model.Grid)
}

// Service owns the live grid and is the only path that commits plays to it.
// Committed plays form an undo history; scores and racks are not restored.
type Service struct {
	mu        sync.RWMutex
	grid      *model.Grid
	scorer    scoring.ServiceInterface
	observers []Observer
	logger    *slog.Logger

	// Cells written by each committed play, most recent last
	undone  [][]model.Cell
	history [][]model.Cell
}

// New creates a new BoardService around an empty grid with the given layout
func New(layout model.Layout, scorer scoring.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		grid:   model.NewGrid(layout),
		scorer: scorer,
		logger: logger.With(slog.String("component", "board")),
	}
}

// Subscribe registers an observer and brings it up to date with the grid
func (s *Service) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
	o.Rebuild(s.grid.Clone())
}

// Play validates a placement against the live grid and commits it when it
// scores. Observers are notified of the written cells.
func (s *Service) Play(p model.Placement) scoring.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := CheckSquares(s.grid, p); err != nil {
		s.logger.Debug("placement rejected", slog.String("reason", err.Error()))
		return scoring.Result{Reason: err}
	}

	result := s.scorer.Evaluate(s.grid, p)
	if !result.Accepted() {
		return result
	}

	s.history = append(s.history, result.Placed)
	s.undone = nil
	for _, o := range s.observers {
		o.OnBoardChanged(result.Placed)
	}
	s.logger.Info("placement committed",
		slog.Int("score", result.Score),
		slog.Int("tiles", len(result.Placed)),
		slog.Int("board_tiles", s.grid.TileCount()),
	)
	return result
}

// Score evaluates a placement without committing it
func (s *Service) Score(p model.Placement) scoring.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := CheckSquares(s.grid, p); err != nil {
		return scoring.Result{Reason: err}
	}
	return s.scorer.Evaluate(model.NewOverlay(s.grid), p)
}

// Load replaces the live grid. Observers rebuild their view from it.
func (s *Service) Load(grid *model.Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid = grid.Clone()
	s.history = nil
	s.undone = nil
	s.rebuildObservers()
	s.logger.Info("board loaded", slog.Int("tiles", s.grid.TileCount()))
}

func (s *Service) rebuildObservers() {
	for _, o := range s.observers {
		o.Rebuild(s.grid.Clone())
	}
}

// Undo takes the most recent play off the grid and returns the cells it
// cleared. Observers rebuild, since anchors around the play may disappear.
func (s *Service) Undo() ([]model.Cell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return nil, model.ErrNothingToUndo
	}
	cells := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	for _, c := range cells {
		s.grid.Set(c.Pos, 0)
	}
	s.undone = append(s.undone, cells)
	s.rebuildObservers()

	s.logger.Info("play undone", slog.Int("tiles", len(cells)), slog.Int("board_tiles", s.grid.TileCount()))
	return cells, nil
}

// Redo puts the most recently undone play back. Any new play clears what can
// be redone, so its squares are still empty.
func (s *Service) Redo() ([]model.Cell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undone) == 0 {
		return nil, model.ErrNothingToRedo
	}
	cells := s.undone[len(s.undone)-1]
	s.undone = s.undone[:len(s.undone)-1]

	for _, c := range cells {
		s.grid.Set(c.Pos, c.Letter)
	}
	s.history = append(s.history, cells)
	for _, o := range s.observers {
		o.OnBoardChanged(cells)
	}

	s.logger.Info("play redone", slog.Int("tiles", len(cells)), slog.Int("board_tiles", s.grid.TileCount()))
	return cells, nil
}

// ApplyLayout swaps the premium squares, keeping the letters
func (s *Service) ApplyLayout(layout model.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid.ReplaceMultipliers(layout)
	s.logger.Info("layout applied", slog.String("layout", layout.Name))
}

// Snapshot returns a copy of the live grid
func (s *Service) Snapshot() *model.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Clone()
}

// CheckSquares enforces that every tile in p targets an empty square.
// Squares the play runs through are given as nil tiles.
func CheckSquares(surface model.Surface, p model.Placement) error {
	for i, t := range p.Tiles {
		if t == nil || i >= len(p.Positions) {
			continue
		}
		existing := surface.Get(p.Positions[i])
		if existing != 0 {
			return fmt.Errorf("%w: %s holds %q", model.ErrSquareOccupied, p.Positions[i], existing)
		}
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Subscribe(o Observer)
	Play(p model.Placement) scoring.Result
	Score(p model.Placement) scoring.Result
	Load(grid *model.Grid)
	Undo() ([]model.Cell, error)
	Redo() ([]model.Cell, error)
	ApplyLayout(layout model.Layout)
	Snapshot() *model.Grid
}

var _ ServiceInterface = (*Service)(nil)

package scoring

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/tilegame/internal/model"
)

// WordChecker is the dictionary lookup the validator relies on
type WordChecker interface {
	IsValidWord(word string) bool
}

// Service validates placements and scores the words they form
type Service struct {
	dictionary WordChecker
	logger     *slog.Logger
}

// New creates a new ScoringService
func New(dictionary WordChecker, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		logger:     logger.With(slog.String("component", "scoring")),
	}
}

// Result is the outcome of evaluating a placement. A zero Score means the
// placement was rejected and Reason says why.
type Result struct {
	Score  int
	Words  []model.WordOccurrence
	Placed []model.Cell
	Reason error
}

// Accepted reports whether the placement was committed
func (r Result) Accepted() bool {
	return r.Score > 0
}

// PlaceAndScore validates p against surface and returns its score, or 0 if it
// is rejected. Accepted letters stay on the surface; a rejection leaves the
// surface exactly as it was.
//
// A tile must not target a square holding a different letter; that is the
// caller's responsibility.
func (s *Service) PlaceAndScore(surface model.Surface, p model.Placement) int {
	return s.Evaluate(surface, p).Score
}

// Evaluate is PlaceAndScore with the formed words and rejection reason
func (s *Service) Evaluate(surface model.Surface, p model.Placement) Result {
	if err := checkShape(p); err != nil {
		return s.reject(err)
	}

	opening := surface.Get(model.Center) == 0
	if opening {
		if p.Len() < 2 {
			return s.reject(model.ErrOpeningTooShort)
		}
		if !lo.Contains(p.Positions, model.Center) {
			return s.reject(model.ErrOpeningMissesCenter)
		}
	}

	for i := 0; i+1 < p.Len(); i++ {
		a, b := p.Positions[i], p.Positions[i+1]
		if a.Row != b.Row && a.Col != b.Col {
			return s.reject(model.ErrNotCollinear)
		}
	}

	// Tentative write, remembering what each square held
	placed := p.Cells()
	previous := make([]rune, len(placed))
	written := make(map[model.Position]struct{}, len(placed))
	for i, c := range placed {
		previous[i] = surface.Get(c.Pos)
		surface.Set(c.Pos, c.Letter)
		written[c.Pos] = struct{}{}
	}
	rollback := func(err error) Result {
		for i := len(placed) - 1; i >= 0; i-- {
			surface.Set(placed[i].Pos, previous[i])
		}
		return s.reject(err)
	}

	if !isConnected(surface, placed, written, opening) {
		return rollback(model.ErrNotConnected)
	}
	if err := checkLine(surface, p); err != nil {
		return rollback(err)
	}

	words := extractWords(surface, placed, written)
	for _, w := range words {
		if !s.dictionary.IsValidWord(w.Word) {
			return rollback(fmt.Errorf("%w: %s", model.ErrInvalidWord, w.Word))
		}
	}

	wordMultiplier := 1
	for _, c := range placed {
		wordMultiplier *= surface.WordMultiplier(c.Pos)
	}
	total := lo.SumBy(words, func(w model.WordOccurrence) int { return w.Score }) * wordMultiplier
	if total <= 0 {
		return rollback(model.ErrZeroScore)
	}

	s.logger.Debug("placement scored",
		slog.Int("score", total),
		slog.Int("words", len(words)),
		slog.Int("tiles", len(placed)),
	)

	return Result{
		Score:  total,
		Words:  words,
		Placed: placed,
	}
}

func (s *Service) reject(err error) Result {
	s.logger.Debug("placement rejected", slog.String("reason", err.Error()))
	return Result{Reason: err}
}

// checkShape rejects malformed placements before anything is written
func checkShape(p model.Placement) error {
	if len(p.Positions) != len(p.Tiles) {
		return fmt.Errorf("%w: %d positions, %d tiles", model.ErrShapeMismatch, len(p.Positions), len(p.Tiles))
	}
	seen := make(map[model.Position]struct{}, len(p.Positions))
	for _, pos := range p.Positions {
		if !pos.InBounds() {
			return fmt.Errorf("%w: %s", model.ErrInvalidPosition, pos)
		}
		if _, dup := seen[pos]; dup {
			return fmt.Errorf("%w: %s", model.ErrDuplicatePosition, pos)
		}
		seen[pos] = struct{}{}
	}
	for i, t := range p.Tiles {
		if t != nil && !model.IsTileLetter(t.Face()) {
			return fmt.Errorf("%w: %q at %s", model.ErrInvalidLetter, t.Letter, p.Positions[i])
		}
	}
	if p.NewTileCount() == 0 {
		return model.ErrNoNewTiles
	}
	return nil
}

// isConnected checks adjacency after the tentative write. An opening play only
// needs its tiles to touch each other; later plays must touch a letter that was
// already on the surface.
func isConnected(surface model.Surface, placed []model.Cell, written map[model.Position]struct{}, opening bool) bool {
	for _, c := range placed {
		for _, n := range c.Pos.Neighbours() {
			if surface.Get(n) == 0 {
				continue
			}
			if opening {
				return true
			}
			if _, mine := written[n]; !mine {
				return true
			}
		}
	}
	return false
}

// checkLine requires every square of the placement to lie in one row or
// column with no empty square between the first and last of them
func checkLine(surface model.Surface, p model.Placement) error {
	if p.Len() < 2 {
		return nil
	}
	first := p.Positions[0]
	sameRow := lo.EveryBy(p.Positions, func(pos model.Position) bool { return pos.Row == first.Row })
	sameCol := lo.EveryBy(p.Positions, func(pos model.Position) bool { return pos.Col == first.Col })

	var start, end model.Position
	var horizontal bool
	switch {
	case sameRow:
		horizontal = true
		start = lo.MinBy(p.Positions, func(a, b model.Position) bool { return a.Col < b.Col })
		end = lo.MaxBy(p.Positions, func(a, b model.Position) bool { return a.Col > b.Col })
	case sameCol:
		start = lo.MinBy(p.Positions, func(a, b model.Position) bool { return a.Row < b.Row })
		end = lo.MaxBy(p.Positions, func(a, b model.Position) bool { return a.Row > b.Row })
	default:
		return model.ErrNotCollinear
	}

	for pos := start; ; pos = pos.Step(horizontal, 1) {
		if surface.Get(pos) == 0 {
			return fmt.Errorf("%w: %s", model.ErrGap, pos)
		}
		if pos == end {
			return nil
		}
	}
}

// wordKey identifies a run by where it starts and which way it reads
type wordKey struct {
	start      model.Position
	horizontal bool
}

// extractWords collects every run of two or more letters through a placed tile
func extractWords(surface model.Surface, placed []model.Cell, written map[model.Position]struct{}) []model.WordOccurrence {
	seen := make(map[wordKey]struct{})
	var words []model.WordOccurrence

	for _, c := range placed {
		for _, horizontal := range []bool{true, false} {
			start := c.Pos
			for prev := start.Step(horizontal, -1); prev.InBounds() && surface.Get(prev) != 0; prev = prev.Step(horizontal, -1) {
				start = prev
			}

			key := wordKey{start: start, horizontal: horizontal}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			var sb strings.Builder
			score := 0
			end := start
			for pos := start; pos.InBounds(); pos = pos.Step(horizontal, 1) {
				letter := surface.Get(pos)
				if letter == 0 {
					break
				}
				value := LetterValue(letter)
				if _, fresh := written[pos]; fresh {
					value *= surface.LetterMultiplier(pos)
				}
				score += value
				sb.WriteRune(model.Normalize(letter))
				end = pos
			}

			if sb.Len() < 2 {
				continue
			}
			words = append(words, model.WordOccurrence{
				Word:       sb.String(),
				Score:      score,
				Start:      start,
				End:        end,
				Horizontal: horizontal,
			})
		}
	}
	return words
}

// Interface for dependency injection
type ServiceInterface interface {
	PlaceAndScore(surface model.Surface, p model.Placement) int
	Evaluate(surface model.Surface, p model.Placement) Result
}

var _ ServiceInterface = (*Service)(nil)

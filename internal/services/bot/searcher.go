package bot

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/samber/lo"

	"github.com/mcoot/tilegame/internal/model"
)

// DefaultCacheSize is the number of candidate-word lists kept between searches
const DefaultCacheSize = 128

// WordSource is the dictionary view the searcher filters candidates from
type WordSource interface {
	AllWords() []string
	Generation() uint64
}

// Scorer is the legality oracle each trial placement is submitted to
type Scorer interface {
	PlaceAndScore(surface model.Surface, p model.Placement) int
}

// State tracks the most recent search
type State int

const (
	StateIdle State = iota
	StateSearching
	StateFound
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Move is a legal scoring placement found by the search
type Move struct {
	Word       string
	Start      model.Position
	Horizontal bool
	// Placement holds only the squares that need a tile from the rack
	Placement model.Placement
	// Letters are the rack letters the move consumes, in placement order
	Letters string
	Score   int
}

// Cells returns the squares the move writes
func (m *Move) Cells() []model.Cell {
	return m.Placement.Cells()
}

// SearcherConfig tunes the searcher
type SearcherConfig struct {
	// CacheSize bounds the candidate-word cache; 0 uses DefaultCacheSize
	CacheSize int
	// MaxCandidates caps the candidate words considered per search; 0 means no cap
	MaxCandidates int
}

// Searcher finds scoring placements for a rack. It keeps its own view of the
// board, updated through OnBoardChanged, and is owned by a single game.
// Searches and board updates are serialized.
type Searcher struct {
	words         WordSource
	scorer        Scorer
	logger        *slog.Logger
	cache         *lru.Cache
	maxCandidates int

	mu      sync.Mutex
	anchors map[model.Position]struct{}
	mirror  map[model.Position]rune
	state   State
}

// NewSearcher creates a Searcher for an empty board
func NewSearcher(words WordSource, scorer Scorer, cfg SearcherConfig, logger *slog.Logger) (*Searcher, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create candidate cache: %w", err)
	}

	s := &Searcher{
		words:         words,
		scorer:        scorer,
		logger:        logger.With(slog.String("component", "searcher")),
		cache:         cache,
		maxCandidates: cfg.MaxCandidates,
	}
	s.reset()
	return s, nil
}

func (s *Searcher) reset() {
	s.anchors = map[model.Position]struct{}{model.Center: {}}
	s.mirror = make(map[model.Position]rune)
	s.state = StateIdle
}

// State returns the outcome of the most recent search
func (s *Searcher) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Anchors returns the empty squares a new word may pass through, row-major
func (s *Searcher) Anchors() []model.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedAnchors()
}

func (s *Searcher) sortedAnchors() []model.Position {
	anchors := lo.Keys(s.anchors)
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Less(anchors[j]) })
	return anchors
}

// OnBoardChanged records letters just committed to the board
func (s *Searcher) OnBoardChanged(cells []model.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(cells)
}

func (s *Searcher) record(cells []model.Cell) {
	for _, c := range cells {
		if !c.Pos.InBounds() {
			s.logger.Warn("board change off the grid", slog.String("pos", c.Pos.String()))
			continue
		}
		s.mirror[c.Pos] = c.Letter
		for _, n := range c.Pos.Neighbours() {
			if _, occupied := s.mirror[n]; !occupied {
				s.anchors[n] = struct{}{}
			}
		}
		delete(s.anchors, c.Pos)
	}
}

// Rebuild discards the board view and recomputes it from a grid
func (s *Searcher) Rebuild(grid *model.Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	occupied := grid.Occupied()
	if len(occupied) == 0 {
		return
	}
	delete(s.anchors, model.Center)
	s.record(occupied)
	s.logger.Debug("searcher rebuilt",
		slog.Int("tiles", len(s.mirror)),
		slog.Int("anchors", len(s.anchors)),
	)
}

// FindCandidateWords returns the sorted dictionary words that could be spelled
// from the rack's letters together with every letter on the board, or nil if
// there are none. Blanks are ignored.
func (s *Searcher) FindCandidateWords(rack model.Rack) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool := rack.Letters()
	for _, letter := range s.mirror {
		pool = append(pool, model.Normalize(letter))
	}
	available := lo.CountValues(pool)

	key := fmt.Sprintf("%d:%s", s.words.Generation(), multisetKey(pool))
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]string)
	}

	var candidates []string
	for _, word := range s.words.AllWords() {
		if canSpell(word, available) {
			candidates = append(candidates, word)
		}
	}
	sort.Strings(candidates)
	if s.maxCandidates > 0 && len(candidates) > s.maxCandidates {
		candidates = candidates[:s.maxCandidates]
	}

	s.cache.Add(key, candidates)
	return candidates
}

// FindBestMove returns the highest scoring legal move through any anchor, or
// nil when nothing scores. Ties keep the move found first; anchors are tried
// row-major and words in sorted order so the result is reproducible.
func (s *Searcher) FindBestMove(grid model.Surface, rack model.Rack, candidates []string) *Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateSearching

	var best *Move
	s.search(grid, rack, candidates, func(m Move) {
		if best == nil || m.Score > best.Score {
			best = &m
		}
	})

	if best == nil {
		s.state = StateExhausted
		s.logger.Debug("no scoring move", slog.String("rack", rack.String()))
		return nil
	}
	s.state = StateFound
	s.logger.Debug("best move found",
		slog.String("word", best.Word),
		slog.String("start", best.Start.String()),
		slog.Bool("horizontal", best.Horizontal),
		slog.Int("score", best.Score),
	)
	return best
}

// AllMoves returns every legal scoring trial in search order
func (s *Searcher) AllMoves(grid model.Surface, rack model.Rack, candidates []string) []Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateSearching

	var moves []Move
	s.search(grid, rack, candidates, func(m Move) {
		moves = append(moves, m)
	})

	if len(moves) == 0 {
		s.state = StateExhausted
	} else {
		s.state = StateFound
	}
	return moves
}

// search walks every (anchor, word, offset, orientation) trial and reports
// the ones that score
func (s *Searcher) search(grid model.Surface, rack model.Rack, candidates []string, visit func(Move)) {
	words := append([]string(nil), candidates...)
	sort.Strings(words)
	rackCounts := lo.CountValues(rack.Letters())
	boardEmpty := len(s.mirror) == 0
	overlay := model.NewOverlay(grid)
	seen := make(map[trialKey]struct{})
	trials := 0

	for _, anchor := range s.sortedAnchors() {
		for _, word := range words {
			letters := []rune(strings.ToUpper(word))
			if boardEmpty && len(letters) < 2 {
				continue
			}
			for offset := -(len(letters) - 1); offset <= 0; offset++ {
				for _, horizontal := range []bool{false, true} {
					start := anchor.Step(horizontal, offset)
					end := start.Step(horizontal, len(letters)-1)
					if !start.InBounds() || !end.InBounds() {
						continue
					}
					// A word laid through two anchors is the same trial from both
					key := trialKey{start: start, horizontal: horizontal, word: word}
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}

					placement, ok := s.trialPlacement(start, horizontal, letters, boardEmpty, rackCounts)
					if !ok {
						continue
					}

					trials++
					overlay.Reset()
					score := s.scorer.PlaceAndScore(overlay, placement)
					if score <= 0 {
						continue
					}
					visit(Move{
						Word:       string(letters),
						Start:      start,
						Horizontal: horizontal,
						Placement:  placement,
						Letters:    placementLetters(placement),
						Score:      score,
					})
				}
			}
		}
	}
	overlay.Reset()

	s.logger.Debug("search finished",
		slog.Int("anchors", len(s.anchors)),
		slog.Int("words", len(words)),
		slog.Int("trials", trials),
	)
}

type trialKey struct {
	start      model.Position
	horizontal bool
	word       string
}

// trialPlacement lays a word out from start and returns the tiles it needs
// from the rack. It fails when the word clashes with the board, floats free
// of it, or needs tiles the rack does not hold.
func (s *Searcher) trialPlacement(start model.Position, horizontal bool, letters []rune, boardEmpty bool, rackCounts map[rune]int) (model.Placement, bool) {
	var placement model.Placement
	needed := make(map[rune]int)
	reused := 0

	pos := start
	for _, letter := range letters {
		if existing, occupied := s.mirror[pos]; occupied {
			if model.Normalize(existing) != letter {
				return model.Placement{}, false
			}
			reused++
		} else {
			placement.Add(pos, model.NewTile(letter))
			needed[letter]++
		}
		pos = pos.Step(horizontal, 1)
	}

	if !boardEmpty && reused == 0 {
		return model.Placement{}, false
	}
	count := placement.Len()
	if count == 0 || count > model.RackSize {
		return model.Placement{}, false
	}
	for letter, n := range needed {
		if rackCounts[letter] < n {
			return model.Placement{}, false
		}
	}
	return placement, true
}

func canSpell(word string, available map[rune]int) bool {
	need := lo.CountValues([]rune(word))
	for letter, n := range need {
		if available[letter] < n {
			return false
		}
	}
	return true
}

// multisetKey is an order-independent key for a bag of letters
func multisetKey(letters []rune) string {
	sorted := append([]rune(nil), letters...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return string(sorted)
}

func placementLetters(p model.Placement) string {
	var sb strings.Builder
	for _, t := range p.Tiles {
		sb.WriteRune(t.Letter)
	}
	return sb.String()
}

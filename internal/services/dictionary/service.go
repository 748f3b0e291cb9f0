package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/storage"
)

// Service provides word lookups for validation and move search
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu         sync.RWMutex
	words      map[string]struct{}
	sorted     []string
	loaded     bool
	generation uint64
}

// New creates a new DictionaryService
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger.With(slog.String("component", "dictionary")),
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	s.loadWords(words)
	return nil
}

// LoadFromFile loads dictionary words from a file (one word per line) and
// saves the normalized list to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dictionary: %w", err)
	}

	s.loadWords(words)

	if err := s.storage.SaveDictionaryWords(ctx, s.AllWords()); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	s.loadWords(words)
	return nil
}

func (s *Service) loadWords(words []string) {
	normalized := make(map[string]struct{}, len(words))
	skipped := 0
	for _, word := range words {
		upper := strings.ToUpper(strings.TrimSpace(word))
		if !isPlayable(upper) {
			skipped++
			continue
		}
		normalized[upper] = struct{}{}
	}

	sorted := make([]string, 0, len(normalized))
	for word := range normalized {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)

	s.mu.Lock()
	s.words = normalized
	s.sorted = sorted
	s.loaded = true
	s.generation++
	s.mu.Unlock()

	s.logger.Info("dictionary loaded",
		slog.Int("words", len(sorted)),
		slog.Int("skipped", skipped),
	)
}

// isPlayable accepts words made only of A-Z
func isPlayable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// IsValidWord checks if a word exists in the dictionary, ignoring case.
// Words must be at least 2 characters.
func (s *Service) IsValidWord(word string) bool {
	if len(word) < 2 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[strings.ToUpper(word)]
	return ok
}

// AllWords returns every word in lexicographic order. The slice is shared;
// callers must not modify it.
func (s *Service) AllWords() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted
}

// Generation changes every time a new word list is loaded
func (s *Service) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	AllWords() []string
	Generation() uint64
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded

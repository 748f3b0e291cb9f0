package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	layouts         map[string]*model.Layout
	dictionaryWords []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		layouts: make(map[string]*model.Layout),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(s.dictionaryWords))
	copy(result, s.dictionaryWords)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}

// Layout operations

func (s *Storage) SaveLayout(ctx context.Context, layout *model.Layout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *layout
	s.layouts[layout.Name] = &stored
	return nil
}

func (s *Storage) GetLayout(ctx context.Context, name string) (*model.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	layout, ok := s.layouts[name]
	if !ok {
		return nil, model.ErrLayoutNotFound
	}
	result := *layout
	return &result, nil
}

func (s *Storage) ListLayouts(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.layouts))
	for name := range s.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Storage) DeleteLayout(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.layouts, name)
	return nil
}

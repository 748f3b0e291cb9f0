package storage

import (
	"context"

	"github.com/mcoot/tilegame/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error

	// Layout operations
	SaveLayout(ctx context.Context, layout *model.Layout) error
	GetLayout(ctx context.Context, name string) (*model.Layout, error)
	ListLayouts(ctx context.Context) ([]string, error)
	DeleteLayout(ctx context.Context, name string) error
}

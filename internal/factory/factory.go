package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/tilegame/internal/dependencies/random"
	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/board"
	"github.com/mcoot/tilegame/internal/services/bot"
	"github.com/mcoot/tilegame/internal/services/dictionary"
	"github.com/mcoot/tilegame/internal/services/layout"
	"github.com/mcoot/tilegame/internal/services/scoring"
	"github.com/mcoot/tilegame/internal/storage"
	"github.com/mcoot/tilegame/internal/storage/memory"
	redisstorage "github.com/mcoot/tilegame/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	LayoutService     *layout.Service
	ScoringService    *scoring.Service
	BoardService      *board.Service
	Searcher          *bot.Searcher
	BotService        *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the word list to load (optional)
	// If empty, the dictionary is loaded from storage when present
	DictionaryPath string
	// Layout is a stored layout name or a layout file path (optional)
	// If empty, the standard layout is used
	Layout string
	// MaxCandidates caps the candidate words per search; 0 means no cap
	MaxCandidates int
	// Seed makes the random bot reproducible when non-zero
	Seed uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired and the
// dictionary and layout loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	app, err := newWithDependencies(store, rnd, cfg.MaxCandidates, logger)
	if err != nil {
		return nil, err
	}

	if err := app.loadDictionary(ctx, cfg.DictionaryPath, logger); err != nil {
		return nil, err
	}

	if cfg.Layout != "" {
		l, err := app.LayoutService.Resolve(ctx, cfg.Layout)
		if err != nil {
			return nil, fmt.Errorf("layout %q: %w", cfg.Layout, err)
		}
		app.BoardService.ApplyLayout(l)
	}

	return app, nil
}

func (a *App) loadDictionary(ctx context.Context, path string, logger *slog.Logger) error {
	if path != "" {
		if err := a.DictionaryService.LoadFromFile(ctx, path); err != nil {
			return fmt.Errorf("dictionary %q: %w", path, err)
		}
		return nil
	}

	err := a.DictionaryService.LoadFromStorage(ctx)
	if errors.Is(err, model.ErrDictionaryNotLoaded) {
		logger.Warn("no dictionary configured; every word will be rejected")
		return nil
	}
	return err
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, rnd random.Random, maxCandidates int, logger *slog.Logger) (*App, error) {
	// Create services
	dictService := dictionary.New(store, logger)
	layoutService := layout.New(store, logger)
	scoringService := scoring.New(dictService, logger)
	boardService := board.New(model.DefaultLayout(), scoringService, logger)

	searcher, err := bot.NewSearcher(dictService, scoringService, bot.SearcherConfig{MaxCandidates: maxCandidates}, logger)
	if err != nil {
		return nil, err
	}
	boardService.Subscribe(searcher)

	strategies := map[string]bot.Strategy{
		bot.StrategyGreedy: bot.NewGreedyStrategy(searcher),
		bot.StrategyRandom: bot.NewRandomStrategy(searcher, rnd),
	}
	botService := bot.NewService(boardService, strategies, logger)

	return &App{
		Storage:           store,
		Random:            rnd,
		DictionaryService: dictService,
		LayoutService:     layoutService,
		ScoringService:    scoringService,
		BoardService:      boardService,
		Searcher:          searcher,
		BotService:        botService,
	}, nil
}

package layout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/storage"
)

// fileSuffixes are tried in order after the exact path
var fileSuffixes = []string{".xml", ".txt", ".yaml", ".yml"}

// Service loads premium layouts from files and keeps named layouts in storage
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new LayoutService
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger.With(slog.String("component", "layout")),
	}
}

// FindFile resolves a layout path, trying the exact path and then each known
// extension appended to it
func FindFile(path string) (string, error) {
	candidates := make([]string, 0, len(fileSuffixes)+1)
	candidates = append(candidates, path)
	for _, suffix := range fileSuffixes {
		candidates = append(candidates, path+suffix)
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", model.ErrLayoutNotFound, path)
}

// LoadFromFile reads a layout file. The layout is named after the file unless
// the document names itself.
func (s *Service) LoadFromFile(path string) (model.Layout, error) {
	resolved, err := FindFile(path)
	if err != nil {
		return model.Layout{}, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return model.Layout{}, fmt.Errorf("read layout: %w", err)
	}

	format := DetectFormat(data)
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".xml":
		format = FormatXML
	}

	name := ""
	if format == FormatXML {
		name = layoutNameFromPath(resolved)
	}
	l, err := s.Parse(name, data, format)
	if err != nil {
		return model.Layout{}, fmt.Errorf("parse %s: %w", resolved, err)
	}
	if l.Name == "" {
		l.Name = layoutNameFromPath(resolved)
	}

	s.logger.Info("layout loaded",
		slog.String("name", l.Name),
		slog.String("path", resolved),
		slog.String("format", string(format)),
	)
	return l, nil
}

// Parse decodes a layout document
func (s *Service) Parse(name string, data []byte, format Format) (model.Layout, error) {
	return Decode(name, data, format, s.logger)
}

// Save stores a named layout. The standard layout name is reserved.
func (s *Service) Save(ctx context.Context, l model.Layout) error {
	if l.Name == "" {
		return fmt.Errorf("%w: layout has no name", model.ErrInvalidLayout)
	}
	if l.Name == model.DefaultLayoutName {
		return fmt.Errorf("%w: %q is reserved", model.ErrInvalidLayout, l.Name)
	}
	return s.storage.SaveLayout(ctx, &l)
}

// Get returns a named layout. The standard layout is always available.
func (s *Service) Get(ctx context.Context, name string) (model.Layout, error) {
	if name == "" || name == model.DefaultLayoutName {
		return model.DefaultLayout(), nil
	}
	l, err := s.storage.GetLayout(ctx, name)
	if err != nil {
		return model.Layout{}, err
	}
	return *l, nil
}

// List returns every available layout name, standard first
func (s *Service) List(ctx context.Context) ([]string, error) {
	names, err := s.storage.ListLayouts(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{model.DefaultLayoutName}, names...), nil
}

// Delete removes a stored layout
func (s *Service) Delete(ctx context.Context, name string) error {
	if name == model.DefaultLayoutName {
		return fmt.Errorf("%w: %q is reserved", model.ErrInvalidLayout, name)
	}
	return s.storage.DeleteLayout(ctx, name)
}

// Resolve accepts either a stored layout name or a file path. Stored names win.
func (s *Service) Resolve(ctx context.Context, ref string) (model.Layout, error) {
	l, err := s.Get(ctx, ref)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, model.ErrLayoutNotFound) {
		return model.Layout{}, err
	}
	return s.LoadFromFile(ref)
}

func layoutNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromFile(path string) (model.Layout, error)
	Save(ctx context.Context, l model.Layout) error
	Get(ctx context.Context, name string) (model.Layout, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
	Resolve(ctx context.Context, ref string) (model.Layout, error)
}

var _ ServiceInterface = (*Service)(nil)

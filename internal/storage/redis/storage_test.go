package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tilegame/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"CHERRY", "APPLE", "BANANA"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"APPLE", "BANANA", "CHERRY"}, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplacesExisting() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"APPLE", "BANANA"})
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"CHERRY", "DATE"})

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"CHERRY", "DATE"}, retrieved)
}

func (s *StorageSuite) TestDictionaryNoTTL() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"APPLE"})

	ttl := s.mini.TTL(dictionaryKey())
	s.Equal(time.Duration(0), ttl, "Dictionary should not have TTL")
}

// Layout tests

func (s *StorageSuite) TestSaveAndGetLayout() {
	layout := model.DefaultLayout()
	layout.Name = "club"

	s.Require().NoError(s.storage.SaveLayout(s.ctx, &layout))

	retrieved, err := s.storage.GetLayout(s.ctx, "club")
	s.Require().NoError(err)
	s.Equal(layout, *retrieved)
	s.True(s.mini.Exists(layoutKey("club")))
}

func (s *StorageSuite) TestGetLayoutNotFound() {
	_, err := s.storage.GetLayout(s.ctx, "missing")
	s.ErrorIs(err, model.ErrLayoutNotFound)
}

func (s *StorageSuite) TestListAndDeleteLayouts() {
	b := model.NewLayout("b")
	a := model.NewLayout("a")
	s.Require().NoError(s.storage.SaveLayout(s.ctx, &b))
	s.Require().NoError(s.storage.SaveLayout(s.ctx, &a))

	names, err := s.storage.ListLayouts(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, names)

	s.Require().NoError(s.storage.DeleteLayout(s.ctx, "a"))

	names, err = s.storage.ListLayouts(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"b"}, names)
	s.False(s.mini.Exists(layoutKey("a")))
}

func (s *StorageSuite) TestLayoutTTL() {
	s.storage.cfg.LayoutTTL = time.Hour
	layout := model.NewLayout("temp")

	s.Require().NoError(s.storage.SaveLayout(s.ctx, &layout))

	ttl := s.mini.TTL(layoutKey("temp"))
	s.True(ttl > 0, "Layout should have TTL")
}

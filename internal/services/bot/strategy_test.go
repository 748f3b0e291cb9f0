package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tilegame/internal/dependencies/mocks"
	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/bot"
	"github.com/mcoot/tilegame/internal/services/dictionary"
	"github.com/mcoot/tilegame/internal/services/scoring"
	"github.com/mcoot/tilegame/internal/storage/memory"
	"github.com/mcoot/tilegame/internal/testutil"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	searcher   *bot.Searcher
	grid       *model.Grid
	rack       model.Rack
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	logger := testutil.NopLogger()
	dict := dictionary.New(memory.New(), logger)
	s.Require().NoError(dict.LoadWords([]string{"test"}))

	var err error
	s.searcher, err = bot.NewSearcher(dict, scoring.New(dict, logger), bot.SearcherConfig{}, logger)
	s.Require().NoError(err)
	s.mockRandom = mocks.NewMockRandom()
	s.grid = model.NewDefaultGrid()
	s.rack, err = model.ParseRack("TESTABC")
	s.Require().NoError(err)
}

func (s *StrategySuite) TestGreedyPlaysBestMove() {
	move := bot.NewGreedyStrategy(s.searcher).ChooseMove(s.grid, s.rack)

	s.Require().NotNil(move)
	s.Equal("TEST", move.Word)
	s.Equal(model.Position{Row: 4, Col: 7}, move.Start)
}

func (s *StrategySuite) TestGreedyPassesWithoutCandidates() {
	rack, err := model.ParseRack("XYZ")
	s.Require().NoError(err)

	s.Nil(bot.NewGreedyStrategy(s.searcher).ChooseMove(s.grid, rack))
}

func (s *StrategySuite) TestRandomPicksQueuedMove() {
	// TEST through the center: offsets -3..0, vertical before horizontal
	s.mockRandom.QueueIntn(5)

	move := bot.NewRandomStrategy(s.searcher, s.mockRandom).ChooseMove(s.grid, s.rack)

	s.Require().NotNil(move)
	s.Len(s.mockRandom.Calls, 1)
	s.True(move.Horizontal)
	s.Equal(model.Position{Row: 7, Col: 6}, move.Start)
	s.Equal(8, move.Score)
}

func (s *StrategySuite) TestRandomFirstMove() {
	s.mockRandom.QueueIntn(0)

	move := bot.NewRandomStrategy(s.searcher, s.mockRandom).ChooseMove(s.grid, s.rack)

	s.Require().NotNil(move)
	s.False(move.Horizontal)
	s.Equal(model.Position{Row: 4, Col: 7}, move.Start)
}

func (s *StrategySuite) TestRandomPassesWhenNothingScores() {
	rack, err := model.ParseRack("TES")
	s.Require().NoError(err)

	s.Nil(bot.NewRandomStrategy(s.searcher, s.mockRandom).ChooseMove(s.grid, rack))
}

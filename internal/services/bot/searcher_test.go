package bot_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/bot"
	"github.com/mcoot/tilegame/internal/services/dictionary"
	"github.com/mcoot/tilegame/internal/services/scoring"
	"github.com/mcoot/tilegame/internal/storage/memory"
	"github.com/mcoot/tilegame/internal/testutil"
)

type SearcherSuite struct {
	suite.Suite
	dict     *dictionary.Service
	scorer   *scoring.Service
	searcher *bot.Searcher
	grid     *model.Grid
}

func TestSearcherSuite(t *testing.T) {
	suite.Run(t, new(SearcherSuite))
}

func (s *SearcherSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.dict = dictionary.New(memory.New(), logger)
	s.Require().NoError(s.dict.LoadWords([]string{"test", "tests", "at", "bat", "cab", "zzz", "q"}))
	s.scorer = scoring.New(s.dict, logger)

	var err error
	s.searcher, err = bot.NewSearcher(s.dict, s.scorer, bot.SearcherConfig{}, logger)
	s.Require().NoError(err)
	s.grid = model.NewDefaultGrid()
}

func (s *SearcherSuite) rack(letters string) model.Rack {
	r, err := model.ParseRack(letters)
	s.Require().NoError(err)
	return r
}

// commit plays a placement on the grid and tells the searcher, as the board
// service would
func (s *SearcherSuite) commit(p model.Placement) {
	s.Require().Positive(s.scorer.PlaceAndScore(s.grid, p))
	s.searcher.OnBoardChanged(p.Cells())
}

func horizontal(row, col int, letters string) model.Placement {
	var p model.Placement
	for i, r := range letters {
		p.Add(model.Position{Row: row, Col: col + i}, model.NewTile(r))
	}
	return p
}

func (s *SearcherSuite) TestStartsIdleWithCenterAnchor() {
	s.Equal(bot.StateIdle, s.searcher.State())
	s.Equal([]model.Position{model.Center}, s.searcher.Anchors())
}

func (s *SearcherSuite) TestCandidateWordsFromRack() {
	words := s.searcher.FindCandidateWords(s.rack("TESTABC"))

	s.Equal([]string{"AT", "BAT", "CAB", "TEST"}, words)
}

func (s *SearcherSuite) TestCandidateWordsIncludeBoardLetters() {
	s.commit(horizontal(7, 7, "TEST"))

	words := s.searcher.FindCandidateWords(s.rack("S"))

	s.Contains(words, "TESTS")
	s.NotContains(words, "BAT")
}

func (s *SearcherSuite) TestCandidateWordsCountDuplicates() {
	s.Empty(s.searcher.FindCandidateWords(s.rack("TES")))
	s.Nil(s.searcher.FindCandidateWords(s.rack("ZZ")))
}

func (s *SearcherSuite) TestCandidateWordsIgnoreBlanks() {
	s.Nil(s.searcher.FindCandidateWords(s.rack("Z??")))
}

func (s *SearcherSuite) TestCandidateCacheFollowsDictionary() {
	s.Equal([]string{"AT"}, s.searcher.FindCandidateWords(s.rack("AT")))

	s.Require().NoError(s.dict.LoadWords([]string{"ta"}))

	s.Equal([]string{"TA"}, s.searcher.FindCandidateWords(s.rack("TA")))
}

func (s *SearcherSuite) TestMaxCandidates() {
	searcher, err := bot.NewSearcher(s.dict, s.scorer, bot.SearcherConfig{MaxCandidates: 2}, testutil.NopLogger())
	s.Require().NoError(err)

	s.Equal([]string{"AT", "BAT"}, searcher.FindCandidateWords(s.rack("TESTABC")))
}

func (s *SearcherSuite) TestBestMoveOnEmptyBoard() {
	s.Require().NoError(s.dict.LoadWords([]string{"test"}))
	rack := s.rack("TESTABC")
	before := s.grid.Clone()

	move := s.searcher.FindBestMove(s.grid, rack, s.searcher.FindCandidateWords(rack))

	s.Require().NotNil(move)
	s.Equal(bot.StateFound, s.searcher.State())
	s.Equal("TEST", move.Word)
	s.Equal(8, move.Score)
	s.Contains(move.Placement.Positions, model.Center)
	s.True(before.Equal(s.grid), "search must not touch the grid")

	// Ties keep the first trial: vertical, word ending on the anchor
	s.False(move.Horizontal)
	s.Equal(model.Position{Row: 4, Col: 7}, move.Start)

	available := "TESTABC"
	for _, letter := range move.Letters {
		s.True(strings.ContainsRune(available, letter))
		available = strings.Replace(available, string(letter), "", 1)
	}
}

func (s *SearcherSuite) TestBestMovePrefersHigherScore() {
	rack := s.rack("TESTABC")

	move := s.searcher.FindBestMove(s.grid, rack, s.searcher.FindCandidateWords(rack))

	s.Require().NotNil(move)
	s.Equal("CAB", move.Word) // (3+1+3) x2 beats BAT and TEST
	s.Equal(14, move.Score)
	s.Equal(model.Position{Row: 5, Col: 7}, move.Start)
}

func (s *SearcherSuite) TestBestMoveIsPlayable() {
	rack := s.rack("TESTABC")
	move := s.searcher.FindBestMove(s.grid, rack, s.searcher.FindCandidateWords(rack))
	s.Require().NotNil(move)

	s.Equal(move.Score, s.scorer.PlaceAndScore(s.grid, move.Placement))
}

func (s *SearcherSuite) TestBestMoveExtendsBoard() {
	s.commit(horizontal(7, 7, "TEST"))
	rack := s.rack("SXXXXXX")

	move := s.searcher.FindBestMove(s.grid, rack, s.searcher.FindCandidateWords(rack))

	s.Require().NotNil(move)
	s.Equal("TESTS", move.Word)
	s.Equal("S", move.Letters)
	s.Equal([]model.Cell{{Pos: model.Position{Row: 7, Col: 11}, Letter: 'S'}}, move.Cells())
	s.Equal(6, move.Score)
}

func (s *SearcherSuite) TestExhaustedWhenNothingFits() {
	rack := s.rack("QQQ")

	move := s.searcher.FindBestMove(s.grid, rack, []string{"Q"})

	s.Nil(move)
	s.Equal(bot.StateExhausted, s.searcher.State())
}

func (s *SearcherSuite) TestRackMustHoldNeededTiles() {
	move := s.searcher.FindBestMove(s.grid, s.rack("TES"), []string{"TEST"})

	s.Nil(move)
}

func (s *SearcherSuite) TestWordsRejectedByValidatorAreSkipped() {
	s.commit(horizontal(7, 7, "TEST"))

	// ZZZ can never connect to a reused square
	s.Nil(s.searcher.FindBestMove(s.grid, s.rack("ZZZ"), []string{"ZZZ"}))
}

func (s *SearcherSuite) TestAnchorsFollowBoardChanges() {
	s.searcher.OnBoardChanged([]model.Cell{{Pos: model.Position{Row: 0, Col: 0}, Letter: 'A'}})

	s.Equal([]model.Position{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 7, Col: 7},
	}, s.searcher.Anchors())
}

func (s *SearcherSuite) TestRebuildFromGrid() {
	grid, err := model.ParseGrid([]string{
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		".......AT......",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
		"...............",
	})
	s.Require().NoError(err)

	s.searcher.Rebuild(grid)

	s.Equal([]model.Position{
		{Row: 6, Col: 7},
		{Row: 6, Col: 8},
		{Row: 7, Col: 6},
		{Row: 7, Col: 9},
		{Row: 8, Col: 7},
		{Row: 8, Col: 8},
	}, s.searcher.Anchors())
	s.Equal(bot.StateIdle, s.searcher.State())
}

func (s *SearcherSuite) TestRebuildEmptyGridReseedsCenter() {
	s.commit(horizontal(7, 7, "TEST"))

	s.searcher.Rebuild(model.NewDefaultGrid())

	s.Equal([]model.Position{model.Center}, s.searcher.Anchors())
}

func (s *SearcherSuite) TestAllMovesIncludesBest() {
	rack := s.rack("TESTABC")
	candidates := s.searcher.FindCandidateWords(rack)

	moves := s.searcher.AllMoves(s.grid, rack, candidates)
	best := s.searcher.FindBestMove(s.grid, rack, candidates)

	s.Require().NotEmpty(moves)
	s.Require().NotNil(best)
	for _, m := range moves {
		s.LessOrEqual(m.Score, best.Score)
		s.Positive(m.Score)
	}
}

func (s *SearcherSuite) TestAllMovesAreDistinct() {
	s.commit(horizontal(7, 7, "TEST"))
	s.Require().NoError(s.dict.LoadWords([]string{"test", "set"}))
	rack := s.rack("ST")

	moves := s.searcher.AllMoves(s.grid, rack, s.searcher.FindCandidateWords(rack))

	s.Require().NotEmpty(moves)
	seen := make(map[string]int)
	for _, m := range moves {
		seen[fmt.Sprint(m.Cells())]++
	}
	for cells, n := range seen {
		s.Equal(1, n, "placement %s found more than once", cells)
	}

	// SET down through the E touches the anchors above and below it
	s.Contains(seen, fmt.Sprint([]model.Cell{
		{Pos: model.Position{Row: 6, Col: 8}, Letter: 'S'},
		{Pos: model.Position{Row: 8, Col: 8}, Letter: 'T'},
	}))
}

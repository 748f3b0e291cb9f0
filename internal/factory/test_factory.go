package factory

import (
	"github.com/mcoot/tilegame/internal/dependencies/mocks"
	"github.com/mcoot/tilegame/internal/storage/memory"
	"github.com/mcoot/tilegame/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(memory.New(), mockRandom, 0, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"ab", "ad", "ae", "ai", "am", "an", "ar", "as", "at", "aw",
		"ax", "ay", "be", "by", "de", "do", "ea", "ed", "ef", "eh",
		"el", "em", "en", "er", "es", "ex", "go", "ha", "he", "hi",
		"ho", "id", "if", "in", "is", "it", "la", "li", "lo", "ma",
		"me", "mi", "mo", "mu", "my", "na", "ne", "no", "nu", "od",
		"oe", "of", "oh", "om", "on", "op", "or", "os", "ow", "ox",
		"oy", "pa", "pe", "pi", "re", "sh", "si", "so", "st", "ta",
		"ti", "to", "uh", "um", "un", "up", "us", "ut", "we", "wo",
		"xi", "xu", "ya", "ye", "yo",
		// 3-letter words
		"ace", "act", "add", "age", "aid", "air", "and", "ant", "ape", "arc",
		"are", "art", "ash", "ate", "bad", "bat", "bed", "bee", "bet", "cab",
		"can", "cat", "dog", "ear", "eat", "end", "eta", "hat", "net", "oat",
		"rat", "sat", "sea", "set", "tab", "tan", "tar", "tea", "ten", "toe",
		// 4-letter words
		"best", "beta", "cast", "cats", "east", "eats", "rest", "sate", "seat", "star",
		"stat", "taco", "tact", "tart", "teas", "test", "that", "toes", "vast", "zest",
		// 5-letter words
		"beast", "beats", "coast", "state", "taste", "tests", "toast", "treat", "abets", "cates",
	}
	return t.DictionaryService.LoadWords(words)
}

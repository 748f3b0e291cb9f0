package layout

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/storage/memory"
	"github.com/mcoot/tilegame/internal/testutil"
)

const sampleXML = `<?xml version="1.0"?>
<board>
  <multiplier type="letter" x="0" y="3" value="2"/>
  <multiplier type="word" x="7" y="7" value="3"/>
  <multiplier type="bonus" x="1" y="1" value="2"/>
  <multiplier type="word" x="20" y="1" value="2"/>
  <multiplier type="letter" x="a" y="1" value="2"/>
</board>
`

const sampleYAML = `name: corners
multipliers:
  - {type: word, row: 0, col: 0, value: 3}
  - {type: letter, row: 14, col: 14, value: 4}
  - {type: letter, row: 3, col: 3, value: 0}
`

type ServiceSuite struct {
	suite.Suite
	service *Service
	dir     string
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(memory.New(), testutil.NopLogger())
	s.dir = s.T().TempDir()
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ServiceSuite) TestLoadXML() {
	path := s.writeFile("custom.xml", sampleXML)

	l, err := s.service.LoadFromFile(path)
	s.Require().NoError(err)

	s.Equal("custom", l.Name)
	s.Equal(2, l.LetterMultipliers[0][3])
	s.Equal(3, l.WordMultipliers[7][7])
	s.Equal(1, l.LetterMultipliers[1][1], "unknown type is skipped")
	s.Equal(1, l.WordMultipliers[0][0], "unlisted squares default to 1")
}

func (s *ServiceSuite) TestLoadTriesExtensions() {
	s.writeFile("custom.txt", sampleXML)

	l, err := s.service.LoadFromFile(filepath.Join(s.dir, "custom"))
	s.Require().NoError(err)

	s.Equal(3, l.WordMultipliers[7][7])
}

func (s *ServiceSuite) TestExactPathPreferred() {
	s.writeFile("custom", `<board><multiplier type="word" x="1" y="1" value="5"/></board>`)
	s.writeFile("custom.xml", sampleXML)

	l, err := s.service.LoadFromFile(filepath.Join(s.dir, "custom"))
	s.Require().NoError(err)

	s.Equal(5, l.WordMultipliers[1][1])
	s.Equal(1, l.WordMultipliers[7][7])
}

func (s *ServiceSuite) TestLoadYAML() {
	path := s.writeFile("corners.yaml", sampleYAML)

	l, err := s.service.LoadFromFile(path)
	s.Require().NoError(err)

	s.Equal("corners", l.Name)
	s.Equal(3, l.WordMultipliers[0][0])
	s.Equal(4, l.LetterMultipliers[14][14])
	s.Equal(1, l.LetterMultipliers[3][3], "zero value is skipped")
}

func (s *ServiceSuite) TestLoadMissingFile() {
	_, err := s.service.LoadFromFile(filepath.Join(s.dir, "missing"))
	s.ErrorIs(err, model.ErrLayoutNotFound)
}

func (s *ServiceSuite) TestLoadMalformedXML() {
	path := s.writeFile("broken.xml", "<board><multiplier")

	_, err := s.service.LoadFromFile(path)
	s.ErrorIs(err, model.ErrInvalidLayout)
}

func (s *ServiceSuite) TestYAMLRoundTrip() {
	original := model.DefaultLayout()
	original.Name = "copy"

	data, err := EncodeYAML(original)
	s.Require().NoError(err)
	decoded, err := s.service.Parse("", data, FormatYAML)
	s.Require().NoError(err)

	s.Equal(original, decoded)
}

func (s *ServiceSuite) TestDetectFormat() {
	s.Equal(FormatXML, DetectFormat([]byte("  \n<board/>")))
	s.Equal(FormatYAML, DetectFormat([]byte("multipliers: []")))
}

func (s *ServiceSuite) TestGetStandardWithoutStorage() {
	l, err := s.service.Get(s.ctx, model.DefaultLayoutName)
	s.Require().NoError(err)

	s.Equal(model.DefaultLayout(), l)
}

func (s *ServiceSuite) TestSaveGetListDelete() {
	l := model.NewLayout("flat")
	s.Require().NoError(s.service.Save(s.ctx, l))

	got, err := s.service.Get(s.ctx, "flat")
	s.Require().NoError(err)
	s.Equal(l, got)

	names, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{model.DefaultLayoutName, "flat"}, names)

	s.Require().NoError(s.service.Delete(s.ctx, "flat"))
	_, err = s.service.Get(s.ctx, "flat")
	s.ErrorIs(err, model.ErrLayoutNotFound)
}

func (s *ServiceSuite) TestStandardNameReserved() {
	s.ErrorIs(s.service.Save(s.ctx, model.NewLayout(model.DefaultLayoutName)), model.ErrInvalidLayout)
	s.ErrorIs(s.service.Delete(s.ctx, model.DefaultLayoutName), model.ErrInvalidLayout)
}

func (s *ServiceSuite) TestResolvePrefersStoredName() {
	s.Require().NoError(s.service.Save(s.ctx, model.NewLayout("flat")))

	l, err := s.service.Resolve(s.ctx, "flat")
	s.Require().NoError(err)
	s.Equal("flat", l.Name)
}

func (s *ServiceSuite) TestResolveFallsBackToFile() {
	path := s.writeFile("custom.xml", sampleXML)

	l, err := s.service.Resolve(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(3, l.WordMultipliers[7][7])
}

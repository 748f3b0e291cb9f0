package layout

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/tilegame/internal/model"
)

// Format is a layout file encoding
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// xmlBoard is <board><multiplier type="letter" x="0" y="3" value="2"/></board>
// where x is the row and y the column
type xmlBoard struct {
	XMLName     xml.Name        `xml:"board"`
	Multipliers []xmlMultiplier `xml:"multiplier"`
}

type xmlMultiplier struct {
	Type  string `xml:"type,attr"`
	X     string `xml:"x,attr"`
	Y     string `xml:"y,attr"`
	Value string `xml:"value,attr"`
}

// yamlBoard is the YAML equivalent of xmlBoard
type yamlBoard struct {
	Name        string           `yaml:"name"`
	Multipliers []yamlMultiplier `yaml:"multipliers"`
}

type yamlMultiplier struct {
	Type  string `yaml:"type"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Value int    `yaml:"value"`
}

// DetectFormat guesses the encoding from the document itself
func DetectFormat(data []byte) Format {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("<")) {
		return FormatXML
	}
	return FormatYAML
}

// Decode parses a layout document. Squares not listed keep a multiplier of 1.
// Entries with an unknown type, bad numbers or off-grid coordinates are
// skipped with a warning.
func Decode(name string, data []byte, format Format, logger *slog.Logger) (model.Layout, error) {
	l := model.NewLayout(name)

	switch format {
	case FormatXML:
		var doc xmlBoard
		if err := xml.Unmarshal(data, &doc); err != nil {
			return model.Layout{}, fmt.Errorf("%w: %v", model.ErrInvalidLayout, err)
		}
		for _, m := range doc.Multipliers {
			row, errRow := strconv.Atoi(m.X)
			col, errCol := strconv.Atoi(m.Y)
			value, errValue := strconv.Atoi(m.Value)
			if errRow != nil || errCol != nil || errValue != nil {
				logger.Warn("invalid number in multiplier, skipping",
					slog.String("x", m.X),
					slog.String("y", m.Y),
					slog.String("value", m.Value),
				)
				continue
			}
			apply(&l, m.Type, row, col, value, logger)
		}
	case FormatYAML:
		var doc yamlBoard
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return model.Layout{}, fmt.Errorf("%w: %v", model.ErrInvalidLayout, err)
		}
		if doc.Name != "" && name == "" {
			l.Name = doc.Name
		}
		for _, m := range doc.Multipliers {
			apply(&l, m.Type, m.Row, m.Col, m.Value, logger)
		}
	default:
		return model.Layout{}, fmt.Errorf("%w: unknown format %q", model.ErrInvalidLayout, format)
	}

	return l, nil
}

func apply(l *model.Layout, kind string, row, col, value int, logger *slog.Logger) {
	if !l.Set(model.MultiplierKind(kind), model.Position{Row: row, Col: col}, value) {
		logger.Warn("unusable multiplier, skipping",
			slog.String("type", kind),
			slog.Int("row", row),
			slog.Int("col", col),
			slog.Int("value", value),
		)
	}
}

// EncodeYAML renders the non-default squares of a layout as YAML
func EncodeYAML(l model.Layout) ([]byte, error) {
	doc := yamlBoard{Name: l.Name}
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if v := l.LetterMultipliers[row][col]; v != 1 {
				doc.Multipliers = append(doc.Multipliers, yamlMultiplier{Type: string(model.MultiplierLetter), Row: row, Col: col, Value: v})
			}
			if v := l.WordMultipliers[row][col]; v != 1 {
				doc.Multipliers = append(doc.Multipliers, yamlMultiplier{Type: string(model.MultiplierWord), Row: row, Col: col, Value: v})
			}
		}
	}
	return yaml.Marshal(doc)
}

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mcoot/tilegame/internal/api/request"
	"github.com/mcoot/tilegame/internal/model"
)

// parsePlay reads a play written as ROW COL DIR WORD. DIR is "h" (across) or
// "v" (down). In WORD an upper-case letter is a tile, a lower-case letter is
// a blank played as that letter, and '.' runs through a letter already on the
// board.
func parsePlay(args []string) (model.Placement, error) {
	if len(args) != 4 {
		return model.Placement{}, fmt.Errorf("expected ROW COL DIR WORD, got %d arguments", len(args))
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return model.Placement{}, fmt.Errorf("%w: row %q", model.ErrInvalidPosition, args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return model.Placement{}, fmt.Errorf("%w: column %q", model.ErrInvalidPosition, args[1])
	}

	var horizontal bool
	switch strings.ToLower(args[2]) {
	case "h", "across":
		horizontal = true
	case "v", "down":
		horizontal = false
	default:
		return model.Placement{}, fmt.Errorf("direction must be h or v, got %q", args[2])
	}

	var p model.Placement
	pos := model.Position{Row: row, Col: col}
	for _, r := range args[3] {
		switch {
		case r == '.':
			p.Add(pos, nil)
		case model.IsTileLetter(unicode.ToUpper(r)):
			p.Add(pos, model.TileFromFace(r))
		default:
			return model.Placement{}, fmt.Errorf("%w: %q", model.ErrInvalidLetter, r)
		}
		pos = pos.Step(horizontal, 1)
	}
	return p, nil
}

// placementRequest converts a placement to its wire form
func placementRequest(p model.Placement) request.PlacementRequest {
	req := request.PlacementRequest{Tiles: make([]request.TileRequest, 0, p.Len())}
	for i, pos := range p.Positions {
		tile := request.TileRequest{Row: pos.Row, Col: pos.Col}
		if t := p.Tiles[i]; t != nil {
			tile.Letter = string(t.Letter)
			tile.Blank = t.Blank
		}
		req.Tiles = append(req.Tiles, tile)
	}
	return req
}

// readBoardFile reads a grid from a file of board rows. Blank lines and lines
// starting with '#' are skipped.
func readBoardFile(path string) (*model.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board: %w", err)
	}
	defer file.Close()

	var rows []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	return model.ParseGrid(rows)
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/mcoot/tilegame/internal/api/request"
	"github.com/mcoot/tilegame/internal/api/response"
	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/board"
	"github.com/mcoot/tilegame/internal/services/layout"
)

// BoardHandler handles endpoints on the live board
type BoardHandler struct {
	boardService  board.ServiceInterface
	layoutService layout.ServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService board.ServiceInterface, layoutService layout.ServiceInterface) *BoardHandler {
	return &BoardHandler{
		boardService:  boardService,
		layoutService: layoutService,
	}
}

// Get handles GET /api/v1/board
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.BoardFromModel(h.boardService.Snapshot()))
}

// Score handles POST /api/v1/board/score. Nothing is committed.
func (h *BoardHandler) Score(w http.ResponseWriter, r *http.Request) {
	p, err := decodePlacement(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result := h.boardService.Score(p)
	response.JSON(w, http.StatusOK, response.EvaluationFromResult(result))
}

// Place handles POST /api/v1/board/place
func (h *BoardHandler) Place(w http.ResponseWriter, r *http.Request) {
	p, err := decodePlacement(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result := h.boardService.Play(p)
	if !result.Accepted() {
		WriteError(w, result.Reason)
		return
	}

	response.JSON(w, http.StatusOK, response.PlaceResponse{
		Evaluation: response.EvaluationFromResult(result),
		Board:      response.BoardFromModel(h.boardService.Snapshot()),
	})
}

// Undo handles POST /api/v1/board/undo
func (h *BoardHandler) Undo(w http.ResponseWriter, r *http.Request) {
	h.history(w, h.boardService.Undo)
}

// Redo handles POST /api/v1/board/redo
func (h *BoardHandler) Redo(w http.ResponseWriter, r *http.Request) {
	h.history(w, h.boardService.Redo)
}

func (h *BoardHandler) history(w http.ResponseWriter, step func() ([]model.Cell, error)) {
	cells, err := step()
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.HistoryResponse{
		Tiles: response.TilesFromCells(cells),
		Board: response.BoardFromModel(h.boardService.Snapshot()),
	})
}

// Layouts handles GET /api/v1/layouts
func (h *BoardHandler) Layouts(w http.ResponseWriter, r *http.Request) {
	names, err := h.layoutService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Layouts{Names: names})
}

// ApplyLayout handles PUT /api/v1/board/layout
func (h *BoardHandler) ApplyLayout(w http.ResponseWriter, r *http.Request) {
	var req request.ApplyLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	l, err := h.layoutService.Get(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.boardService.ApplyLayout(l)

	response.NoContent(w)
}

func decodePlacement(r *http.Request) (model.Placement, error) {
	var req request.PlacementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return model.Placement{}, NewInvalidRequestError("invalid request body")
	}

	var p model.Placement
	for _, t := range req.Tiles {
		pos := model.Position{Row: t.Row, Col: t.Col}
		if t.Letter == "" {
			p.Add(pos, nil)
			continue
		}
		letter, size := utf8.DecodeRuneInString(t.Letter)
		if size != len(t.Letter) || !model.IsTileLetter(model.Normalize(letter)) {
			return model.Placement{}, fmt.Errorf("%w: %q", model.ErrInvalidLetter, t.Letter)
		}
		if t.Blank {
			p.Add(pos, model.NewBlankTile(letter))
		} else {
			p.Add(pos, model.NewTile(letter))
		}
	}
	return p, nil
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/tilegame/internal/api/request"
	"github.com/mcoot/tilegame/internal/api/response"
	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/services/bot"
)

// MovesHandler handles move search endpoints
type MovesHandler struct {
	searcher   *bot.Searcher
	botService *bot.Service
}

// NewMovesHandler creates a new moves handler
func NewMovesHandler(searcher *bot.Searcher, botService *bot.Service) *MovesHandler {
	return &MovesHandler{
		searcher:   searcher,
		botService: botService,
	}
}

// Candidates handles POST /api/v1/moves/candidates
func (h *MovesHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	rack, err := decodeRack(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	words := h.searcher.FindCandidateWords(rack)
	if words == nil {
		words = []string{}
	}
	response.JSON(w, http.StatusOK, response.Candidates{Words: words})
}

// Best handles POST /api/v1/moves/best. The move is not played.
func (h *MovesHandler) Best(w http.ResponseWriter, r *http.Request) {
	rack, err := decodeRack(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	move, err := h.botService.Suggest(bot.StrategyGreedy, rack)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MoveResponseFromModel(move))
}

// Play handles POST /api/v1/moves/play, letting a bot commit a move
func (h *MovesHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.BotPlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	rack, err := model.ParseRack(req.Rack)
	if err != nil {
		WriteError(w, err)
		return
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = bot.StrategyGreedy
	}

	move, err := h.botService.Play(strategy, rack)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MoveResponseFromModel(move))
}

func decodeRack(r *http.Request) (model.Rack, error) {
	var req request.RackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return model.Rack{}, NewInvalidRequestError("invalid request body")
	}
	return model.ParseRack(req.Rack)
}

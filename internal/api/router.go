package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/tilegame/internal/api/handler"
	"github.com/mcoot/tilegame/internal/api/middleware"
	"github.com/mcoot/tilegame/internal/api/response"
	"github.com/mcoot/tilegame/internal/services/board"
	"github.com/mcoot/tilegame/internal/services/bot"
	"github.com/mcoot/tilegame/internal/services/dictionary"
	"github.com/mcoot/tilegame/internal/services/layout"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	BoardService      *board.Service
	LayoutService     *layout.Service
	DictionaryService *dictionary.Service
	Searcher          *bot.Searcher
	BotService        *bot.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	boardHandler := handler.NewBoardHandler(cfg.BoardService, cfg.LayoutService)
	movesHandler := handler.NewMovesHandler(cfg.Searcher, cfg.BotService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Board routes
	api.HandleFunc("/board", boardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/board/score", boardHandler.Score).Methods(http.MethodPost)
	api.HandleFunc("/board/place", boardHandler.Place).Methods(http.MethodPost)
	api.HandleFunc("/board/undo", boardHandler.Undo).Methods(http.MethodPost)
	api.HandleFunc("/board/redo", boardHandler.Redo).Methods(http.MethodPost)
	api.HandleFunc("/board/layout", boardHandler.ApplyLayout).Methods(http.MethodPut)
	api.HandleFunc("/layouts", boardHandler.Layouts).Methods(http.MethodGet)

	// Move search routes
	api.HandleFunc("/moves/candidates", movesHandler.Candidates).Methods(http.MethodPost)
	api.HandleFunc("/moves/best", movesHandler.Best).Methods(http.MethodPost)
	api.HandleFunc("/moves/play", movesHandler.Play).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler(cfg.DictionaryService)).Methods(http.MethodGet)

	return r
}

// healthHandler reports "no_dictionary" while every word would be rejected.
// The server is still up, so the status code stays 200.
func healthHandler(dict *dictionary.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		if !dict.IsLoaded() {
			status = "no_dictionary"
		}
		response.JSON(w, http.StatusOK, response.Health{
			Status:     status,
			Dictionary: dict.WordCount(),
		})
	}
}

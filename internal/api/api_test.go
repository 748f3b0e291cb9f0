package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tilegame/internal/api"
	"github.com/mcoot/tilegame/internal/api/apierr"
	"github.com/mcoot/tilegame/internal/api/request"
	"github.com/mcoot/tilegame/internal/api/response"
	"github.com/mcoot/tilegame/internal/factory"
	"github.com/mcoot/tilegame/internal/model"
	"github.com/mcoot/tilegame/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestDictionary())

	router := api.NewRouter(api.RouterConfig{
		Logger:            testutil.NopLogger(),
		BoardService:      app.BoardService,
		LayoutService:     app.LayoutService,
		DictionaryService: app.DictionaryService,
		Searcher:          app.Searcher,
		BotService:        app.BotService,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func row(r, c int, letters string) request.PlacementRequest {
	var req request.PlacementRequest
	for i, ch := range letters {
		tile := request.TileRequest{Row: r, Col: c + i}
		if ch != '.' {
			tile.Letter = string(ch)
		}
		req.Tiles = append(req.Tiles, tile)
	}
	return req
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	health := decode[response.Health](t, rr)
	assert.Equal(t, "ok", health.Status)
	assert.Positive(t, health.Dictionary)
}

func TestGetEmptyBoard(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/board", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	board := decode[response.Board](t, rr)
	assert.Len(t, board.Rows, model.BoardSize)
	assert.Equal(t, 0, board.Tiles)
}

func TestScoreIsDryRun(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/board/score", row(7, 7, "TEST"))
	require.Equal(t, http.StatusOK, rr.Code)

	eval := decode[response.Evaluation](t, rr)
	assert.True(t, eval.Accepted)
	assert.Equal(t, 8, eval.Score)
	require.Len(t, eval.Words, 1)
	assert.Equal(t, "TEST", eval.Words[0].Word)
	assert.Equal(t, 0, ts.app.BoardService.Snapshot().TileCount())
}

func TestScoreReportsRejection(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/board/score", row(7, 7, "H"))
	require.Equal(t, http.StatusOK, rr.Code)

	eval := decode[response.Evaluation](t, rr)
	assert.False(t, eval.Accepted)
	assert.Equal(t, 0, eval.Score)
	assert.Contains(t, eval.Reason, "two tiles")
}

func TestPlaceCommits(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/board/place", row(7, 7, "TEST"))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.PlaceResponse](t, rr)
	assert.Equal(t, 8, resp.Evaluation.Score)
	assert.Equal(t, 4, resp.Board.Tiles)
	assert.Equal(t, ".......TEST....", resp.Board.Rows[7])
	assert.Len(t, resp.Evaluation.Placed, 4)
}

func TestPlaceRejected(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/board/place", row(7, 7, "QQ"))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	errResp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodePlacementRejected, errResp.Error.Code)
	assert.Contains(t, errResp.Error.Message, "QQ")
	assert.Equal(t, 0, ts.app.BoardService.Snapshot().TileCount())
}

func TestPlaceOnOccupiedSquare(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusOK, ts.request(http.MethodPost, "/api/v1/board/place", row(7, 7, "TEST")).Code)

	rr := ts.request(http.MethodPost, "/api/v1/board/place", row(7, 7, "B"))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeSquareOccupied, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestPlaceThroughExistingLetters(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusOK, ts.request(http.MethodPost, "/api/v1/board/place", row(7, 7, "TEST")).Code)

	rr := ts.request(http.MethodPost, "/api/v1/board/place", row(7, 7, "....S"))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.PlaceResponse](t, rr)
	assert.Equal(t, 6, resp.Evaluation.Score)
	assert.Equal(t, []response.Tile{{Row: 7, Col: 11, Letter: "S"}}, resp.Evaluation.Placed)
}

func TestBlankTile(t *testing.T) {
	ts := newTestServer(t)
	req := row(7, 7, "TEST")
	req.Tiles[0].Blank = true

	rr := ts.request(http.MethodPost, "/api/v1/board/place", req)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.PlaceResponse](t, rr)
	assert.Equal(t, 6, resp.Evaluation.Score)
	assert.Equal(t, ".......tEST....", resp.Board.Rows[7])
}

func TestInvalidLetter(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/board/place", row(7, 7, "T1"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidLetter, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/board/place", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestCandidates(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/moves/candidates", request.RackRequest{Rack: "TEST"})
	require.Equal(t, http.StatusOK, rr.Code)

	candidates := decode[response.Candidates](t, rr)
	assert.Contains(t, candidates.Words, "TEST")
	assert.Contains(t, candidates.Words, "SET")
}

func TestCandidatesEmpty(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/moves/candidates", request.RackRequest{Rack: "QQQ"})
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Empty(t, decode[response.Candidates](t, rr).Words)
}

func TestInvalidRack(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/moves/candidates", request.RackRequest{Rack: "ABCDEFGH"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRack, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestBestMoveNotCommitted(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/moves/best", request.RackRequest{Rack: "TESTABC"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.MoveResponse](t, rr)
	require.True(t, resp.Found)
	assert.Positive(t, resp.Move.Score)
	assert.NotEmpty(t, resp.Move.Tiles)
	assert.Equal(t, 0, ts.app.BoardService.Snapshot().TileCount())
}

func TestBestMoveNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/moves/best", request.RackRequest{Rack: "QQ"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.MoveResponse](t, rr)
	assert.False(t, resp.Found)
	assert.Nil(t, resp.Move)
}

func TestBotPlayCommits(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/moves/play", request.BotPlayRequest{Rack: "TESTABC"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.MoveResponse](t, rr)
	require.True(t, resp.Found)
	assert.Equal(t, len(resp.Move.Tiles), ts.app.BoardService.Snapshot().TileCount())
}

func TestBotPlayUnknownStrategy(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/moves/play", request.BotPlayRequest{Rack: "TEST", Strategy: "clever"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownStrategy, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestLayouts(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.app.LayoutService.Save(t.Context(), model.NewLayout("flat")))

	rr := ts.request(http.MethodGet, "/api/v1/layouts", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{model.DefaultLayoutName, "flat"}, decode[response.Layouts](t, rr).Names)

	rr = ts.request(http.MethodPut, "/api/v1/board/layout", request.ApplyLayoutRequest{Name: "flat"})
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/board/score", row(7, 7, "TEST"))
	assert.Equal(t, 4, decode[response.Evaluation](t, rr).Score)
}

func TestApplyUnknownLayout(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPut, "/api/v1/board/layout", request.ApplyLayoutRequest{Name: "missing"})

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeLayoutNotFound, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestUndoRedo(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusOK, ts.request(http.MethodPost, "/api/v1/board/place", row(7, 7, "TEST")).Code)

	rr := ts.request(http.MethodPost, "/api/v1/board/undo", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	undone := decode[response.HistoryResponse](t, rr)
	assert.Len(t, undone.Tiles, 4)
	assert.Equal(t, 0, undone.Board.Tiles)

	rr = ts.request(http.MethodPost, "/api/v1/board/redo", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ".......TEST....", decode[response.HistoryResponse](t, rr).Board.Rows[7])
}

func TestUndoWithoutHistory(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/board/undo", nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNothingToUndo, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestBotPlayCanBeUndone(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusOK, ts.request(http.MethodPost, "/api/v1/moves/play", request.BotPlayRequest{Rack: "TESTABC"}).Code)

	require.Equal(t, http.StatusOK, ts.request(http.MethodPost, "/api/v1/board/undo", nil).Code)

	assert.Equal(t, 0, ts.app.BoardService.Snapshot().TileCount())
	assert.Equal(t, []model.Position{model.Center}, ts.app.Searcher.Anchors())
}

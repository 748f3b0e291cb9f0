package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/tilegame/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeInvalidRack         = "INVALID_RACK"
	CodeSquareOccupied      = "SQUARE_OCCUPIED"
	CodePlacementRejected   = "PLACEMENT_REJECTED"
	CodeNothingToUndo       = "NOTHING_TO_UNDO"
	CodeNothingToRedo       = "NOTHING_TO_REDO"
	CodeLayoutNotFound      = "LAYOUT_NOT_FOUND"
	CodeInvalidLayout       = "INVALID_LAYOUT"
	CodeUnknownStrategy     = "UNKNOWN_STRATEGY"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// placementRejections are the validator's reasons for refusing a play
var placementRejections = []error{
	model.ErrShapeMismatch,
	model.ErrDuplicatePosition,
	model.ErrNoNewTiles,
	model.ErrOpeningTooShort,
	model.ErrOpeningMissesCenter,
	model.ErrNotCollinear,
	model.ErrNotConnected,
	model.ErrGap,
	model.ErrInvalidWord,
	model.ErrZeroScore,
}

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	for _, rejection := range placementRejections {
		if errors.Is(err, rejection) {
			return &httpError{http.StatusUnprocessableEntity, APIError{CodePlacementRejected, err.Error()}}
		}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter must be A-Z"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrInvalidRack):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRack, "Rack holds at most 7 tiles"}}
	case errors.Is(err, model.ErrSquareOccupied):
		return &httpError{http.StatusConflict, APIError{CodeSquareOccupied, err.Error()}}
	case errors.Is(err, model.ErrNothingToUndo):
		return &httpError{http.StatusConflict, APIError{CodeNothingToUndo, "Nothing to undo"}}
	case errors.Is(err, model.ErrNothingToRedo):
		return &httpError{http.StatusConflict, APIError{CodeNothingToRedo, "Nothing to redo"}}
	case errors.Is(err, model.ErrLayoutNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLayoutNotFound, "Layout not found"}}
	case errors.Is(err, model.ErrInvalidLayout):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLayout, err.Error()}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, err.Error()}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary not loaded"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrInvalidLetter   = errors.New("invalid letter")
	ErrInvalidRack     = errors.New("invalid rack")
	ErrInvalidGrid     = errors.New("invalid grid")
	ErrInvalidLayout   = errors.New("invalid layout")

	// Placement rejections
	ErrShapeMismatch       = errors.New("positions and tiles differ in length")
	ErrDuplicatePosition   = errors.New("position used twice in placement")
	ErrNoNewTiles          = errors.New("placement puts down no tiles")
	ErrOpeningTooShort     = errors.New("opening play needs at least two tiles")
	ErrOpeningMissesCenter = errors.New("opening play must cover the center square")
	ErrNotCollinear        = errors.New("tiles are not in one row or column")
	ErrNotConnected        = errors.New("tiles do not touch existing letters")
	ErrGap                 = errors.New("placement leaves a gap")
	ErrInvalidWord         = errors.New("word not in dictionary")
	ErrZeroScore           = errors.New("placement scores nothing")
	ErrSquareOccupied      = errors.New("square already holds a letter")

	// History errors
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")

	// Layout errors
	ErrLayoutNotFound = errors.New("layout not found")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
)


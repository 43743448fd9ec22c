package engine

import "errors"

// All engine errors are recoverable rejections of a single operation; none
// are process-fatal. Stale actions (a timer already advanced the phase, or
// vice versa) surface as ErrWrongPhase.
var ErrGameNotFound = errors.New("game not found")
var ErrWrongPhase = errors.New("action invalid for current phase")
var ErrNotYourTurn = errors.New("not your turn")
var ErrInvalidLetter = errors.New("letter not in alphabet")
var ErrNoLetterHeld = errors.New("no letter held")
var ErrOutOfBounds = errors.New("cell out of bounds")
var ErrCellOccupied = errors.New("cell occupied")
var ErrNoPlacementToConfirm = errors.New("no placement to confirm")

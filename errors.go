package rewind

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the kind shared by all history misuse errors.
// Use errors.Is(err, ErrInvalidOperation) to match any of them.
var ErrInvalidOperation = errors.New("invalid operation")

// Errors returned by history transitions. Both are caller-induced
// misuse; the store's state is left unchanged when they occur.
var (
	// ErrUndoNotAllowed is returned by undo when the past is empty.
	ErrUndoNotAllowed = fmt.Errorf("%w: undo not allowed", ErrInvalidOperation)

	// ErrRedoNotAllowed is returned by redo when the future is empty.
	ErrRedoNotAllowed = fmt.Errorf("%w: redo not allowed", ErrInvalidOperation)
)

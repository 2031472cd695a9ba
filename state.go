package rewind

// State is an immutable snapshot of the history container: an ordered
// past, a single present value, and an ordered future.
//
// Both sequences are ordered oldest-first: the undo target is the last
// element of Past, and the redo target is the last element of Future.
// Transitions never mutate a State or its slices in place; callers may
// safely hold a State across later operations on the same Store.
type State[T any] struct {
	// Past holds values older than Present, nearest-previous last.
	Past []T

	// Present is the currently visible value. It is always set.
	Present T

	// Future holds values undone away from Present, oldest-undone
	// first, so the redo target is the last element.
	Future []T
}

// CanUndo reports whether an undo transition is possible.
func (s State[T]) CanUndo() bool {
	return len(s.Past) > 0
}

// CanRedo reports whether a redo transition is possible.
func (s State[T]) CanRedo() bool {
	return len(s.Future) > 0
}

// Clone creates a deep copy of the state's sequences. The present
// value itself is copied by assignment; if T contains pointers the
// pointed-to data is shared.
func (s State[T]) Clone() State[T] {
	return State[T]{
		Past:    cloneValues(s.Past),
		Present: s.Present,
		Future:  cloneValues(s.Future),
	}
}

// cloneValues copies a value slice, preserving nil.
func cloneValues[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

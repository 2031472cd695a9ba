// Package rewind provides a bounded, generic undo/redo history container.
//
// A Store holds a single present value of any type T and remembers a
// finite window of prior values, allowing the caller to step backward
// (undo) and forward (redo) through them. Key concepts:
//
// # State
//
// The history is a strict linear two-stack model: a past sequence
// (undo source, nearest-previous last), a single present value, and a
// future sequence (redo source, filled by undo). State values are
// immutable snapshots; every transition produces a new State rather
// than mutating the old one in place.
//
// # Commands
//
// Transitions are driven by a closed command set:
//   - Set: replace the present value, either recorded into the past
//     (undoable) or silently (bypassing history entirely)
//   - Undo: move the nearest past value back into the present
//   - Redo: move the nearest undone value back into the present
//   - Reset: collapse all history back to the construction baseline
//
// Rules.Apply is the pure transition function over these commands; the
// Store is a thin mutex-guarded shell around it.
//
// # Capacity
//
// The past sequence is bounded. When a transition would grow it past
// the configured capacity, the oldest entries are dropped from the
// front. The default capacity is 20.
//
// # Modes
//
// In the default ModeCompatible, an undoable Set leaves the future
// sequence untouched, so a redo may still succeed after a new write.
// ModeStrict clears the future on every undoable Set, giving the
// conventional linear-history behavior. See Mode for details.
//
// # Usage
//
//	store := rewind.New(0, rewind.WithCapacity(100))
//
//	store.Set(1)
//	store.Set(2)
//
//	if store.CanUndo() {
//		store.Undo() // present is 1 again
//	}
//	store.Redo() // present is 2 again
//
//	store.Reset() // present is 0, history empty
//
// # Notifications
//
// Observers subscribe to committed transitions and receive a Change
// carrying the operation kind and a snapshot of the new state. See
// Store.Subscribe.
package rewind

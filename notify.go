package rewind

import "sort"

// Op identifies the kind of committed transition in a Change.
type Op int

const (
	// OpSet indicates an undoable write.
	OpSet Op = iota

	// OpSilentSet indicates a write that bypassed history tracking.
	OpSilentSet

	// OpUndo indicates an undo transition.
	OpUndo

	// OpRedo indicates a redo transition.
	OpRedo

	// OpReset indicates a reset to the baseline.
	OpReset
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpSet:
		return "set"
	case OpSilentSet:
		return "silent-set"
	case OpUndo:
		return "undo"
	case OpRedo:
		return "redo"
	case OpReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes a committed transition.
type Change[T any] struct {
	// Op is the kind of transition that committed.
	Op Op

	// State is a snapshot of the state after the transition.
	State State[T]
}

// Observer is called after each committed transition. Failed undo/redo
// calls produce no notification.
//
// Observers run synchronously on the goroutine that issued the command
// and must not call back into the Store.
type Observer[T any] func(change Change[T])

// Subscription represents an active observer registration.
type Subscription[T any] struct {
	id    uint64
	store *Store[T]
}

// Unsubscribe removes this subscription. It is safe to call more than
// once.
func (s *Subscription[T]) Unsubscribe() {
	if s.store != nil {
		s.store.unsubscribe(s.id)
	}
}

// Subscribe registers an observer for all committed transitions.
// Observers are notified in subscription order.
func (s *Store[T]) Subscribe(observer Observer[T]) *Subscription[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = observer

	return &Subscription[T]{id: id, store: s}
}

func (s *Store[T]) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, id)
}

// notifyTargets snapshots the registered observers in subscription
// order. Must be called with the lock held.
func (s *Store[T]) notifyTargets() []Observer[T] {
	if len(s.observers) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	targets := make([]Observer[T], len(ids))
	for i, id := range ids {
		targets[i] = s.observers[id]
	}
	return targets
}

package rewind

import "sync"

// Store manages undo/redo state for a single value.
//
// The store is a thin shell around Rules.Apply: it owns the current
// State behind a mutex, serializing commands so each transition fully
// commits before the next is applied. All methods are safe for
// concurrent use, though the container is designed for a single
// writer issuing one command at a time.
type Store[T any] struct {
	mu    sync.Mutex
	rules Rules[T]
	state State[T]

	observers map[uint64]Observer[T]
	nextID    uint64
}

// New creates a store holding initial as both the present value and
// the reset baseline.
func New[T any](initial T, opts ...Option) *Store[T] {
	cfg := settings{capacity: DefaultCapacity, mode: ModeCompatible}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store[T]{
		rules: Rules[T]{
			Capacity: cfg.capacity,
			Mode:     cfg.mode,
			Baseline: initial,
		},
		state:     State[T]{Present: initial},
		observers: make(map[uint64]Observer[T]),
	}
}

// Apply runs a command against the current state. On success the new
// state is committed and observers are notified; on failure the state
// is left unchanged and no notification is sent.
func (s *Store[T]) Apply(cmd Command[T]) error {
	s.mu.Lock()
	next, err := s.rules.Apply(s.state, cmd)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	targets := s.notifyTargets()
	snapshot := next.Clone()
	s.mu.Unlock()

	for _, observer := range targets {
		observer(Change[T]{Op: cmd.op(), State: snapshot})
	}
	return nil
}

// Set records the present value into the past and makes v the new
// present.
func (s *Store[T]) Set(v T) {
	_ = s.Apply(Set[T]{Value: v})
}

// SetSilent makes v the new present without touching history.
func (s *Store[T]) SetSilent(v T) {
	_ = s.Apply(Set[T]{Value: v, Silent: true})
}

// Update is Set with a lazy input: fn is evaluated against the present
// value at transition time.
func (s *Store[T]) Update(fn func(T) T) {
	_ = s.Apply(Set[T]{Update: fn})
}

// UpdateSilent is SetSilent with a lazy input.
func (s *Store[T]) UpdateSilent(fn func(T) T) {
	_ = s.Apply(Set[T]{Update: fn, Silent: true})
}

// Undo steps the present back to the nearest past value.
// Returns ErrUndoNotAllowed if the past is empty.
func (s *Store[T]) Undo() error {
	return s.Apply(Undo[T]{})
}

// Redo steps the present forward to the nearest undone value.
// Returns ErrRedoNotAllowed if the future is empty.
func (s *Store[T]) Redo() error {
	return s.Apply(Redo[T]{})
}

// Reset collapses all history back to the construction baseline.
func (s *Store[T]) Reset() {
	_ = s.Apply(Reset[T]{})
}

// Present returns the currently visible value.
func (s *Store[T]) Present() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Present
}

// CanUndo returns true if undo is available.
func (s *Store[T]) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CanUndo()
}

// CanRedo returns true if redo is available.
func (s *Store[T]) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CanRedo()
}

// UndoCount returns the number of undo steps available.
func (s *Store[T]) UndoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Past)
}

// RedoCount returns the number of redo steps available.
func (s *Store[T]) RedoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Future)
}

// PeekUndo returns the value undo would restore without applying it.
func (s *Store[T]) PeekUndo() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.state.Past); n > 0 {
		return s.state.Past[n-1], true
	}
	var zero T
	return zero, false
}

// PeekRedo returns the value redo would restore without applying it.
func (s *Store[T]) PeekRedo() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.state.Future); n > 0 {
		return s.state.Future[n-1], true
	}
	var zero T
	return zero, false
}

// Snapshot returns a deep copy of the current state.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Capacity returns the past-sequence bound.
func (s *Store[T]) Capacity() int {
	return s.rules.Capacity
}

// Mode returns the future-handling mode for undoable writes.
func (s *Store[T]) Mode() Mode {
	return s.rules.Mode
}

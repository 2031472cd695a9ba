package rewind

import "fmt"

// Command is one of the four history transitions: Set, Undo, Redo, or
// Reset. The set is closed; commands from outside this package cannot
// implement it.
type Command[T any] interface {
	// op identifies the command kind and seals the interface.
	op() Op
}

// Set replaces the present value.
//
// The input is either the literal Value or, when Update is non-nil, the
// result of Update applied to the present value at transition time.
// Update wins over Value when both are set.
//
// By default the old present is recorded into the past, making the
// write reversible via undo. Silent writes bypass history tracking
// entirely, leaving past and future untouched.
type Set[T any] struct {
	Value  T
	Update func(T) T

	// Silent marks the write as not undoable.
	Silent bool
}

func (c Set[T]) op() Op {
	if c.Silent {
		return OpSilentSet
	}
	return OpSet
}

// resolve evaluates the input against the present value.
func (c Set[T]) resolve(present T) T {
	if c.Update != nil {
		return c.Update(present)
	}
	return c.Value
}

// Undo moves the nearest past value into the present and the old
// present onto the future.
type Undo[T any] struct{}

func (Undo[T]) op() Op { return OpUndo }

// Redo moves the nearest undone value into the present and the old
// present onto the past.
type Redo[T any] struct{}

func (Redo[T]) op() Op { return OpRedo }

// Reset unconditionally collapses all history back to the baseline
// value captured at construction.
type Reset[T any] struct{}

func (Reset[T]) op() Op { return OpReset }

// Rules captures the construction-time parameters of a history
// container and implements its pure transition function.
//
// Apply is reentrant and free of side effects; it can be exercised
// directly in tests or by callers that manage their own state.
type Rules[T any] struct {
	// Capacity bounds the past sequence. Non-positive values are
	// treated as DefaultCapacity.
	Capacity int

	// Mode selects how an undoable Set treats the future sequence.
	Mode Mode

	// Baseline is the value Reset restores. It is the construction
	// value, not the oldest past entry.
	Baseline T
}

// Apply produces the successor of st under cmd. The input state is
// never mutated. On error the input state is returned unchanged.
func (r Rules[T]) Apply(st State[T], cmd Command[T]) (State[T], error) {
	switch c := cmd.(type) {
	case Set[T]:
		next := State[T]{
			Past:    cloneValues(st.Past),
			Present: c.resolve(st.Present),
			Future:  cloneValues(st.Future),
		}
		if c.Silent {
			return next, nil
		}
		next.Past = r.bound(append(next.Past, st.Present))
		if r.Mode == ModeStrict {
			next.Future = nil
		}
		return next, nil

	case Undo[T]:
		n := len(st.Past)
		if n == 0 {
			return st, ErrUndoNotAllowed
		}
		future := make([]T, 0, len(st.Future)+1)
		future = append(future, st.Future...)
		future = append(future, st.Present)
		return State[T]{
			Past:    cloneValues(st.Past[:n-1]),
			Present: st.Past[n-1],
			Future:  future,
		}, nil

	case Redo[T]:
		n := len(st.Future)
		if n == 0 {
			return st, ErrRedoNotAllowed
		}
		past := make([]T, 0, len(st.Past)+1)
		past = append(past, st.Past...)
		past = append(past, st.Present)
		return State[T]{
			Past:    r.bound(past),
			Present: st.Future[n-1],
			Future:  cloneValues(st.Future[:n-1]),
		}, nil

	case Reset[T]:
		return State[T]{Present: r.Baseline}, nil

	default:
		return st, fmt.Errorf("%w: unknown command %T", ErrInvalidOperation, cmd)
	}
}

// bound trims the oldest entries so the past fits the capacity.
func (r Rules[T]) bound(past []T) []T {
	capacity := r.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if excess := len(past) - capacity; excess > 0 {
		past = past[excess:]
	}
	return past
}

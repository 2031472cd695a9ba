package rewind

import "fmt"

// DefaultCapacity is the past-sequence bound used when no capacity is
// configured.
const DefaultCapacity = 20

// Mode selects how an undoable Set treats the future sequence.
type Mode int

const (
	// ModeCompatible leaves the future untouched on an undoable Set.
	// After undo-then-set, previously undone values remain reachable
	// via redo. This is the reference behavior and the default.
	ModeCompatible Mode = iota

	// ModeStrict clears the future on every undoable Set, so a new
	// write discards any redo targets. This is the conventional
	// linear-history behavior.
	ModeStrict
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCompatible:
		return "compatible"
	case ModeStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "compatible", "":
		return ModeCompatible, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModeCompatible, fmt.Errorf("unknown history mode %q", s)
	}
}

// Option configures a Store at construction.
type Option func(*settings)

type settings struct {
	capacity int
	mode     Mode
}

// WithCapacity sets the maximum number of entries retained in the
// past sequence. Non-positive values fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithMode sets the future-handling mode for undoable writes.
func WithMode(m Mode) Option {
	return func(s *settings) {
		s.mode = m
	}
}

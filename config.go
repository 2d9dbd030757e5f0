package symtab

import "fmt"

const (
	// DefaultCapacity is the initial node-arena capacity used when the
	// configuration does not request one.
	DefaultCapacity = 32
)

// Config configures an ordered symbol table.
type Config[K any] struct {
	// Compare is the three-way comparison establishing the strict total
	// order over keys: negative if a sorts before b, positive if a sorts
	// after b, zero if both are equal. Required.
	Compare func(a, b K) int

	// SelfCheck re-validates the tree invariants after every mutating
	// operation and panics on a violation. Each check walks the whole
	// tree; meant for tests and debugging, not for production use.
	SelfCheck bool

	// Capacity is the initial node-arena capacity, in nodes. Zero selects
	// DefaultCapacity.
	Capacity int
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative arena capacity", ErrInvalidConfig)
	}
	return nil
}

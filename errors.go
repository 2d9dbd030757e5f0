package symtab

import "errors"

var (
	// ErrInvalidConfig signals an invalid table configuration.
	ErrInvalidConfig = errors.New("symtab: invalid configuration")
	// ErrNilKey signals a nil key passed to an operation that requires one.
	ErrNilKey = errors.New("symtab: nil key")
	// ErrEmptyTable signals an extremal query or deletion on a table
	// without keys.
	ErrEmptyTable = errors.New("symtab: table is empty")
	// ErrNoCandidate signals a Floor or Ceiling query for which no stored
	// key qualifies.
	ErrNoCandidate = errors.New("symtab: no qualifying key")
	// ErrIndexOutOfBounds signals an order position outside [0, size).
	ErrIndexOutOfBounds = errors.New("symtab: index out of bounds")
	// ErrInvariantViolation marks findings of the tree integrity check.
	ErrInvariantViolation = errors.New("symtab: invariant violation")
)

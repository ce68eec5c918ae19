package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate record")
	// ErrConflict means the row was modified by another writer after the
	// edit form loaded its baseline timestamp.
	ErrConflict = errors.New("record modified by another user, reload required")
	// ErrBillFull means the bill working set already holds the maximum
	// number of sale lines.
	ErrBillFull = errors.New("bill already holds the maximum number of sale lines")
)

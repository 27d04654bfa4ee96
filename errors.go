package dynlist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index argument is outside the
	// valid range of the requested operation. State is left unchanged.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNullArgument is returned when a null or zero value is stored.
	ErrNullArgument = errors.New("value must not be null")

	// ErrNotSupported is returned by operations the list deliberately does
	// not implement.
	ErrNotSupported = errors.New("operation not supported")
)

// IndexOutOfRangeError describes a rejected index.
//
// It matches ErrIndexOutOfRange via errors.Is.
type IndexOutOfRangeError struct {
	Op     string
	Index  int
	Length int
	// Inclusive is true when Index == Length was allowed (Insert).
	Inclusive bool
}

func (e *IndexOutOfRangeError) Error() string {
	bound := ")"
	if e.Inclusive {
		bound = "]"
	}
	return fmt.Sprintf("%s: index %d out of range [0, %d%s", e.Op, e.Index, e.Length, bound)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

func checkIndex(op string, index, length int) error {
	if index < 0 || index >= length {
		return &IndexOutOfRangeError{Op: op, Index: index, Length: length}
	}
	return nil
}

func checkInsertIndex(op string, index, length int) error {
	if index < 0 || index > length {
		return &IndexOutOfRangeError{Op: op, Index: index, Length: length, Inclusive: true}
	}
	return nil
}

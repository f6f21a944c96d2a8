package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no document matched the filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate means an insert violated a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// FaultError wraps any store failure other than ErrNotFound: the store could
// not be reached or rejected the operation. It is never retried here.
type FaultError struct {
	Op         string
	Collection string
	Err        error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *FaultError) Unwrap() error { return e.Err }

// IsFault reports whether err is a store fault.
func IsFault(err error) bool {
	var fe *FaultError
	return errors.As(err, &fe)
}

func fault(op, collection string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	return &FaultError{Op: op, Collection: collection, Err: err}
}

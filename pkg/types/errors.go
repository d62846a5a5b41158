package types

import (
	"errors"
	"fmt"
)

var ErrNotConnected = errors.New("database is not connected")

// StorageError is returned by every persistence operation that fails,
// whether the store is unreachable, misconfigured or rejects the call.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

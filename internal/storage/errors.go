package storage

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks failures to open the local database at all (missing
// permissions, unwritable config directory). Not retryable within a session.
var ErrUnavailable = errors.New("storage unavailable")

// UnavailableError wraps the cause of a failed open.
type UnavailableError struct {
	Path string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable at %s: %v", e.Path, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrUnavailable) match.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// IOError marks a specific read/write/delete that failed against an open
// database. Callers may retry the same operation; they must not assume the
// write partially applied.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

// PartialWriteError reports a multi-area operation that updated some stores
// and failed on others. The database is in an inconsistent but discoverable
// state; the operation is retriable per key.
type PartialWriteError struct {
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write: %s failed after %v: %v", e.Failed, e.Completed, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

// WrapIO wraps a failed database operation in an IOError.
func WrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}

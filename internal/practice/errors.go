package practice

import (
	"errors"
	"fmt"
)

// ErrNoActiveSession is returned when Advance or End is called on a state
// with no live session behind it.
var ErrNoActiveSession = errors.New("no active session")

// PersistenceError wraps a storage failure during a session operation. The
// operation fails atomically: the caller's previous state is untouched and
// the same step can be retried.
type PersistenceError struct {
	Op  string // "create session", "record item", "close session"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

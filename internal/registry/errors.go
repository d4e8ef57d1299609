package registry

import (
	"errors"
	"fmt"
)

// ErrReentrantMutation is raised when a subscriber mutates the registry
// while an earlier mutation is still notifying.
var ErrReentrantMutation = errors.New("re-entrant registry mutation")

// Error describes a contract violation on a single operation. Mutators panic
// with *Error; the host recovers it per event.
type Error struct {
	Op  string
	ID  WindowID
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("registry %s %s: %v", e.Op, e.ID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func violation(op string, id WindowID, err error) {
	panic(&Error{Op: op, ID: id, Err: err})
}

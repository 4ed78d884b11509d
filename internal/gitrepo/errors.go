package gitrepo

import (
	"errors"
	"fmt"
)

// ErrNotTagPath indicates a name that does not start with "tags/".
var ErrNotTagPath = errors.New("not a tag path")

// GitError represents an error that occurred during a git operation.
type GitError struct {
	Op  string // list-tags, create-tag, push, walk, open
	Ref string
	Err error
}

// Error implements the error interface.
func (e *GitError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("git %s %s: %v", e.Op, e.Ref, e.Err)
	}

	return fmt.Sprintf("git %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GitError) Unwrap() error {
	return e.Err
}

func wrap(op, ref string, err error) error {
	if err == nil {
		return nil
	}

	return &GitError{Op: op, Ref: ref, Err: err}
}

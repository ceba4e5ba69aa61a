package filter

import (
	"errors"
	"fmt"
)

var errNotBoolean = errors.New("expression did not evaluate to a boolean")

// CompilationError indicates a filter expression could not be compiled.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in %q: %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// EvaluationError indicates a compiled filter failed against a torrent.
type EvaluationError struct {
	Expression  string
	TorrentName string
	Err         error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for %q on torrent %q: %v", e.Expression, e.TorrentName, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

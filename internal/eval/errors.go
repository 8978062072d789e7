package eval

import (
	"errors"
	"fmt"

	"nickandperla.net/aurascript/internal/ast"
)

// ErrHalted is returned when Exec is called on an evaluator that already ran.
var ErrHalted = errors.New("evaluator halted")

// FileReadError reports a missing or unreadable file.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read file %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// StatementError identifies the statement that halted a run.
type StatementError struct {
	Index int // 0-based position in the statement sequence
	Stmt  ast.Stmt
	Err   error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement %d at %s: %v", e.Index+1, e.Stmt.Pos(), e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

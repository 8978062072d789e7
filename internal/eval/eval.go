// Package eval implements the AuraScript evaluator.
package eval

import (
	"fmt"
	"io"
	"os"

	"nickandperla.net/aurascript/internal/ast"
	"nickandperla.net/aurascript/internal/parser"
	"nickandperla.net/aurascript/internal/provider"
)

// Generator produces text for a prompt from the provider named by key.
type Generator interface {
	Generate(key, prompt string) (string, error)
}

// OutputWriter writes output (for Print statements).
type OutputWriter func(text string) error

// FileReader returns the full contents of a file as text.
type FileReader func(path string) (string, error)

// Logf receives statement traces.
type Logf func(format string, args ...any)

// State is the evaluator's run state.
type State int

const (
	// Running means statements may still execute.
	Running State = iota
	// Halted is reached at the end of the sequence or on the first error.
	Halted
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Halted:
		return "HALTED"
	default:
		return "UNKNOWN"
	}
}

// Evaluator executes a statement sequence against an Environment.
type Evaluator struct {
	env          *Environment
	generator    Generator
	outputWriter OutputWriter
	fileReader   FileReader
	logf         Logf
	state        State
	err          error
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithGenerator sets the provider registry used by Generate expressions.
func WithGenerator(g Generator) Option {
	return func(e *Evaluator) { e.generator = g }
}

// WithOutputWriter sets the output writer for Print statements.
func WithOutputWriter(w OutputWriter) Option {
	return func(e *Evaluator) { e.outputWriter = w }
}

// WithOutput sets the io.Writer for Print output.
func WithOutput(w io.Writer) Option {
	return func(e *Evaluator) {
		e.outputWriter = func(text string) error {
			_, err := io.WriteString(w, text)
			return err
		}
	}
}

// WithFileReader sets the reader used by Read file expressions.
func WithFileReader(r FileReader) Option {
	return func(e *Evaluator) { e.fileReader = r }
}

// WithLogf enables statement tracing.
func WithLogf(f Logf) Option {
	return func(e *Evaluator) { e.logf = f }
}

// New creates a new Evaluator with an empty environment. Without
// WithGenerator every provider key is unknown.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		env:       NewEnvironment(),
		generator: provider.NewRegistry(nil),
		outputWriter: func(text string) error {
			fmt.Print(text)
			return nil
		},
		fileReader: func(path string) (string, error) {
			data, err := os.ReadFile(path)
			return string(data), err
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Env returns the evaluator's environment.
func (e *Evaluator) Env() *Environment {
	return e.env
}

// State returns the current run state.
func (e *Evaluator) State() State {
	return e.state
}

// Err returns the error that halted the run, if any.
func (e *Evaluator) Err() error {
	return e.err
}

// Eval parses src completely and then executes it.
// A lex or parse error means no statement runs.
func (e *Evaluator) Eval(src string) error {
	if e.state == Halted {
		return ErrHalted
	}
	stmts, err := parser.Parse(src)
	if err != nil {
		e.halt(err)
		return err
	}
	return e.Exec(stmts)
}

// EvalReader parses and executes a script read from r.
func (e *Evaluator) EvalReader(r io.Reader) error {
	if e.state == Halted {
		return ErrHalted
	}
	stmts, err := parser.ParseReader(r)
	if err != nil {
		e.halt(err)
		return err
	}
	return e.Exec(stmts)
}

// Exec runs the statements in order. The first failing statement halts the
// run; bindings made before it are kept.
func (e *Evaluator) Exec(stmts []ast.Stmt) error {
	if e.state == Halted {
		return ErrHalted
	}
	for i, stmt := range stmts {
		if e.logf != nil {
			e.logf("exec %s %s", stmt.Pos(), stmt)
		}
		if err := e.exec(stmt); err != nil {
			err = &StatementError{Index: i, Stmt: stmt, Err: err}
			e.halt(err)
			return err
		}
	}
	e.halt(nil)
	return nil
}

func (e *Evaluator) halt(err error) {
	e.state = Halted
	e.err = err
}

func (e *Evaluator) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Let:
		value, err := e.value(s.Value)
		if err != nil {
			return err
		}
		e.env.Define(s.Name, value)
		return nil

	case *ast.Print:
		value, err := e.value(s.Value)
		if err != nil {
			return err
		}
		return e.outputWriter(value + "\n")
	}
	return fmt.Errorf("unsupported statement %T", stmt)
}

// value resolves an expression to text.
func (e *Evaluator) value(x ast.Expr) (string, error) {
	switch v := x.(type) {
	case *ast.StringLit:
		return v.Value, nil

	case *ast.VarRef:
		return e.env.Resolve(v.Name)

	case *ast.FileRead:
		text, err := e.fileReader(v.Path)
		if err != nil {
			return "", &FileReadError{Path: v.Path, Err: err}
		}
		return text, nil

	case *ast.Generate:
		if e.generator == nil {
			return "", fmt.Errorf("no content generator configured")
		}
		return e.generator.Generate(v.Provider, v.Prompt)
	}
	return "", fmt.Errorf("unsupported expression %T", x)
}

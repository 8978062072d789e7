// Package ast defines AuraScript statement and expression nodes.
package ast

import (
	"strings"

	"nickandperla.net/aurascript/internal/token"
)

// Node is implemented by every statement and expression.
type Node interface {
	// Pos returns the position of the node's first token.
	Pos() token.Pos
	// String renders the node back as canonical AuraScript source.
	String() string
}

// Stmt is a top-level statement: *Let or *Print.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a value expression: *StringLit, *VarRef, *FileRead or *Generate.
type Expr interface {
	Node
	exprNode()
}

// Let binds the value of an expression to a variable name.
type Let struct {
	At    token.Pos
	Name  string
	Value Expr
}

func (l *Let) Pos() token.Pos { return l.At }
func (l *Let) String() string { return "let " + l.Name + " = " + l.Value.String() + ";" }
func (*Let) stmtNode()        {}

// Print writes the value of an expression to the output sink.
type Print struct {
	At    token.Pos
	Value Expr
}

func (p *Print) Pos() token.Pos { return p.At }
func (p *Print) String() string { return "Print " + p.Value.String() + ";" }
func (*Print) stmtNode()        {}

// StringLit is a double-quoted literal.
type StringLit struct {
	At    token.Pos
	Value string
}

func (s *StringLit) Pos() token.Pos { return s.At }
func (s *StringLit) String() string { return quote(s.Value) }
func (*StringLit) exprNode()        {}

// VarRef refers to a variable assigned by an earlier let.
type VarRef struct {
	At   token.Pos
	Name string
}

func (v *VarRef) Pos() token.Pos { return v.At }
func (v *VarRef) String() string { return v.Name }
func (*VarRef) exprNode()        {}

// FileRead evaluates to the full contents of a file.
type FileRead struct {
	At   token.Pos
	Path string
}

func (f *FileRead) Pos() token.Pos { return f.At }
func (f *FileRead) String() string { return "Read file " + quote(f.Path) }
func (*FileRead) exprNode()        {}

// Generate evaluates to the text a provider produces for a prompt.
type Generate struct {
	At       token.Pos
	Provider string
	Prompt   string
}

func (g *Generate) Pos() token.Pos { return g.At }
func (g *Generate) String() string {
	return "Generate content from " + quote(g.Provider) + " with prompt " + quote(g.Prompt)
}
func (*Generate) exprNode() {}

// Program renders a statement sequence, one statement per line.
func Program(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// quote wraps text in double quotes. Literals carry no escapes, so the
// text is emitted verbatim.
func quote(s string) string {
	return `"` + s + `"`
}

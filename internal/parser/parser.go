// Package parser turns AuraScript tokens into statements.
package parser

import (
	"fmt"
	"io"
	"strings"

	"nickandperla.net/aurascript/internal/ast"
	"nickandperla.net/aurascript/internal/scanner"
	"nickandperla.net/aurascript/internal/token"
)

// ParseError reports a token that does not continue any expected form.
type ParseError struct {
	Pos      token.Pos
	Expected []token.Kind
	Found    token.Token
}

func (e *ParseError) Error() string {
	want := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		want[i] = k.String()
	}
	return fmt.Sprintf("parse error at %s: expected %s, found %s", e.Pos, strings.Join(want, " or "), e.Found)
}

// Parser is a single-pass, no-backtracking statement parser.
type Parser struct {
	scan *scanner.Scanner
}

// New creates a Parser reading tokens from scan.
func New(scan *scanner.Scanner) *Parser {
	return &Parser{scan: scan}
}

// Parse parses a complete script from a string.
func Parse(src string) ([]ast.Stmt, error) {
	return New(scanner.NewFromString(src)).Parse()
}

// ParseReader parses a complete script from a reader.
func ParseReader(r io.Reader) ([]ast.Stmt, error) {
	return New(scanner.New(r)).Parse()
}

// Parse consumes tokens up to EOF and returns the statements in order.
// The first lex or parse error aborts the whole parse.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for {
		tok, err := p.scan.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return stmts, nil
		}

		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) statement() (ast.Stmt, error) {
	tok, err := p.scan.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.LET:
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		value, err := p.value()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.Let{At: tok.Pos, Name: name.Lexeme, Value: value}, nil

	case token.PRINT:
		value, err := p.value()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.Print{At: tok.Pos, Value: value}, nil
	}

	return nil, unexpected(tok, token.LET, token.PRINT)
}

// value parses a value expression, chosen by its first token.
func (p *Parser) value() (ast.Expr, error) {
	tok, err := p.scan.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.STRING:
		return &ast.StringLit{At: tok.Pos, Value: tok.Lexeme}, nil

	case token.IDENT:
		return &ast.VarRef{At: tok.Pos, Name: tok.Lexeme}, nil

	case token.READ_FILE:
		path, err := p.expect(token.STRING)
		if err != nil {
			return nil, err
		}
		return &ast.FileRead{At: tok.Pos, Path: path.Lexeme}, nil

	case token.GENERATE_FROM:
		provider, err := p.expect(token.STRING)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.WITH_PROMPT); err != nil {
			return nil, err
		}
		prompt, err := p.expect(token.STRING)
		if err != nil {
			return nil, err
		}
		return &ast.Generate{At: tok.Pos, Provider: provider.Lexeme, Prompt: prompt.Lexeme}, nil
	}

	return nil, unexpected(tok, token.STRING, token.IDENT, token.READ_FILE, token.GENERATE_FROM)
}

// expect consumes the next token, failing unless it has the given kind.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok, err := p.scan.Next()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Kind != kind {
		return token.Token{}, unexpected(tok, kind)
	}
	return tok, nil
}

func unexpected(found token.Token, expected ...token.Kind) *ParseError {
	return &ParseError{Pos: found.Pos, Expected: expected, Found: found}
}

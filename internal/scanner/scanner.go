// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides the AuraScript lexer.
package scanner

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"nickandperla.net/aurascript/internal/token"
)

// LexError reports an unterminated string or an unrecognized character.
type LexError struct {
	Pos token.Pos
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", e.Pos, e.Msg)
}

// Scanner tokenizes AuraScript source rune-by-rune.
// Tokens are produced on demand; Reset restarts from the beginning.
type Scanner struct {
	src     []rune
	srcErr  error // read failure or invalid UTF-8, reported by Next
	off     int
	line    int // Current line number (1-based)
	col     int // Current column number (1-based)
	peeked  *token.Token
}

// New creates a new Scanner from an io.Reader.
// A read failure is reported by the first call to Next.
func New(r io.Reader) *Scanner {
	data, err := io.ReadAll(r)
	s := NewFromString(string(data))
	if err != nil {
		s.srcErr = err
	}
	return s
}

// NewFromString creates a new Scanner from a string.
// A leading byte-order mark is skipped. Source that is not valid UTF-8
// fails with a LexError at the first bad byte.
func NewFromString(src string) *Scanner {
	src = strings.TrimPrefix(src, "\ufeff")
	return &Scanner{
		src:    []rune(src),
		srcErr: checkUTF8(src),
		line:   1,
		col:    1,
	}
}

// checkUTF8 locates the first invalid byte, counting columns in runes
// as the scanner does.
func checkUTF8(src string) error {
	pos := token.Pos{Line: 1, Column: 1}
	for i := 0; i < len(src); {
		r, w := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && w == 1 {
			return &LexError{Pos: pos, Msg: fmt.Sprintf("invalid UTF-8 byte %#x", src[i])}
		}
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		i += w
	}
	return nil
}

// Reset rewinds the scanner to the start of its source.
func (s *Scanner) Reset() {
	s.off = 0
	s.line = 1
	s.col = 1
	s.peeked = nil
}

// Pos returns the current position.
func (s *Scanner) Pos() token.Pos {
	return token.Pos{Line: s.line, Column: s.col}
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (token.Token, error) {
	if s.peeked != nil {
		return *s.peeked, nil
	}
	tok, err := s.Next()
	if err != nil {
		return token.Token{}, err
	}
	s.peeked = &tok
	return tok, nil
}

// Next returns the next token from the input.
// After the input is exhausted every call returns an EOF token.
func (s *Scanner) Next() (token.Token, error) {
	if s.peeked != nil {
		tok := *s.peeked
		s.peeked = nil
		return tok, nil
	}
	if s.srcErr != nil {
		return token.Token{}, s.srcErr
	}

	s.skipSpaceAndComments()

	start := s.Pos()
	if s.atEnd() {
		return token.Token{Kind: token.EOF, Pos: start}, nil
	}

	r := s.advance()
	switch {
	case r == '=':
		return token.Token{Kind: token.ASSIGN, Lexeme: "=", Pos: start}, nil
	case r == ';':
		return token.Token{Kind: token.SEMICOLON, Lexeme: ";", Pos: start}, nil
	case r == '"':
		return s.scanString(start)
	case isIdentStart(r):
		return s.scanWordToken(r, start), nil
	}
	return token.Token{}, &LexError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", r)}
}

// All scans the remaining input, including the trailing EOF token.
func (s *Scanner) All() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func (s *Scanner) atEnd() bool {
	return s.off >= len(s.src)
}

func (s *Scanner) peekRune(ahead int) rune {
	if s.off+ahead >= len(s.src) {
		return 0
	}
	return s.src[s.off+ahead]
}

func (s *Scanner) advance() rune {
	r := s.src[s.off]
	s.off++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// skipSpaceAndComments discards whitespace and // comments, including the
// newline that ends a comment.
func (s *Scanner) skipSpaceAndComments() {
	for !s.atEnd() {
		r := s.peekRune(0)
		switch {
		case unicode.IsSpace(r):
			s.advance()
		case r == '/' && s.peekRune(1) == '/':
			for !s.atEnd() {
				if s.advance() == '\n' {
					break
				}
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanString(start token.Pos) (token.Token, error) {
	var sb strings.Builder
	for {
		if s.atEnd() {
			return token.Token{}, &LexError{Pos: start, Msg: "unterminated string literal"}
		}
		r := s.advance()
		if r == '"' {
			return token.Token{Kind: token.STRING, Lexeme: sb.String(), Pos: start}, nil
		}
		sb.WriteRune(r)
	}
}

// scanWord reads identifier characters following first.
func (s *Scanner) scanWord(first rune) string {
	var sb strings.Builder
	sb.WriteRune(first)
	for !s.atEnd() && isIdentChar(s.peekRune(0)) {
		sb.WriteRune(s.advance())
	}
	return sb.String()
}

// scanWordToken turns a word into a keyword or identifier. Multi-word
// phrases match only when every word follows, separated by whitespace;
// otherwise the scanner rewinds and the first word is an identifier.
func (s *Scanner) scanWordToken(first rune, start token.Pos) token.Token {
	word := s.scanWord(first)
	phrase, ok := token.PhraseFor(word)
	if !ok {
		return token.Token{Kind: token.IDENT, Lexeme: word, Pos: start}
	}

	off, line, col := s.off, s.line, s.col
	for _, want := range phrase.Words[1:] {
		if !s.skipInlineSpace() || s.atEnd() || !isIdentStart(s.peekRune(0)) || s.scanWord(s.advance()) != want {
			s.off, s.line, s.col = off, line, col
			return token.Token{Kind: token.IDENT, Lexeme: word, Pos: start}
		}
	}
	return token.Token{Kind: phrase.Kind, Lexeme: strings.Join(phrase.Words, " "), Pos: start}
}

// skipInlineSpace consumes whitespace and reports whether any was present.
func (s *Scanner) skipInlineSpace() bool {
	skipped := false
	for !s.atEnd() && unicode.IsSpace(s.peekRune(0)) {
		s.advance()
		skipped = true
	}
	return skipped
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isIdentChar returns true if the rune is valid in an identifier (letter, digit, underscore).
func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

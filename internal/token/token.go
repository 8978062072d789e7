// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines AuraScript token kinds and keyword phrases.
package token

import (
	"fmt"
	"strings"
)

// Kind represents an AuraScript token type.
type Kind int

const (
	EOF Kind = iota

	LET    // let
	PRINT  // Print
	IDENT  // bare identifier
	STRING // "double quoted literal"

	// Multi-word keyword phrases
	READ_FILE     // Read file
	GENERATE_FROM // Generate content from
	WITH_PROMPT   // with prompt

	ASSIGN    // =
	SEMICOLON // ;
)

// Pos is a 1-based line/column location in script source.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a scanned lexeme with its kind and starting position.
type Token struct {
	Kind   Kind
	Lexeme string // literal text without quotes for STRING
	Pos    Pos
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	case STRING:
		return fmt.Sprintf("string literal %q", t.Lexeme)
	}
	return t.Kind.String()
}

// Phrase is a keyword made of one or more case-sensitive words.
type Phrase struct {
	Kind  Kind
	Words []string
}

// Phrases lists every keyword recognized by the scanner.
var Phrases = []Phrase{
	{LET, []string{"let"}},
	{PRINT, []string{"Print"}},
	{READ_FILE, []string{"Read", "file"}},
	{GENERATE_FROM, []string{"Generate", "content", "from"}},
	{WITH_PROMPT, []string{"with", "prompt"}},
}

// PhraseFor returns the keyword phrase beginning with word, if any.
func PhraseFor(word string) (Phrase, bool) {
	for _, p := range Phrases {
		if p.Words[0] == word {
			return p, true
		}
	}
	return Phrase{}, false
}

// String returns the string representation of a token kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case IDENT:
		return "identifier"
	case STRING:
		return "string literal"
	case ASSIGN:
		return "'='"
	case SEMICOLON:
		return "';'"
	}
	for _, p := range Phrases {
		if p.Kind == k {
			return "'" + strings.Join(p.Words, " ") + "'"
		}
	}
	return "UNKNOWN"
}

package asm

import (
	"fmt"
)

// TokenKind is the tag of a Token.
type TokenKind int

const (
	TOK_IDENT     = TokenKind(0) // identifier
	TOK_NUMBER    = TokenKind(1) // non-negative integer literal
	TOK_OPERATOR  = TokenKind(2) // one of + - * ( )
	TOK_LABEL     = TokenKind(3) // ':' label marker
	TOK_MNEMONIC  = TokenKind(4) // instruction table index
	TOK_DIRECTIVE = TokenKind(5) // directive table index
	TOK_NEWLINE   = TokenKind(6) // line marker
	TOK_COMMA     = TokenKind(7) // argument separator
)

// Token is a single tagged lexeme. Text carries identifier names and
// operator glyphs; Value carries literal values, table indexes, and
// the 1-based line number of a line marker.
type Token struct {
	Kind  TokenKind
	Text  string
	Value int
}

// String returns a human readable rendition for error messages.
func (tok Token) String() string {
	switch tok.Kind {
	case TOK_IDENT:
		return fmt.Sprintf("identifier '%v'", tok.Text)
	case TOK_NUMBER:
		return fmt.Sprintf("number %v", tok.Value)
	case TOK_OPERATOR:
		return fmt.Sprintf("operator '%v'", tok.Text)
	case TOK_LABEL:
		return "':'"
	case TOK_MNEMONIC:
		return fmt.Sprintf("mnemonic '%v'", tok.Text)
	case TOK_DIRECTIVE:
		return fmt.Sprintf("directive '#%v'", tok.Text)
	case TOK_NEWLINE:
		return "end of line"
	case TOK_COMMA:
		return "','"
	}

	return "???"
}

// Directive describes a single entry of the fixed directive table.
type Directive struct {
	Name string // Directive name, upper case, without the '#' leader.
	Args int    // Required argument count.
}

const (
	DIRECTIVE_ORG   = 0 // set the write origin
	DIRECTIVE_TIMES = 1 // repeat the next expression
	DIRECTIVE_DV    = 2 // declare a value cell
)

// Directives is the fixed directive table.
var Directives = []Directive{
	DIRECTIVE_ORG:   {"ORG", 1},
	DIRECTIVE_TIMES: {"TIMES", 1},
	DIRECTIVE_DV:    {"DV", 1},
}

// LookupDirective finds the table index for a directive name.
func LookupDirective(name string) (index int, ok bool) {
	for n, dir := range Directives {
		if dir.Name == name {
			return n, true
		}
	}

	return 0, false
}

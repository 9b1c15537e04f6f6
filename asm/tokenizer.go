// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"

	"github.com/ezrec/ukilo/machine"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isOperator(c byte) bool {
	return strings.IndexByte("+-*()", c) >= 0
}

// Tokenize converts raw source text into the token sequence. Source is
// case-insensitive; a trailing newline is supplied if missing, so every
// line is terminated by a line marker. Failures are located with the
// tokenizer's own line counter.
func Tokenize(source string) (tokens []Token, err error) {
	lineno := 1
	defer func() {
		if err != nil {
			err = &ErrSource{LineNo: lineno, Err: err}
		}
	}()

	// Classification is case-insensitive.
	source = strings.ToUpper(source) + "\n"

	pos := 0
	for pos < len(source) {
		c := source[pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			pos++

		case c == '\n':
			lineno++
			tokens = append(tokens, Token{Kind: TOK_NEWLINE, Value: lineno})
			pos++

		case isDigit(c):
			value := 0
			for pos < len(source) && isDigit(source[pos]) {
				value = value*10 + int(source[pos]-'0')
				pos++
			}
			tokens = append(tokens, Token{Kind: TOK_NUMBER, Value: value})

		case isOperator(c):
			tokens = append(tokens, Token{Kind: TOK_OPERATOR, Text: string(c)})
			pos++

		case isLetter(c):
			start := pos
			for pos < len(source) && (isLetter(source[pos]) || isDigit(source[pos])) {
				pos++
			}
			name := source[start:pos]
			op, ok := machine.LookupInstruction(name)
			if ok {
				tokens = append(tokens, Token{Kind: TOK_MNEMONIC, Text: name, Value: int(op)})
			} else {
				tokens = append(tokens, Token{Kind: TOK_IDENT, Text: name})
			}

		case c == ':':
			tokens = append(tokens, Token{Kind: TOK_LABEL})
			pos++

		case c == '#':
			pos++
			start := pos
			for pos < len(source) && isLetter(source[pos]) {
				pos++
			}
			name := source[start:pos]
			index, ok := LookupDirective(name)
			if !ok {
				err = ErrDirectiveUnknown(name)
				return
			}
			tokens = append(tokens, Token{Kind: TOK_DIRECTIVE, Text: name, Value: index})

		case c == ',':
			tokens = append(tokens, Token{Kind: TOK_COMMA})
			pos++

		case c == ';':
			for pos < len(source) && source[pos] != '\n' {
				pos++
			}

		default:
			err = ErrCharacter(c)
			return
		}
	}

	return
}

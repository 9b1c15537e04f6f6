package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ukilo/machine"
)

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"take 5",
		"hlt",
	}

	tokens, err := Tokenize(strings.Join(program, "\n"))
	assert.NoError(err)

	expected := []Token{
		{Kind: TOK_MNEMONIC, Text: "TAKE", Value: int(machine.OP_TAKE)},
		{Kind: TOK_NUMBER, Value: 5},
		{Kind: TOK_NEWLINE, Value: 2},
		{Kind: TOK_MNEMONIC, Text: "HLT", Value: int(machine.OP_HLT)},
		{Kind: TOK_NEWLINE, Value: 3},
	}

	assert.Equal(expected, tokens)
}

func TestTokenizeExpression(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("#dv loop+2*(30-1)")
	assert.NoError(err)

	expected := []Token{
		{Kind: TOK_DIRECTIVE, Text: "DV", Value: DIRECTIVE_DV},
		{Kind: TOK_IDENT, Text: "LOOP"},
		{Kind: TOK_OPERATOR, Text: "+"},
		{Kind: TOK_NUMBER, Value: 2},
		{Kind: TOK_OPERATOR, Text: "*"},
		{Kind: TOK_OPERATOR, Text: "("},
		{Kind: TOK_NUMBER, Value: 30},
		{Kind: TOK_OPERATOR, Text: "-"},
		{Kind: TOK_NUMBER, Value: 1},
		{Kind: TOK_OPERATOR, Text: ")"},
		{Kind: TOK_NEWLINE, Value: 2},
	}

	assert.Equal(expected, tokens)
}

func TestTokenizeLabelAndComma(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("loop: nop ; spin, forever")
	assert.NoError(err)

	expected := []Token{
		{Kind: TOK_IDENT, Text: "LOOP"},
		{Kind: TOK_LABEL},
		{Kind: TOK_MNEMONIC, Text: "NOP", Value: int(machine.OP_NOP)},
		{Kind: TOK_NEWLINE, Value: 2},
	}

	assert.Equal(expected, tokens)

	tokens, err = Tokenize("1,2")
	assert.NoError(err)
	assert.Equal([]Token{
		{Kind: TOK_NUMBER, Value: 1},
		{Kind: TOK_COMMA},
		{Kind: TOK_NUMBER, Value: 2},
		{Kind: TOK_NEWLINE, Value: 2},
	}, tokens)
}

func TestTokenizeEmptyLines(t *testing.T) {
	assert := assert.New(t)

	// Every physical line ends with a line marker, even when empty,
	// plus one for the synthetic final newline.
	tokens, err := Tokenize("\n\n")
	assert.NoError(err)

	assert.Equal([]Token{
		{Kind: TOK_NEWLINE, Value: 2},
		{Kind: TOK_NEWLINE, Value: 3},
		{Kind: TOK_NEWLINE, Value: 4},
	}, tokens)
}

func TestTokenizeUnknownDirective(t *testing.T) {
	assert := assert.New(t)

	_, err := Tokenize("#foo 1")
	assert.Error(err)

	var src *ErrSource
	assert.True(errors.As(err, &src))
	assert.Equal(1, src.LineNo)

	var unknown ErrDirectiveUnknown
	assert.True(errors.As(err, &unknown))
	assert.Equal("FOO", string(unknown))
}

func TestTokenizeBadCharacter(t *testing.T) {
	assert := assert.New(t)

	_, err := Tokenize("nop\n@")
	assert.Error(err)

	var src *ErrSource
	assert.True(errors.As(err, &src))
	assert.Equal(2, src.LineNo)

	var char ErrCharacter
	assert.True(errors.As(err, &char))
	assert.Equal(byte('@'), byte(char))
}

package asm

import (
	"errors"

	"github.com/ezrec/ukilo/translate"
)

var f = translate.From

var (
	// Lexical errors
	ErrInputTruncated = errors.New(f("unexpected end of input"))

	// Structural errors
	ErrArgEmpty      = errors.New(f("empty argument"))
	ErrArgLiteral    = errors.New(f("directive argument must be a number"))
	ErrRepeatMissing = errors.New(f("nothing follows the repeat directive"))

	// Expression errors
	ErrExprTruncated = errors.New(f("expression truncated"))
)

// ErrCharacter indicates a character the tokenizer cannot classify.
type ErrCharacter byte

func (err ErrCharacter) Error() string {
	return f("unexpected character %q", string(rune(err)))
}

// ErrDirectiveUnknown indicates a directive name outside the fixed table.
type ErrDirectiveUnknown string

func (err ErrDirectiveUnknown) Error() string {
	return f("unknown directive '#%v'", string(err))
}

// ErrTokenUnexpected indicates a token at a position the grammar forbids.
type ErrTokenUnexpected Token

func (err ErrTokenUnexpected) Error() string {
	return f("unexpected %v", Token(err))
}

// ErrArgCount indicates an argument list whose length does not match
// the declared arity.
type ErrArgCount struct {
	Name string
	Want int
	Got  int
}

func (err ErrArgCount) Error() string {
	return f("%v wants %v arguments, got %v", err.Name, err.Want, err.Got)
}

// ErrCapacity indicates a write cursor past the end of the memory image.
type ErrCapacity int

func (err ErrCapacity) Error() string {
	return f("origin %v past memory capacity", int(err))
}

// ErrLabelMissing indicates an identifier absent from the label table.
type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

// ErrSource locates an error at a 1-based source line.
type ErrSource struct {
	LineNo int
	Err    error
}

func (err *ErrSource) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}

package machine

import (
	"errors"

	"github.com/ezrec/ukilo/translate"
)

var f = translate.From

var (
	ErrInputEmpty   = errors.New(f("input tape empty"))
	ErrOutputClosed = errors.New(f("output tape missing"))
	ErrStepLimit    = errors.New(f("step limit exceeded"))
)

// ErrAddress indicates a memory access outside of the memory image.
type ErrAddress int

func (err ErrAddress) Error() string {
	return f("address %v out of range", int(err))
}

// ErrOpcode indicates an undecodable memory word at the program counter.
type ErrOpcode int

func (err ErrOpcode) Error() string {
	return f("bad opcode word %v", int(err))
}

// ErrInput indicates unusable input tape content.
type ErrInput string

func (err ErrInput) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrRuntime locates a runtime error at the faulting program counter.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %v %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

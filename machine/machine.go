// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Machine is the simulation context for the μKILO decimal machine.
// All state is owned by a single run; a fresh Machine starts with
// zeroed memory, accumulator, and program counter.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory [MEMORY_SIZE]int // Memory image.
	Acc    int              // Accumulator.
	Pc     int              // Program counter.
	Halted bool             // Set once OP_HLT executes.

	Input  io.Reader // Tape read by OP_INP, one number per line.
	Output io.Writer // Tape written by OP_OUT, one number per line.

	Steps int // Instructions executed since reset.

	scanner *bufio.Scanner
}

// Poke stores a single value at an address of the memory image.
func (m *Machine) Poke(value int, address int) error {
	if address < 0 || address >= MEMORY_SIZE {
		return ErrAddress(address)
	}

	m.Memory[address] = value

	return nil
}

// Peek reads a single value from an address of the memory image.
func (m *Machine) Peek(address int) (value int, err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = ErrAddress(address)
		return
	}

	value = m.Memory[address]

	return
}

// Reset returns the machine to its power-on state, keeping the tapes.
func (m *Machine) Reset() {
	m.Memory = [MEMORY_SIZE]int{}
	m.Acc = 0
	m.Pc = 0
	m.Halted = false
	m.Steps = 0
	m.scanner = nil
}

// read takes the next number from the input tape.
func (m *Machine) read() (value int, err error) {
	if m.Input == nil {
		err = ErrInputEmpty
		return
	}

	if m.scanner == nil {
		m.scanner = bufio.NewScanner(m.Input)
	}

	if !m.scanner.Scan() {
		err = ErrInputEmpty
		return
	}

	text := strings.TrimSpace(m.scanner.Text())
	value, err = strconv.Atoi(text)
	if err != nil {
		err = ErrInput(text)
	}

	return
}

// Step executes the single instruction at the program counter.
// done is true once the machine has halted.
func (m *Machine) Step() (done bool, err error) {
	if m.Halted {
		return true, nil
	}

	pc := m.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if m.Pc < 0 || m.Pc >= MEMORY_SIZE {
		err = ErrAddress(m.Pc)
		return
	}

	word := m.Memory[m.Pc]
	op, arg := Unpack(word)
	if word < 0 || int(op) >= len(Instructions) {
		err = ErrOpcode(word)
		return
	}

	if m.Verbose {
		log.Printf("%03d: %v %v acc=%v\n", m.Pc, op, arg, m.Acc)
	}

	m.Pc++
	m.Steps++

	switch op {
	case OP_NOP:
		// nothing
	case OP_TAKE:
		m.Acc, err = m.Peek(arg)
	case OP_SAVE:
		err = m.Poke(m.Acc, arg)
	case OP_ADD:
		var value int
		value, err = m.Peek(arg)
		m.Acc += value
	case OP_SUB:
		var value int
		value, err = m.Peek(arg)
		m.Acc -= value
	case OP_JMP:
		m.Pc = arg
	case OP_JEZ:
		if m.Acc == 0 {
			m.Pc = arg
		}
	case OP_JLZ:
		if m.Acc < 0 {
			m.Pc = arg
		}
	case OP_INP:
		m.Acc, err = m.read()
	case OP_OUT:
		if m.Output == nil {
			err = ErrOutputClosed
			return
		}
		_, err = fmt.Fprintf(m.Output, "%v\n", m.Acc)
	case OP_HLT:
		m.Halted = true
		done = true
	}

	return
}

// Run steps the machine until it halts or exceeds limit instructions.
// A limit of 0 runs without bound.
func (m *Machine) Run(limit int) (err error) {
	for done := m.Halted; !done; {
		done, err = m.Step()
		if err != nil {
			return
		}
		if limit > 0 && m.Steps >= limit && !done {
			return &ErrRuntime{Pc: m.Pc, Err: ErrStepLimit}
		}
	}

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"github.com/ezrec/ukilo/machine"
)

// reloc is a deferred relocation site: a memory address whose value is
// computed from a raw token sequence once the label table is complete.
type reloc struct {
	address int
	tokens  []Token
	lineno  int
}

// Session carries the whole state of a single assembly run. Each run
// starts from a fresh, zero-initialized Session; nothing is shared
// between runs.
type Session struct {
	Image  []int          // Memory image, machine.MEMORY_SIZE words.
	Origin int            // Write cursor into the image.
	Label  map[string]int // Label table.

	relocs  []reloc
	listing []ListEntry
	lineno  int
}

// NewSession creates a fresh assembly session.
func NewSession() (s *Session) {
	return &Session{
		Image:  make([]int, machine.MEMORY_SIZE),
		Label:  map[string]int{},
		lineno: 1,
	}
}

// Assemble runs the full pipeline over a block of source text and
// returns the finished program, or the first failure located at its
// source line.
func Assemble(source string) (prog *Program, err error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return
	}

	exprs, err := Parse(tokens)
	if err != nil {
		return
	}

	return NewSession().Generate(exprs)
}

// emit writes one word at the origin and advances it.
func (s *Session) emit(word int) (err error) {
	if s.Origin < 0 || s.Origin >= len(s.Image) {
		return ErrCapacity(s.Origin)
	}

	s.Image[s.Origin] = word
	s.listing = append(s.listing, ListEntry{Address: s.Origin, LineNo: s.lineno})
	s.Origin++

	return
}

// literal evaluates a directive argument, which must already be a bare
// number. Directive arguments steer generation itself, so unlike
// instruction operands they may not be symbolic.
func literal(tokens []Token) (value int, err error) {
	if len(tokens) != 1 || tokens[0].Kind != TOK_NUMBER {
		err = ErrArgLiteral
		return
	}

	value = tokens[0].Value

	return
}

// step processes the expression at index n once and returns the number
// of expressions the outer walk should skip. Repeating a directive's
// target repeats all of its side effects.
func (s *Session) step(exprs []Expr, n int) (consumed int, err error) {
	consumed = 1
	expr := &exprs[n]

	switch expr.Kind {
	case EXPR_LINE:
		s.lineno = expr.Index

	case EXPR_LABEL:
		// Duplicate declarations overwrite: last write wins.
		s.Label[expr.Name] = s.Origin

	case EXPR_INSTRUCTION:
		op := machine.Op(expr.Index)
		if machine.Instructions[op].Args == 1 {
			// Operands are never baked in during the first pass,
			// even when already literal.
			s.relocs = append(s.relocs, reloc{address: s.Origin, tokens: expr.Args[0], lineno: s.lineno})
		}
		err = s.emit(op.Pack(0))

	case EXPR_DIRECTIVE:
		switch expr.Index {
		case DIRECTIVE_ORG:
			var origin int
			origin, err = literal(expr.Args[0])
			if err != nil {
				return
			}
			s.Origin = origin

		case DIRECTIVE_TIMES:
			var count int
			count, err = literal(expr.Args[0])
			if err != nil {
				return
			}

			// The repeat target is the next expression that carries
			// code; line markers in between are stepped over.
			target := n + 1
			for target < len(exprs) && exprs[target].Kind == EXPR_LINE {
				s.lineno = exprs[target].Index
				target++
			}
			if target >= len(exprs) {
				err = ErrRepeatMissing
				return
			}

			for i := 0; i < count; i++ {
				_, err = s.step(exprs, target)
				if err != nil {
					return
				}
			}
			consumed = target - n + 1

		case DIRECTIVE_DV:
			s.relocs = append(s.relocs, reloc{address: s.Origin, tokens: expr.Args[0], lineno: s.lineno})
			err = s.emit(0)
		}
	}

	return
}

// Generate walks the expression sequence once to emit opcode words and
// collect labels and relocation sites, then evaluates every deferred
// site against the completed label table and merges the results into
// the image.
func (s *Session) Generate(exprs []Expr) (prog *Program, err error) {
	defer func() {
		if err != nil {
			err = &ErrSource{LineNo: s.lineno, Err: err}
		}
	}()

	n := 0
	for n < len(exprs) {
		var consumed int
		consumed, err = s.step(exprs, n)
		if err != nil {
			return
		}
		n += consumed
	}

	// Relocation pass. The OR merge relies on the operand staying
	// below machine.WORD_SCALE; larger values corrupt the opcode.
	for _, rel := range s.relocs {
		s.lineno = rel.lineno

		var value int
		value, err = Eval(rel.tokens, s.Label)
		if err != nil {
			return
		}

		s.Image[rel.address] |= value
	}

	prog = &Program{
		Image:   s.Image,
		Listing: s.listing,
	}

	return
}

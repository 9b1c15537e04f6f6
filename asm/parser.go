package asm

import (
	"github.com/ezrec/ukilo/machine"
)

// ExprKind is the tag of an Expr.
type ExprKind int

const (
	EXPR_LINE        = ExprKind(0) // line marker
	EXPR_LABEL       = ExprKind(1) // label declaration
	EXPR_INSTRUCTION = ExprKind(2) // instruction with raw arguments
	EXPR_DIRECTIVE   = ExprKind(3) // directive with raw arguments
)

// Expr is a single structured expression. Arguments are kept as raw
// token sequences so an operand can be an arbitrary arithmetic
// expression over labels; nothing is evaluated until the relocation
// pass.
type Expr struct {
	Kind  ExprKind
	Name  string    // Label name for EXPR_LABEL.
	Index int       // Mnemonic or directive table index; line number for EXPR_LINE.
	Args  [][]Token // Raw argument groups, one token sequence each.
}

// collectArgs accumulates comma separated argument groups starting at
// pos, stopping before the terminating line marker. A comma closes the
// current group; a trailing non-empty group is closed at line end.
func collectArgs(tokens []Token, pos int) (args [][]Token, next int, err error) {
	var group []Token

	for next = pos; next < len(tokens); next++ {
		tok := tokens[next]
		if tok.Kind == TOK_NEWLINE {
			break
		}
		if tok.Kind == TOK_COMMA {
			if len(group) == 0 {
				err = ErrArgEmpty
				return
			}
			args = append(args, group)
			group = nil
			continue
		}
		group = append(group, tok)
	}

	if len(group) > 0 {
		args = append(args, group)
	}

	return
}

// Parse structures the token sequence into the expression sequence,
// validating that every argument list matches its declared arity.
// Failures are located with the parser's own line tracker.
func Parse(tokens []Token) (exprs []Expr, err error) {
	lineno := 1
	defer func() {
		if err != nil {
			err = &ErrSource{LineNo: lineno, Err: err}
		}
	}()

	pos := 0
	for pos < len(tokens) {
		tok := tokens[pos]
		switch tok.Kind {
		case TOK_NEWLINE:
			lineno = tok.Value
			exprs = append(exprs, Expr{Kind: EXPR_LINE, Index: tok.Value})
			pos++

		case TOK_IDENT:
			// Only a label declaration may start with an identifier.
			if pos+1 >= len(tokens) {
				err = ErrInputTruncated
				return
			}
			if tokens[pos+1].Kind != TOK_LABEL {
				err = ErrTokenUnexpected(tokens[pos+1])
				return
			}
			exprs = append(exprs, Expr{Kind: EXPR_LABEL, Name: tok.Text})
			pos += 2

		case TOK_MNEMONIC:
			var args [][]Token
			args, pos, err = collectArgs(tokens, pos+1)
			if err != nil {
				return
			}
			want := machine.Instructions[tok.Value].Args
			if len(args) != want {
				err = ErrArgCount{Name: tok.Text, Want: want, Got: len(args)}
				return
			}
			exprs = append(exprs, Expr{Kind: EXPR_INSTRUCTION, Index: tok.Value, Args: args})

		case TOK_DIRECTIVE:
			var args [][]Token
			args, pos, err = collectArgs(tokens, pos+1)
			if err != nil {
				return
			}
			want := Directives[tok.Value].Args
			if len(args) != want {
				err = ErrArgCount{Name: "#" + tok.Text, Want: want, Got: len(args)}
				return
			}
			exprs = append(exprs, Expr{Kind: EXPR_DIRECTIVE, Index: tok.Value, Args: args})

		default:
			err = ErrTokenUnexpected(tok)
			return
		}
	}

	return
}

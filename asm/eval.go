package asm

// evaluator is a recursive descent walk over one argument's raw token
// sequence. Identifiers resolve by direct substitution from the label
// table, which must be complete before evaluation starts.
type evaluator struct {
	tokens []Token
	pos    int
	labels map[string]int
}

// Eval computes the integer value of an argument token sequence.
// Supported grammar: integer literals, identifiers, and the operators
// + - * ( ) with conventional precedence.
func Eval(tokens []Token, labels map[string]int) (value int, err error) {
	ev := &evaluator{tokens: tokens, labels: labels}

	value, err = ev.sum()
	if err != nil {
		return
	}

	if ev.pos != len(ev.tokens) {
		err = ErrTokenUnexpected(ev.tokens[ev.pos])
	}

	return
}

// peek returns the next operator glyph, or "" when none applies.
func (ev *evaluator) peek() string {
	if ev.pos < len(ev.tokens) && ev.tokens[ev.pos].Kind == TOK_OPERATOR {
		return ev.tokens[ev.pos].Text
	}

	return ""
}

// sum = product { ('+' | '-') product }
func (ev *evaluator) sum() (value int, err error) {
	value, err = ev.product()
	if err != nil {
		return
	}

	for {
		op := ev.peek()
		if op != "+" && op != "-" {
			return
		}
		ev.pos++

		var rhs int
		rhs, err = ev.product()
		if err != nil {
			return
		}

		if op == "+" {
			value += rhs
		} else {
			value -= rhs
		}
	}
}

// product = factor { '*' factor }
func (ev *evaluator) product() (value int, err error) {
	value, err = ev.factor()
	if err != nil {
		return
	}

	for ev.peek() == "*" {
		ev.pos++

		var rhs int
		rhs, err = ev.factor()
		if err != nil {
			return
		}

		value *= rhs
	}

	return
}

// factor = number | identifier | '(' sum ')'
func (ev *evaluator) factor() (value int, err error) {
	if ev.pos >= len(ev.tokens) {
		err = ErrExprTruncated
		return
	}

	tok := ev.tokens[ev.pos]
	ev.pos++

	switch tok.Kind {
	case TOK_NUMBER:
		value = tok.Value

	case TOK_IDENT:
		var ok bool
		value, ok = ev.labels[tok.Text]
		if !ok {
			err = ErrLabelMissing(tok.Text)
		}

	case TOK_OPERATOR:
		if tok.Text != "(" {
			err = ErrTokenUnexpected(tok)
			return
		}
		value, err = ev.sum()
		if err != nil {
			return
		}
		if ev.peek() != ")" {
			err = ErrExprTruncated
			return
		}
		ev.pos++

	default:
		err = ErrTokenUnexpected(tok)
	}

	return
}

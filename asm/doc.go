// Package asm implements the assembler for the μKILO decimal machine.
//
// Assembly is a three stage pipeline: the tokenizer turns source text
// into typed tokens, the parser groups tokens into expressions with
// validated arities, and the code generator walks the expressions in
// two passes. The first pass emits opcode words and records label
// addresses and deferred operand expressions; the second evaluates
// every deferred expression against the completed label table, so
// forward references are legal anywhere an operand is.
//
// The source language has labels ("LOOP:"), the fixed mnemonics of the
// machine package, the directives #ORG, #TIMES and #DV, ';' comments,
// and arithmetic operand expressions over + - * ( ) and labels.
package asm

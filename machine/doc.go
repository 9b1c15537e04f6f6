// Package machine implements the μKILO decimal training machine.
//
// The machine has 1000 memory words, one accumulator, and a program
// counter. A memory word packs an opcode and operand decimally as
// opcode*1000 + operand, so operands must stay below 1000. Input and
// output are line-oriented number tapes.
package machine

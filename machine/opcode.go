package machine

// Op is an opcode index into the instruction table.
type Op int

const (
	OP_NOP  = Op(0)  // no operation
	OP_TAKE = Op(1)  // acc = mem[arg]
	OP_SAVE = Op(2)  // mem[arg] = acc
	OP_ADD  = Op(3)  // acc += mem[arg]
	OP_SUB  = Op(4)  // acc -= mem[arg]
	OP_JMP  = Op(5)  // pc = arg
	OP_JEZ  = Op(6)  // pc = arg if acc == 0
	OP_JLZ  = Op(7)  // pc = arg if acc < 0
	OP_INP  = Op(8)  // acc = next input number
	OP_OUT  = Op(9)  // emit acc to output
	OP_HLT  = Op(10) // halt
)

const (
	MEMORY_SIZE = 1000 // Number of memory words.
	WORD_SCALE  = 1000 // Opcode multiplier; operands must stay below this.
)

// Instruction describes a single entry of the fixed instruction table.
type Instruction struct {
	Name string // Mnemonic, upper case.
	Args int    // Required operand count (0 or 1).
}

// Instructions is the fixed instruction table, indexed by Op.
var Instructions = []Instruction{
	OP_NOP:  {"NOP", 0},
	OP_TAKE: {"TAKE", 1},
	OP_SAVE: {"SAVE", 1},
	OP_ADD:  {"ADD", 1},
	OP_SUB:  {"SUB", 1},
	OP_JMP:  {"JMP", 1},
	OP_JEZ:  {"JEZ", 1},
	OP_JLZ:  {"JLZ", 1},
	OP_INP:  {"INP", 0},
	OP_OUT:  {"OUT", 0},
	OP_HLT:  {"HLT", 0},
}

// LookupInstruction finds the opcode for a mnemonic.
func LookupInstruction(name string) (op Op, ok bool) {
	for n, insn := range Instructions {
		if insn.Name == name {
			return Op(n), true
		}
	}

	return 0, false
}

// String returns the mnemonic for the opcode.
func (op Op) String() string {
	if op < 0 || int(op) >= len(Instructions) {
		return "???"
	}

	return Instructions[op].Name
}

// Pack combines an opcode and operand into a memory word.
func (op Op) Pack(arg int) int {
	return int(op)*WORD_SCALE + arg
}

// Unpack splits a memory word into its opcode and operand.
func Unpack(word int) (op Op, arg int) {
	return Op(word / WORD_SCALE), word % WORD_SCALE
}

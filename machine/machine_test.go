package machine

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupInstruction(t *testing.T) {
	assert := assert.New(t)

	for n, insn := range Instructions {
		op, ok := LookupInstruction(insn.Name)
		assert.True(ok, insn.Name)
		assert.Equal(Op(n), op, insn.Name)
	}

	_, ok := LookupInstruction("BOGUS")
	assert.False(ok)
}

func TestPack(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1005, OP_TAKE.Pack(5))
	assert.Equal(10000, OP_HLT.Pack(0))

	op, arg := Unpack(4007)
	assert.Equal(OP_SUB, op)
	assert.Equal(7, arg)
}

func TestPoke(t *testing.T) {
	assert := assert.New(t)

	mach := &Machine{}

	assert.NoError(mach.Poke(42, 999))

	value, err := mach.Peek(999)
	assert.NoError(err)
	assert.Equal(42, value)

	assert.ErrorIs(mach.Poke(1, MEMORY_SIZE), ErrAddress(MEMORY_SIZE))
	assert.ErrorIs(mach.Poke(1, -1), ErrAddress(-1))

	_, err = mach.Peek(MEMORY_SIZE)
	assert.ErrorIs(err, ErrAddress(MEMORY_SIZE))
}

// load pokes a program at address 0.
func load(t *testing.T, mach *Machine, words ...int) {
	for n, word := range words {
		require.NoError(t, mach.Poke(word, n))
	}
}

func TestStepAlu(t *testing.T) {
	assert := assert.New(t)

	mach := &Machine{}
	load(t, mach,
		OP_TAKE.Pack(6), // acc = 10
		OP_ADD.Pack(7),  // acc = 14
		OP_SUB.Pack(8),  // acc = -6
		OP_SAVE.Pack(9), // mem[9] = -6
		OP_HLT.Pack(0),
		0,
		10, 4, 20,
	)

	assert.NoError(mach.Run(100))
	assert.True(mach.Halted)
	assert.Equal(-6, mach.Acc)
	assert.Equal(-6, mach.Memory[9])
	assert.Equal(5, mach.Steps)
}

func TestStepJumps(t *testing.T) {
	assert := assert.New(t)

	mach := &Machine{}
	load(t, mach,
		OP_JMP.Pack(2), // 0: skip the halt
		OP_HLT.Pack(0), // 1: dead
		OP_JEZ.Pack(4), // 2: taken, acc == 0
		OP_HLT.Pack(0), // 3: dead
		OP_SUB.Pack(8), // 4: acc = -1
		OP_JLZ.Pack(7), // 5: taken, acc < 0
		OP_HLT.Pack(0), // 6: dead
		OP_HLT.Pack(0), // 7: end
		1,              // 8: constant
	)

	assert.NoError(mach.Run(100))
	assert.Equal(8, mach.Pc)
}

func TestStepTapes(t *testing.T) {
	assert := assert.New(t)

	var output strings.Builder
	mach := &Machine{
		Input:  strings.NewReader("11\n-3\n"),
		Output: &output,
	}
	load(t, mach,
		OP_INP.Pack(0),
		OP_OUT.Pack(0),
		OP_INP.Pack(0),
		OP_OUT.Pack(0),
		OP_HLT.Pack(0),
	)

	assert.NoError(mach.Run(100))
	assert.Equal("11\n-3\n", output.String())
}

func TestStepFaults(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		mach   *Machine
		words  []int
		target error
		pc     int
	}){
		{"bad_opcode", &Machine{}, []int{11000}, ErrOpcode(11000), 0},
		{"negative_word", &Machine{}, []int{-5}, ErrOpcode(-5), 0},
		{"input_empty", &Machine{}, []int{OP_INP.Pack(0)}, ErrInputEmpty, 0},
		{"input_junk", &Machine{Input: strings.NewReader("zork\n")}, []int{OP_INP.Pack(0)}, ErrInput("zork"), 0},
		{"output_missing", &Machine{Acc: 1}, []int{OP_OUT.Pack(0)}, ErrOutputClosed, 0},
	}

	for _, entry := range table {
		load(t, entry.mach, entry.words...)

		err := entry.mach.Run(10)
		assert.Error(err, entry.name)

		var runtime *ErrRuntime
		assert.True(errors.As(err, &runtime), entry.name)
		assert.Equal(entry.pc, runtime.Pc, entry.name)

		assert.ErrorIs(err, entry.target, entry.name)
	}
}

func TestRunLimit(t *testing.T) {
	assert := assert.New(t)

	mach := &Machine{}
	load(t, mach, OP_JMP.Pack(0))

	err := mach.Run(50)
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(50, mach.Steps)
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	mach := &Machine{}
	load(t, mach, OP_HLT.Pack(0))
	assert.NoError(mach.Run(10))
	assert.True(mach.Halted)

	mach.Reset()
	assert.False(mach.Halted)
	assert.Equal(0, mach.Pc)
	assert.Equal(0, mach.Memory[0])
	assert.Equal(0, mach.Steps)
}

package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipsi/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Equal(0, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func doLoad(emu *Emulator, program []string, t *testing.T) {
	asm := &cpu.Assembler{}
	err := emu.Load(asm, strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	err = emu.Reset()
	if err != nil {
		t.Fatal(err)
	}
}

func doRunSingle(emu *Emulator, program []string, t *testing.T) {
	assert := assert.New(t)

	doLoad(emu, program, t)

	for _, st := range emu.Program.Statements {
		assert.Equal(st.LineNo, emu.LineNo())
		here := program[emu.LineNo()-1]
		done, err := emu.Tick()
		assert.NoError(err, here)
		assert.False(done, here)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(0, emu.LineNo())
}

func TestEmulatorArithmetic(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	program := []string{
		"addi $t1,$zero,5",
		"addi $t2,$zero,7",
		"add $t0,$t1,$t2",  // 12
		"sub $t3,$t1,$t2",  // -2
		"subu $t4,$t1,$t2", // 0xfffffffe
		"addiu $t5,$t4,3",  // 1
	}

	doRunSingle(emu, program, t)

	assert.Equal(uint32(12), emu.Register.Value[8])
	assert.Equal(uint32(0xfffffffe), emu.Register.Value[11])
	assert.Equal(uint32(0xfffffffe), emu.Register.Value[12])
	assert.Equal(uint32(1), emu.Register.Value[13])
	assert.Equal(len(program), emu.Ticks)
	assert.Equal(0, emu.Faults)
}

func TestEmulatorLogical(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	program := []string{
		".equ MASK 0xff",
		"ori $s0,$zero,0x1234",
		"andi $s1,$s0,MASK",               // 0x34
		"sll $s2,$s1,$(4 * 2)",            // 0x3400
		"srl $s3,$s0,4",                   // 0x123
		"or $s4,$s2,$s1",                  // 0x3434
		"and $s5,$s4,$s0",                 // 0x1034
		"slt $s6,$s1,$s0",                 // 1
		"slti $s7,$s0,$(0x1234 - LINENO)", // 0
	}

	doRunSingle(emu, program, t)

	assert.Equal(uint32(0x34), emu.Register.Value[17])
	assert.Equal(uint32(0x3400), emu.Register.Value[18])
	assert.Equal(uint32(0x123), emu.Register.Value[19])
	assert.Equal(uint32(0x3434), emu.Register.Value[20])
	assert.Equal(uint32(0x1034), emu.Register.Value[21])
	assert.Equal(uint32(1), emu.Register.Value[22])
	assert.Equal(uint32(0), emu.Register.Value[23])
}

func TestEmulatorDivide(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	program := []string{
		"addi $t0,$zero,-17",
		"addi $t1,$zero,5",
		"div $t0,$t1",
		"mfhi $t2",
		"mflo $t3",
		"mult $t0,$t1",
	}

	doRunSingle(emu, program, t)

	assert.Equal(uint32(0xfffffffe), emu.Special.Hi)
	assert.Equal(uint32(0xfffffffd), emu.Special.Lo)
	assert.Equal(emu.Special.Hi, emu.Register.Value[10])
	assert.Equal(emu.Special.Lo, emu.Register.Value[11])

	// mult enabled
	emu.Mult = true
	doRunSingle(emu, program, t)
	assert.Equal(uint32(0xffffffff), emu.Special.Hi)
	assert.Equal(uint32(0xffffffab), emu.Special.Lo)
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	program := []string{
		"addi $t0,$zero,1",
		"bogus $t0",
		"add $zero,$t0,$t0",
		"addi $t1,$t0,1",
		"add $t2,$t1",
	}

	doLoad(emu, program, t)

	err := emu.Run()
	assert.Error(err)
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)
	assert.ErrorIs(err, cpu.ErrRegisterProtected)
	assert.ErrorIs(err, cpu.ErrOperandCount)

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(2, runtime.LineNo)
	assert.Contains(err.Error(), "script line 3: add $zero,$t0,$t0: ")
	assert.Contains(err.Error(), "script line 5: add $t2,$t1: ")

	// Execution continued past every error.
	assert.Equal(uint32(2), emu.Register.Value[9])
	assert.Equal(uint32(0), emu.Register.Value[0])
	assert.Equal(5, emu.Ticks)
	assert.Equal(3, emu.Faults)

	assert.NoError(emu.Run())

	assert.NoError(emu.Reset())
	assert.Equal(cpu.Snapshot{}, emu.Snapshot())
	assert.Equal(1, emu.LineNo())
}

func TestEmulatorLoadError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)
	asm := &cpu.Assembler{}

	err := emu.Load(asm, strings.NewReader("addi $t0,$zero,1\n.equ\n"))
	assert.ErrorIs(err, cpu.ErrLineSyntax)
	assert.Empty(emu.Program.Statements)
}

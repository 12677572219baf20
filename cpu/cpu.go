package cpu

import (
	"iter"
	"log"
	"strings"
	"sync"

	"github.com/ezrec/mipsi/internal"
)

// Change is a single register update, as reported.
type Change struct {
	Name     string
	Old      uint32
	New      uint32
	Unsigned bool // Written in unsigned mode.
}

// Reporter receives the observable side effects of dispatch.
type Reporter interface {
	Instruction(opcode, operands string) // Before each dispatch.
	Changed(changes ...Change)           // One batch per instruction.
	Diagnostic(err error)                // Rejected or failed instruction.
}

type nullReporter struct{}

func (nullReporter) Instruction(opcode, operands string) {}
func (nullReporter) Changed(changes ...Change)           {}
func (nullReporter) Diagnostic(err error)                {}

// Cpu is the instruction dispatcher and the register state it updates.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Mult    bool // Set to let mult write hi/lo; otherwise mult is a no-op.

	Register *RegisterFile        // General-purpose registers.
	Special  *SpecialRegisterFile // hi/lo accumulators.
	Reporter Reporter             // Destination of change tables and diagnostics.

	mutex sync.Mutex
}

// NewCpu creates a CPU with fresh register files.
func NewCpu(reporter Reporter) (cpu *Cpu) {
	if reporter == nil {
		reporter = nullReporter{}
	}

	cpu = &Cpu{
		Register: &RegisterFile{},
		Special:  &SpecialRegisterFile{},
		Reporter: reporter,
	}

	return
}

// Reset clears both register files.
func (cpu *Cpu) Reset() {
	cpu.mutex.Lock()
	defer cpu.mutex.Unlock()

	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Special.Reset()
}

// Registers iterates over a copy of the general registers, then hi and lo,
// taken when Registers is called.
func (cpu *Cpu) Registers() iter.Seq2[string, uint32] {
	cpu.mutex.Lock()
	general := *cpu.Register
	special := *cpu.Special
	cpu.mutex.Unlock()

	return internal.IterSeq2Concat(general.All(), special.All())
}

// Snapshot is a copy of the register state.
type Snapshot struct {
	Register [REGISTER_COUNT]uint32
	Hi       uint32
	Lo       uint32
}

// Snapshot copies the current register state.
func (cpu *Cpu) Snapshot() Snapshot {
	cpu.mutex.Lock()
	defer cpu.mutex.Unlock()

	return Snapshot{
		Register: cpu.Register.Value,
		Hi:       cpu.Special.Hi,
		Lo:       cpu.Special.Lo,
	}
}

// Dispatch executes one instruction given as a mnemonic and its operand
// string. Errors are reported as diagnostics and returned; none leave the
// register files partially updated.
func (cpu *Cpu) Dispatch(opcode string, operands string) (err error) {
	cpu.mutex.Lock()
	defer cpu.mutex.Unlock()

	defer func() {
		if err != nil {
			err = &ErrInstruction{Opcode: opcode, Operands: operands, Err: err}
			cpu.Reporter.Diagnostic(err)
		}
	}()

	cpu.Reporter.Instruction(opcode, operands)

	if cpu.Verbose {
		log.Printf("cpu: %v %v", opcode, operands)
	}

	op, ok := LookupOpcode(opcode)
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	err = cpu.execute(op, SplitOperands(operands))
	return
}

// Execute runs a decoded opcode against already split operand words.
func (cpu *Cpu) Execute(op Opcode, words Operands) (err error) {
	cpu.mutex.Lock()
	defer cpu.mutex.Unlock()

	defer func() {
		if err != nil {
			err = &ErrInstruction{Opcode: op.String(), Operands: strings.Join(words, ","), Err: err}
			cpu.Reporter.Diagnostic(err)
		}
	}()

	err = cpu.execute(op, words)
	return
}

func (cpu *Cpu) execute(op Opcode, words Operands) (err error) {
	inst, ok := op.Describe()
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	ops, err := cpu.parseOperands(inst, words)
	if err != nil {
		return
	}

	switch inst.Opcode {
	case OP_MULT:
		if !cpu.Mult {
			if cpu.Verbose {
				log.Printf("cpu: mult disabled")
			}
			return
		}
	case OP_ADD, OP_ADDI, OP_ADDU, OP_ADDIU, OP_SUB, OP_SUBU,
		OP_DIV, OP_MFHI, OP_MFLO,
		OP_AND, OP_ANDI, OP_OR, OP_ORI, OP_SLL, OP_SRL,
		OP_SLT, OP_SLTI:
		// pass
	default:
		err = ErrOpcodeInvalid
		return
	}

	result, err := inst.Kernel(ops.args)
	if err != nil {
		return
	}

	switch result := result.(type) {
	case Single:
		err = cpu.update(ops.dest, uint32(result), inst.Unsigned)
	case Pair:
		cpu.updatePair(result)
	default:
		panic("unknown kernel result")
	}

	return
}

// update writes a single general register and reports it.
func (cpu *Cpu) update(name string, value uint32, unsigned bool) (err error) {
	old, err := cpu.Register.Get(name)
	if err != nil {
		return
	}

	err = cpu.Register.Set(name, value)
	if err != nil {
		return
	}

	cpu.Reporter.Changed(Change{Name: name, Old: old, New: value, Unsigned: unsigned})
	return
}

// updatePair writes hi and lo together and reports them as one batch.
func (cpu *Cpu) updatePair(pair Pair) {
	changes := []Change{
		{Name: SPECIAL_HI, Old: cpu.Special.Hi, New: pair.Hi},
		{Name: SPECIAL_LO, Old: cpu.Special.Lo, New: pair.Lo},
	}

	cpu.Special.SetPair(pair.Hi, pair.Lo)

	cpu.Reporter.Changed(changes...)
}

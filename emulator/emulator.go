// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs assembled instruction scripts against a CPU.
package emulator

import (
	"errors"
	"io"
	"log"

	"github.com/ezrec/mipsi/cpu"
)

// Emulator state. CPU + program + position in the program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Ticks  int // Statements dispatched since reset.
	Faults int // Statements that reported an error since reset.

	next int // Index of the next statement.
}

// NewEmulator creates a new emulator reporting to reporter.
func NewEmulator(reporter cpu.Reporter) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(reporter),
		Program: &cpu.Program{},
	}

	return
}

// Load assembles a script as the current program.
func (emu *Emulator) Load(asm *cpu.Assembler, input io.Reader) (err error) {
	asm.Verbose = emu.Verbose

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.next = 0
	return
}

// Reset the register state and rewind the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.next = 0
	emu.Ticks = 0
	emu.Faults = 0

	return
}

// LineNo returns the source line of the next statement, or 0 when the
// program is exhausted.
func (emu *Emulator) LineNo() int {
	if emu.next >= len(emu.Program.Statements) {
		return 0
	}

	return emu.Program.Statements[emu.next].LineNo
}

// Tick dispatches the next statement. Errors are not fatal; the next Tick
// proceeds with the following statement.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.next >= len(emu.Program.Statements) {
		done = true
		return
	}

	st := emu.Program.Statements[emu.next]
	emu.next++

	defer func() {
		if err != nil {
			emu.Faults++
			err = &ErrRuntime{LineNo: st.LineNo, Err: err}
		}
	}()

	if emu.Verbose {
		log.Printf("emulator: %d: %v", st.LineNo, st)
	}

	emu.Ticks++
	err = emu.Cpu.Dispatch(st.Opcode, st.Operands)

	return
}

// Run dispatches every remaining statement, and returns all the errors
// encountered along the way.
func (emu *Emulator) Run() (err error) {
	var errs []error

	for done, tick_err := emu.Tick(); !done; done, tick_err = emu.Tick() {
		if tick_err != nil {
			errs = append(errs, tick_err)
		}
	}

	err = errors.Join(errs...)
	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package repl provides an interactive instruction prompt.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/mipsi/cpu"
	"github.com/ezrec/mipsi/report"
)

const (
	prompt = "mipsi> "
)

// REPL provides an interactive Read-Eval-Print Loop over a CPU.
type REPL struct {
	Cpu       *cpu.Cpu
	Assembler *cpu.Assembler
	Table     *report.Table

	history []string
	lineno  int
}

// New creates a REPL with a fresh CPU reporting through table.
func New(table *report.Table) *REPL {
	asm := &cpu.Assembler{}
	asm.Reset()

	return &REPL{
		Cpu:       cpu.NewCpu(table),
		Assembler: asm,
		Table:     table,
	}
}

// Start runs the loop until end of input or a quit command.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	r.Table.Output = out

	fmt.Fprintln(out, "mipsi - MIPS subset interpreter")
	fmt.Fprintln(out, "Type 'help' for available commands, 'quit' to exit")

	for {
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		line := scanner.Text()

		handled, quit := r.handleCommand(line, out)
		if quit {
			break
		}
		if handled {
			continue
		}

		r.eval(line)
	}
}

func (r *REPL) handleCommand(line string, out io.Writer) (handled bool, quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		handled = true
		return
	}

	handled = true

	switch parts[0] {
	case "quit", "exit", "q":
		fmt.Fprintln(out, "Goodbye!")
		quit = true
	case "help", "h", "?":
		r.printHelp(out)
	case "regs":
		r.Table.Registers(r.Cpu.Registers())
	case "dump":
		printer := pp.New()
		printer.SetColoringEnabled(false)
		printer.Fprintln(out, r.Cpu.Snapshot())
	case "reset":
		r.Cpu.Reset()
		r.Assembler.Reset()
		fmt.Fprintln(out, "Registers and equates cleared")
	case "equ":
		for _, name := range slices.Sorted(maps.Keys(r.Assembler.Equate)) {
			fmt.Fprintf(out, "  %s = %s\n", name, r.Assembler.Equate[name])
		}
	case "history":
		for n, cmd := range r.history {
			fmt.Fprintf(out, "%3d: %s\n", n+1, cmd)
		}
	default:
		handled = false
	}

	return
}

// eval assembles and dispatches one line. Errors have already been
// reported when this returns.
func (r *REPL) eval(line string) {
	r.lineno++
	r.history = append(r.history, line)

	st, ok, err := r.Assembler.ParseLine(line, r.lineno)
	if err != nil {
		r.Table.Diagnostic(err)
		return
	}
	if !ok {
		return
	}

	r.Cpu.Dispatch(st.Opcode, st.Operands)
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprint(out, `
mipsi REPL Commands:
  help, h, ?      Show this help message
  quit, exit, q   Exit the REPL
  regs            Show all registers
  dump            Dump the raw register state
  reset           Clear registers and equates
  equ             List equates
  history         Show instruction history

Instructions:
`)
	for _, op := range cpu.Opcodes() {
		inst, _ := op.Describe()
		fmt.Fprintf(out, "  %-6s %v\n", op, inst.Shape)
	}
	fmt.Fprint(out, `
Examples:
  addi $t1,$zero,5
  .equ SEVEN 7
  addi $t2,$zero,SEVEN
  add $t0,$t1,$t2
  div $t0,$t1
  mfhi $t3
`)
}

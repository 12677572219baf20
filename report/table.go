// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package report renders register changes and diagnostics as text tables.
package report

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ezrec/mipsi/cpu"
	"github.com/ezrec/mipsi/translate"
)

var f = translate.From

// Column widths of a change table.
const (
	NAME_WIDTH  = 11
	VALUE_WIDTH = 22
)

// Table writes change tables to an output stream.
type Table struct {
	Output io.Writer // Destination of all reports.
	Hex    bool      // Show values as 32-bit hex instead of decimal.
	Quiet  bool      // Suppress the instruction echo.
}

// NewTable creates a reporter writing to out.
func NewTable(out io.Writer) *Table {
	return &Table{Output: out}
}

var _ cpu.Reporter = (*Table)(nil)

// Format renders a register value.
func (tb *Table) Format(value uint32, unsigned bool) string {
	switch {
	case tb.Hex:
		return fmt.Sprintf("0x%08x", value)
	case unsigned:
		return strconv.FormatUint(uint64(value), 10)
	default:
		return strconv.FormatInt(int64(int32(value)), 10)
	}
}

func (tb *Table) newWriter(header ...string) (table *tablewriter.Table) {
	table = tablewriter.NewWriter(tb.Output)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.SetColMinWidth(0, NAME_WIDTH)
	for n := 1; n < len(header); n++ {
		table.SetColMinWidth(n, VALUE_WIDTH)
	}
	return
}

// Instruction echoes the instruction about to be dispatched.
func (tb *Table) Instruction(opcode, operands string) {
	if tb.Quiet {
		return
	}
	fmt.Fprintf(tb.Output, "\n%v\n", f("INSTRUCTION: %s %s", opcode, operands))
}

// Changed renders one table with a row per changed register.
func (tb *Table) Changed(changes ...cpu.Change) {
	if len(changes) == 0 {
		return
	}

	table := tb.newWriter(f("Reg Name"), f("Old Value"), f("New Value"))
	for _, change := range changes {
		table.Append([]string{
			change.Name,
			tb.Format(change.Old, change.Unsigned),
			tb.Format(change.New, change.Unsigned),
		})
	}
	table.Render()
}

// Diagnostic reports a rejected instruction.
func (tb *Table) Diagnostic(err error) {
	fmt.Fprintf(tb.Output, "%v\n", f("[ERR]: %v", err))
}

// Registers renders a table of register values.
func (tb *Table) Registers(registers iter.Seq2[string, uint32]) {
	table := tb.newWriter(f("Reg Name"), f("Signed"), f("Hex"))
	for name, value := range registers {
		table.Append([]string{
			name,
			strconv.FormatInt(int64(int32(value)), 10),
			fmt.Sprintf("0x%08x", value),
		})
	}
	table.Render()
}

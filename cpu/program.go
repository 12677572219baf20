package cpu

import (
	"strings"
)

// Statement is a single dispatchable line of a script.
type Statement struct {
	LineNo   int    // Source line number, from 1.
	Line     string // Source text, without comments.
	Opcode   string // Mnemonic.
	Operands string // Comma separated operands, after equate expansion.
}

func (st Statement) String() string {
	if len(st.Operands) == 0 {
		return st.Opcode
	}
	return st.Opcode + " " + st.Operands
}

// Program is an assembled script.
type Program struct {
	Statements []Statement
}

// String renders the program back to source text, one statement per line.
func (prog *Program) String() string {
	var text strings.Builder
	for _, st := range prog.Statements {
		text.WriteString(st.String())
		text.WriteString("\n")
	}
	return text.String()
}

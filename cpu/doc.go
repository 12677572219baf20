// Package cpu implements the instruction interpreter for a MIPS-style
// integer subset.
//
// The CPU holds a 32-entry general-purpose register file, with $zero
// hardwired to zero, and the hi/lo accumulators written by mult and div.
// Instructions arrive as a mnemonic and a comma separated operand string.
// A closed opcode table maps each mnemonic to its operand shape and the
// kernel computing its result; the dispatcher resolves the operands, runs
// the kernel, and writes the result back, reporting every register change.
//
// The assembler reads instruction scripts with comments, .equ constants and
// compile-time $(...) expressions, producing a Program of statements to
// dispatch in order.
package cpu

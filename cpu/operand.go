package cpu

import (
	"errors"
	"strconv"
	"strings"
)

// Operands are the split, trimmed words of an operand string.
type Operands []string

// SplitOperands splits an operand string on commas, trimming each word.
// An empty string has no operands.
func SplitOperands(operands string) (words Operands) {
	if len(strings.TrimSpace(operands)) == 0 {
		return
	}

	for _, word := range strings.Split(operands, ",") {
		words = append(words, strings.TrimSpace(word))
	}
	return
}

// Check verifies the operand words fit a shape.
func (words Operands) Check(shape Shape) (err error) {
	if len(words) != shape.Arity() {
		err = errors.Join(ErrOperandCount,
			errors.New(f("%v takes %d operands, got %d", shape, shape.Arity(), len(words))))
		return
	}

	for _, word := range words {
		if len(word) == 0 {
			err = ErrOperandEmpty
			return
		}
	}

	return
}

// ParseImmediate converts a literal to its 32-bit pattern. Decimal, 0x, 0o
// and 0b forms are accepted, signed or unsigned.
func ParseImmediate(word string) (value uint32, err error) {
	v64, err := strconv.ParseInt(strings.TrimSpace(word), 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// resolved is the operand words bound to register values.
type resolved struct {
	dest string // destination register, if any
	args Args
}

// parseOperands resolves the operand words of an instruction against the
// register files.
func (cpu *Cpu) parseOperands(inst Instruction, words Operands) (ops resolved, err error) {
	err = words.Check(inst.Shape)
	if err != nil {
		return
	}

	ops.args.Unsigned = inst.Unsigned

	switch inst.Shape {
	case SHAPE_RRR:
		ops.dest = words[0]
		if _, ok := RegisterIndex(ops.dest); !ok {
			err = ErrRegisterName(ops.dest)
			return
		}
		ops.args.Lhs, err = cpu.Register.Get(words[1])
		if err != nil {
			return
		}
		ops.args.Rhs, err = cpu.Register.Get(words[2])
	case SHAPE_RRI:
		ops.dest = words[0]
		if _, ok := RegisterIndex(ops.dest); !ok {
			err = ErrRegisterName(ops.dest)
			return
		}
		ops.args.Lhs, err = cpu.Register.Get(words[1])
		if err != nil {
			return
		}
		ops.args.Rhs, err = ParseImmediate(words[2])
	case SHAPE_RR:
		ops.args.Lhs, err = cpu.Register.Get(words[0])
		if err != nil {
			return
		}
		ops.args.Rhs, err = cpu.Register.Get(words[1])
	case SHAPE_R:
		ops.dest = words[0]
		if _, ok := RegisterIndex(ops.dest); !ok {
			err = ErrRegisterName(ops.dest)
			return
		}
		ops.args.Lhs, err = cpu.Special.Get(inst.Source)
	default:
		panic("unknown shape")
	}

	return
}

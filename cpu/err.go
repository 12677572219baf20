package cpu

import (
	"errors"

	"github.com/ezrec/mipsi/translate"
)

var f = translate.From

var (
	// Register errors
	ErrRegisterProtected = errors.New(f("$zero cannot be written to"))
	ErrRegisterInvalid   = errors.New(f("register invalid"))

	// Dispatch errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrOperandCount  = errors.New(f("operand count"))
	ErrOperandEmpty  = errors.New(f("operand empty"))

	// Kernel errors
	ErrOverflow     = errors.New(f("arithmetic overflow"))
	ErrDivideByZero = errors.New(f("divide by zero"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLineSyntax      = errors.New(f("line syntax"))
)

type ErrRegisterName string

func (err ErrRegisterName) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegisterName) Unwrap() error {
	return ErrRegisterInvalid
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrInstruction attaches the offending instruction to a dispatch error.
type ErrInstruction struct {
	Opcode   string
	Operands string
	Err      error
}

func (err *ErrInstruction) Error() string {
	return f("%v %v: %v", err.Opcode, err.Operands, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

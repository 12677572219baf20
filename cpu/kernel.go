package cpu

// Args are the resolved operands handed to a kernel.
type Args struct {
	Lhs      uint32 // rs, or the special register for mfhi/mflo.
	Rhs      uint32 // rt, or the immediate.
	Unsigned bool   // Unsigned mode: wrap instead of trapping on overflow.
}

// Result is the output of a kernel: either Single or Pair.
type Result interface {
	result()
}

// Single is a one-register result.
type Single uint32

// Pair is a hi/lo accumulator result.
type Pair struct {
	Hi uint32
	Lo uint32
}

func (Single) result() {}
func (Pair) result()   {}

// Kernel computes the semantics of an operation.
type Kernel func(args Args) (Result, error)

// Add is signed or unsigned 32-bit addition.
func Add(args Args) (Result, error) {
	sum := args.Lhs + args.Rhs
	if !args.Unsigned {
		a, b, s := int32(args.Lhs), int32(args.Rhs), int32(sum)
		if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
			return nil, ErrOverflow
		}
	}
	return Single(sum), nil
}

// Sub is signed or unsigned 32-bit subtraction.
func Sub(args Args) (Result, error) {
	diff := args.Lhs - args.Rhs
	if !args.Unsigned {
		a, b, d := int32(args.Lhs), int32(args.Rhs), int32(diff)
		if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
			return nil, ErrOverflow
		}
	}
	return Single(diff), nil
}

// Mult is the signed 64-bit product, upper word in hi.
func Mult(args Args) (Result, error) {
	product := uint64(int64(int32(args.Lhs)) * int64(int32(args.Rhs)))
	return Pair{Hi: uint32(product >> 32), Lo: uint32(product)}, nil
}

// Div is signed division; hi is the remainder and lo the quotient.
// The quotient truncates toward zero.
func Div(args Args) (Result, error) {
	dividend, divisor := int32(args.Lhs), int32(args.Rhs)
	if divisor == 0 {
		return nil, ErrDivideByZero
	}
	return Pair{Hi: uint32(dividend % divisor), Lo: uint32(dividend / divisor)}, nil
}

// MoveFrom copies the special register passed as Lhs.
func MoveFrom(args Args) (Result, error) {
	return Single(args.Lhs), nil
}

func And(args Args) (Result, error) {
	return Single(args.Lhs & args.Rhs), nil
}

func Or(args Args) (Result, error) {
	return Single(args.Lhs | args.Rhs), nil
}

// ShiftLeft shifts by the low five bits of Rhs.
func ShiftLeft(args Args) (Result, error) {
	return Single(args.Lhs << (args.Rhs & 0x1f)), nil
}

// ShiftRight is a logical right shift by the low five bits of Rhs.
func ShiftRight(args Args) (Result, error) {
	return Single(args.Lhs >> (args.Rhs & 0x1f)), nil
}

// SetOnLessThan is 1 when Lhs < Rhs as signed integers, else 0.
func SetOnLessThan(args Args) (Result, error) {
	if int32(args.Lhs) < int32(args.Rhs) {
		return Single(1), nil
	}
	return Single(0), nil
}

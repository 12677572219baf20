package cpu

// Opcode is a recognized instruction mnemonic.
type Opcode int

const (
	OP_INVALID = Opcode(iota) // (invalid)
	OP_ADD                    // add
	OP_ADDI                   // addi
	OP_ADDU                   // addu
	OP_ADDIU                  // addiu
	OP_SUB                    // sub
	OP_SUBU                   // subu
	OP_MULT                   // mult
	OP_DIV                    // div
	OP_MFHI                   // mfhi
	OP_MFLO                   // mflo
	OP_AND                    // and
	OP_ANDI                   // andi
	OP_OR                     // or
	OP_ORI                    // ori
	OP_SLL                    // sll
	OP_SRL                    // srl
	OP_SLT                    // slt
	OP_SLTI                   // slti
	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OP_INVALID: "(invalid)",
	OP_ADD:     "add",
	OP_ADDI:    "addi",
	OP_ADDU:    "addu",
	OP_ADDIU:   "addiu",
	OP_SUB:     "sub",
	OP_SUBU:    "subu",
	OP_MULT:    "mult",
	OP_DIV:     "div",
	OP_MFHI:    "mfhi",
	OP_MFLO:    "mflo",
	OP_AND:     "and",
	OP_ANDI:    "andi",
	OP_OR:      "or",
	OP_ORI:     "ori",
	OP_SLL:     "sll",
	OP_SRL:     "srl",
	OP_SLT:     "slt",
	OP_SLTI:    "slti",
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = func() map[string]Opcode {
	ops := make(map[string]Opcode, opcodeCount)
	for op := OP_ADD; op < opcodeCount; op++ {
		ops[opcodeNames[op]] = op
	}
	return ops
}()

// LookupOpcode finds the opcode for a mnemonic. Matching is exact and
// case-sensitive.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}

func (op Opcode) String() string {
	if op < 0 || op >= opcodeCount {
		return opcodeNames[OP_INVALID]
	}
	return opcodeNames[op]
}

// Opcodes returns every valid opcode, in table order.
func Opcodes() (ops []Opcode) {
	for op := OP_ADD; op < opcodeCount; op++ {
		ops = append(ops, op)
	}
	return
}

// Shape is the operand layout of an instruction.
type Shape int

const (
	SHAPE_RRR = Shape(iota) // rd,rs,rt
	SHAPE_RRI               // rd,rs,imm
	SHAPE_RR                // rs,rt
	SHAPE_R                 // rd
)

// Arity returns the number of comma separated operands the shape takes.
func (shape Shape) Arity() int {
	switch shape {
	case SHAPE_RRR, SHAPE_RRI:
		return 3
	case SHAPE_RR:
		return 2
	case SHAPE_R:
		return 1
	}
	return 0
}

func (shape Shape) String() string {
	switch shape {
	case SHAPE_RRR:
		return "rd,rs,rt"
	case SHAPE_RRI:
		return "rd,rs,imm"
	case SHAPE_RR:
		return "rs,rt"
	case SHAPE_R:
		return "rd"
	}
	return "?"
}

// Instruction describes how an opcode is parsed and computed.
type Instruction struct {
	Opcode   Opcode
	Shape    Shape
	Unsigned bool   // Pass unsigned mode to the kernel.
	Source   string // Special register read by SHAPE_R.
	Kernel   Kernel
}

var instructionTable = [opcodeCount]Instruction{
	OP_ADD:   {Opcode: OP_ADD, Shape: SHAPE_RRR, Kernel: Add},
	OP_ADDI:  {Opcode: OP_ADDI, Shape: SHAPE_RRI, Kernel: Add},
	OP_ADDU:  {Opcode: OP_ADDU, Shape: SHAPE_RRR, Unsigned: true, Kernel: Add},
	OP_ADDIU: {Opcode: OP_ADDIU, Shape: SHAPE_RRI, Unsigned: true, Kernel: Add},
	OP_SUB:   {Opcode: OP_SUB, Shape: SHAPE_RRR, Kernel: Sub},
	OP_SUBU:  {Opcode: OP_SUBU, Shape: SHAPE_RRR, Unsigned: true, Kernel: Sub},
	OP_MULT:  {Opcode: OP_MULT, Shape: SHAPE_RR, Kernel: Mult},
	OP_DIV:   {Opcode: OP_DIV, Shape: SHAPE_RR, Kernel: Div},
	OP_MFHI:  {Opcode: OP_MFHI, Shape: SHAPE_R, Source: SPECIAL_HI, Kernel: MoveFrom},
	OP_MFLO:  {Opcode: OP_MFLO, Shape: SHAPE_R, Source: SPECIAL_LO, Kernel: MoveFrom},
	OP_AND:   {Opcode: OP_AND, Shape: SHAPE_RRR, Kernel: And},
	OP_ANDI:  {Opcode: OP_ANDI, Shape: SHAPE_RRI, Kernel: And},
	OP_OR:    {Opcode: OP_OR, Shape: SHAPE_RRR, Kernel: Or},
	OP_ORI:   {Opcode: OP_ORI, Shape: SHAPE_RRI, Kernel: Or},
	OP_SLL:   {Opcode: OP_SLL, Shape: SHAPE_RRI, Kernel: ShiftLeft},
	OP_SRL:   {Opcode: OP_SRL, Shape: SHAPE_RRI, Kernel: ShiftRight},
	OP_SLT:   {Opcode: OP_SLT, Shape: SHAPE_RRR, Kernel: SetOnLessThan},
	OP_SLTI:  {Opcode: OP_SLTI, Shape: SHAPE_RRI, Kernel: SetOnLessThan},
}

// Describe returns the table entry for an opcode.
func (op Opcode) Describe() (inst Instruction, ok bool) {
	if op <= OP_INVALID || op >= opcodeCount {
		return
	}
	return instructionTable[op], true
}

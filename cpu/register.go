package cpu

import (
	"iter"
	"strconv"
	"strings"
)

// REGISTER_COUNT is the size of the general-purpose register file.
const REGISTER_COUNT = 32

// Conventional names of the general-purpose registers, by index.
var registerNames = [REGISTER_COUNT]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

var registerIndex = func() map[string]int {
	index := make(map[string]int, 2*REGISTER_COUNT)
	for n, name := range registerNames {
		index[name] = n
		index["$"+strconv.Itoa(n)] = n
	}
	return index
}()

// RegisterIndex resolves a register name, or a numeric alias such as "$8",
// to its slot in the register file.
func RegisterIndex(name string) (index int, ok bool) {
	index, ok = registerIndex[strings.TrimSpace(name)]
	return
}

// RegisterName returns the conventional name of a register slot.
func RegisterName(index int) string {
	return registerNames[index]
}

// RegisterFile is the general-purpose register bank.
// Slot 0 ($zero) always reads as zero.
type RegisterFile struct {
	Value [REGISTER_COUNT]uint32
}

// Get reads a register by name.
func (rf *RegisterFile) Get(name string) (value uint32, err error) {
	index, ok := RegisterIndex(name)
	if !ok {
		err = ErrRegisterName(name)
		return
	}

	value = rf.Value[index]
	return
}

// Set writes a register by name. Writes to $zero are dropped.
func (rf *RegisterFile) Set(name string, value uint32) (err error) {
	index, ok := RegisterIndex(name)
	if !ok {
		err = ErrRegisterName(name)
		return
	}

	if index == 0 {
		err = ErrRegisterProtected
		return
	}

	rf.Value[index] = value
	return
}

// All iterates over the register names and values, in index order.
func (rf *RegisterFile) All() iter.Seq2[string, uint32] {
	return func(yield func(string, uint32) bool) {
		for n, value := range rf.Value {
			if !yield(RegisterName(n), value) {
				return
			}
		}
	}
}

// Reset clears all registers.
func (rf *RegisterFile) Reset() {
	clear(rf.Value[:])
}

// Special register names.
const (
	SPECIAL_HI = "hi"
	SPECIAL_LO = "lo"
)

// SpecialRegisterFile holds the multiply/divide accumulators.
type SpecialRegisterFile struct {
	Hi uint32
	Lo uint32
}

func (sf *SpecialRegisterFile) register(name string) (reg *uint32, err error) {
	switch strings.TrimSpace(name) {
	case SPECIAL_HI:
		reg = &sf.Hi
	case SPECIAL_LO:
		reg = &sf.Lo
	default:
		err = ErrRegisterName(name)
	}
	return
}

// Get reads a special register by name.
func (sf *SpecialRegisterFile) Get(name string) (value uint32, err error) {
	reg, err := sf.register(name)
	if err != nil {
		return
	}

	value = *reg
	return
}

// Set writes a special register by name.
func (sf *SpecialRegisterFile) Set(name string, value uint32) (err error) {
	reg, err := sf.register(name)
	if err != nil {
		return
	}

	*reg = value
	return
}

// SetPair writes both accumulators together.
func (sf *SpecialRegisterFile) SetPair(hi, lo uint32) {
	sf.Hi = hi
	sf.Lo = lo
}

// All iterates over the special registers, hi first.
func (sf *SpecialRegisterFile) All() iter.Seq2[string, uint32] {
	return func(yield func(string, uint32) bool) {
		if !yield(SPECIAL_HI, sf.Hi) {
			return
		}
		yield(SPECIAL_LO, sf.Lo)
	}
}

// Reset clears both accumulators.
func (sf *SpecialRegisterFile) Reset() {
	sf.SetPair(0, 0)
}

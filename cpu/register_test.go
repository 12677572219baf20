package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}

	for name, value := range rf.All() {
		assert.Equal(uint32(0), value, name)
	}

	err := rf.Set("$t0", 0x12345678)
	assert.NoError(err)

	value, err := rf.Get("$t0")
	assert.NoError(err)
	assert.Equal(uint32(0x12345678), value)

	// Numeric aliases share the slot.
	value, err = rf.Get("$8")
	assert.NoError(err)
	assert.Equal(uint32(0x12345678), value)

	err = rf.Set("$31", 0xcafe)
	assert.NoError(err)
	value, err = rf.Get("$ra")
	assert.NoError(err)
	assert.Equal(uint32(0xcafe), value)

	rf.Reset()
	value, err = rf.Get("$t0")
	assert.NoError(err)
	assert.Equal(uint32(0), value)
}

func TestRegisterFile_Zero(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}

	for _, name := range []string{"$zero", "$0", " $zero "} {
		err := rf.Set(name, 0xffffffff)
		assert.ErrorIs(err, ErrRegisterProtected, name)

		value, err := rf.Get(name)
		assert.NoError(err)
		assert.Equal(uint32(0), value, name)
	}
}

func TestRegisterFile_Invalid(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}

	for _, name := range []string{"", "t0", "$t10", "$32", "$T0", "hi"} {
		_, err := rf.Get(name)
		assert.ErrorIs(err, ErrRegisterInvalid, name)
		assert.Equal(ErrRegisterName(name), err, name)

		err = rf.Set(name, 1)
		assert.ErrorIs(err, ErrRegisterInvalid, name)
	}
}

func TestRegisterFile_All(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{}
	rf.Value[31] = 0x31

	var names []string
	for name, value := range rf.All() {
		names = append(names, name)
		if name == "$ra" {
			assert.Equal(uint32(0x31), value)
		}
	}

	assert.Len(names, REGISTER_COUNT)
	assert.Equal("$zero", names[0])
	assert.Equal("$t0", names[8])
	assert.Equal("$ra", names[31])

	for n, name := range names {
		index, ok := RegisterIndex(name)
		assert.True(ok, name)
		assert.Equal(n, index, name)
		assert.Equal(name, RegisterName(n))
	}
}

func TestSpecialRegisterFile(t *testing.T) {
	assert := assert.New(t)

	sf := &SpecialRegisterFile{}

	assert.NoError(sf.Set("hi", 7))
	assert.NoError(sf.Set("lo", 9))

	hi, err := sf.Get("hi")
	assert.NoError(err)
	assert.Equal(uint32(7), hi)

	lo, err := sf.Get("lo")
	assert.NoError(err)
	assert.Equal(uint32(9), lo)

	_, err = sf.Get("$t0")
	assert.True(errors.Is(err, ErrRegisterInvalid))
	assert.ErrorIs(sf.Set("HI", 1), ErrRegisterInvalid)

	sf.SetPair(1, 2)
	var got []uint32
	for _, value := range sf.All() {
		got = append(got, value)
	}
	assert.Equal([]uint32{1, 2}, got)

	sf.Reset()
	assert.Equal(SpecialRegisterFile{}, *sf)
}

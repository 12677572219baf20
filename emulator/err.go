// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/mipsi/translate"
)

var f = translate.From

// ErrRuntime is a dispatch failure of one script statement.
type ErrRuntime struct {
	LineNo int   // Script line of the failed statement.
	Err    error // Dispatch error, usually a *cpu.ErrInstruction.
}

func (err *ErrRuntime) Error() string {
	return f("script line %d: %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

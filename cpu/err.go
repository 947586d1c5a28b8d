package cpu

import (
	"errors"

	"github.com/rvsim/rv32/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrMemoryBounds = errors.New(f("memory access out of bounds"))
)

// ErrOpcode reports an opcode outside the six recognized formats.
// It carries the exact 7-bit value for caller diagnostics.
type ErrOpcode uint32

func (eo ErrOpcode) Error() string {
	return f("unsupported opcode 0x%02x", uint32(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAccess indicates the faulting address of a memory error.
type ErrAccess struct {
	Addr uint32
	Err  error
}

func (err *ErrAccess) Error() string {
	return f("address 0x%08x: %v", err.Addr, err.Err)
}

func (err *ErrAccess) Unwrap() error {
	return err.Err
}

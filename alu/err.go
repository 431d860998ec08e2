package alu

import (
	"github.com/ezrec/aluverify/translate"
)

var f = translate.From

// ErrUnknownOpcode is returned by a registry lookup of an unregistered code.
type ErrUnknownOpcode OpCode

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode 0x%02X", uint8(err))
}

func (err ErrUnknownOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownOpcode)
	return
}

// ErrUnknownMnemonic is returned by a registry lookup of an unknown name.
type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("unknown operation %q", string(err))
}

func (err ErrUnknownMnemonic) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownMnemonic)
	return
}

// ErrUnsupportedOpcode is returned when the reference model is asked to
// evaluate a code it has no semantics for.
type ErrUnsupportedOpcode OpCode

func (err ErrUnsupportedOpcode) Error() string {
	return f("no reference for opcode 0x%02X", uint8(err))
}

func (err ErrUnsupportedOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnsupportedOpcode)
	return
}

package alu

import (
	"fmt"
	"strings"
)

// OpCode is the wire value selecting an ALU operation.
type OpCode uint8

// Registered operation codes.
const (
	OP_ADD = OpCode(0x20) // add
	OP_SUB = OpCode(0x22) // sub
	OP_AND = OpCode(0x24) // and
	OP_OR  = OpCode(0x25) // or
	OP_XOR = OpCode(0x26) // xor
	OP_NOR = OpCode(0x27) // nor
	OP_SRL = OpCode(0x02) // shift right logical
	OP_SRA = OpCode(0x03) // shift right arithmetic
)

// Entry describes one registered operation.
type Entry struct {
	Op          OpCode // Wire code.
	Mnemonic    string // Assembly style name, ie "ADD".
	Symbol      string // Infix symbol, ie "+".
	Description string // Short en-US description.
}

// String renders the entry as it appears in the operation menu.
func (entry Entry) String() string {
	return fmt.Sprintf("%-4s (0x%02X) - A %s B", entry.Mnemonic, uint8(entry.Op), entry.Symbol)
}

// Canonical display order.
var _registry = [...]Entry{
	{OP_ADD, "ADD", "+", "A + B"},
	{OP_SUB, "SUB", "-", "A - B"},
	{OP_AND, "AND", "&", "A & B"},
	{OP_OR, "OR", "|", "A | B"},
	{OP_XOR, "XOR", "^", "A ^ B"},
	{OP_NOR, "NOR", "NOR", "~(A | B)"},
	{OP_SRL, "SRL", ">>", "A >> B (logical)"},
	{OP_SRA, "SRA", ">>>", "A >>> B (arithmetic)"},
}

// _index maps a wire code to its position in _registry, plus one.
var _index [256]uint8

func init() {
	for n, entry := range _registry {
		if _index[entry.Op] != 0 {
			panic("alu: duplicate opcode in registry")
		}
		_index[entry.Op] = uint8(n + 1)
	}
}

// Registered returns true if the code has reference semantics.
func (op OpCode) Registered() bool {
	return _index[op] != 0
}

// String returns the mnemonic of a registered code, or its hex value.
func (op OpCode) String() string {
	if op.Registered() {
		return _registry[_index[op]-1].Mnemonic
	}
	return fmt.Sprintf("0x%02X", uint8(op))
}

// Lookup returns the registry entry of a code.
func Lookup(op OpCode) (entry Entry, err error) {
	n := _index[op]
	if n == 0 {
		err = ErrUnknownOpcode(op)
		return
	}

	entry = _registry[n-1]
	return
}

// ByMnemonic returns the registry entry of a mnemonic, ignoring case.
func ByMnemonic(name string) (entry Entry, err error) {
	for _, entry = range _registry {
		if strings.EqualFold(entry.Mnemonic, name) {
			return
		}
	}

	entry = Entry{}
	err = ErrUnknownMnemonic(name)
	return
}

// Enumerate returns the registered operations in display order.
func Enumerate() []Entry {
	entries := make([]Entry, len(_registry))
	copy(entries, _registry[:])
	return entries
}

// Package expr evaluates the values an operator types at the bench: plain
// integers, or small expressions such as "0x80 | 3" or "SRA" evaluated with
// starlark. The registered mnemonics are predeclared as their wire codes.
package expr

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/aluverify/alu"
	"github.com/ezrec/aluverify/frame"
)

// Int evaluates text as an integer.
func Int(text string) (value int64, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrEmpty
		return
	}

	// Plain decimal first; starlark rejects leading zeros.
	value, err = strconv.ParseInt(text, 10, 64)
	if err == nil {
		return
	}
	err = nil

	pred := starlark.StringDict{}
	for _, entry := range alu.Enumerate() {
		pred[entry.Mnemonic] = starlark.MakeInt(int(entry.Op))
	}

	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + text + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Text: text, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrExpression{Text: text}
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = &ErrExpression{Text: text}
		return
	}

	return
}

// Byte evaluates text as a value of the named frame field, in [0,255].
func Byte(field string, text string) (value uint8, err error) {
	wide, err := Int(text)
	if err != nil {
		return
	}

	if wide < 0 || wide > 0xff {
		err = frame.ErrOutOfRange{Field: field, Value: int(wide)}
		return
	}

	value = uint8(wide)
	return
}

// Operand evaluates text as an ALU operand.
func Operand(field string, text string) (uint8, error) {
	return Byte(field, text)
}

// opInt evaluates text as a mnemonic, in any case, or as an integer.
func opInt(text string) (value int64, err error) {
	entry, err := alu.ByMnemonic(strings.TrimSpace(text))
	if err == nil {
		value = int64(entry.Op)
		return
	}

	return Int(text)
}

// OpCode evaluates text as a wire code: a mnemonic, a number, or an
// expression over either.
func OpCode(text string) (op alu.OpCode, err error) {
	wide, err := opInt(text)
	if err != nil {
		return
	}

	if wide < 0 || wide > 0xff {
		err = frame.ErrOutOfRange{Field: "OP", Value: int(wide)}
		return
	}

	op = alu.OpCode(wide)
	return
}

// Frame evaluates the three fields of a request. Expressions are evaluated
// first, in order, then the frame is range checked as a whole.
func Frame(op, a, b string) (req frame.Request, err error) {
	var values [frame.RequestSize]int64

	values[2], err = opInt(op)
	if err != nil {
		return
	}
	values[0], err = Int(a)
	if err != nil {
		return
	}
	values[1], err = Int(b)
	if err != nil {
		return
	}

	return frame.EncodeInts(int(values[0]), int(values[1]), int(values[2]))
}

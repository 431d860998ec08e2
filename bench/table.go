package bench

import (
	"fmt"
	"io"

	"github.com/ezrec/aluverify/alu"
	"github.com/ezrec/aluverify/frame"
)

// WriteTable writes the expected result of op for every A with a fixed B,
// for comparison against a simulation waveform.
func WriteTable(w io.Writer, op alu.OpCode, b uint8) (err error) {
	entry, err := alu.Lookup(op)
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(w, "# %v, B=%d\n#   A  result  hex      binary\n", entry, b)
	if err != nil {
		return
	}

	for a := range 256 {
		result := alu.MustEvaluate(op, uint8(a), b)
		_, err = fmt.Fprintf(w, "%5d %7d   0x%02X   %v\n", a, result, result, frame.FormatBinary(result))
		if err != nil {
			return
		}
	}

	return
}

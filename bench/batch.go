package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/aluverify/expr"
	"github.com/ezrec/aluverify/session"
)

// Summary counts the outcomes of a batch. A registered operation answered
// with several bytes counts as failed; a custom code is never more than
// unchecked.
type Summary struct {
	Total     int
	Passed    int
	Failed    int
	Silent    int
	Unchecked int
}

// Ok is true when nothing failed and every test was answered.
func (sum Summary) Ok() bool {
	return sum.Failed == 0 && sum.Silent == 0
}

func (sum Summary) String() string {
	return f("%d tests: %d passed, %d failed, %d silent, %d unchecked",
		sum.Total, sum.Passed, sum.Failed, sum.Silent, sum.Unchecked)
}

func (sum *Summary) add(outcome session.Outcome) {
	sum.Total++
	switch {
	case outcome.Silent():
		sum.Silent++
	case outcome.Verdict == session.VerdictMatch:
		sum.Passed++
	case outcome.Verdict == session.VerdictMismatch, outcome.Ambiguous():
		sum.Failed++
	default:
		sum.Unchecked++
	}
}

// Batch runs test vectors read from a text file, one per line:
//
//	# comment
//	ADD 200 10
//	SRA 0x80|0x40 3
//	0x3f 1 2        ; unregistered code, sent without comparison
//
// Each field is a number or an expression without spaces.
type Batch struct {
	Out     io.Writer
	JSON    bool // Write one JSON object per outcome.
	Options []session.Option
}

// parseLine parses one batch line. ok is false for a blank or comment line.
func parseLine(line string) (a, b uint8, sel session.Selector, ok bool, err error) {
	if n := strings.IndexAny(line, "#;"); n >= 0 {
		line = line[:n]
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	if len(fields) != 3 {
		err = ErrFields(len(fields))
		return
	}

	req, err := expr.Frame(fields[0], fields[1], fields[2])
	if err != nil {
		return
	}

	a, b = req.A(), req.B()
	if code := req.Op(); code.Registered() {
		sel = session.Op(code)
	} else {
		sel = session.Custom(uint8(code))
	}

	ok = true
	return
}

// Run verifies every vector of r over conn, one session at a time. It stops
// at the first syntax or transport error.
func (batch *Batch) Run(r io.Reader, conn session.Transport) (sum Summary, err error) {
	scanner := bufio.NewScanner(r)
	enc := json.NewEncoder(batch.Out)

	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()

		a, b, sel, ok, perr := parseLine(line)
		if perr != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: perr}
			return
		}
		if !ok {
			continue
		}

		var outcome session.Outcome
		outcome, err = session.Verify(conn, a, b, sel, batch.Options...)
		if err != nil {
			return
		}

		sum.add(outcome)

		if batch.JSON {
			err = enc.Encode(outcome)
		} else {
			_, err = fmt.Fprintln(batch.Out, outcome)
		}
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	return
}

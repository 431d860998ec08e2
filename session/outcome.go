package session

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ezrec/aluverify/alu"
	"github.com/ezrec/aluverify/frame"
)

// Verdict of a comparison against the reference model.
type Verdict int

const (
	VerdictNone     = Verdict(0) // unchecked
	VerdictMatch    = Verdict(1) // match
	VerdictMismatch = Verdict(2) // mismatch
)

func (verdict Verdict) String() string {
	switch verdict {
	case VerdictMatch:
		return "match"
	case VerdictMismatch:
		return "mismatch"
	}
	return "unchecked"
}

// Outcome of one verification round trip. It is derived fresh for each
// submission and never cached.
type Outcome struct {
	Request  frame.Request
	Custom   bool
	Response frame.Response

	Result    uint8 // Decoded result, valid if HasResult.
	HasResult bool

	Expected    uint8 // Reference result, valid if HasExpected.
	HasExpected bool

	Verdict Verdict // VerdictNone when no comparison applies.
}

// NewOutcome compares a decoded response with the reference model.
func NewOutcome(req frame.Request, custom bool, resp frame.Response) (outcome Outcome) {
	outcome = Outcome{
		Request:  req,
		Custom:   custom,
		Response: resp,
	}

	outcome.Result, outcome.HasResult = resp.Value()

	if !custom {
		expected, err := alu.Evaluate(req.Op(), req.A(), req.B())
		if err == nil {
			outcome.Expected = expected
			outcome.HasExpected = true
		}
	}

	if outcome.HasResult && outcome.HasExpected {
		if outcome.Result == outcome.Expected {
			outcome.Verdict = VerdictMatch
		} else {
			outcome.Verdict = VerdictMismatch
		}
	}

	return
}

// A returns operand A.
func (outcome Outcome) A() uint8 { return outcome.Request.A() }

// B returns operand B.
func (outcome Outcome) B() uint8 { return outcome.Request.B() }

// Op returns the operation code sent.
func (outcome Outcome) Op() alu.OpCode { return outcome.Request.Op() }

// Silent is true when the device sent nothing back.
func (outcome Outcome) Silent() bool {
	return outcome.Response.Kind == frame.NoResponse
}

// Ambiguous is true when a registered operation was answered with more than
// one byte, so there is no single result to check.
func (outcome Outcome) Ambiguous() bool {
	return outcome.HasExpected && outcome.Response.Kind == frame.MultiByteResponse
}

// Report writes the outcome for an operator.
func (outcome Outcome) Report(w io.Writer) (err error) {
	var text string

	resp := outcome.Response
	if resp.Kind == frame.NoResponse {
		text = f("✗ No response received\n")
		if outcome.HasExpected {
			text += f("  Expected: %d (0x%02X)\n", outcome.Expected, outcome.Expected)
		}
		_, err = io.WriteString(w, text)
		return
	}

	text = f("✓ Response received (%d byte(s)):\n", len(resp.Raw))
	for n, b := range resp.Raw {
		text += f("  Byte %d: 0x%02X (%3d) = %vb\n", n+1, b, b, frame.FormatBinary(b))
	}

	if outcome.HasResult {
		text += f("→ Result: %d (0x%02X)\n", outcome.Result, outcome.Result)
	} else {
		text += f("⚠ Multi-byte response, no single result\n")
	}

	switch outcome.Verdict {
	case VerdictMatch:
		text += f("✓ Result correct!\n")
	case VerdictMismatch:
		text += f("⚠ Expected: %d (0x%02X)\n", outcome.Expected, outcome.Expected)
	}

	_, err = io.WriteString(w, text)
	return
}

// String is a one line summary, ie "ADD 200 10 -> D2 match".
func (outcome Outcome) String() string {
	sel := Selector{Code: outcome.Op(), Custom: outcome.Custom}

	got := "--"
	if len(outcome.Response.Raw) != 0 {
		got = frame.FormatHex(outcome.Response.Raw)
	}

	text := fmt.Sprintf("%v %d %d -> %v %v", sel, outcome.A(), outcome.B(), got, outcome.Verdict)
	if outcome.Verdict == VerdictMismatch {
		text += fmt.Sprintf(" (expected %02X)", outcome.Expected)
	}
	return text
}

type outcomeJSON struct {
	A        uint8  `json:"a"`
	B        uint8  `json:"b"`
	Op       string `json:"op"`
	Code     uint8  `json:"code"`
	Custom   bool   `json:"custom"`
	Kind     string `json:"kind"`
	Raw      []int  `json:"raw"`
	Result   *uint8 `json:"result,omitempty"`
	Expected *uint8 `json:"expected,omitempty"`
	Match    *bool  `json:"match,omitempty"`
}

// MarshalJSON encodes the outcome with undefined fields omitted.
func (outcome Outcome) MarshalJSON() ([]byte, error) {
	out := outcomeJSON{
		A:      outcome.A(),
		B:      outcome.B(),
		Op:     outcome.Op().String(),
		Code:   uint8(outcome.Op()),
		Custom: outcome.Custom,
		Kind:   outcome.Response.Kind.String(),
		Raw:    []int{},
	}

	for _, b := range outcome.Response.Raw {
		out.Raw = append(out.Raw, int(b))
	}

	if outcome.HasResult {
		out.Result = &outcome.Result
	}
	if outcome.HasExpected {
		out.Expected = &outcome.Expected
	}
	if outcome.Verdict != VerdictNone {
		match := outcome.Verdict == VerdictMatch
		out.Match = &match
	}

	return json.Marshal(out)
}

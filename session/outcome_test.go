package session

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/aluverify/alu"
	"github.com/ezrec/aluverify/frame"
)

func TestNewOutcome(t *testing.T) {
	assert := assert.New(t)

	req := frame.Encode(128, 4, alu.OP_SRA)

	outcome := NewOutcome(req, false, frame.Decode([]byte{0xf8}))
	assert.Equal(VerdictMatch, outcome.Verdict)

	outcome = NewOutcome(req, false, frame.Decode([]byte{0x08}))
	assert.Equal(VerdictMismatch, outcome.Verdict)
	assert.Equal(uint8(0xf8), outcome.Expected)

	// Unregistered code submitted without the custom flag: no reference.
	outcome = NewOutcome(frame.Encode(1, 2, 0x3f), false, frame.Decode([]byte{0x08}))
	assert.False(outcome.HasExpected)
	assert.Equal(VerdictNone, outcome.Verdict)
}

func TestOutcome_Ambiguous(t *testing.T) {
	assert := assert.New(t)

	multi := frame.Decode([]byte{0xd2, 0x00})

	outcome := NewOutcome(frame.Encode(200, 10, alu.OP_ADD), false, multi)
	assert.True(outcome.Ambiguous())
	assert.Equal(VerdictNone, outcome.Verdict)

	outcome = NewOutcome(frame.Encode(200, 10, alu.OP_ADD), true, multi)
	assert.False(outcome.Ambiguous(), "custom codes are never checked")

	outcome = NewOutcome(frame.Encode(200, 10, alu.OP_ADD), false, frame.Decode([]byte{0xd2}))
	assert.False(outcome.Ambiguous())
}

func TestOutcome_Report(t *testing.T) {
	assert := assert.New(t)

	req := frame.Encode(200, 10, alu.OP_ADD)

	table := [](struct {
		name     string
		custom   bool
		raw      []byte
		expected string
	}){
		{"match", false, []byte{0xd2},
			"✓ Response received (1 byte(s)):\n" +
				"  Byte 1: 0xD2 (210) = 11010010b\n" +
				"→ Result: 210 (0xD2)\n" +
				"✓ Result correct!\n"},
		{"mismatch", false, []byte{0x00},
			"✓ Response received (1 byte(s)):\n" +
				"  Byte 1: 0x00 (  0) = 00000000b\n" +
				"→ Result: 0 (0x00)\n" +
				"⚠ Expected: 210 (0xD2)\n"},
		{"silent", false, nil,
			"✗ No response received\n" +
				"  Expected: 210 (0xD2)\n"},
		{"custom", true, []byte{0x07},
			"✓ Response received (1 byte(s)):\n" +
				"  Byte 1: 0x07 (  7) = 00000111b\n" +
				"→ Result: 7 (0x07)\n"},
		{"multi", false, []byte{0x01, 0x02},
			"✓ Response received (2 byte(s)):\n" +
				"  Byte 1: 0x01 (  1) = 00000001b\n" +
				"  Byte 2: 0x02 (  2) = 00000010b\n" +
				"⚠ Multi-byte response, no single result\n"},
	}

	for _, entry := range table {
		outcome := NewOutcome(req, entry.custom, frame.Decode(entry.raw))
		buf := &bytes.Buffer{}
		assert.NoError(outcome.Report(buf), entry.name)
		assert.Equal(entry.expected, buf.String(), entry.name)
	}
}

func TestOutcome_String(t *testing.T) {
	assert := assert.New(t)

	req := frame.Encode(200, 10, alu.OP_ADD)

	assert.Equal("ADD 200 10 -> D2 match", NewOutcome(req, false, frame.Decode([]byte{0xd2})).String())
	assert.Equal("ADD 200 10 -> -- unchecked", NewOutcome(req, false, frame.Decode(nil)).String())
	assert.Equal("custom 0x20 200 10 -> D2 01 unchecked", NewOutcome(req, true, frame.Decode([]byte{0xd2, 0x01})).String())
}

func TestOutcome_MarshalJSON(t *testing.T) {
	assert := assert.New(t)

	req := frame.Encode(200, 10, alu.OP_ADD)

	data, err := json.Marshal(NewOutcome(req, false, frame.Decode([]byte{0x00})))
	assert.NoError(err)
	assert.JSONEq(`{"a":200,"b":10,"op":"ADD","code":32,"custom":false,
		"kind":"single byte","raw":[0],"result":0,"expected":210,"match":false}`, string(data))

	data, err = json.Marshal(NewOutcome(req, true, frame.Decode(nil)))
	assert.NoError(err)
	assert.JSONEq(`{"a":200,"b":10,"op":"ADD","code":32,"custom":true,
		"kind":"no response","raw":[]}`, string(data))
}

// Package frame encodes ALU request frames and classifies the raw bytes the
// device answers with.
//
// A request is exactly three bytes, [A][B][OP]. There is no length prefix,
// terminator or checksum; the frame boundary is the fixed size itself. The
// canonical response is exactly one byte.
package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/aluverify/alu"
)

// RequestSize is the size in bytes of a request frame.
const RequestSize = 3

// Request is a [A][B][OP] request frame.
type Request [RequestSize]byte

// Encode builds the request frame for op on a and b.
func Encode(a, b uint8, op alu.OpCode) Request {
	return Request{a, b, uint8(op)}
}

// EncodeInts builds a request frame from unconstrained integers, as read
// from an operator. Each field must be in [0,255]; the frame is left zero
// unless all of them are.
func EncodeInts(a, b, op int) (req Request, err error) {
	fields := [RequestSize]struct {
		name  string
		value int
	}{
		{"A", a},
		{"B", b},
		{"OP", op},
	}

	for _, field := range fields {
		if field.value < 0 || field.value > 0xff {
			err = ErrOutOfRange{Field: field.name, Value: field.value}
			return
		}
	}

	req = Request{uint8(a), uint8(b), uint8(op)}
	return
}

// A returns operand A.
func (req Request) A() uint8 { return req[0] }

// B returns operand B.
func (req Request) B() uint8 { return req[1] }

// Op returns the operation code.
func (req Request) Op() alu.OpCode { return alu.OpCode(req[2]) }

// Bytes returns the frame as it is sent on the wire.
func (req Request) Bytes() []byte {
	return req[:]
}

func (req Request) String() string {
	return fmt.Sprintf("A=0x%02X (%3d), B=0x%02X (%3d), OP=0x%02X",
		req[0], req[0], req[1], req[1], req[2])
}

// Kind classifies a response by its length.
type Kind int

const (
	NoResponse        = Kind(0) // no response
	SingleByteResult  = Kind(1) // single byte
	MultiByteResponse = Kind(2) // multi byte
)

func (kind Kind) String() string {
	switch kind {
	case NoResponse:
		return "no response"
	case SingleByteResult:
		return "single byte"
	case MultiByteResponse:
		return "multi byte"
	}
	return "Kind(" + strconv.Itoa(int(kind)) + ")"
}

// Response is the raw answer read back from the device.
type Response struct {
	Kind Kind
	Raw  []byte
}

// Decode classifies raw response bytes. Multi-byte buffers are kept
// verbatim; no single value is inferred from them.
func Decode(raw []byte) (resp Response) {
	switch len(raw) {
	case 0:
		resp.Kind = NoResponse
		return
	case 1:
		resp.Kind = SingleByteResult
	default:
		resp.Kind = MultiByteResponse
	}

	resp.Raw = append([]byte(nil), raw...)
	return
}

// Value returns the result byte of a SingleByteResult.
func (resp Response) Value() (value uint8, ok bool) {
	if resp.Kind != SingleByteResult {
		return
	}

	value = resp.Raw[0]
	ok = true
	return
}

// FormatHex renders bytes as space separated upper case hex, ie "C8 0A 20".
func FormatHex(data []byte) string {
	words := make([]string, len(data))
	for n, b := range data {
		words[n] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(words, " ")
}

// FormatBinary renders a byte as eight binary digits.
func FormatBinary(b uint8) string {
	return fmt.Sprintf("%08b", b)
}

// ParseHex parses space separated hexadecimal bytes, ie "05 0a 20".
func ParseHex(text string) (data []byte, err error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		err = ErrHexEmpty
		return
	}

	for _, word := range words {
		var value uint64
		value, err = strconv.ParseUint(strings.TrimPrefix(strings.ToLower(word), "0x"), 16, 8)
		if err != nil {
			data = nil
			err = ErrHexFormat(word)
			return
		}
		data = append(data, uint8(value))
	}

	return
}

package frame

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/aluverify/alu"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	req := Encode(200, 10, alu.OP_ADD)
	assert.Equal([]byte{200, 10, 0x20}, req.Bytes())
	assert.Equal(uint8(200), req.A())
	assert.Equal(uint8(10), req.B())
	assert.Equal(alu.OP_ADD, req.Op())
	assert.Equal(RequestSize, len(req.Bytes()))
	assert.Equal("A=0xC8 (200), B=0x0A ( 10), OP=0x20", req.String())

	custom := Encode(0, 0xff, alu.OpCode(0x3f))
	assert.Equal([]byte{0, 0xff, 0x3f}, custom.Bytes())
}

func TestEncodeInts(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b, op int
		err      error
	}){
		{0, 0, 0, nil},
		{255, 255, 255, nil},
		{-1, 0, 0x20, ErrOutOfRange{"A", -1}},
		{0, 256, 0x20, ErrOutOfRange{"B", 256}},
		{1, 2, 0x100, ErrOutOfRange{"OP", 0x100}},
		{7, 300, 0x20, ErrOutOfRange{"B", 300}},
	}

	for _, entry := range table {
		req, err := EncodeInts(entry.a, entry.b, entry.op)
		if entry.err != nil {
			assert.Equal(entry.err, err)
			assert.True(errors.Is(err, ErrOutOfRange{}))
			assert.Equal(Request{}, req)
			continue
		}
		assert.NoError(err)
		assert.Equal(Request{uint8(entry.a), uint8(entry.b), uint8(entry.op)}, req)
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	resp := Decode(nil)
	assert.Equal(NoResponse, resp.Kind)
	_, ok := resp.Value()
	assert.False(ok)

	resp = Decode([]byte{})
	assert.Equal(NoResponse, resp.Kind)

	resp = Decode([]byte{0xd2})
	assert.Equal(SingleByteResult, resp.Kind)
	value, ok := resp.Value()
	assert.True(ok)
	assert.Equal(uint8(0xd2), value)

	raw := []byte{0x01, 0x02}
	resp = Decode(raw)
	assert.Equal(MultiByteResponse, resp.Kind)
	assert.Equal([]byte{0x01, 0x02}, resp.Raw)
	_, ok = resp.Value()
	assert.False(ok)

	raw[0] = 0xff
	assert.Equal(uint8(0x01), resp.Raw[0], "decode keeps its own copy")
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, entry := range alu.Enumerate() {
		for _, pair := range [][2]uint8{{0, 0}, {200, 10}, {128, 4}, {255, 255}} {
			req := Encode(pair[0], pair[1], entry.Op)
			expected := alu.MustEvaluate(req.Op(), req.A(), req.B())

			resp := Decode([]byte{expected})
			value, ok := resp.Value()
			assert.True(ok)
			assert.Equal(expected, value)

			assert.Equal(pair[0], req.A())
			assert.Equal(pair[1], req.B())
			assert.Equal(entry.Op, req.Op())
		}
	}
}

func TestKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("no response", NoResponse.String())
	assert.Equal("single byte", SingleByteResult.String())
	assert.Equal("multi byte", MultiByteResponse.String())
	assert.Equal("Kind(7)", Kind(7).String())
}

func TestHex(t *testing.T) {
	assert := assert.New(t)

	data, err := ParseHex("05 0a 20")
	assert.NoError(err)
	assert.Equal([]byte{0x05, 0x0a, 0x20}, data)
	assert.Equal("05 0A 20", FormatHex(data))

	data, err = ParseHex("  0xFF\t1 ")
	assert.NoError(err)
	assert.Equal([]byte{0xff, 0x01}, data)

	_, err = ParseHex("   ")
	assert.Equal(ErrHexEmpty, err)

	_, err = ParseHex("05 zz")
	assert.Equal(ErrHexFormat("zz"), err)

	_, err = ParseHex("100")
	assert.Equal(ErrHexFormat("100"), err)
	assert.True(errors.Is(err, ErrHexFormat("")))
	assert.False(errors.Is(err, ErrOutOfRange{}))

	assert.Equal("", FormatHex(nil))
	assert.Equal("11111000", FormatBinary(0xf8))
}

package alu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// eachPair runs fn over the full 8-bit operand space.
func eachPair(fn func(a, b uint8)) {
	for a := range 256 {
		for b := range 256 {
			fn(uint8(a), uint8(b))
		}
	}
}

func TestEvaluate_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	eachPair(func(a, b uint8) {
		add, err := Evaluate(OP_ADD, a, b)
		assert.NoError(err)
		if uint8((int(a)+int(b))%256) != add {
			assert.Failf("add", "%d + %d = %d", a, b, add)
		}

		sub, err := Evaluate(OP_SUB, a, b)
		assert.NoError(err)
		if uint8(((int(a)-int(b))%256+256)%256) != sub {
			assert.Failf("sub", "%d - %d = %d", a, b, sub)
		}
	})
}

func TestEvaluate_Commutes(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []OpCode{OP_AND, OP_OR, OP_XOR} {
		eachPair(func(a, b uint8) {
			if MustEvaluate(op, a, b) != MustEvaluate(op, b, a) {
				assert.Failf("commute", "%v %d %d", op, a, b)
			}
		})
	}
}

func TestEvaluate_Nor(t *testing.T) {
	assert := assert.New(t)

	eachPair(func(a, b uint8) {
		if MustEvaluate(OP_NOR, a, b) != 255-(a|b) {
			assert.Failf("nor", "%d %d", a, b)
		}
	})
}

func TestEvaluate_Srl(t *testing.T) {
	assert := assert.New(t)

	eachPair(func(a, b uint8) {
		got := MustEvaluate(OP_SRL, a, b)
		switch {
		case b == 0:
			assert.Equal(a, got)
		case b >= 8:
			assert.Equal(uint8(0), got)
		default:
			assert.Equal(a>>b, got)
			assert.Zero(got&^(0xff>>b), "high bits must be zero filled")
		}
	})
}

func TestEvaluate_Sra(t *testing.T) {
	assert := assert.New(t)

	eachPair(func(a, b uint8) {
		got := MustEvaluate(OP_SRA, a, b)
		negative := a&0x80 != 0
		switch {
		case b == 0:
			assert.Equal(a, got)
		case b >= 8 && negative:
			assert.Equal(uint8(0xff), got)
		case b >= 8:
			assert.Equal(uint8(0), got)
		default:
			// Sign-extend to 32 bits, shift, and mask back to 8.
			wide := uint32(a)
			if negative {
				wide |= 0xffffff00
			}
			assert.Equal(uint8((wide>>b)&0xff), got)
		}
	})
}

func TestEvaluate_Table(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       OpCode
		a, b     uint8
		expected uint8
	}){
		{OP_ADD, 200, 10, 210},
		{OP_ADD, 200, 100, 44},
		{OP_SUB, 5, 10, 251},
		{OP_AND, 0xf0, 0x3c, 0x30},
		{OP_OR, 0xf0, 0x0f, 0xff},
		{OP_XOR, 0xaa, 0xff, 0x55},
		{OP_NOR, 0x00, 0x00, 0xff},
		{OP_NOR, 0xf0, 0x0c, 0x03},
		{OP_SRL, 0x80, 7, 0x01},
		{OP_SRL, 0xff, 8, 0x00},
		{OP_SRA, 128, 4, 0xf8},
		{OP_SRA, 0x80, 7, 0xff},
		{OP_SRA, 0x40, 6, 0x01},
		{OP_SRA, 0x81, 200, 0xff},
		{OP_SRA, 0x7f, 8, 0x00},
	}

	for _, entry := range table {
		got, err := Evaluate(entry.op, entry.a, entry.b)
		assert.NoError(err)
		assert.Equal(entry.expected, got, "%v %d %d", entry.op, entry.a, entry.b)
	}
}

func TestEvaluate_Unsupported(t *testing.T) {
	assert := assert.New(t)

	for code := range 256 {
		op := OpCode(code)
		_, err := Evaluate(op, 1, 2)
		if op.Registered() {
			assert.NoError(err)
		} else {
			assert.True(errors.Is(err, ErrUnsupportedOpcode(0)), "0x%02x", code)
		}
	}

	assert.Panics(func() { MustEvaluate(0xff, 0, 0) })
}

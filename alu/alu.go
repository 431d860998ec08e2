package alu

// aluFunc computes one operation on two 8-bit operands.
type aluFunc func(a, b uint8) uint8

// _model is the opcode indexed dispatch table. Nil for unregistered codes.
var _model [256]aluFunc

func init() {
	_model[OP_ADD] = func(a, b uint8) uint8 { return a + b }
	_model[OP_SUB] = func(a, b uint8) uint8 { return a - b }
	_model[OP_AND] = func(a, b uint8) uint8 { return a & b }
	_model[OP_OR] = func(a, b uint8) uint8 { return a | b }
	_model[OP_XOR] = func(a, b uint8) uint8 { return a ^ b }
	_model[OP_NOR] = func(a, b uint8) uint8 { return ^(a | b) }
	_model[OP_SRL] = srl
	_model[OP_SRA] = sra

	for _, entry := range _registry {
		if _model[entry.Op] == nil {
			panic("alu: registered opcode without a model")
		}
	}
}

// srl is a logical shift right; vacated bits are zero filled.
func srl(a, b uint8) uint8 {
	if b >= 8 {
		return 0
	}
	return a >> b
}

// sra is an arithmetic shift right of A as an 8-bit two's-complement value.
// Counts of 8 or more replicate the sign bit into every position.
func sra(a, b uint8) uint8 {
	if b >= 8 {
		b = 7
	}
	return uint8(int8(a) >> b)
}

// Evaluate returns the result the hardware must produce for op on a and b.
func Evaluate(op OpCode, a, b uint8) (result uint8, err error) {
	fn := _model[op]
	if fn == nil {
		err = ErrUnsupportedOpcode(op)
		return
	}

	result = fn(a, b)
	return
}

// MustEvaluate is Evaluate for codes known to be registered.
func MustEvaluate(op OpCode, a, b uint8) uint8 {
	result, err := Evaluate(op, a, b)
	if err != nil {
		panic(err)
	}
	return result
}

// Package alu holds the reference model of the 8-bit FPGA ALU under test.
//
// The Opcode Registry is a fixed table of the eight operations the hardware
// implements, keyed by the wire code sent in the third byte of a request
// frame. The reference model computes, bit for bit, the result the hardware
// is expected to return for a registered operation. Arithmetic wraps modulo
// 256, and SRA treats operand A as an 8-bit two's-complement value.
//
// Any other wire code is still a legal value to send ("custom" mode), but has
// no reference semantics.
package alu

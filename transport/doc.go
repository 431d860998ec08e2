// Package transport provides the byte streams a verification session runs
// over: a serial port to the FPGA board, and an in-memory Simulator that
// answers request frames with the reference model.
package transport

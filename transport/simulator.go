package transport

import (
	"github.com/ezrec/aluverify/alu"
	"github.com/ezrec/aluverify/frame"
)

// Simulator is an in-memory ALU. Every complete [A][B][OP] frame written to
// it queues one answer byte computed by the reference model; unregistered
// codes answer 0x00.
type Simulator struct {
	// Silent devices never answer.
	Silent bool
	// Extra bytes are appended to every answer.
	Extra []byte
	// Fault, if set, rewrites the reference result before it is sent.
	Fault func(req frame.Request, result uint8) uint8

	Frames []frame.Request // Every frame received.

	partial []byte
	pending []byte
	closed  bool
}

// Write feeds bytes to the simulated device.
func (sim *Simulator) Write(data []byte) (n int, err error) {
	if sim.closed {
		err = ErrClosed
		return
	}

	sim.partial = append(sim.partial, data...)
	for len(sim.partial) >= frame.RequestSize {
		var req frame.Request
		copy(req[:], sim.partial)
		sim.partial = sim.partial[frame.RequestSize:]
		sim.answer(req)
	}

	n = len(data)
	return
}

func (sim *Simulator) answer(req frame.Request) {
	sim.Frames = append(sim.Frames, req)

	if sim.Silent {
		return
	}

	result, err := alu.Evaluate(req.Op(), req.A(), req.B())
	if err != nil {
		result = 0
	}

	if sim.Fault != nil {
		result = sim.Fault(req, result)
	}

	sim.pending = append(sim.pending, result)
	sim.pending = append(sim.pending, sim.Extra...)
}

// ReadAvailable returns and clears the queued answers.
func (sim *Simulator) ReadAvailable() (data []byte, err error) {
	if sim.closed {
		err = ErrClosed
		return
	}

	data = sim.pending
	sim.pending = nil
	return
}

// Port names the simulated device.
func (sim *Simulator) Port() string {
	return "simulator"
}

// Close shuts the simulator. It cannot be reopened.
func (sim *Simulator) Close() (err error) {
	sim.closed = true
	sim.partial = nil
	sim.pending = nil
	return
}

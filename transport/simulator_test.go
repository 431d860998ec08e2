package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/aluverify/alu"
	"github.com/ezrec/aluverify/frame"
)

func TestSimulator(t *testing.T) {
	assert := assert.New(t)

	sim := &Simulator{}

	n, err := sim.Write([]byte{200, 10, 0x20})
	assert.NoError(err)
	assert.Equal(3, n)

	data, err := sim.ReadAvailable()
	assert.NoError(err)
	assert.Equal([]byte{210}, data)

	data, err = sim.ReadAvailable()
	assert.NoError(err)
	assert.Empty(data)

	assert.Equal([]frame.Request{{200, 10, 0x20}}, sim.Frames)
	assert.Equal("simulator", sim.Port())
}

func TestSimulator_Partial(t *testing.T) {
	assert := assert.New(t)

	sim := &Simulator{}

	sim.Write([]byte{128})
	sim.Write([]byte{4})
	data, _ := sim.ReadAvailable()
	assert.Empty(data)

	sim.Write([]byte{0x03, 1, 1, 0x22})
	data, _ = sim.ReadAvailable()
	assert.Equal([]byte{0xf8, 0x00}, data)
	assert.Len(sim.Frames, 2)
}

func TestSimulator_Knobs(t *testing.T) {
	assert := assert.New(t)

	silent := &Simulator{Silent: true}
	silent.Write(frame.Encode(1, 2, alu.OP_ADD).Bytes())
	data, _ := silent.ReadAvailable()
	assert.Empty(data)
	assert.Len(silent.Frames, 1)

	extra := &Simulator{Extra: []byte{0xee}}
	extra.Write(frame.Encode(1, 2, alu.OP_ADD).Bytes())
	data, _ = extra.ReadAvailable()
	assert.Equal([]byte{3, 0xee}, data)

	faulty := &Simulator{
		Fault: func(req frame.Request, result uint8) uint8 {
			if req.Op() == alu.OP_SRA {
				return req.A() >> req.B()
			}
			return result
		},
	}
	faulty.Write(frame.Encode(128, 4, alu.OP_SRA).Bytes())
	faulty.Write(frame.Encode(128, 4, alu.OP_SRL).Bytes())
	data, _ = faulty.ReadAvailable()
	assert.Equal([]byte{0x08, 0x08}, data)

	custom := &Simulator{}
	custom.Write([]byte{1, 2, 0xff})
	data, _ = custom.ReadAvailable()
	assert.Equal([]byte{0x00}, data)
}

func TestSimulator_Close(t *testing.T) {
	assert := assert.New(t)

	sim := &Simulator{}
	sim.Write([]byte{1, 2, 0x20})
	assert.NoError(sim.Close())

	_, err := sim.Write([]byte{1, 2, 0x20})
	assert.Equal(ErrClosed, err)

	_, err = sim.ReadAvailable()
	assert.Equal(ErrClosed, err)
}

package session

import (
	"time"
)

// Transport is the byte stream to the device under test.
type Transport interface {
	// Write sends bytes. There is no acknowledgement from the device.
	Write(data []byte) (n int, err error)
	// ReadAvailable returns whatever arrived since the last read,
	// possibly nothing.
	ReadAvailable() (data []byte, err error)
}

// Default delays, modelling hardware processing latency.
const (
	DEFAULT_SETTLE = 50 * time.Millisecond  // After the write, before polling.
	DEFAULT_WAIT   = 100 * time.Millisecond // Before the single read.
)

// Timing holds the fixed delays of a round trip.
type Timing struct {
	Settle time.Duration
	Wait   time.Duration
}

// DefaultTiming returns the standard bench delays.
func DefaultTiming() Timing {
	return Timing{
		Settle: DEFAULT_SETTLE,
		Wait:   DEFAULT_WAIT,
	}
}

// Sleeper blocks for a duration.
type Sleeper func(d time.Duration)

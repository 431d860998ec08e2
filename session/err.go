package session

import (
	"errors"

	"github.com/ezrec/aluverify/translate"
)

var f = translate.From

var (
	// Sequencing errors
	ErrFrameOutstanding = errors.New(f("a frame is already outstanding"))
	ErrNotSubmitted     = errors.New(f("no frame submitted"))
	ErrCompleted        = errors.New(f("session already completed"))
	ErrNoTransport      = errors.New(f("no transport"))
)

// ErrTransport wraps a failure of the underlying transport.
type ErrTransport struct {
	Op  string // "write" or "read"
	Err error
}

func (err *ErrTransport) Error() string {
	return f("transport %v: %v", err.Op, err.Err)
}

func (err *ErrTransport) Unwrap() error {
	return err.Err
}

package transport

import (
	"errors"

	"go.bug.st/serial"

	"github.com/ezrec/aluverify/translate"
)

var f = translate.From

var (
	// Transport errors
	ErrClosed = errors.New(f("transport closed"))
	ErrParity = errors.New(f("parity must be none, odd, even, mark or space"))
	ErrStop   = errors.New(f("stop bits must be 1, 1.5 or 2"))
)

// ErrOpen is returned when a port cannot be claimed. It is never retried.
type ErrOpen struct {
	Port string
	Err  error
}

func (err *ErrOpen) Error() string {
	return f("open %v: %v", err.Port, err.Err)
}

func (err *ErrOpen) Unwrap() error {
	return err.Err
}

func (err *ErrOpen) Is(target error) (ok bool) {
	_, ok = target.(*ErrOpen)
	return
}

// Guidance lists what the operator should check before trying again.
func (err *ErrOpen) Guidance() (hints []string) {
	var portErr *serial.PortError
	code := serial.PortErrorCode(-1)
	if errors.As(err.Err, &portErr) {
		code = portErr.Code()
	}

	switch code {
	case serial.PortBusy:
		hints = append(hints, f("The port is in use by another program"))
	case serial.PortNotFound:
		hints = append(hints, f("The board is connected and powered"))
	case serial.PermissionDenied:
		hints = append(hints, f("You have permission to access the port (on Linux: the dialout group, or sudo)"))
	default:
		hints = append(hints,
			f("The board is connected and powered"),
			f("The port is not in use by another program"),
			f("You have permission to access the port (on Linux: the dialout group, or sudo)"),
		)
	}

	return
}

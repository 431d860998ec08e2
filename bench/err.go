package bench

import (
	"errors"

	"github.com/ezrec/aluverify/translate"
)

var f = translate.From

var (
	ErrNoPorts = errors.New(f("no serial ports found"))
)

// ErrSyntax locates a bad line of a batch file.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrFields is returned for a batch line without exactly OP, A and B.
type ErrFields int

func (err ErrFields) Error() string {
	return f("expected 'OP A B', found %d field(s)", int(err))
}

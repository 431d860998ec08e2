package frame

import (
	"errors"

	"github.com/ezrec/aluverify/translate"
)

var f = translate.From

var (
	// Hex parsing errors
	ErrHexEmpty = errors.New(f("no bytes given"))
)

// ErrOutOfRange is returned when a frame field does not fit in a byte.
type ErrOutOfRange struct {
	Field string
	Value int
}

func (err ErrOutOfRange) Error() string {
	return f("%v value %d out of range (0-255)", err.Field, err.Value)
}

func (err ErrOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(ErrOutOfRange)
	return
}

// ErrHexFormat is returned for a word that is not a hexadecimal byte.
type ErrHexFormat string

func (err ErrHexFormat) Error() string {
	return f("'%v' is not a hexadecimal byte", string(err))
}

func (err ErrHexFormat) Is(target error) (ok bool) {
	_, ok = target.(ErrHexFormat)
	return
}

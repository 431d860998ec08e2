package expr

import (
	"errors"

	"github.com/ezrec/aluverify/translate"
)

var f = translate.From

var (
	ErrEmpty = errors.New(f("no value given"))
)

// ErrExpression is returned for input that does not evaluate to an integer.
type ErrExpression struct {
	Text string
	Err  error
}

func (err *ErrExpression) Error() string {
	if err.Err != nil {
		return f("'%v' is not a valid expression: %v", err.Text, err.Err)
	}
	return f("'%v' is not an integer", err.Text)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

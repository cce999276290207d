package prime

import (
	"errors"
	"fmt"
)

// NotIntegerMessage is what users see for a bound that is not an
// integer; it is the Error text of InputError.
const NotIntegerMessage = "Please input a positive integer."

// ErrNotInteger classifies InputError with errors.Is.
var ErrNotInteger = errors.New("bound is not an integer")

// InputError records the input a bound could not be read from.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return NotIntegerMessage
}

// Detail includes the input and the conversion failure, for logs.
func (e *InputError) Detail() string {
	return fmt.Sprintf("parse bound %q: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() []error {
	errs := []error{ErrNotInteger}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

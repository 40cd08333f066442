package fcore

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrAborted is the fault of an asynchronous computation whose goroutine
// exited through runtime.Goexit before producing a value.
var ErrAborted = errors.New("computation aborted before completion")

// ArgumentNilError is raised (as a panic) when an absent value is passed
// where a present one is required.
type ArgumentNilError struct {
	Param string
}

func (e *ArgumentNilError) Error() string {
	return fmt.Sprintf("argument %q must not be nil", e.Param)
}

// PanicError holds a recovered panic value that was not an error.
// Panics raised with an error value are captured as that error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// UnwrapError is raised when a failed outcome is unwrapped and its reason is
// not an error that could be re-raised as is.
type UnwrapError struct {
	Reason any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("unwrap of failed result: %v", e.Reason)
}

// Errors flattens a joined error into its members.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// BaseError returns the innermost error of err's cause chain. Both
// errors.Cause style causers and Unwrap chains are followed; for joined
// errors the first member is taken.
func BaseError(err error) error {
	for !IsNil(err) {
		err = errors.Cause(err)

		var next error
		switch e := err.(type) {
		case interface{ Unwrap() error }:
			next = e.Unwrap()
		case interface{ Unwrap() []error }:
			if members := Errors(err); len(members) > 0 {
				next = members[0]
			}
		}

		if IsNil(next) {
			return err
		}
		err = next
	}
	return err
}

// Recovered turns a recovered panic value into an error, keeping error
// values by identity.
func Recovered(r any, stack []byte) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r, Stack: stack}
}

package result

import (
	"fmt"

	"github.com/ib-77/fcore/pkg/fcore"
)

type Result[S, E any] struct {
	value  S
	reason E
	ok     bool
}

func Ok[S, E any](v S) Result[S, E] {
	return Result[S, E]{value: v, ok: true}
}

func Error[S, E any](reason E) Result[S, E] {
	return Result[S, E]{reason: reason}
}

// FromTuple adapts a (value, error) pair: Error(err) if err is non-nil,
// Ok(v) otherwise.
func FromTuple[S any](v S, err error) Result[S, error] {
	if err != nil {
		return Error[S](err)
	}
	return Ok[S, error](v)
}

func (r Result[S, E]) IsOk() bool {
	return r.ok
}

func (r Result[S, E]) IsError() bool {
	return !r.ok
}

// Value returns the success payload and whether r is Ok.
func (r Result[S, E]) Value() (S, bool) {
	return r.value, r.ok
}

// Reason returns the error payload and whether r is an Error.
func (r Result[S, E]) Reason() (E, bool) {
	return r.reason, !r.ok
}

func (r Result[S, E]) Unpack() (S, E, bool) {
	return r.value, r.reason, r.ok
}

// Tap calls action with the success value and returns r unchanged.
func (r Result[S, E]) Tap(action func(S)) Result[S, E] {
	if r.ok {
		action(r.value)
	}
	return r
}

// TapError calls action with the reason and returns r unchanged.
func (r Result[S, E]) TapError(action func(E)) Result[S, E] {
	if !r.ok {
		action(r.reason)
	}
	return r
}

func (r Result[S, E]) OrElse(fallback S) S {
	if r.ok {
		return r.value
	}
	return fallback
}

// GetOrPanic returns the success value. On Error it panics with the reason
// itself when the reason is an error, otherwise with *fcore.UnwrapError.
func (r Result[S, E]) GetOrPanic() S {
	if r.ok {
		return r.value
	}
	if err, isErr := any(r.reason).(error); isErr {
		panic(err)
	}
	panic(&fcore.UnwrapError{Reason: r.reason})
}

func (r Result[S, E]) Equal(other Result[S, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return fcore.Equal(r.value, other.value)
	}
	return fcore.Equal(r.reason, other.reason)
}

func (r Result[S, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Error(%v)", r.reason)
}

package option

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"github.com/ib-77/fcore/pkg/fcore"
)

// ErrNoValue is raised by OrPanic on None when no error factory is given.
var ErrNoValue = errors.New("option: no value present")

// Option holds either a value (Some) or nothing (None). The zero value is
// None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v. It panics with *fcore.ArgumentNilError if v is nil.
func Some[T any](v T) Option[T] {
	if fcore.IsNil(v) {
		panic(&fcore.ArgumentNilError{Param: "value"})
	}
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of is Some for present values and None for nil ones.
func Of[T any](v T) Option[T] {
	if fcore.IsNil(v) {
		return None[T]()
	}
	return Option[T]{value: v, some: true}
}

// FromPtr dereferences p, None if p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// FromTuple adapts the comma-ok idiom.
func FromTuple[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Of(v)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Filter keeps the value only if pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Tap calls action with the value on Some and returns o itself.
func (o Option[T]) Tap(action func(T)) Option[T] {
	if o.some {
		action(o.value)
	}
	return o
}

func (o Option[T]) OrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// OrElseGet is OrElse with a lazily computed fallback.
func (o Option[T]) OrElseGet(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

// OrPanic returns the value or panics with the error built by errFactory
// (ErrNoValue when errFactory is nil).
func (o Option[T]) OrPanic(errFactory func() error) T {
	if o.some {
		return o.value
	}
	if errFactory == nil {
		panic(ErrNoValue)
	}
	panic(errFactory())
}

// All yields the value once on Some and nothing on None. The sequence can be
// ranged over any number of times.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

func (o Option[T]) ToSlice() []T {
	if o.some {
		return []T{o.value}
	}
	return []T{}
}

// Equal compares payloads with == where possible, or with the payload's own
// Equal method.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.some != other.some {
		return false
	}
	return !o.some || fcore.Equal(o.value, other.value)
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

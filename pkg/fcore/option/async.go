package option

import (
	"github.com/ib-77/fcore/pkg/fcore"
	"github.com/ib-77/fcore/pkg/fcore/async"
)

// MapAsync is Map for an asynchronous f. On None f is not called and the
// returned future is already resolved.
func MapAsync[T, U any](o Option[T], f func(T) *async.Future[U]) *async.Future[Option[U]] {
	if !o.some {
		return async.Resolved(None[U]())
	}
	return async.Then(f(o.value), Of[U])
}

func BindAsync[T, U any](o Option[T], f func(T) *async.Future[Option[U]]) *async.Future[Option[U]] {
	if !o.some {
		return async.Resolved(None[U]())
	}
	return f(o.value)
}

// TapAsync awaits action on Some and then resolves to o.
func TapAsync[T any](o Option[T], action func(T) *async.Future[fcore.Unit]) *async.Future[Option[T]] {
	if !o.some {
		return async.Resolved(o)
	}
	return async.Then(action(o.value), func(fcore.Unit) Option[T] {
		return o
	})
}

// OrElseAsync resolves to the value on Some, to fallback's value otherwise.
func OrElseAsync[T any](o Option[T], fallback func() *async.Future[T]) *async.Future[T] {
	if o.some {
		return async.Resolved(o.value)
	}
	return fallback()
}

package result

import (
	"github.com/ib-77/fcore/pkg/fcore"
	"github.com/ib-77/fcore/pkg/fcore/async"
)

// MatchAsync awaits exactly one of onOk and onError.
func MatchAsync[S, E, R any](r Result[S, E],
	onOk func(S) *async.Future[R],
	onError func(E) *async.Future[R]) *async.Future[R] {

	if r.ok {
		return onOk(r.value)
	}
	return onError(r.reason)
}

// MatchOkAsync is MatchAsync with a synchronous error handler.
func MatchOkAsync[S, E, R any](r Result[S, E],
	onOk func(S) *async.Future[R],
	onError func(E) R) *async.Future[R] {

	if r.ok {
		return onOk(r.value)
	}
	return async.Resolved(onError(r.reason))
}

// MatchErrorAsync is MatchAsync with a synchronous success handler.
func MatchErrorAsync[S, E, R any](r Result[S, E],
	onOk func(S) R,
	onError func(E) *async.Future[R]) *async.Future[R] {

	if r.ok {
		return async.Resolved(onOk(r.value))
	}
	return onError(r.reason)
}

func MapAsync[S, E, U any](r Result[S, E], f func(S) *async.Future[U]) *async.Future[Result[U, E]] {
	if !r.ok {
		return async.Resolved(Error[U](r.reason))
	}
	return async.Then(f(r.value), Ok[U, E])
}

func BindAsync[S, E, U any](r Result[S, E], f func(S) *async.Future[Result[U, E]]) *async.Future[Result[U, E]] {
	if !r.ok {
		return async.Resolved(Error[U](r.reason))
	}
	return f(r.value)
}

func TapAsync[S, E any](r Result[S, E], action func(S) *async.Future[fcore.Unit]) *async.Future[Result[S, E]] {
	if !r.ok {
		return async.Resolved(r)
	}
	return async.Then(action(r.value), func(fcore.Unit) Result[S, E] {
		return r
	})
}

func TapErrorAsync[S, E any](r Result[S, E], action func(E) *async.Future[fcore.Unit]) *async.Future[Result[S, E]] {
	if r.ok {
		return async.Resolved(r)
	}
	return async.Then(action(r.reason), func(fcore.Unit) Result[S, E] {
		return r
	})
}

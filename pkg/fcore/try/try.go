package try

import (
	"runtime/debug"

	"github.com/ib-77/fcore/pkg/fcore"
	"github.com/ib-77/fcore/pkg/fcore/async"
	"github.com/ib-77/fcore/pkg/fcore/result"
)

// Attempt is the outcome of a computation run through this package.
type Attempt[T any] = result.Result[T, error]

func Run(action func()) Attempt[bool] {
	return Call(func() (bool, error) {
		action()
		return true, nil
	})
}

// Do is Run for actions that report failure through their error return.
func Do(action func() error) Attempt[bool] {
	return Call(func() (bool, error) {
		return true, action()
	})
}

func RunFunc[T any](fn func() T) Attempt[T] {
	return Call(func() (T, error) {
		return fn(), nil
	})
}

// Call runs fn and captures either its error or a panic raised inside it.
func Call[T any](fn func() (T, error)) (res Attempt[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = result.Error[T](fcore.Recovered(r, debug.Stack()))
		}
	}()

	v, err := fn()
	return result.FromTuple(v, err)
}

// RunAsync captures a fault raised while starting action as well as one that
// faults the future it returns.
func RunAsync(action func() *async.Future[fcore.Unit]) *async.Future[Attempt[bool]] {
	return settle(start(action), func(fcore.Unit) bool {
		return true
	})
}

func RunFuncAsync[T any](fn func() *async.Future[T]) *async.Future[Attempt[T]] {
	return settle(start(fn), func(v T) T {
		return v
	})
}

// start calls fn and rejects a nil future the same way for every entry point.
func start[T any](fn func() *async.Future[T]) Attempt[*async.Future[T]] {
	return Call(func() (*async.Future[T], error) {
		future := fn()
		if future == nil {
			return nil, &fcore.ArgumentNilError{Param: "future"}
		}
		return future, nil
	})
}

// settle waits for the started future and converts its fault, keeping the
// stack captured by the producing goroutine.
func settle[T, U any](started Attempt[*async.Future[T]], done func(T) U) *async.Future[Attempt[U]] {
	future, err, ok := started.Unpack()
	if !ok {
		return async.Resolved(result.Error[U](err))
	}

	return async.Go(func() Attempt[U] {
		<-future.Done()
		if fault, faulted := future.Fault(); faulted {
			return result.Error[U](fcore.Recovered(fault, future.Stack()))
		}
		return result.Ok[U, error](done(future.Await()))
	})
}

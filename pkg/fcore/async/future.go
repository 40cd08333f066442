package async

import (
	"runtime/debug"

	"github.com/ib-77/fcore/pkg/fcore"
)

// Future is the eventual result of an asynchronous computation.
type Future[T any] struct {
	done    chan struct{}
	value   T
	fault   any
	faulted bool
	stack   []byte
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future that is already complete with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.value = v
	close(f.done)
	return f
}

// Go runs fn on a new goroutine. A panic inside fn faults the future instead
// of crashing the process.
func Go[T any](fn func() T) *Future[T] {
	f := newFuture[T]()
	go f.run(fn)
	return f
}

// Then runs fn with the value of f once it is resolved. A faulted f faults
// the returned future with the same panic value and fn is not called.
func Then[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return Go(func() U {
		return fn(f.Await())
	})
}

// ThenAsync is Then for continuations that are asynchronous themselves.
func ThenAsync[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return Go(func() U {
		return fn(f.Await()).Await()
	})
}

// Await blocks until f is resolved and returns its value. If the producing
// computation panicked, Await panics with the same value.
func (f *Future[T]) Await() T {
	<-f.done
	if f.faulted {
		panic(f.fault)
	}
	return f.value
}

// Done is closed once f is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Faulted reports whether f resolved with a panic. It blocks until resolution.
func (f *Future[T]) Faulted() bool {
	<-f.done
	return f.faulted
}

// Fault returns the panic value f resolved with, if any. It blocks until
// resolution.
func (f *Future[T]) Fault() (any, bool) {
	<-f.done
	return f.fault, f.faulted
}

// Stack returns the goroutine stack captured when f faulted, nil otherwise.
func (f *Future[T]) Stack() []byte {
	<-f.done
	return f.stack
}

// run resolves f with the outcome of fn. A producer that leaves through
// runtime.Goexit faults f with fcore.ErrAborted.
func (f *Future[T]) run(fn func() T) {
	completed := false
	defer close(f.done)
	defer func() {
		r := recover()
		switch {
		case r != nil:
			f.fault = r
		case !completed:
			f.fault = fcore.ErrAborted
		default:
			return
		}
		f.faulted = true
		f.stack = debug.Stack()
	}()

	f.value = fn()
	completed = true
}

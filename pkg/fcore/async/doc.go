// Package async provides Future[T], the single-assignment value the
// asynchronous combinators of option, result and try hand back.
//
// A Future is resolved exactly once, either with a value or with a fault (a
// panic raised while producing the value). Await blocks until resolution and
// can be called any number of times; a faulted future re-raises the original
// panic value on every Await.
//
// Key operations:
// - Resolved: an already completed future, no goroutine involved
// - Go: run a function on its own goroutine
// - Then/ThenAsync: chain a continuation after resolution
// - Await/Done: wait for the value or for the completion signal
//
// There is no cancellation; a computation that needs it should take a
// context itself.
package async

// Package try runs fallible code and captures its fault as a value.
//
// A fault is either an error returned by the wrapped function or a panic
// raised inside it. Errors are captured as they are, never wrapped, so the
// reason of the resulting Attempt is the very value the computation produced
// and can be matched with errors.Is/errors.As or a type switch. Panics with a
// non-error value become *fcore.PanicError.
//
// Key operations:
// - Run/Do: actions, Ok(true) on completion
// - RunFunc/Call: functions, Ok(value) on completion
// - RunAsync/RunFuncAsync: asynchronous computations returning a Future
package try

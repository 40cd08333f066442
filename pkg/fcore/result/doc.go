// Package result implements Result[S, E], the outcome of a computation that
// either succeeded with a value (Ok) or failed with a reason (Error).
//
// The error type is a free parameter: it can be an error, a string or a
// domain enum. Results are immutable and compare structurally.
//
// Highlights:
// - Ok/Error/FromTuple: construct a Result
// - Match: reduce to a concrete value via success/error handlers
// - Map/MapFailure/Bind: act on one branch, pass the other through
// - Tap/TapError: side effects without changing the outcome
// - GetOrPanic: fail fast at the edge of a result-based flow
// - MatchAsync/MatchOkAsync/MatchErrorAsync and MapAsync/BindAsync/
//   TapAsync/TapErrorAsync: asynchronous handlers
package result

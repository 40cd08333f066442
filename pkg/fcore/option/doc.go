// Package option implements Option[T], a value that is either Some(value) or
// None.
//
// Options are immutable values. Equality is structural: two Somes are equal
// when their payloads are, every None of a type equals every other, and a
// Some never equals a None.
//
// Key operations:
// - Some/None/Of/FromPtr/FromTuple: construct an Option
// - Match: total fold over both cases
// - Map/Bind/Filter/Tap: combinators that only act on Some
// - OrElse/OrElseGet/OrPanic: leave the Option model
// - ToResult: convert None into an error built lazily
// - Values/Choose: keep the Somes of a slice, in order
// - MapAsync/BindAsync/TapAsync/OrElseAsync: the same with async callbacks
package option

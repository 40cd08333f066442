// Package pattern offers boolean predicates over options and results for
// places where Match is awkward, such as assertions and filters.
package pattern

import (
	"github.com/ib-77/fcore/pkg/fcore"
	"github.com/ib-77/fcore/pkg/fcore/try"
)

func IsSome(o fcore.Optional) bool {
	return o.IsSome()
}

func IsNone(o fcore.Optional) bool {
	return o.IsNone()
}

func IsOk(r fcore.Fallible) bool {
	return r.IsOk()
}

func IsError(r fcore.Fallible) bool {
	return r.IsError()
}

// IsSuccess reports whether a captured computation completed normally.
func IsSuccess[T any](a try.Attempt[T]) bool {
	return a.IsOk()
}

// IsFailure reports whether a captured computation faulted.
func IsFailure[T any](a try.Attempt[T]) bool {
	return a.IsError()
}

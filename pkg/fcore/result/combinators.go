package result

import (
	"hash/maphash"

	"github.com/ib-77/fcore/pkg/fcore"
)

const (
	okTag    byte = 1
	errorTag byte = 2
)

// Match calls exactly one of onOk and onError.
func Match[S, E, R any](r Result[S, E], onOk func(S) R, onError func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onError(r.reason)
}

func Map[S, E, U any](r Result[S, E], f func(S) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Error[U](r.reason)
}

func MapFailure[S, E, F any](r Result[S, E], f func(E) F) Result[S, F] {
	if r.ok {
		return Ok[S, F](r.value)
	}
	return Error[S](f(r.reason))
}

func Bind[S, E, U any](r Result[S, E], f func(S) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Error[U](r.reason)
}

// Hash combines a variant tag with the hash of the active payload. It agrees
// with Equal, see fcore.WriteHash.
func Hash[S, E comparable](seed maphash.Seed, r Result[S, E]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	if r.ok {
		_ = h.WriteByte(okTag)
		fcore.WriteHash(&h, r.value)
	} else {
		_ = h.WriteByte(errorTag)
		fcore.WriteHash(&h, r.reason)
	}
	return h.Sum64()
}

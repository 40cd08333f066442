package option

import (
	"hash/maphash"

	"github.com/samber/lo"

	"github.com/ib-77/fcore/pkg/fcore"
	"github.com/ib-77/fcore/pkg/fcore/result"
)

const (
	noneHash uint64 = 0
	someTag  byte   = 1
)

// Match calls exactly one of onSome and onNone.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Of(f(o.value))
	}
	return None[U]()
}

func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.some {
		return f(o.value)
	}
	return None[U]()
}

// ToResult converts Some(v) into Ok(v) and None into Error(errFactory()).
// errFactory is only called for None.
func ToResult[T, E any](o Option[T], errFactory func() E) result.Result[T, E] {
	if o.some {
		return result.Ok[T, E](o.value)
	}
	return result.Error[T](errFactory())
}

// Values returns the payloads of the Somes in opts, in order.
func Values[T any](opts []Option[T]) []T {
	return lo.FilterMap(opts, func(o Option[T], _ int) (T, bool) {
		return o.Get()
	})
}

// Choose applies f to every item and keeps the Some results, in order.
func Choose[T, U any](items []T, f func(T) Option[U]) []U {
	return lo.FilterMap(items, func(item T, _ int) (U, bool) {
		return f(item).Get()
	})
}

// Hash combines a variant tag with the payload hash and agrees with Equal:
// see fcore.WriteHash for payloads with their own equality. Every None hashes
// to the same value.
func Hash[T comparable](seed maphash.Seed, o Option[T]) uint64 {
	if !o.some {
		return noneHash
	}

	var h maphash.Hash
	h.SetSeed(seed)
	_ = h.WriteByte(someTag)
	fcore.WriteHash(&h, o.value)
	return h.Sum64()
}

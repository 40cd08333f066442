package fcore

import (
	"hash/maphash"
	"reflect"
)

// Hasher is implemented by payloads that define their own equality and want
// options and results holding them to hash in agreement with it.
type Hasher interface {
	Hash(seed maphash.Seed) uint64
}

// WriteHash adds v to h so that values Equal reports as equal write the same
// bytes. Hasher payloads write their own hash. Payloads with an Equal(T) bool
// method but no Hasher, and values that == cannot compare (a slice behind an
// interface), write nothing: they only get the hash of the surrounding variant.
func WriteHash[T comparable](h *maphash.Hash, v T) {
	av := any(v)
	if hasher, ok := av.(Hasher); ok {
		maphash.WriteComparable(h, hasher.Hash(h.Seed()))
		return
	}
	if _, ok := av.(interface{ Equal(T) bool }); ok {
		return
	}
	if av != nil && !comparableValue(reflect.ValueOf(av)) {
		return
	}
	maphash.WriteComparable(h, v)
}

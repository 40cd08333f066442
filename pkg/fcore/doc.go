// Package fcore is the root of a small algebraic-type library: optional values
// (package option), fallible outcomes (package result), a fault-capturing
// adapter (package try) and their asynchronous counterparts (package async).
//
// The root package holds what every sub-package shares: the Unit marker, the
// misuse error types raised when an invariant is broken, nil detection and
// error-chain helpers.
package fcore

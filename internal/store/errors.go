package store

import "errors"

// Sentinel errors compared by identity (errors.Is) at call sites, the
// way the teacher's domain package compares err.Error() against a
// constant string — these are the Go-idiomatic equivalent.
var (
	// ErrMissingRequiredArg is returned when a mandatory argument
	// (namespace and/or key, depending on the operation) is absent.
	ErrMissingRequiredArg = errors.New("missing required argument")

	// ErrBadInput is returned when key normalization fails (invalid
	// UTF-8 or an unparseable locale tag).
	ErrBadInput = errors.New("bad input: normalization failed")

	// ErrNamespaceNotFound is returned by decrement when the target
	// namespace has never been created. delete and nuke treat an
	// absent namespace as a silent no-op instead, for idempotence.
	ErrNamespaceNotFound = errors.New("namespace not found")

	// ErrKeyNotFound is returned by decrement when no entry matches
	// the given key within an existing namespace.
	ErrKeyNotFound = errors.New("key not found")
)

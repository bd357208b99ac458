// Package owner provides two ownership handles over a single heap value.
//
// Unique[T] is the sole owner of its value. It can hand the value on
// (Move, MoveFrom, Release, Share) but never duplicate it. Shared[T]
// is one of many co-owners that track themselves through a shared
// counter; the value is released when the last co-owner lets go.
//
// Go has no destructors, so "destroying" a handle means calling Close
// (usually deferred). Releasing goes through memory.Free, which emits
// a release event to the installed memory.Notifier and zeroes the value.
//
// Dereferencing an empty handle panics with ErrEmpty instead of
// returning a nil pointer. Handles must not be copied by value: go vet
// flags copies, and any method called on a copy panics with ErrCopied.
//
// None of the types here are safe for concurrent use, including
// separate Shared handles that alias the same value.
package owner

package owner

import "smartptr/infra/memory"

// Unique exclusively owns at most one *T. The zero value is an empty
// handle ready to use.
type Unique[T any] struct {
	_    noCopy
	self *Unique[T]
	ptr  *T
}

// NewUnique takes ownership of p. p may be nil.
// The caller must not release p or hand it to another owner.
func NewUnique[T any](p *T) *Unique[T] {
	u := &Unique[T]{ptr: p}
	u.self = u
	return u
}

func (u *Unique[T]) check() {
	if u.self == nil {
		u.self = u
		return
	}
	if u.self != u {
		fail[T]("Unique", ErrCopied)
	}
}

// Move hands the value to a new handle and leaves u empty.
func (u *Unique[T]) Move() *Unique[T] {
	return NewUnique(u.Release())
}

// MoveFrom releases u's current value, then takes src's value and
// empties src. u.MoveFrom(u) does nothing; a nil src counts as empty.
func (u *Unique[T]) MoveFrom(src *Unique[T]) {
	u.check()
	if src == u {
		return
	}
	var p *T
	if src != nil {
		p = src.Release()
	}
	u.Reset()
	u.ptr = p
}

// Deref returns the owned value. It panics with ErrEmpty if u is empty.
func (u *Unique[T]) Deref() *T {
	u.check()
	if u.ptr == nil {
		fail[T]("Unique", ErrEmpty)
	}
	return u.ptr
}

// Value returns a copy of the owned value. It panics with ErrEmpty if u is empty.
func (u *Unique[T]) Value() T {
	return *u.Deref()
}

// Get returns the owned pointer without giving up ownership, or nil.
func (u *Unique[T]) Get() *T {
	u.check()
	return u.ptr
}

func (u *Unique[T]) Empty() bool {
	return u.Get() == nil
}

// Release gives up ownership without freeing and returns the pointer.
// The caller becomes responsible for it.
func (u *Unique[T]) Release() *T {
	u.check()
	p := u.ptr
	u.ptr = nil
	return p
}

// Reset frees the owned value, if any, and leaves u empty.
func (u *Unique[T]) Reset() {
	memory.Free(u.Release(), memory.Exclusive)
}

// Share converts u into a Shared with a use count of one. u is left empty.
func (u *Unique[T]) Share() *Shared[T] {
	return NewShared(u.Release())
}

// Close is Reset. It always returns nil.
func (u *Unique[T]) Close() error {
	u.Reset()
	return nil
}

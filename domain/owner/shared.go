package owner

import "smartptr/infra/memory"

// Shared is one co-owner of a *T. Every Shared aliasing the same value
// holds the same counter, which always equals the number of those
// handles. The zero value is an empty handle with no counter.
type Shared[T any] struct {
	_     noCopy
	self  *Shared[T]
	ptr   *T
	count *int
}

// NewShared takes ownership of p with a fresh counter set to one.
// A nil p still gets a counter, so UseCount reports 1.
func NewShared[T any](p *T) *Shared[T] {
	s := &Shared[T]{ptr: p, count: new(int)}
	*s.count = 1
	s.self = s
	return s
}

func (s *Shared[T]) check() {
	if s.self == nil {
		s.self = s
		return
	}
	if s.self != s {
		fail[T]("Shared", ErrCopied)
	}
}

func (s *Shared[T]) acquire() {
	if s.count != nil {
		*s.count++
	}
}

// drop detaches s from its value and counter. The last co-owner to
// drop frees the value; the counter goes with it.
func (s *Shared[T]) drop() {
	p, c := s.ptr, s.count
	s.ptr, s.count = nil, nil
	if c == nil {
		return
	}
	*c--
	if *c == 0 {
		memory.Free(p, memory.Shared)
	}
}

// Clone returns a new co-owner of s's value.
func (s *Shared[T]) Clone() *Shared[T] {
	s.check()
	c := &Shared[T]{ptr: s.ptr, count: s.count}
	c.self = c
	c.acquire()
	return c
}

// Assign makes s a co-owner of src's value, first dropping whatever s
// held. s.Assign(s) does nothing; a nil src is the same as Reset.
func (s *Shared[T]) Assign(src *Shared[T]) {
	s.check()
	if src == s {
		return
	}
	if src == nil {
		s.drop()
		return
	}
	src.check()
	s.drop()
	s.ptr, s.count = src.ptr, src.count
	s.acquire()
}

// Reset drops s's share and leaves it empty with no counter.
func (s *Shared[T]) Reset() {
	s.check()
	s.drop()
}

// Deref returns the shared value. It panics with ErrEmpty if s is empty.
func (s *Shared[T]) Deref() *T {
	s.check()
	if s.ptr == nil {
		fail[T]("Shared", ErrEmpty)
	}
	return s.ptr
}

func (s *Shared[T]) Value() T {
	return *s.Deref()
}

// Get returns the shared pointer without touching the count, or nil.
func (s *Shared[T]) Get() *T {
	s.check()
	return s.ptr
}

// UseCount reports how many handles share s's value, or 0 when s has no counter.
func (s *Shared[T]) UseCount() int {
	s.check()
	if s.count == nil {
		return 0
	}
	return *s.count
}

// Close is Reset. It always returns nil.
func (s *Shared[T]) Close() error {
	s.Reset()
	return nil
}

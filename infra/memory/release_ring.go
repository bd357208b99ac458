package memory

import (
	"fmt"
	"sync/atomic"

	"fortio.org/safecast"
)

// ReleaseRing is an SPSC ring of recent release events. As a
// Notifier it keeps the newest Cap() events, dropping the oldest.
type ReleaseRing struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []Event
	mask  uint64
}

// NewReleaseRing allocates a ring; size must be a non-zero power of two.
func NewReleaseRing(size uint64) *ReleaseRing {
	if size == 0 || size&(size-1) != 0 {
		panic("ReleaseRing size must be power of two")
	}
	return &ReleaseRing{
		buf:  make([]Event, size),
		mask: size - 1,
	}
}

// Enqueue adds an event; returns false if full.
func (r *ReleaseRing) Enqueue(ev Event) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = ev
	atomic.StoreUint64(&r.head, h+1)
	return true
}

// Dequeue removes the oldest event.
func (r *ReleaseRing) Dequeue() (Event, bool) {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return Event{}, false
	}
	ev := r.buf[t&r.mask]
	r.buf[t&r.mask] = Event{}
	atomic.StoreUint64(&r.tail, t+1)
	return ev, true
}

func (r *ReleaseRing) Released(ev Event) {
	if r.Enqueue(ev) {
		return
	}
	r.Dequeue()
	r.Enqueue(ev)
}

// Snapshot copies the buffered events oldest first without consuming them.
func (r *ReleaseRing) Snapshot() []Event {
	t := atomic.LoadUint64(&r.tail)
	h := atomic.LoadUint64(&r.head)
	out := make([]Event, 0, h-t)
	for i := t; i != h; i++ {
		out = append(out, r.buf[i&r.mask])
	}
	return out
}

func (r *ReleaseRing) Len() int {
	n, err := safecast.Conv[int](atomic.LoadUint64(&r.head) - atomic.LoadUint64(&r.tail))
	if err != nil {
		panic(fmt.Errorf("release ring length overflow: %w", err))
	}
	return n
}

func (r *ReleaseRing) Cap() int { return len(r.buf) }

func (r *ReleaseRing) IsFull() bool { return r.Len() == r.Cap() }

func (r *ReleaseRing) IsEmpty() bool {
	return atomic.LoadUint64(&r.head) == atomic.LoadUint64(&r.tail)
}

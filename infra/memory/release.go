package memory

import (
	"fmt"
	"reflect"
	"unsafe"

	"smartptr/infra/sequence"
)

// Kind identifies which ownership model released an allocation.
type Kind uint8

const (
	Exclusive Kind = iota + 1
	Shared
)

func (k Kind) String() string {
	switch k {
	case Exclusive:
		return "exclusive"
	case Shared:
		return "shared"
	default:
		return "unknown"
	}
}

// Event describes one released allocation.
type Event struct {
	Seq  uint64
	Addr uintptr
	Type string
	Kind Kind
}

func (e Event) String() string {
	return fmt.Sprintf("#%d %s %s at %#x", e.Seq, e.Kind, e.Type, e.Addr)
}

var (
	releases = sequence.New(0)
	notifier Notifier = discard{}
)

// SetNotifier installs n as the release observer and returns a func
// that puts the previous one back. A nil n discards events.
func SetNotifier(n Notifier) (restore func()) {
	prev := notifier
	if n == nil {
		n = discard{}
	}
	notifier = n
	return func() { notifier = prev }
}

// LastSeq returns the sequence number of the most recent release.
func LastSeq() uint64 {
	return releases.Current()
}

// AddressOf returns the address of the allocation p points to.
func AddressOf[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

// Free releases the allocation behind p: the notifier sees the event
// first, then *p is reset to the zero value of T so nothing it
// referenced stays reachable through it. Free(nil) reports false and
// emits nothing.
func Free[T any](p *T, kind Kind) bool {
	if p == nil {
		return false
	}
	notifier.Released(Event{
		Seq:  releases.Next(),
		Addr: AddressOf(p),
		Type: reflect.TypeOf((*T)(nil)).Elem().String(),
		Kind: kind,
	})
	var zero T
	*p = zero
	return true
}

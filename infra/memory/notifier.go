package memory

import "log"

// Notifier observes released allocations.
type Notifier interface {
	Released(Event)
}

// NotifierFunc adapts a plain func to Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Released(ev Event) { f(ev) }

type discard struct{}

func (discard) Released(Event) {}

type multi []Notifier

func (m multi) Released(ev Event) {
	for _, n := range m {
		n.Released(ev)
	}
}

// Multi fans every event out to each non-nil notifier in order.
func Multi(ns ...Notifier) Notifier {
	out := make(multi, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// LogNotifier writes one line per release.
type LogNotifier struct {
	L *log.Logger
}

// NewLogNotifier logs to l, or to the standard logger when l is nil.
func NewLogNotifier(l *log.Logger) *LogNotifier {
	if l == nil {
		l = log.Default()
	}
	return &LogNotifier{L: l}
}

func (n *LogNotifier) Released(ev Event) {
	n.L.Printf("[memory] freeing %s at %#x (%s, #%d)", ev.Type, ev.Addr, ev.Kind, ev.Seq)
}

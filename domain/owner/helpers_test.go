package owner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"smartptr/infra/memory"
)

// releases records every release event while the test runs.
type releases struct {
	events []memory.Event
}

func (r *releases) Released(ev memory.Event) { r.events = append(r.events, ev) }

// count returns how many times addr was released.
func (r *releases) count(addr uintptr) int {
	n := 0
	for _, ev := range r.events {
		if ev.Addr == addr {
			n++
		}
	}
	return n
}

func watch(t *testing.T) *releases {
	t.Helper()
	r := &releases{}
	t.Cleanup(memory.SetNotifier(r))
	return r
}

func intp(v int) *int { return &v }

func panicErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	f()
	return nil
}

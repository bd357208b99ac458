package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseRingBasic(t *testing.T) {
	r := NewReleaseRing(4)
	e1 := Event{Seq: 1}
	e2 := Event{Seq: 2}

	require.True(t, r.Enqueue(e1))
	require.True(t, r.Enqueue(e2))
	assert.Equal(t, 2, r.Len())

	got, ok := r.Dequeue()
	require.True(t, ok)
	assert.Equal(t, e1, got)

	got, ok = r.Dequeue()
	require.True(t, ok)
	assert.Equal(t, e2, got)

	_, ok = r.Dequeue()
	assert.False(t, ok)
	assert.True(t, r.IsEmpty())
}

func TestReleaseRingFull(t *testing.T) {
	r := NewReleaseRing(2)
	assert.True(t, r.Enqueue(Event{Seq: 1}))
	assert.True(t, r.Enqueue(Event{Seq: 2}))
	assert.True(t, r.IsFull())
	assert.False(t, r.Enqueue(Event{Seq: 3}))
}

func TestReleaseRingDropsOldest(t *testing.T) {
	r := NewReleaseRing(2)
	for i := uint64(1); i <= 5; i++ {
		r.Released(Event{Seq: i})
	}

	snap := r.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, uint64(4), snap[0].Seq)
	assert.Equal(t, uint64(5), snap[1].Seq)
	assert.Equal(t, 2, r.Len(), "snapshot must not consume")
}

func TestReleaseRingAsNotifier(t *testing.T) {
	r := NewReleaseRing(8)
	defer SetNotifier(r)()

	p := new(int)
	Free(p, Shared)

	snap := r.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, AddressOf(p), snap[0].Addr)
}

func TestNewReleaseRingRejectsBadSize(t *testing.T) {
	assert.Panics(t, func() { NewReleaseRing(3) })
	assert.Panics(t, func() { NewReleaseRing(0) })
	assert.NotPanics(t, func() { NewReleaseRing(1) })
}

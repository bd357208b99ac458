package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartptr/domain/owner"
	"smartptr/infra/memory"
)

func TestReleaseCollectorCountsKinds(t *testing.T) {
	c := NewReleaseCollector()
	defer memory.SetNotifier(c)()

	u := owner.NewUnique(new(int))
	u.Reset()

	a := owner.NewShared(new(int))
	b := a.Clone()
	a.Reset()
	assert.Equal(t, 0.0, testutil.ToFloat64(c.releases.WithLabelValues("shared")))
	b.Reset()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.releases.WithLabelValues("exclusive")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.releases.WithLabelValues("shared")))
	assert.Equal(t, float64(memory.LastSeq()), testutil.ToFloat64(c.lastSeq))
}

func TestReleaseCollectorRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewReleaseCollector()
	require.NoError(t, c.Register(reg))
	assert.Error(t, c.Register(reg), "second registration must collide")

	c.Released(memory.Event{Seq: 7, Kind: memory.Exclusive})

	expected := `
# HELP smartptr_releases_total Total allocations released by owner handles
# TYPE smartptr_releases_total counter
smartptr_releases_total{kind="exclusive"} 1
smartptr_releases_total{kind="shared"} 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "smartptr_releases_total"))
}

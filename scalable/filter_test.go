package scalable

import (
	"fmt"
	"testing"

	"github.com/forestrie/go-fastbloom/bloom"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elem(i int) []byte {
	return []byte(fmt.Sprintf("element-%09d", i))
}

func newTestFilter(t *testing.T, cfg Config, opts ...Option) *Filter {
	t.Helper()
	f, err := New(cfg, opts...)
	require.NoError(t, err)
	return f
}

func TestNewFilterHasOneEmptyLayer(t *testing.T) {
	f := newTestFilter(t, Config{ErrorRate: 0.01, InitialCapacity: 100})
	require.Equal(t, 1, f.NumLayers())
	require.Zero(t, f.Count())
	require.False(t, f.Include([]byte("anything")))
	require.NotEqual(t, uuid.Nil, f.ID())
}

func TestFilterConcreteScenario(t *testing.T) {
	f := newTestFilter(t, Config{ErrorRate: 0.01, InitialCapacity: 4})

	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, f.AddString(s))
	}
	require.Equal(t, 1, f.NumLayers())
	require.True(t, f.layers[0].IsFull())
	require.Equal(t, uint64(4), f.layers[0].Count())

	require.NoError(t, f.AddString("e"))
	require.Equal(t, 2, f.NumLayers())
	require.Equal(t, uint64(8), f.layers[1].Capacity())
	require.Equal(t, uint64(1), f.layers[1].Count())
	require.Equal(t, uint64(5), f.Count())

	require.True(t, f.IncludeString("a"))
	require.True(t, f.IncludeString("e"))
	require.False(t, f.IncludeString("z"))
}

func TestFilterGrowth(t *testing.T) {
	f := newTestFilter(t, Config{ErrorRate: 0.01, InitialCapacity: 100})
	for i := 0; i < 100; i++ {
		require.NoError(t, f.Add(elem(i)))
	}
	require.Equal(t, 1, f.NumLayers())

	require.NoError(t, f.Add(elem(100)))
	require.Equal(t, 2, f.NumLayers())

	s := f.Stats()
	require.Equal(t, uint64(200), s.Layers[1].Capacity)
	require.InDelta(t, LayerErrorRate(0.01, 0.85, 1), s.Layers[1].ErrorRate, 1e-18)
	require.Less(t, s.Layers[1].ErrorRate, s.Layers[0].ErrorRate)
}

func TestFilterOnlyNewestLayerIsWritten(t *testing.T) {
	f := newTestFilter(t, Config{ErrorRate: 0.01, InitialCapacity: 10})
	for i := 0; i < 1000; i++ {
		require.NoError(t, f.Add(elem(i)))
	}
	for i, l := range f.layers[:len(f.layers)-1] {
		require.Equal(t, l.Capacity(), l.Count(), "layer %d", i)
	}
	require.LessOrEqual(t, f.active().Count(), f.active().Capacity())
}

func TestFilterNoFalseNegatives(t *testing.T) {
	f := newTestFilter(t, Config{ErrorRate: 0.001, InitialCapacity: 64})
	const n = 20000
	for i := 0; i < n; i++ {
		require.NoError(t, f.Add(elem(i)))
		// Each element stays visible through every later growth.
		if i%997 == 0 {
			for j := 0; j <= i; j += 101 {
				require.True(t, f.Include(elem(j)))
			}
		}
	}
	require.Greater(t, f.NumLayers(), 5)
	for i := 0; i < n; i++ {
		require.True(t, f.Include(elem(i)), "false negative for %d", i)
	}
}

func TestFilterFalsePositiveBound(t *testing.T) {
	const p = 0.01
	f := newTestFilter(t, Config{ErrorRate: p, InitialCapacity: 1000})
	const n = 20000
	for i := 0; i < n; i++ {
		require.NoError(t, f.Add(elem(i)))
	}

	const trials = 100000
	fp := 0
	for i := n; i < n+trials; i++ {
		if f.Include(elem(i)) {
			fp++
		}
	}
	rate := float64(fp) / trials
	assert.Less(t, rate, 3*p, "measured %f over %d layers", rate, f.NumLayers())
	assert.Less(t, f.EstimatedFalsePositiveRate(), 3*p)
}

func TestFilterCount(t *testing.T) {
	f := newTestFilter(t, Config{ErrorRate: 0.01, InitialCapacity: 7})
	for i := 0; i < 333; i++ {
		require.NoError(t, f.Add(elem(i%50)))
		require.Equal(t, uint64(i+1), f.Count())
	}

	var sum uint64
	for _, l := range f.layers {
		sum += l.Count()
	}
	require.Equal(t, f.Count(), sum)
}

func TestFilterClear(t *testing.T) {
	f := newTestFilter(t, Config{ErrorRate: 0.01, InitialCapacity: 16})
	for i := 0; i < 500; i++ {
		require.NoError(t, f.Add(elem(i)))
	}
	require.Greater(t, f.NumLayers(), 1)

	require.NoError(t, f.Clear())
	require.Equal(t, 1, f.NumLayers())
	require.Zero(t, f.Count())
	require.Zero(t, f.Stats().TotalBitsSet)
	for i := 0; i < 500; i++ {
		require.False(t, f.Include(elem(i)))
	}

	first := f.Stats().Layers[0]
	require.Equal(t, uint64(16), first.Capacity)
	require.Equal(t, LayerErrorRate(0.01, DefaultTightening, 0), first.ErrorRate)

	// Usable after clearing.
	require.NoError(t, f.Add(elem(1)))
	require.True(t, f.Include(elem(1)))
	require.Equal(t, uint64(1), f.Count())
}

func TestFilterAllocationFailureLeavesFilterUnchanged(t *testing.T) {
	// Layer 0: 4 elements fit 64 bits (8 bytes). Layer 1 needs 14 bytes.
	f := newTestFilter(t, Config{ErrorRate: 0.01, InitialCapacity: 4}, WithMaxLayerBytes(8))
	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, f.AddString(s))
	}
	before := f.Stats()

	err := f.AddString("e")
	require.ErrorIs(t, err, bloom.ErrAllocation)
	require.Equal(t, 1, f.NumLayers())
	require.Equal(t, uint64(4), f.Count())
	require.Equal(t, before, f.Stats())

	_, err = f.AddIfAbsent([]byte("definitely-not-in-layer-zero"))
	if err != nil {
		require.ErrorIs(t, err, bloom.ErrAllocation)
	}
	require.Equal(t, before, f.Stats())

	// Clear only needs a first layer, which fits.
	require.NoError(t, f.Clear())
	require.NoError(t, f.AddString("e"))
}

func TestNewFailsWhenFirstLayerTooLarge(t *testing.T) {
	_, err := New(Config{ErrorRate: 0.01, InitialCapacity: 1000}, WithMaxLayerBytes(16))
	require.ErrorIs(t, err, bloom.ErrAllocation)
}

func TestFilterDeterministic(t *testing.T) {
	cfg := Config{ErrorRate: 0.01, InitialCapacity: 50, Tightening: 0.7}
	a := newTestFilter(t, cfg)
	b := newTestFilter(t, cfg)
	for i := 0; i < 2000; i++ {
		require.NoError(t, a.Add(elem(i)))
		require.NoError(t, b.Add(elem(i)))
	}

	require.Equal(t, a.NumLayers(), b.NumLayers())
	for i := range a.layers {
		require.True(t, a.layers[i].Equal(b.layers[i]), "layer %d differs", i)
	}
	require.Equal(t, a.Stats(), b.Stats())
}

func TestFilterWithID(t *testing.T) {
	id := uuid.New()
	f := newTestFilter(t, Config{ErrorRate: 0.01}, WithID(id))
	require.Equal(t, id, f.ID())
}

package scalable

import (
	"fmt"

	"github.com/forestrie/go-fastbloom/bloom"
	"github.com/google/uuid"
)

// Filter is a scalable Bloom filter: an append only sequence of layers, each
// larger and stricter than the one before, which together hold an unbounded
// number of elements at a bounded aggregate false positive rate.
//
// Only the newest layer is written. Older, full, layers remain queryable for
// the life of the filter (or until Clear).
//
// A Filter is not go routine safe. Concurrent Include, Count and Stats calls
// are fine provided nothing mutates the filter meanwhile; Add, Clear and Merge
// must be serialized by the caller.
type Filter struct {
	cfg    Config
	opts   options
	layers []*bloom.Layer
	count  uint64
}

// New validates cfg and creates a filter holding a single empty layer.
func New(cfg Config, opts ...Option) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Filter{
		cfg:  cfg.withDefaults(),
		opts: newOptions(opts...),
	}
	first, err := f.newLayer(0, uint64(f.cfg.InitialCapacity))
	if err != nil {
		return nil, err
	}
	f.layers = []*bloom.Layer{first}
	return f, nil
}

func (f *Filter) newLayer(index int, capacity uint64) (*bloom.Layer, error) {
	p := LayerErrorRate(f.cfg.ErrorRate, f.cfg.Tightening, index)
	l, err := bloom.NewLayer(capacity, p, bloom.WithMaxBytes(f.opts.maxLayerBytes))
	if err != nil {
		return nil, fmt.Errorf("layer %d (capacity %d): %w", index, capacity, err)
	}
	return l, nil
}

func (f *Filter) active() *bloom.Layer {
	return f.layers[len(f.layers)-1]
}

// grow appends a new layer sized by the growth and tightening policies. On
// error the layer list is untouched.
func (f *Filter) grow() (*bloom.Layer, error) {
	n := len(f.layers)
	capacity := NextCapacity(uint64(f.cfg.InitialCapacity), f.active().Capacity(), n)
	l, err := f.newLayer(n, capacity)
	if err != nil {
		return nil, err
	}
	f.layers = append(f.layers, l)
	f.debugf("grow: filter=%s, layer=%d, capacity=%d, k=%d, bytes=%d, p=%g",
		f.opts.id, n, l.Capacity(), l.NumHashes(), l.SizeBytes(), l.ErrorRate())
	return l, nil
}

// Add inserts value, first appending a new layer if the active one is full.
//
// The only failure is bloom.ErrAllocation when a new layer is needed and can
// not be created, in which case value is not inserted and the filter is
// unchanged.
func (f *Filter) Add(value []byte) error {
	l, err := f.writable()
	if err != nil {
		return err
	}
	l.Add(value)
	f.count++
	return nil
}

// writable returns the active layer, growing first if it is full.
func (f *Filter) writable() (*bloom.Layer, error) {
	if l := f.active(); !l.IsFull() {
		return l, nil
	}
	return f.grow()
}

// Include reports whether value may have been added. A false result is
// definite.
//
// Layers are probed newest first, since recently added elements are the most
// likely to be queried.
func (f *Filter) Include(value []byte) bool {
	return f.includeProbes(bloom.ProbesFor(value))
}

func (f *Filter) includeProbes(p bloom.Probes) bool {
	for i := len(f.layers) - 1; i >= 0; i-- {
		if f.layers[i].IncludeProbes(p) {
			return true
		}
	}
	return false
}

// Clear discards every layer and starts again from a single empty first layer.
// The replacement layer is allocated before anything is discarded, so on error
// the filter keeps its previous contents.
func (f *Filter) Clear() error {
	first, err := f.newLayer(0, uint64(f.cfg.InitialCapacity))
	if err != nil {
		return err
	}
	f.debugf("clear: filter=%s, layers=%d, count=%d", f.opts.id, len(f.layers), f.count)
	f.layers = []*bloom.Layer{first}
	f.count = 0
	return nil
}

// Count is the number of successful Add calls since construction or the last
// Clear, plus the counts of any merged filters.
func (f *Filter) Count() uint64 { return f.count }

func (f *Filter) NumLayers() int { return len(f.layers) }

// Config returns the configuration with defaults applied.
func (f *Filter) Config() Config { return f.cfg }

func (f *Filter) ID() uuid.UUID { return f.opts.id }

func (f *Filter) debugf(format string, args ...any) {
	if f.opts.log == nil {
		return
	}
	f.opts.log.Debugf(format, args...)
}

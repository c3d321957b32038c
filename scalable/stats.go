package scalable

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-fastbloom/bloom"
)

// Stats is a point in time summary of a filter.
//
// Per layer ErrorRate is the rate the layer was sized for, not a measurement.
type Stats struct {
	TotalCount   uint64
	NumLayers    int
	TotalBytes   uint64
	TotalBits    uint64
	TotalBitsSet uint64
	FillRatio    float64
	ErrorRate    float64
	Layers       []bloom.LayerStats
}

// Stats walks every layer. Counting set bits is O(total bytes).
func (f *Filter) Stats() Stats {
	s := Stats{
		TotalCount: f.count,
		NumLayers:  len(f.layers),
		ErrorRate:  f.cfg.ErrorRate,
		Layers:     make([]bloom.LayerStats, 0, len(f.layers)),
	}
	for i, l := range f.layers {
		ls := l.Stats(i)
		s.TotalBytes += ls.SizeBytes
		s.TotalBits += ls.TotalBits
		s.TotalBitsSet += ls.BitsSet
		s.Layers = append(s.Layers, ls)
	}
	if s.TotalBits > 0 {
		s.FillRatio = float64(s.TotalBitsSet) / float64(s.TotalBits)
	}
	return s
}

// EstimatedFalsePositiveRate combines the fill based estimate of each layer:
// a query is a false positive if any layer reports a false positive.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	miss := 1.0
	for _, l := range f.layers {
		miss *= 1 - l.EstimatedFalsePositiveRate()
	}
	return 1 - miss
}

func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "count=%d layers=%d bytes=%d bits=%d set=%d fill=%.4f p=%g\n",
		s.TotalCount, s.NumLayers, s.TotalBytes, s.TotalBits, s.TotalBitsSet, s.FillRatio, s.ErrorRate)
	for _, l := range s.Layers {
		fmt.Fprintf(&b, "  [%d] capacity=%d count=%d bytes=%d k=%d set=%d bits=%d fill=%.4f p=%g\n",
			l.Index, l.Capacity, l.Count, l.SizeBytes, l.NumHashes, l.BitsSet, l.TotalBits, l.FillRatio, l.ErrorRate)
	}
	return b.String()
}

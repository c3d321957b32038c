package scalable

import "math"

// MinLayerErrorRate floors the per layer error rate. Without it r^i
// underflows as layers accumulate and the bit count formula goes non finite.
const MinLayerErrorRate = 1e-15

// LayerErrorRate is the error budget of the layer at index i (zero based, in
// age order) for a filter with total error rate total and tightening r:
//
//	total * (1 - r) * r^i
//
// The geometric series sums to total as i grows without bound, so the union
// of all layers never exceeds the filter's target.
func LayerErrorRate(total, r float64, i int) float64 {
	p := total * (1 - r) * math.Pow(r, float64(i))
	if p < MinLayerErrorRate {
		return MinLayerErrorRate
	}
	return p
}

// GrowthFactor is the multiplier applied to the previous layer's capacity when
// the filter already holds n layers. Growth is aggressive while the filter is
// small and eases off to bound the overshoot of very large filters.
func GrowthFactor(n int) float64 {
	switch {
	case n < 4:
		return 2.0
	case n < 8:
		return 1.75
	case n < 12:
		return 1.5
	default:
		return 1.25
	}
}

// NextCapacity returns the capacity of the layer appended after n existing
// layers, the newest of which has capacity prev. For n == 0 there is no
// previous layer and the initial capacity applies.
func NextCapacity(initial, prev uint64, n int) uint64 {
	if n == 0 {
		return initial
	}
	c := math.Ceil(float64(prev) * GrowthFactor(n))
	if c >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(c)
}

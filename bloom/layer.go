package bloom

import (
	"fmt"
	"math"
)

// Layer is a single fixed capacity Bloom filter.
//
// A Layer does not enforce its capacity: Add keeps setting bits after IsFull
// reports true. Deciding when to stop writing to a layer is the caller's job.
type Layer struct {
	bits      *bitArray
	capacity  uint64
	count     uint64
	numHashes uint8
	errorRate float64
}

type layerOptions struct {
	maxBytes uint64
}

type LayerOption func(*layerOptions)

// WithMaxBytes refuses to allocate a bitset larger than maxBytes. Zero means
// no limit.
func WithMaxBytes(maxBytes uint64) LayerOption {
	return func(o *layerOptions) {
		o.maxBytes = maxBytes
	}
}

// NewLayer creates an empty layer sized for capacity elements at false
// positive rate errorRate.
func NewLayer(capacity uint64, errorRate float64, opts ...LayerOption) (*Layer, error) {
	if err := CheckCapacity(capacity); err != nil {
		return nil, err
	}
	if err := CheckErrorRate(errorRate); err != nil {
		return nil, err
	}
	var o layerOptions
	for _, opt := range opts {
		opt(&o)
	}

	mBits, err := BitCountFor(capacity, errorRate)
	if err != nil {
		return nil, fmt.Errorf("capacity %d, error rate %g: %w: %w", capacity, errorRate, ErrAllocation, err)
	}
	bits, err := newBitArray(mBits, o.maxBytes)
	if err != nil {
		return nil, err
	}
	return &Layer{
		bits:      bits,
		capacity:  capacity,
		numHashes: NumHashesFor(mBits, capacity),
		errorRate: errorRate,
	}, nil
}

// Add inserts value and increments the layer count.
func (l *Layer) Add(value []byte) {
	l.AddProbes(ProbesFor(value))
}

// AddProbes inserts an element given its precomputed base hashes.
func (l *Layer) AddProbes(p Probes) {
	mBits := l.bits.len()
	for i := uint64(0); i < uint64(l.numHashes); i++ {
		l.bits.set(p.Position(i, mBits))
	}
	l.count++
}

// Include reports whether value may have been added.
//
// Returns false if the layer says "definitely not present".
// Returns true if the layer says "maybe present".
func (l *Layer) Include(value []byte) bool {
	return l.IncludeProbes(ProbesFor(value))
}

// IncludeProbes is Include for precomputed base hashes.
func (l *Layer) IncludeProbes(p Probes) bool {
	mBits := l.bits.len()
	for i := uint64(0); i < uint64(l.numHashes); i++ {
		if !l.bits.test(p.Position(i, mBits)) {
			return false
		}
	}
	return true
}

// IsFull is true once the layer holds as many elements as it was sized for.
func (l *Layer) IsFull() bool { return l.count >= l.capacity }

func (l *Layer) Capacity() uint64   { return l.capacity }
func (l *Layer) Count() uint64      { return l.count }
func (l *Layer) NumHashes() uint8   { return l.numHashes }
func (l *Layer) ErrorRate() float64 { return l.errorRate }
func (l *Layer) BitCount() uint64   { return l.bits.len() }
func (l *Layer) SizeBytes() uint64  { return l.bits.sizeBytes() }

// BitsSet counts the one bits. It is O(size) and not cached.
func (l *Layer) BitsSet() uint64 { return l.bits.countSetBits() }

// FillRatio is BitsSet / BitCount.
func (l *Layer) FillRatio() float64 {
	return float64(l.BitsSet()) / float64(l.BitCount())
}

// EstimatedFalsePositiveRate is FillRatio^k, the probability that k uniformly
// chosen positions are all set given the current fill.
func (l *Layer) EstimatedFalsePositiveRate() float64 {
	return math.Pow(l.FillRatio(), float64(l.numHashes))
}

// Clone returns an independent deep copy. Mutating the copy never affects l.
func (l *Layer) Clone() *Layer {
	cpy := *l
	cpy.bits = l.bits.clone()
	return &cpy
}

// Equal is true if both layers have the same parameters, count and bits.
func (l *Layer) Equal(other *Layer) bool {
	return l.capacity == other.capacity &&
		l.count == other.count &&
		l.numHashes == other.numHashes &&
		l.errorRate == other.errorRate &&
		l.bits.equal(other.bits)
}

// Reset zeroes the bitset and the count, keeping the sizing.
func (l *Layer) Reset() {
	l.bits.clearAll()
	l.count = 0
}

// Stats reports the layer at position index of its owning filter.
func (l *Layer) Stats(index int) LayerStats {
	bitsSet := l.BitsSet()
	return LayerStats{
		Index:     index,
		Capacity:  l.capacity,
		Count:     l.count,
		SizeBytes: l.SizeBytes(),
		NumHashes: l.numHashes,
		BitsSet:   bitsSet,
		TotalBits: l.BitCount(),
		FillRatio: float64(bitsSet) / float64(l.BitCount()),
		ErrorRate: l.errorRate,
	}
}

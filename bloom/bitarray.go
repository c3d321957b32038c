package bloom

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// bitArray is a fixed size bitset addressed by zero based bit index. It is
// owned by exactly one Layer and is never resized.
type bitArray struct {
	bits  *bitset.BitSet
	mBits uint64
}

// newBitArray allocates a zeroed array of mBits bits. maxBytes, when non zero,
// is a ceiling on the backing buffer size.
func newBitArray(mBits uint64, maxBytes uint64) (*bitArray, error) {
	sizeBytes := BitsetBytes(mBits)
	if maxBytes != 0 && sizeBytes > maxBytes {
		return nil, fmt.Errorf("%d bytes requested, limit is %d: %w", sizeBytes, maxBytes, ErrAllocation)
	}
	if mBits > uint64(^uint(0)) {
		return nil, fmt.Errorf("%d bits not addressable on this platform: %w", mBits, ErrAllocation)
	}

	// bitset.New recovers from a failed make and hands back an empty set.
	bs := bitset.New(uint(mBits))
	if uint64(bs.Len()) != mBits {
		return nil, fmt.Errorf("%d bytes requested: %w", sizeBytes, ErrAllocation)
	}
	return &bitArray{bits: bs, mBits: mBits}, nil
}

func (a *bitArray) set(pos uint64) {
	a.bits.Set(uint(pos))
}

func (a *bitArray) test(pos uint64) bool {
	return a.bits.Test(uint(pos))
}

func (a *bitArray) countSetBits() uint64 {
	return uint64(a.bits.Count())
}

func (a *bitArray) clearAll() {
	a.bits.ClearAll()
}

func (a *bitArray) clone() *bitArray {
	return &bitArray{bits: a.bits.Clone(), mBits: a.mBits}
}

func (a *bitArray) equal(other *bitArray) bool {
	return a.mBits == other.mBits && a.bits.Equal(other.bits)
}

func (a *bitArray) len() uint64 { return a.mBits }

func (a *bitArray) sizeBytes() uint64 { return BitsetBytes(a.mBits) }

package bloom

import "math"

// CheckErrorRate validates a target false positive rate.
func CheckErrorRate(p float64) error {
	// NaN fails both comparisons
	if !(p > 0 && p < 1) {
		return ErrBadErrorRate
	}
	return nil
}

// CheckCapacity validates a layer capacity.
func CheckCapacity(capacity uint64) error {
	if capacity == 0 {
		return ErrBadCapacity
	}
	return nil
}

// BitCountFor returns the number of bits needed to hold capacity elements at
// false positive rate p:
//
//	mBits = ceil(-capacity * ln(p) / ln(2)^2)
//
// The result is at least MinBits and is rounded up to a whole number of bytes,
// so that BitCountFor(...) == BitsetBytes(BitCountFor(...)) * 8.
//
// The caller is responsible for ensuring capacity > 0 and 0 < p < 1.
// CheckCapacity and CheckErrorRate can be used to check these conditions.
func BitCountFor(capacity uint64, p float64) (uint64, error) {
	m := math.Ceil(-float64(capacity) * math.Log(p) / (math.Ln2 * math.Ln2))
	if math.IsNaN(m) || math.IsInf(m, 0) || m >= float64(math.MaxUint64-7) {
		return 0, ErrSizeOverflow
	}
	mBits := uint64(m)
	if mBits < MinBits {
		mBits = MinBits
	}
	return BitsetBytes(mBits) * 8, nil
}

// NumHashesFor returns round(mBits/capacity * ln(2)) clamped to
// [MinHashes, MaxHashes].
func NumHashesFor(mBits uint64, capacity uint64) uint8 {
	k := math.Round(float64(mBits) / float64(capacity) * math.Ln2)
	if k < MinHashes {
		return MinHashes
	}
	if k > MaxHashes {
		return MaxHashes
	}
	return uint8(k)
}

// BitsetBytes returns ceil(mBits/8).
func BitsetBytes(mBits uint64) uint64 {
	return mBits/8 + (mBits%8+7)/8
}

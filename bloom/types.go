package bloom

import "errors"

const (
	// MinBits is the smallest bitset a layer will be created with.
	MinBits = 64

	// MinHashes and MaxHashes bound the number of probe positions per element.
	MinHashes = 1
	MaxHashes = 20

	// SeedH1 and SeedH2 are the fixed seeds for the two base hashes. They must
	// differ, otherwise h1 == h2 for every element.
	SeedH1 uint32 = 0x9747b28c
	SeedH2 uint32 = 0x5bd1e995
)

var (
	ErrBadCapacity  = errors.New("bloom: capacity must be greater than zero")
	ErrBadErrorRate = errors.New("bloom: error rate must be in the open interval (0, 1)")
	ErrAllocation   = errors.New("bloom: failed to allocate bitset")
	ErrSizeOverflow = errors.New("bloom: size computation overflow")
)

// LayerStats is a point in time summary of a single layer.
type LayerStats struct {
	Index     int
	Capacity  uint64
	Count     uint64
	SizeBytes uint64
	NumHashes uint8
	BitsSet   uint64
	TotalBits uint64
	FillRatio float64
	ErrorRate float64
}

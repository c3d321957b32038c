package bloom

import "github.com/spaolacci/murmur3"

// Hash32 is the MurmurHash3 (x86, 32 bit) of data under seed.
//
// It is fast and well distributed but NOT collision resistant against
// adversarial input.
func Hash32(data []byte, seed uint32) uint32 {
	return murmur3.Sum32WithSeed(data, seed)
}

// Probes is the pair of base hashes from which every probe position for an
// element is derived (Kirsch-Mitzenmacher double hashing):
//
//	pos(i) = (H1 + i*H2) mod mBits,  i in [0, k)
//
// The pair does not depend on the layer geometry, so an element is hashed once
// and the same Probes value is applied to layers of different sizes.
type Probes struct {
	H1 uint64
	H2 uint64
}

// ProbesFor hashes value with the two fixed seeds.
func ProbesFor(value []byte) Probes {
	h1 := uint64(Hash32(value, SeedH1))
	h2 := uint64(Hash32(value, SeedH2))
	if h2 == 0 {
		h2 = 1
	}
	return Probes{H1: h1, H2: h2}
}

// Position returns the i'th probe position for a bitset of mBits bits.
func (p Probes) Position(i uint64, mBits uint64) uint64 {
	return (p.H1 + i*p.H2) % mBits
}

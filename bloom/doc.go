package bloom

/*

# Bloom layer primitives

This package provides the building blocks of a scalable Bloom filter: the hash
engine, a fixed size bit array and a single fixed capacity filter (a Layer).
The policy of when to grow, and how large and how strict the next layer must
be, lives in the scalable package.

- small, composable functions
- explicit sizing arithmetic (see sizing.go)
- a burden of knowledge on the caller for hot paths: a Layer does not check
  its own capacity

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be present
  (false positives are possible).

Elements can not be removed.

## Sizing

For capacity n and target false positive rate p:

	mBits = ceil(-n * ln(p) / ln(2)^2)     (at least 64, whole bytes)
	k     = round(mBits/n * ln(2))         (clamped to [1, 20])

## Indexing and bit numbering

Each element is hashed twice with MurmurHash3 (x86, 32 bit) under two fixed
seeds, giving h1 and h2. The k probe positions are derived by double hashing

	pos(i) = (h1 + i*h2) mod mBits

Arithmetic is 64 bit so layers larger than 2^32 bits are addressable. The same
(value, k, mBits) always produces the same positions; nothing is randomized per
process, so two layers built from the same inserts are bit identical.

*/

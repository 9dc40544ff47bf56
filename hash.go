package chainhash

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a 64-bit hash. The table reduces it modulo its
// capacity to pick a bucket.
type HashFunc func(key string) uint64

const polyBase = 31

// Poly31 computes the base-31 polynomial rolling hash of key.
//
// Each byte is read as a signed 8-bit character and sign-extended before it is
// added, and the running value wraps at 64 bits. Both are part of the bucket
// layout contract: a table built with Poly31 places every key in the same
// bucket as any other implementation of this hash.
func Poly31(key string) uint64 {
	var hash uint64
	for i := 0; i < len(key); i++ {
		hash = hash*polyBase + uint64(int64(int8(key[i])))
	}
	return hash
}

// XXHash hashes key with xxHash64. It spreads keys better than Poly31 but
// produces a different bucket layout.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

/*
Package chainhash provides an in-memory hash table of string keys and values
that resolves collisions by separate chaining.

Table is a small, single-threaded building block: every bucket is an ordered
chain of entries, and the table only grows when the caller asks it to.

Basic usage:

	import "github.com/theflywheel/chainhash"

	t, err := chainhash.New() // 10 buckets, Poly31 hash
	if err != nil {
		log.Fatal(err)
	}

	t.Insert("a", "1")
	t.Insert("k", "2") // same bucket as "a" at capacity 10

	if v, ok := t.Get("k"); ok {
		fmt.Println("Value:", v)
	}

	t.TryRemove("a")
	t.Rehash() // 21 buckets

	for _, b := range t.Enumerate() {
		fmt.Println(b.Index, b.Entries)
	}

Features:

  - Separate chaining: each bucket keeps its entries in insertion order
  - Duplicate keys are kept; Get and TryRemove act on the first one inserted
  - Explicit growth only: Rehash moves to capacity*2+1 buckets, there is no
    load factor trigger
  - Deterministic layout: the default Poly31 hash is a base-31 polynomial over
    the key bytes with 64-bit wraparound
  - Optional xxHash64 hashing via WithHashFunc(XXHash)
  - Digest fingerprints the bucket layout for cheap comparisons

Implementation Details:

The table is a slice of buckets and each bucket is a slice of entries. A key
lives in bucket hash(key) mod capacity. Rehash builds a complete new bucket
slice under the new capacity, walking the old buckets in index order, and
swaps it in with a single assignment once every entry has been placed.
*/
package chainhash

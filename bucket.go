package chainhash

import "iter"

// Entry is a single key/value pair stored in a bucket
type Entry struct {
	Key   string
	Value string
}

// Bucket is the chain of entries for one table slot, kept in insertion order.
// The zero value is an empty bucket ready to use.
type Bucket struct {
	entries []Entry
}

// Append adds e at the tail of the bucket
func (b *Bucket) Append(e Entry) {
	b.entries = append(b.entries, e)
}

// All yields the entries in insertion order. The sequence can be ranged over
// any number of times; it must not be used while the bucket is being modified.
func (b *Bucket) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range b.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Find returns the first entry for which match reports true
func (b *Bucket) Find(match func(Entry) bool) (Entry, bool) {
	for e := range b.All() {
		if match(e) {
			return e, true
		}
	}
	return Entry{}, false
}

// RemoveFirstEqual removes the first entry whose key and value both equal e's.
// Later entries keep their relative order. It reports whether anything was
// removed.
func (b *Bucket) RemoveFirstEqual(e Entry) bool {
	for i, cur := range b.entries {
		if cur != e {
			continue
		}
		copy(b.entries[i:], b.entries[i+1:])
		b.entries[len(b.entries)-1] = Entry{}
		b.entries = b.entries[:len(b.entries)-1]
		return true
	}
	return false
}

// Clear drops every entry. Calling it on an empty bucket is a no-op.
func (b *Bucket) Clear() {
	clear(b.entries)
	b.entries = nil
}

// Len returns the number of entries in the bucket
func (b *Bucket) Len() int {
	return len(b.entries)
}

// Entries returns a copy of the bucket's entries in insertion order
func (b *Bucket) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

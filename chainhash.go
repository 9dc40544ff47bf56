package chainhash

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultCapacity is the number of buckets a new table starts with
	DefaultCapacity = 10

	growthFactor = 2
)

var (
	// ErrInvalidCapacity is returned by New when the initial capacity is not positive
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrNilHashFunc is returned by New when WithHashFunc is given nil
	ErrNilHashFunc = errors.New("hash function is nil")
)

// Table is an in-memory hash table of string keys and values that resolves
// collisions by chaining. It is not safe for concurrent use.
type Table struct {
	buckets  []Bucket
	capacity uint64
	count    int
	hash     HashFunc
}

// BucketView is a snapshot of one bucket: its index and a copy of its entries
type BucketView struct {
	Index   int
	Entries []Entry
}

type options struct {
	capacity int
	hash     HashFunc
}

// Option configures a Table created by New
type Option func(*options)

// WithInitialCapacity sets the number of buckets the table starts with.
// Any n >= 1 is accepted, including values below DefaultCapacity; the table
// then never shrinks below n.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithHashFunc replaces the default Poly31 hash
func WithHashFunc(f HashFunc) Option {
	return func(o *options) {
		o.hash = f
	}
}

// New creates an empty table with DefaultCapacity buckets hashed by Poly31
// unless overridden by opts
func New(opts ...Option) (*Table, error) {
	o := options{
		capacity: DefaultCapacity,
		hash:     Poly31,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity < 1 {
		return nil, fmt.Errorf("invalid initial capacity %d: %w", o.capacity, ErrInvalidCapacity)
	}
	if o.hash == nil {
		return nil, ErrNilHashFunc
	}

	return &Table{
		buckets:  make([]Bucket, o.capacity),
		capacity: uint64(o.capacity),
		hash:     o.hash,
	}, nil
}

// IndexOf returns the bucket index key maps to under the current capacity
func (t *Table) IndexOf(key string) int {
	return int(t.hash(key) % t.capacity)
}

// Insert appends a new entry for key. An existing entry with the same key is
// left in place, so Get keeps returning the older value.
func (t *Table) Insert(key, value string) {
	t.buckets[t.IndexOf(key)].Append(Entry{Key: key, Value: value})
	t.count++
}

// Get returns the value of the first entry inserted for key
func (t *Table) Get(key string) (string, bool) {
	e, ok := t.buckets[t.IndexOf(key)].Find(keyEquals(key))
	if !ok {
		return "", false
	}
	return e.Value, true
}

// TryRemove removes the first entry inserted for key and reports whether one
// was found. Other entries with the same key stay.
func (t *Table) TryRemove(key string) bool {
	b := &t.buckets[t.IndexOf(key)]
	e, ok := b.Find(keyEquals(key))
	if !ok {
		return false
	}
	if !b.RemoveFirstEqual(e) {
		return false
	}
	t.count--
	return true
}

// Rehash grows the table to capacity*2+1 buckets and moves every entry to the
// bucket its key maps to under the new capacity. Entries that shared a source
// bucket keep their relative order. The old buckets are replaced only once
// every entry has been placed.
func (t *Table) Rehash() {
	newCapacity := t.capacity*growthFactor + 1
	newBuckets := make([]Bucket, newCapacity)

	for i := range t.buckets {
		for e := range t.buckets[i].All() {
			newBuckets[t.hash(e.Key)%newCapacity].Append(e)
		}
	}

	t.buckets = newBuckets
	t.capacity = newCapacity
}

// Enumerate returns every bucket from index 0 to Capacity()-1, empty ones
// included
func (t *Table) Enumerate() []BucketView {
	views := make([]BucketView, len(t.buckets))
	for i := range t.buckets {
		views[i] = BucketView{Index: i, Entries: t.buckets[i].Entries()}
	}
	return views
}

// All yields each entry with its bucket index, bucket by bucket
func (t *Table) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i := range t.buckets {
			for e := range t.buckets[i].All() {
				if !yield(i, e) {
					return
				}
			}
		}
	}
}

// Clear drops every entry. The capacity is kept.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i].Clear()
	}
	t.count = 0
}

// Capacity returns the current number of buckets
func (t *Table) Capacity() int {
	return int(t.capacity)
}

// Len returns the number of entries, duplicates included
func (t *Table) Len() int {
	return t.count
}

// LoadFactor returns Len()/Capacity(). The table never grows on its own.
func (t *Table) LoadFactor() float64 {
	return float64(t.count) / float64(t.capacity)
}

// Digest returns an xxHash64 fingerprint of the bucket layout. Two tables
// with the same capacity and the same entries in the same bucket order have
// the same digest.
func (t *Table) Digest() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 8)

	writeUint := func(v uint64) {
		buf = binary.BigEndian.AppendUint64(buf[:0], v)
		d.Write(buf)
	}

	writeUint(t.capacity)
	for i := range t.buckets {
		writeUint(uint64(i))
		writeUint(uint64(t.buckets[i].Len()))
		for e := range t.buckets[i].All() {
			writeUint(uint64(len(e.Key)))
			d.WriteString(e.Key)
			writeUint(uint64(len(e.Value)))
			d.WriteString(e.Value)
		}
	}
	return d.Sum64()
}

func keyEquals(key string) func(Entry) bool {
	return func(e Entry) bool {
		return e.Key == key
	}
}

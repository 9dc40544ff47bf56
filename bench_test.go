// Benchmarks for the chained hash table.
//
// They measure insertion, lookup and rehash cost with UUID keys and short
// alphanumeric values, for both the default Poly31 hash and xxHash64.
package chainhash_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/theflywheel/chainhash"
)

// generateAlphanumeric creates a pseudo-random alphanumeric string of given length
func generateAlphanumeric(r *rand.Rand, length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[r.Intn(len(charset))]
	}
	return string(result)
}

func generateUUIDKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = uuid.NewString()
	}
	return keys
}

var hashFuncs = []struct {
	name string
	fn   chainhash.HashFunc
}{
	{"Poly31", chainhash.Poly31},
	{"XXHash", chainhash.XXHash},
}

func BenchmarkHash(b *testing.B) {
	key := uuid.NewString()
	for _, h := range hashFuncs {
		b.Run(h.name, func(b *testing.B) {
			b.SetBytes(int64(len(key)))
			for i := 0; i < b.N; i++ {
				h.fn(key)
			}
		})
	}
}

// BenchmarkInsert measures appends into a table that is rehashed every time
// its load factor passes 1
func BenchmarkInsert(b *testing.B) {
	keys := generateUUIDKeys(10_000)
	r := rand.New(rand.NewSource(1))
	value := generateAlphanumeric(r, 32)

	for _, h := range hashFuncs {
		b.Run(h.name, func(b *testing.B) {
			tbl, err := chainhash.New(chainhash.WithHashFunc(h.fn))
			if err != nil {
				b.Fatalf("Failed to create table: %v", err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tbl.Insert(keys[i%len(keys)], value)
				if tbl.LoadFactor() > 1 {
					tbl.Rehash()
				}
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, numKeys := range []int{1_000, 10_000, 100_000} {
		for _, h := range hashFuncs {
			b.Run(fmt.Sprintf("%s/%d", h.name, numKeys), func(b *testing.B) {
				keys := generateUUIDKeys(numKeys)
				tbl, err := chainhash.New(chainhash.WithHashFunc(h.fn))
				if err != nil {
					b.Fatalf("Failed to create table: %v", err)
				}
				for _, k := range keys {
					tbl.Insert(k, k)
				}
				for tbl.LoadFactor() > 1 {
					tbl.Rehash()
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					k := keys[(i*31+17)%numKeys]
					if v, ok := tbl.Get(k); !ok || v != k {
						b.Fatalf("Key %s not found", k)
					}
				}
			})
		}
	}
}

// BenchmarkGetNoRehash shows how chains slow lookups down when the table is
// never grown past its initial capacity
func BenchmarkGetNoRehash(b *testing.B) {
	keys := generateUUIDKeys(10_000)
	tbl, err := chainhash.New()
	if err != nil {
		b.Fatalf("Failed to create table: %v", err)
	}
	for _, k := range keys {
		tbl.Insert(k, k)
	}

	b.ReportMetric(tbl.LoadFactor(), "load_factor")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tbl.Get(keys[i%len(keys)])
	}
}

func BenchmarkRehash(b *testing.B) {
	keys := generateUUIDKeys(50_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tbl, err := chainhash.New(chainhash.WithInitialCapacity(4096))
		if err != nil {
			b.Fatalf("Failed to create table: %v", err)
		}
		for _, k := range keys {
			tbl.Insert(k, k)
		}
		b.StartTimer()

		tbl.Rehash()
	}
	b.ReportMetric(float64(len(keys)), "entries/op")
}

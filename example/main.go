package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/chainhash"
)

func main() {
	t, err := chainhash.New()
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	fmt.Println("Hash table created with", t.Capacity(), "buckets")

	// Insert some data
	for i := 0; i < 10; i++ {
		t.Insert(fmt.Sprintf("key-%d", i), fmt.Sprintf("%d", i*100))
	}

	fmt.Println("Inserted 10 key-value pairs")

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("key-%d", i)
		if value, found := t.Get(key); found {
			fmt.Printf("%s => %s (bucket %d)\n", key, value, t.IndexOf(key))
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Duplicates are kept, the first one wins
	t.Insert("key-2", "999")
	value, _ := t.Get("key-2")
	fmt.Printf("key-2 after a second insert => %s\n", value)

	if t.TryRemove("key-2") {
		value, _ = t.Get("key-2")
		fmt.Printf("key-2 after removing the first entry => %s\n", value)
	}

	fmt.Printf("Load factor %.2f, rehashing\n", t.LoadFactor())
	t.Rehash()
	fmt.Printf("Capacity %d, load factor %.2f, digest %016x\n", t.Capacity(), t.LoadFactor(), t.Digest())

	for _, b := range t.Enumerate() {
		if len(b.Entries) == 0 {
			continue
		}
		fmt.Printf("Index %5d: %v\n", b.Index, b.Entries)
	}

	fmt.Println("Example completed successfully")
}

// Package hashtable provides a hash map with separate chaining. Keys are
// hashed by a caller-supplied function and compared by a caller-supplied
// equality, so any key type can be stored. The table doubles its bucket
// array whenever an insert pushes the load factor past LoadFactorThreshold.
//
// The bucket for a key is hash(key) mod Cap(). NewString hashes with
// xxhash64 (StringHash); tests that need deliberate collisions should pass
// their own hash function to New or NewComparable.
package hashtable

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultCapacity is the number of buckets a new table starts with.
	DefaultCapacity = 16
	// LoadFactorThreshold is the size/capacity ratio that, once exceeded
	// by an insert, doubles the bucket array.
	LoadFactorThreshold = 0.75
)

// Entry is a single key/value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Table is a chained hash map. It is not safe for concurrent mutation.
type Table[K, V any] struct {
	buckets [][]Entry[K, V]
	size    int
	hash    func(K) uint64
	equal   func(a, b K) bool
}

type options struct {
	capacity int
}

// Option configures a Table at construction.
type Option func(*options)

// WithCapacity sets the initial number of buckets. Values below 1 are
// ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// New creates an empty table using hash to pick buckets and equal to match
// keys. Keys that are equal must hash identically.
func New[K, V any](hash func(K) uint64, equal func(a, b K) bool, opts ...Option) *Table[K, V] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[K, V]{
		buckets: make([][]Entry[K, V], o.capacity),
		hash:    hash,
		equal:   equal,
	}
}

// NewComparable creates a table for a comparable key type, matching keys
// with ==.
func NewComparable[K comparable, V any](hash func(K) uint64, opts ...Option) *Table[K, V] {
	return New[K, V](hash, func(a, b K) bool { return a == b }, opts...)
}

// NewString creates a table keyed by strings and hashed with StringHash.
func NewString[V any](opts ...Option) *Table[string, V] {
	return NewComparable[string, V](StringHash, opts...)
}

// StringHash is the 64-bit xxhash digest of s.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

func (t *Table[K, V]) index(key K, capacity int) int {
	return int(t.hash(key) % uint64(capacity))
}

// Put stores value under key. An existing entry for key is overwritten in
// place and the size is unchanged. A new entry that lifts the load factor
// above LoadFactorThreshold doubles the capacity before Put returns.
func (t *Table[K, V]) Put(key K, value V) {
	i := t.index(key, len(t.buckets))
	bucket := t.buckets[i]
	for j := range bucket {
		if t.equal(bucket[j].Key, key) {
			bucket[j].Value = value
			return
		}
	}
	t.buckets[i] = append(bucket, Entry[K, V]{Key: key, Value: value})
	t.size++

	if t.LoadFactor() > LoadFactorThreshold {
		t.resize(len(t.buckets) * 2)
	}
}

// resize rehashes every entry into a new bucket array and swaps it in once
// all entries are placed. Entries keep their relative order within a bucket.
func (t *Table[K, V]) resize(capacity int) {
	next := make([][]Entry[K, V], capacity)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			i := t.index(e.Key, capacity)
			next[i] = append(next[i], e)
		}
	}
	t.buckets = next
}

// Get returns the value stored under key. The boolean is false when key is
// absent.
func (t *Table[K, V]) Get(key K) (V, bool) {
	for _, e := range t.buckets[t.index(key, len(t.buckets))] {
		if t.equal(e.Key, key) {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Remove deletes key and returns the value it held. The boolean is false
// when key was absent. The table never shrinks.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	i := t.index(key, len(t.buckets))
	bucket := t.buckets[i]
	for j, e := range bucket {
		if t.equal(e.Key, key) {
			t.buckets[i] = slices.Delete(bucket, j, j+1)
			t.size--
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (t *Table[K, V]) ContainsKey(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// ContainsValue reports whether any entry holds a value equal to value
// under equal. It scans the whole table.
func (t *Table[K, V]) ContainsValue(value V, equal func(a, b V) bool) bool {
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			if equal(e.Value, value) {
				return true
			}
		}
	}
	return false
}

// Keys returns every key, bucket by bucket, in insertion order within each
// bucket.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Values returns every value in the same order as Keys.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			values = append(values, e.Value)
		}
	}
	return values
}

// Entries returns a copy of every entry in the same order as Keys.
func (t *Table[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.size)
	for _, bucket := range t.buckets {
		entries = append(entries, bucket...)
	}
	return entries
}

// LoadFactor returns Len()/Cap().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Cap returns the current number of buckets.
func (t *Table[K, V]) Cap() int {
	return len(t.buckets)
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	return t.size
}

// IsEmpty reports whether the table holds no entries.
func (t *Table[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Clear removes every entry. The capacity is kept.
func (t *Table[K, V]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.size = 0
}

// BucketStats describes how entries are spread over the buckets.
type BucketStats struct {
	Capacity int
	Entries  int
	// Empty counts buckets holding no entries.
	Empty int
	// Longest is the length of the longest chain.
	Longest int
	// Sizes holds the chain length of each bucket, indexed by bucket.
	Sizes      []int
	LoadFactor float64
}

// BucketStats reports the current bucket distribution.
func (t *Table[K, V]) BucketStats() BucketStats {
	st := BucketStats{
		Capacity:   len(t.buckets),
		Entries:    t.size,
		Sizes:      make([]int, len(t.buckets)),
		LoadFactor: t.LoadFactor(),
	}
	for i, bucket := range t.buckets {
		n := len(bucket)
		st.Sizes[i] = n
		if n == 0 {
			st.Empty++
		}
		st.Longest = max(st.Longest, n)
	}
	return st
}

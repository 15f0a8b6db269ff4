package lpres

import (
	"github.com/gostonefire/probingmap/internal/conf"
	"github.com/gostonefire/probingmap/internal/model"
)

// hashIndex - Reduces the hash algorithm value for key to a bucket index in a slot array of the
// given capacity. A negative hash value is first folded into the non-negative range by bit complement.
func (L *Table[K, V]) hashIndex(key K, capacity int64) int64 {
	h := L.hashAlgorithm.HashFunc(key)
	if h < 0 {
		h = ^h
	}

	return h % capacity
}

// locate - Is the Linear Probing Collision Resolution Technique algorithm for finding the bucket a
// key belongs to. Starting at the key's ideal index it scans forward, wrapping at the capacity, until
// it hits either an empty bucket or the bucket already holding the key. The returned index serves
// lookups, inserts and deletes alike: an empty bucket at the index means the key is not present.
func (L *Table[K, V]) locate(key K) int64 {
	capacity := int64(len(L.buckets))

	i := L.hashIndex(key, capacity)
	for L.buckets[i].State == model.BucketOccupied && L.buckets[i].Key != key {
		i++
		if i == capacity {
			i = 0
		}
	}

	return i
}

// resizeIfNeeded - Replaces the slot array with a freshly sized one whenever the occupation has
// drifted outside the configured fullness bounds. The new capacity is size divided by the set
// fullness, truncated, and never below the minimum capacity. Shrinking is skipped entirely once the
// array is at the minimum capacity. Every occupied bucket of the old array, scanned in index order,
// is probed into the new array the same way locate places fresh inserts.
func (L *Table[K, V]) resizeIfNeeded() {
	capacity := int64(len(L.buckets))
	underFull := float64(L.nOccupied) < float64(capacity)*L.minFullness && capacity > conf.MinCapacity
	overFull := float64(L.nOccupied) > float64(capacity)*L.maxFullness
	if !underFull && !overFull {
		return
	}

	newCapacity := int64(float64(L.nOccupied) / L.setFullness)
	if newCapacity < conf.MinCapacity {
		newCapacity = conf.MinCapacity
	}

	newBuckets := make([]model.Bucket[K, V], newCapacity)
	for _, b := range L.buckets {
		if b.State != model.BucketOccupied {
			continue
		}

		i := L.hashIndex(b.Key, newCapacity)
		for newBuckets[i].State == model.BucketOccupied {
			i++
			if i == newCapacity {
				i = 0
			}
		}
		newBuckets[i] = b
	}

	L.buckets = newBuckets
}

package model

// BucketEmpty - State indicating a bucket that is not holding an entry
const BucketEmpty uint8 = 0

// BucketOccupied - State indicating a bucket that is holding an entry
const BucketOccupied uint8 = 1

// Bucket - Represents one slot in the slot array, either empty or occupied by a key/value pair.
// There is no deleted state, deletion reinserts the probe chain instead of leaving tombstones.
type Bucket[K comparable, V any] struct {
	State uint8
	Key   K
	Value V
}

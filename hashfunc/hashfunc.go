package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ProbingMap to supply a custom hash
// algorithm suited for its particular distribution of keys.
type HashAlgorithm[K comparable] interface {
	// HashFunc - Given key it generates a deterministic integer hash value.
	// The value should preferably be non-negative, but the probing table folds any negative value into the
	// non-negative range (bit complement) before reducing it modulo the table capacity, so implementations
	// working over the full signed range remain usable.
	HashFunc(key K) int64
}

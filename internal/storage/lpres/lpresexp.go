package lpres

import (
	"reflect"

	"github.com/gostonefire/probingmap/hashfunc"
	"github.com/gostonefire/probingmap/internal/conf"
	"github.com/gostonefire/probingmap/internal/hash"
	"github.com/gostonefire/probingmap/internal/model"
)

// Table - Represents an in-memory implementation of the Linear Probing Collision Resolution Technique.
// It uses one flat slot array where each bucket holds at most one entry. In case of a collision it probes
// linearly through the array, wrapping at the end, looking for an empty slot, and assigns the free slot
// to the entry. The array is replaced wholesale whenever the occupation drifts outside the configured
// fullness bounds, so at least one empty slot always exists and probing always terminates.
type Table[K comparable, V any] struct {
	buckets       []model.Bucket[K, V]
	nOccupied     int64
	maxFullness   float64
	minFullness   float64
	setFullness   float64
	hashAlgorithm hashfunc.HashAlgorithm[K]
}

// LPConf - Is a struct to be passed in the call to NewTable and contains configuration that affects
// probing and resizing.
//   - MaxFullness, MinFullness and SetFullness are the resize thresholds, assumed already validated to 0 < min < set < max < 1
//   - HashAlgorithm is the hash function to use, nil selects the internal algorithm
type LPConf[K comparable] struct {
	MaxFullness   float64
	MinFullness   float64
	SetFullness   float64
	HashAlgorithm hashfunc.HashAlgorithm[K]
}

// NewTable - Returns a pointer to a new instance of a Linear Probing table with an empty slot array
// at the minimum capacity.
func NewTable[K comparable, V any](lpConf LPConf[K]) *Table[K, V] {
	// If no HashAlgorithm was given then use the default internal
	if lpConf.HashAlgorithm == nil {
		lpConf.HashAlgorithm = hash.NewXXHashAlgorithm[K]()
	}

	return &Table[K, V]{
		buckets:       make([]model.Bucket[K, V], conf.MinCapacity),
		maxFullness:   lpConf.MaxFullness,
		minFullness:   lpConf.MinFullness,
		setFullness:   lpConf.SetFullness,
		hashAlgorithm: lpConf.HashAlgorithm,
	}
}

// Size - Returns the number of occupied buckets
func (L *Table[K, V]) Size() int64 {
	return L.nOccupied
}

// Capacity - Returns the current length of the slot array
func (L *Table[K, V]) Capacity() int64 {
	return int64(len(L.buckets))
}

// MaxFullness - Returns the configured maximum fullness threshold
func (L *Table[K, V]) MaxFullness() float64 {
	return L.maxFullness
}

// MinFullness - Returns the configured minimum fullness threshold
func (L *Table[K, V]) MinFullness() float64 {
	return L.minFullness
}

// SetFullness - Returns the configured resize target fullness
func (L *Table[K, V]) SetFullness() float64 {
	return L.setFullness
}

// Get - Returns the value stored under key
//
// It returns:
//   - value is the stored value, or the zero value when key is not present
//   - found reports whether key was present
func (L *Table[K, V]) Get(key K) (value V, found bool) {
	if b := &L.buckets[L.locate(key)]; b.State == model.BucketOccupied {
		value = b.Value
		found = true
	}

	return
}

// Has - Returns whether key is present in the table
func (L *Table[K, V]) Has(key K) bool {
	return L.buckets[L.locate(key)].State == model.BucketOccupied
}

// HasValue - Returns whether at least one occupied bucket holds value.
// Values are compared with reflect.DeepEqual since the value type carries no comparability constraint.
// It scans the entire slot array.
func (L *Table[K, V]) HasValue(value V) bool {
	for i := range L.buckets {
		if L.buckets[i].State == model.BucketOccupied && reflect.DeepEqual(L.buckets[i].Value, value) {
			return true
		}
	}

	return false
}

// Keys - Returns a snapshot of every stored key. Occupied buckets never hold equal keys, so the
// returned slice contains each key exactly once. Order follows slot position.
func (L *Table[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, L.nOccupied)
	for i := range L.buckets {
		if L.buckets[i].State == model.BucketOccupied {
			keys = append(keys, L.buckets[i].Key)
		}
	}

	return
}

// Set - Updates an existing entry with a new value or adds it if no existing is found with same key.
// A resize check runs only after a net insertion, an overwrite leaves the occupation unchanged.
//
// It returns:
//   - previous is the overwritten value, or the zero value on a fresh insert
//   - replaced reports whether an existing entry was overwritten
func (L *Table[K, V]) Set(key K, value V) (previous V, replaced bool) {
	b := &L.buckets[L.locate(key)]
	if b.State == model.BucketOccupied {
		previous = b.Value
		b.Value = value
		replaced = true
		return
	}

	b.State = model.BucketOccupied
	b.Key = key
	b.Value = value
	L.nOccupied++

	L.resizeIfNeeded()

	return
}

// Delete - Removes the entry stored under key, if present.
// Rather than leaving a tombstone it lifts out the entire contiguous run of occupied buckets starting
// at the deleted entry, clears it, and reinserts every other lifted entry through Set. Entries that had
// been pushed past their ideal slot only because of the deleted entry thereby regain correct placement.
//
// It returns:
//   - value is the removed value, or the zero value when key was not present
//   - deleted reports whether an entry was removed
func (L *Table[K, V]) Delete(key K) (value V, deleted bool) {
	capacity := int64(len(L.buckets))
	i := L.locate(key)
	if L.buckets[i].State != model.BucketOccupied {
		return
	}

	var chain []model.Bucket[K, V]
	for L.buckets[i].State == model.BucketOccupied {
		chain = append(chain, L.buckets[i])
		L.buckets[i] = model.Bucket[K, V]{}
		L.nOccupied--

		i++
		if i == capacity {
			i = 0
		}
	}

	value = chain[0].Value
	deleted = true

	for j := 1; j < len(chain); j++ {
		L.Set(chain[j].Key, chain[j].Value)
	}

	return
}

// TableStat - Statistics on the overall usage and probe displacement over the slot array
//   - Records is the total number of entries stored
//   - HomeRecords is the number of entries stored at their ideal slot
//   - DisplacedRecords is the number of entries pushed past their ideal slot by collisions
//   - MaxProbeLength is the longest displacement of any stored entry
//   - ProbeDistribution is the number of entries per displacement, indexed by displacement length
type TableStat struct {
	Records           int64
	HomeRecords       int64
	DisplacedRecords  int64
	MaxProbeLength    int64
	ProbeDistribution []int64
}

// Stat - Walks the entire slot array and produces a TableStat struct with information.
//   - includeDistribution set to true includes a slice with number of entries per displacement length, false sets TableStat.ProbeDistribution to nil.
func (L *Table[K, V]) Stat(includeDistribution bool) (tableStat *TableStat) {
	capacity := int64(len(L.buckets))
	var ts TableStat

	distribution := make([]int64, capacity)
	for i := range L.buckets {
		if L.buckets[i].State != model.BucketOccupied {
			continue
		}

		displacement := int64(i) - L.hashIndex(L.buckets[i].Key, capacity)
		if displacement < 0 {
			displacement += capacity
		}

		ts.Records++
		if displacement == 0 {
			ts.HomeRecords++
		} else {
			ts.DisplacedRecords++
		}
		if displacement > ts.MaxProbeLength {
			ts.MaxProbeLength = displacement
		}
		distribution[displacement]++
	}

	if includeDistribution {
		ts.ProbeDistribution = distribution[:ts.MaxProbeLength+1]
	}

	tableStat = &ts
	return
}

// Equal - Reports whether L and other are structurally equal: same fullness thresholds, same capacity,
// same occupation and element-wise equal slot arrays including slot positions. Two tables holding the
// same key/value mappings but laid out differently due to diverging insert and resize histories compare
// unequal.
func (L *Table[K, V]) Equal(other *Table[K, V]) bool {
	if other == nil {
		return false
	}
	if L.maxFullness != other.maxFullness || L.minFullness != other.minFullness || L.setFullness != other.setFullness {
		return false
	}
	if L.nOccupied != other.nOccupied || len(L.buckets) != len(other.buckets) {
		return false
	}

	for i := range L.buckets {
		a, b := &L.buckets[i], &other.buckets[i]
		if a.State != b.State {
			return false
		}
		if a.State == model.BucketOccupied && (a.Key != b.Key || !reflect.DeepEqual(a.Value, b.Value)) {
			return false
		}
	}

	return true
}

package probingmap

import (
	"github.com/gostonefire/probingmap/crt"
	"github.com/gostonefire/probingmap/internal/utils"
)

// Size - Returns the current number of keys with associated values
func (P *ProbingMap[K, V]) Size() int {
	return int(P.table.Size())
}

// IsEmpty - Returns true if the map contains no key/value mappings
func (P *ProbingMap[K, V]) IsEmpty() bool {
	return P.table.Size() == 0
}

// Get - Gets the value that is mapped to the given key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value mapped to key, or the zero value when key is not present
//   - found reports whether key was present, absence is not an error
//   - err is of type crt.InvalidKey if key is nil
func (P *ProbingMap[K, V]) Get(key K) (value V, found bool, err error) {
	if utils.IsNil(key) {
		err = crt.InvalidKey{}
		return
	}

	value, found = P.table.Get(key)

	return
}

// ContainsKey - Returns whether the map contains a mapping for the given key.
//   - key is the identifier of an entry
//
// It returns:
//   - found reports whether key is present
//   - err is of type crt.InvalidKey if key is nil
func (P *ProbingMap[K, V]) ContainsKey(key K) (found bool, err error) {
	if utils.IsNil(key) {
		err = crt.InvalidKey{}
		return
	}

	found = P.table.Has(key)

	return
}

// ContainsValue - Returns whether the map maps one or more keys to the given value.
// Values are compared with reflect.DeepEqual. It scans the entire slot array and hence takes
// time proportional to the capacity.
//   - value is the value to look for
//
// It returns:
//   - found reports whether at least one entry holds value
//   - err is of type crt.InvalidValue if value is nil
func (P *ProbingMap[K, V]) ContainsValue(value V) (found bool, err error) {
	if utils.IsNil(value) {
		err = crt.InvalidValue{}
		return
	}

	found = P.table.HasValue(value)

	return
}

// Keys - Returns a snapshot of all keys contained in the map. The slice holds each key exactly
// once and aliases no internal storage. Order follows slot position and carries no meaning.
func (P *ProbingMap[K, V]) Keys() []K {
	return P.table.Keys()
}

// Put - Associates the given value with the given key. If the map previously contained a mapping
// for the key the old value is overwritten in place, otherwise a new entry is inserted and a resize
// check runs.
//   - key is the identifier of an entry
//   - value is the value to store under key
//
// It returns:
//   - previous is the overwritten value, or the zero value on a fresh insert
//   - replaced reports whether an existing mapping was overwritten
//   - err is of type crt.InvalidKey or crt.InvalidValue if key or value is nil, the map is unchanged on failure
func (P *ProbingMap[K, V]) Put(key K, value V) (previous V, replaced bool, err error) {
	if utils.IsNil(key) {
		err = crt.InvalidKey{}
		return
	}
	if utils.IsNil(value) {
		err = crt.InvalidValue{}
		return
	}

	previous, replaced = P.table.Set(key, value)

	return
}

// PutAll - Applies Put for each entry in the given mapping, replacing any mappings the map had for
// keys present in it. A nil mapping is a no-op. Iteration order over the input is irrelevant since
// a Go map holds at most one entry per key.
//   - entries is the mapping to store
//
// It returns:
//   - err is of type crt.InvalidKey or crt.InvalidValue if an entry has a nil key or value, entries already applied stay applied
func (P *ProbingMap[K, V]) PutAll(entries map[K]V) (err error) {
	for key, value := range entries {
		_, _, err = P.Put(key, value)
		if err != nil {
			return
		}
	}

	return
}

// Remove - Removes the mapping for the given key from the map if it is present. The map will not
// contain a mapping for the key once the call returns, and every other mapping stays retrievable.
// No resize check runs on removal itself, a shrink only happens lazily on a later insert that
// crosses the minimum fullness threshold.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the removed value, or the zero value when key was not present
//   - removed reports whether a mapping was removed, absence is not an error
//   - err is of type crt.InvalidKey if key is nil, the map is unchanged on failure
func (P *ProbingMap[K, V]) Remove(key K) (value V, removed bool, err error) {
	if utils.IsNil(key) {
		err = crt.InvalidKey{}
		return
	}

	value, removed = P.table.Delete(key)

	return
}

// MapStat - Statistics on the overall usage and probe displacement over the slot array
//   - Records is the total number of entries stored
//   - HomeRecords is the number of entries stored at their ideal slot
//   - DisplacedRecords is the number of entries pushed past their ideal slot by collisions
//   - MaxProbeLength is the longest displacement of any stored entry
//   - ProbeDistribution is the number of entries per displacement, indexed by displacement length
type MapStat struct {
	Records           int64
	HomeRecords       int64
	DisplacedRecords  int64
	MaxProbeLength    int64
	ProbeDistribution []int64
}

// Stat - Walks through the entire slot array and produces a MapStat struct with information.
//   - includeDistribution set to true will include a slice with number of entries per displacement length, false will set MapStat.ProbeDistribution to nil.
func (P *ProbingMap[K, V]) Stat(includeDistribution bool) (mapStat *MapStat) {
	ts := P.table.Stat(includeDistribution)

	mapStat = &MapStat{
		Records:           ts.Records,
		HomeRecords:       ts.HomeRecords,
		DisplacedRecords:  ts.DisplacedRecords,
		MaxProbeLength:    ts.MaxProbeLength,
		ProbeDistribution: ts.ProbeDistribution,
	}

	return
}

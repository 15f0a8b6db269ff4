package probingmap

import (
	"fmt"

	"github.com/gostonefire/probingmap/crt"
	"github.com/gostonefire/probingmap/hashfunc"
	"github.com/gostonefire/probingmap/internal/conf"
	"github.com/gostonefire/probingmap/internal/storage/lpres"
)

// ProbingMap - The main implementation struct. A generic key/value store backed by a flat slot array
// using linear probing for collision resolution and configurable load factor thresholds governing when
// the array is resized. Deletion is tombstone free, the probe chain following a removed entry is
// reinserted instead.
//
// A ProbingMap is not safe for concurrent use, callers mutating it from several goroutines must
// synchronize externally.
type ProbingMap[K comparable, V any] struct {
	table *lpres.Table[K, V]
}

// MapInfo - Information structure containing some information about the probing map
//   - Capacity is the current length of the slot array, never below the minimum capacity of 11
//   - Size is the current number of stored entries
//   - MaxFullness, MinFullness and SetFullness are the configured resize thresholds
type MapInfo struct {
	Capacity    int64
	Size        int64
	MaxFullness float64
	MinFullness float64
	SetFullness float64
}

// New - Returns a new empty ProbingMap using the default fullness configuration
// (max 0.75, min 0.25, set 0.5) and the internal hash algorithm.
func New[K comparable, V any]() *ProbingMap[K, V] {
	probingMap, _ := NewWithFullness[K, V](conf.DefaultMaxFullness, conf.DefaultMinFullness, conf.DefaultSetFullness, nil)
	return probingMap
}

// NewWithFullness - Returns a new empty ProbingMap at the minimum capacity with the given fullness
// thresholds.
//   - maxFullness is how full the slot array may get before it is grown
//   - minFullness is how empty the slot array may get before it is shrunk, the minimum capacity of 11 is never shrunk below
//   - setFullness is the fullness the slot array is given when a resize occurs, the new capacity is size/setFullness truncated to an integer
//   - hashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal algorithm
//
// It returns:
//   - probingMap is a pointer to a ProbingMap struct
//   - err is of type crt.InvalidConfiguration unless 0 < minFullness < setFullness < maxFullness < 1, no map is created on failure
func NewWithFullness[K comparable, V any](
	maxFullness, minFullness, setFullness float64,
	hashAlgorithm hashfunc.HashAlgorithm[K],
) (
	probingMap *ProbingMap[K, V],
	err error,
) {

	// Check the required threshold ordering
	if minFullness <= 0 {
		err = crt.NewInvalidConfiguration(fmt.Sprintf("illegal minimum fullness: %f", minFullness))
		return
	}
	if setFullness <= minFullness {
		err = crt.NewInvalidConfiguration("minimum fullness must be less than set fullness")
		return
	}
	if maxFullness <= setFullness {
		err = crt.NewInvalidConfiguration("set fullness must be less than maximum fullness")
		return
	}
	if maxFullness >= 1 {
		err = crt.NewInvalidConfiguration(fmt.Sprintf("illegal maximum fullness: %f", maxFullness))
		return
	}

	probingMap = &ProbingMap[K, V]{
		table: lpres.NewTable[K, V](lpres.LPConf[K]{
			MaxFullness:   maxFullness,
			MinFullness:   minFullness,
			SetFullness:   setFullness,
			HashAlgorithm: hashAlgorithm,
		}),
	}

	return
}

// Info - Returns a MapInfo struct with current capacity, size and configured thresholds
func (P *ProbingMap[K, V]) Info() MapInfo {
	return MapInfo{
		Capacity:    P.table.Capacity(),
		Size:        P.table.Size(),
		MaxFullness: P.table.MaxFullness(),
		MinFullness: P.table.MinFullness(),
		SetFullness: P.table.SetFullness(),
	}
}

// Equal - Reports whether P and other are structurally equal: equal fullness configuration, equal
// size, equal capacity and element-wise equal slot arrays including slot positions. This is stricter
// than mapping equality, two maps holding the same key/value pairs but with diverging insert and
// resize histories may compare unequal.
func (P *ProbingMap[K, V]) Equal(other *ProbingMap[K, V]) bool {
	if P == other {
		return true
	}
	if other == nil {
		return false
	}

	return P.table.Equal(other.table)
}

// String - Renders the configured fullness thresholds
func (P *ProbingMap[K, V]) String() string {
	return fmt.Sprintf("ProbingMap(%.2f, %.2f, %.2f)", P.table.MaxFullness(), P.table.MinFullness(), P.table.SetFullness())
}

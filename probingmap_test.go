//go:build unit

package probingmap

import (
	"errors"
	"github.com/gostonefire/probingmap/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

// identityAlgorithm - Hashes every int key to itself, giving tests full control over slot placement
type identityAlgorithm struct{}

func (I *identityAlgorithm) HashFunc(key int) int64 {
	return int64(key)
}

func TestNew(t *testing.T) {
	t.Run("creates an empty map with the default configuration", func(t *testing.T) {
		// Execute
		pm := New[string, int]()

		// Check
		assert.True(t, pm.IsEmpty(), "new map is empty")
		assert.Equal(t, 0, pm.Size(), "new map has size zero")

		info := pm.Info()
		assert.Equal(t, int64(11), info.Capacity, "capacity at the floor")
		assert.Equal(t, 0.75, info.MaxFullness, "default max fullness")
		assert.Equal(t, 0.25, info.MinFullness, "default min fullness")
		assert.Equal(t, 0.5, info.SetFullness, "default set fullness")
	})
}

func TestNewWithFullness(t *testing.T) {
	t.Run("creates a map with custom thresholds", func(t *testing.T) {
		// Execute
		pm, err := NewWithFullness[string, int](0.8, 0.2, 0.4, nil)

		// Check
		assert.NoError(t, err, "creates probing map")

		info := pm.Info()
		assert.Equal(t, 0.8, info.MaxFullness, "max fullness kept")
		assert.Equal(t, 0.2, info.MinFullness, "min fullness kept")
		assert.Equal(t, 0.4, info.SetFullness, "set fullness kept")
	})

	t.Run("error when minimum fullness is not positive", func(t *testing.T) {
		// Execute
		pm, err := NewWithFullness[string, int](0.75, 0, 0.5, nil)

		// Check
		assert.IsType(t, crt.InvalidConfiguration{}, err, "invalid configuration error")
		assert.Nil(t, pm, "no map created")
	})

	t.Run("error when minimum fullness reaches set fullness", func(t *testing.T) {
		// Execute
		pm, err := NewWithFullness[string, int](0.75, 0.5, 0.5, nil)

		// Check
		assert.IsType(t, crt.InvalidConfiguration{}, err, "invalid configuration error")
		assert.Nil(t, pm, "no map created")
	})

	t.Run("error when set fullness reaches maximum fullness", func(t *testing.T) {
		// Execute
		pm, err := NewWithFullness[string, int](0.5, 0.25, 0.5, nil)

		// Check
		assert.IsType(t, crt.InvalidConfiguration{}, err, "invalid configuration error")
		assert.Nil(t, pm, "no map created")
	})

	t.Run("error when maximum fullness reaches one", func(t *testing.T) {
		// Execute
		pm, err := NewWithFullness[string, int](1.0, 0.25, 0.5, nil)

		// Check
		assert.IsType(t, crt.InvalidConfiguration{}, err, "invalid configuration error")
		assert.Nil(t, pm, "no map created")
	})

	t.Run("invalid configuration matches the error taxonomy", func(t *testing.T) {
		// Execute
		_, err := NewWithFullness[string, int](0.75, -1, 0.5, nil)

		// Check
		var target crt.InvalidConfiguration
		assert.True(t, errors.As(err, &target), "error is of type InvalidConfiguration")
	})
}

func TestProbingMap_Equal(t *testing.T) {
	t.Run("maps with equal history compare equal", func(t *testing.T) {
		// Prepare
		a := New[string, int]()
		b := New[string, int]()

		for _, key := range []string{"x", "y", "z"} {
			_, _, err := a.Put(key, len(key))
			assert.NoError(t, err, "put in first map")
			_, _, err = b.Put(key, len(key))
			assert.NoError(t, err, "put in second map")
		}

		// Execute / Check
		assert.True(t, a.Equal(b), "equal history compares equal")
		assert.True(t, b.Equal(a), "equality is symmetric")
		assert.True(t, a.Equal(a), "map equals itself")
	})

	t.Run("maps with different contents compare unequal", func(t *testing.T) {
		// Prepare
		a := New[string, int]()
		b := New[string, int]()
		_, _, err := a.Put("x", 1)
		assert.NoError(t, err, "put in first map")

		// Execute / Check
		assert.False(t, a.Equal(b), "different contents compare unequal")
		assert.False(t, a.Equal(nil), "nil other compares unequal")
	})

	t.Run("same mappings with different slot positions compare unequal", func(t *testing.T) {
		// Prepare
		a, err := NewWithFullness[int, string](0.75, 0.25, 0.5, &identityAlgorithm{})
		assert.NoError(t, err, "creates first map")
		b, err := NewWithFullness[int, string](0.75, 0.25, 0.5, &identityAlgorithm{})
		assert.NoError(t, err, "creates second map")

		// Both keys hash to slot 1, insertion order decides the layout
		_, _, _ = a.Put(12, "y")
		_, _, _ = a.Put(1, "x")
		_, _, _ = b.Put(1, "x")
		_, _, _ = b.Put(12, "y")

		// Execute / Check
		assert.False(t, a.Equal(b), "equality is position sensitive")
	})

	t.Run("maps with different configuration compare unequal", func(t *testing.T) {
		// Prepare
		a := New[string, int]()
		b, err := NewWithFullness[string, int](0.8, 0.25, 0.5, nil)
		assert.NoError(t, err, "creates custom map")

		// Execute / Check
		assert.False(t, a.Equal(b), "configuration is part of equality")
	})
}

func TestProbingMap_String(t *testing.T) {
	t.Run("renders the configured thresholds", func(t *testing.T) {
		// Prepare
		pm := New[string, int]()

		// Execute
		s := pm.String()

		// Check
		assert.Equal(t, "ProbingMap(0.75, 0.25, 0.50)", s, "correct rendering")
	})
}

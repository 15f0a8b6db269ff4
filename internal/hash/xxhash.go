package hash

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - The internally used hash algorithm is implemented by folding the key into an
// xxhash digest and masking the sign bit of the sum to get a non-negative value. Keys of the common
// scalar kinds are fed to the digest in their binary form, any other comparable kind goes through
// its printed representation which is deterministic within one key type.
type XXHashAlgorithm[K comparable] struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm[K comparable]() *XXHashAlgorithm[K] {
	return &XXHashAlgorithm[K]{}
}

// HashFunc - Given key it generates a deterministic non-negative hash value
func (X *XXHashAlgorithm[K]) HashFunc(key K) int64 {
	d := xxhash.New()
	writeKey(d, key)

	return int64(d.Sum64() & math.MaxInt64)
}

// writeKey - Feeds the binary form of key to the digest
func writeKey(d *xxhash.Digest, key any) {
	switch k := key.(type) {
	case string:
		_, _ = d.WriteString(k)
	case int:
		writeUint64(d, uint64(k))
	case int8:
		writeUint64(d, uint64(k))
	case int16:
		writeUint64(d, uint64(k))
	case int32:
		writeUint64(d, uint64(k))
	case int64:
		writeUint64(d, uint64(k))
	case uint:
		writeUint64(d, uint64(k))
	case uint8:
		writeUint64(d, uint64(k))
	case uint16:
		writeUint64(d, uint64(k))
	case uint32:
		writeUint64(d, uint64(k))
	case uint64:
		writeUint64(d, k)
	case uintptr:
		writeUint64(d, uint64(k))
	case float32:
		writeUint64(d, uint64(math.Float32bits(k)))
	case float64:
		writeUint64(d, math.Float64bits(k))
	case bool:
		if k {
			writeUint64(d, 1)
		} else {
			writeUint64(d, 0)
		}
	default:
		_, _ = fmt.Fprintf(d, "%#v", key)
	}
}

// writeUint64 - Writes v to the digest in little endian order
func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}

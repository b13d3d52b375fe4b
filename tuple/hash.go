package tuple

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
)

// Shared seed so equal tuples hash identically within a process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the tuple, combining element hashes
// order-dependently. Equal tuples hash identically.
func (t *Tuple) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var b [8]byte
	for _, v := range t.values {
		binary.LittleEndian.PutUint64(b[:], hashValue(v))
		h.Write(b[:])
	}
	return h.Sum64()
}

func hashValue(v any) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var b [8]byte
	switch x := v.(type) {
	case nil:
		h.WriteByte(0)
	case *Tuple:
		h.WriteByte(1)
		if x != nil {
			binary.LittleEndian.PutUint64(b[:], x.Hash())
			h.Write(b[:])
		}
	case bool:
		h.WriteByte(2)
		if x {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case string:
		h.WriteByte(3)
		h.WriteString(x)
	case int:
		hashInt(&h, int64(x))
	case int8:
		hashInt(&h, int64(x))
	case int16:
		hashInt(&h, int64(x))
	case int32:
		hashInt(&h, int64(x))
	case int64:
		hashInt(&h, x)
	case uint:
		hashUint(&h, uint64(x))
	case uint8:
		hashUint(&h, uint64(x))
	case uint16:
		hashUint(&h, uint64(x))
	case uint32:
		hashUint(&h, uint64(x))
	case uint64:
		hashUint(&h, x)
	case float32:
		hashFloat(&h, float64(x))
	case float64:
		hashFloat(&h, x)
	default:
		// Fallback hashes the dynamic type and formatted value. This keeps
		// hashing consistent with equality for value kinds whose formatted
		// form determines equality.
		h.WriteByte(9)
		h.WriteString(fmt.Sprintf("%T", v))
		h.WriteString(stringify(v))
	}
	return h.Sum64()
}

func hashInt(h *maphash.Hash, v int64) {
	var b [8]byte
	h.WriteByte(4)
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	h.Write(b[:])
}

func hashUint(h *maphash.Hash, v uint64) {
	var b [8]byte
	h.WriteByte(5)
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func hashFloat(h *maphash.Hash, v float64) {
	var b [8]byte
	h.WriteByte(6)
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	h.Write(b[:])
}

package tag

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the tag, consistent with Equal
// within one process.
// It panics if t is nil.
func (t *Tag) Hash() uint64 {
	if t == nil {
		panic("tag: Hash called on nil tag")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(t.Type))

	var b [8]byte
	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(b[:], v)
		h.Write(b[:])
	}
	switch t.Type {
	case ByteType:
		h.WriteByte(byte(t.Byte))
	case ShortType:
		putU64(uint64(t.Short))
	case IntType:
		putU64(uint64(t.Int))
	case LongType:
		putU64(uint64(t.Long))
	case FloatType:
		putU64(uint64(math.Float32bits(t.Float)))
	case DoubleType:
		putU64(math.Float64bits(t.Double))
	case StringType:
		h.WriteString(t.String)
	case ByteArrayType:
		putU64(uint64(len(t.Bytes)))
		h.Write(t.Bytes)
	case IntArrayType:
		putU64(uint64(len(t.Ints)))
		for _, v := range t.Ints {
			putU64(uint64(v))
		}
	case ListType:
		for _, v := range t.Values {
			// order dependent
			putU64(v.Hash())
		}
	case CompoundType:
		// order independent: combine per-entry hashes commutatively
		var sum uint64
		for k, v := range t.Fields {
			var eh maphash.Hash
			eh.SetSeed(hashSeed)
			eh.WriteString(k)
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			eh.Write(b[:])
			sum += eh.Sum64()
		}
		putU64(sum)
	}
	return h.Sum64()
}

package ffloat

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/shabbyrobe/go-ffloat/fast"
)

// canonical returns the bit pattern of f with -0 folded into +0, which is
// what adding +0 does under round-to-nearest. Values that are Equal have
// the same canonical bits.
func (f FFloat[T]) canonical() []byte {
	var buf [8]byte
	bits := fast.Bits(f.v + 0)
	if fast.Width[T]() == 32 {
		binary.LittleEndian.PutUint32(buf[:4], uint32(bits))
		return buf[:4]
	}
	binary.LittleEndian.PutUint64(buf[:], bits)
	return buf[:]
}

// Hash returns the xxhash64 of f's canonical bit pattern. If a.Equal(b)
// then a.Hash() == b.Hash().
//
// FFloat is comparable, so it can also be used directly as a Go map key;
// the runtime already treats -0 and +0 as the same key.
func (f FFloat[T]) Hash() uint64 {
	f.check("hash")
	return xxhash.Sum64(f.canonical())
}

// WriteHash feeds f's canonical bit pattern into d, for hashing composite
// keys.
func (f FFloat[T]) WriteHash(d *xxhash.Digest) {
	f.check("hash")
	_, _ = d.Write(f.canonical())
}

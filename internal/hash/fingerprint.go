// Package hash computes content fingerprints of packed LZW streams.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 of a bit stream: its bytes followed by the
// little-endian bit count.
//
// Mixing in the bit count separates streams whose bytes match but whose final
// byte carries a different amount of padding.
func Fingerprint(data []byte, bitCount int) uint64 {
	var tail [8]byte
	binary.LittleEndian.PutUint64(tail[:], uint64(bitCount))

	d := xxhash.New()
	_, _ = d.Write(data)
	_, _ = d.Write(tail[:])

	return d.Sum64()
}

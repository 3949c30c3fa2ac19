package codec

import "github.com/arloliu/lzw/internal/hash"

// Stream is a packed LZW code stream.
//
// BitCount is the exact number of meaningful bits; the last byte of Data is
// zero padded. Both values are needed to decode, since the stream itself
// carries no header or end marker.
type Stream struct {
	Data     []byte
	BitCount int
}

// ByteCount returns len(Data), which is BitCount rounded up to whole bytes.
func (s Stream) ByteCount() int {
	return len(s.Data)
}

// Fingerprint returns an xxHash64 of the packed bytes and the bit count.
//
// Encoding is deterministic, so equal inputs always yield equal fingerprints.
func (s Stream) Fingerprint() uint64 {
	return hash.Fingerprint(s.Data, s.BitCount)
}

// CompressionRatio returns ByteCount / originalSize, or 0 when originalSize is zero.
//
// Values below 1.0 mean the stream is smaller than the input.
func (s Stream) CompressionRatio(originalSize int) float64 {
	if originalSize == 0 {
		return 0.0
	}

	return float64(s.ByteCount()) / float64(originalSize)
}

// Stats describes one encode or decode session.
type Stats struct {
	// BytesIn is the raw input size when encoding, the packed size when decoding.
	BytesIn int
	// BytesOut is the packed size when encoding, the produced output when decoding.
	BytesOut int
	// Codes is the number of codes written or read.
	Codes int
	// Clears counts dictionary resets.
	Clears int
	// Width is the code width in effect when the session ended.
	Width int
}

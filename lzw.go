// Package lzw provides a headerless Lempel-Ziv-Welch compressor for in-memory buffers.
//
// The compressed stream holds nothing but variable-width codes: no magic
// number, no header, no dictionary and no end marker. The decoder rebuilds the
// dictionary from the codes themselves, so it only needs the packed bytes and
// their exact bit count.
//
// # Core Features
//
//   - 9-bit codes growing to 12 bits as the dictionary fills
//   - Automatic dictionary clear at 4096 entries
//   - Bounded decoding into a caller-owned buffer, with a correct prefix
//     returned when the buffer is too small
//   - Injectable fatal-condition reporter (default: log and exit)
//   - Deterministic output with xxHash64 stream fingerprints
//
// # Basic Usage
//
//	import "github.com/arloliu/lzw"
//
//	s, err := lzw.Encode(data)
//	if err != nil {
//	    return err
//	}
//	// persist s.Data and s.BitCount together
//
//	out := make([]byte, len(data))
//	n, err := lzw.DecodeStream(s, out)
//	// out[:n] equals data
//
// # Package Structure
//
// This package wraps a default codec.Codec for the common cases. Use package
// codec directly to configure reporting, logging or buffer growth, and
// package bitstream for the underlying bit buffers.
package lzw

import (
	"github.com/arloliu/lzw/codec"
)

// New creates a codec with custom options.
//
// Available options:
//   - codec.WithReporter(r) - receive fatal conditions instead of exiting
//   - codec.WithLogger(logger) - zerolog logger for session summaries
//   - codec.WithInitialBits(n) / codec.WithGranularity(g) - encoder buffer growth
//
// Example:
//
//	c, err := lzw.New(codec.WithReporter(errs.PanicReporter{}))
func New(opts ...codec.Option) (*codec.Codec, error) {
	return codec.New(opts...)
}

// Encode compresses data with the default codec.
//
// Empty input is a fatal condition: the default codec logs it and exits.
func Encode(data []byte) (codec.Stream, error) {
	return codec.Default().Encode(data)
}

// Decode decompresses bitCount bits of data into dst with the default codec
// and returns the number of bytes written.
//
// When dst is smaller than the original data, Decode fills it with the leading
// bytes and returns len(dst).
func Decode(data []byte, bitCount int, dst []byte) (int, error) {
	return codec.Default().Decode(data, bitCount, dst)
}

// DecodeStream decompresses s into dst with the default codec.
func DecodeStream(s codec.Stream, dst []byte) (int, error) {
	return codec.Default().DecodeStream(s, dst)
}

// DecodeAll decompresses s into a newly allocated slice with the default codec.
func DecodeAll(s codec.Stream) ([]byte, error) {
	return codec.Default().DecodeAll(s)
}

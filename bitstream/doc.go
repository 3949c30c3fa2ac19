// Package bitstream provides the bit-addressable buffers used by the LZW codec.
//
// Writer owns a growable byte buffer and appends bits least-significant bit
// first within each byte. Reader walks a borrowed buffer in the same order and
// stops at an exact bit count, so the zero padding of the final byte is never
// mistaken for data.
//
// # Basic Usage
//
//	w, _ := bitstream.NewWriter()
//	w.AppendBitsU64(0x1ff, 9)
//	w.AppendBitsU64(0x041, 9)
//
//	r, _ := bitstream.NewReader(w.Bytes(), w.BitCount())
//	first, _ := r.ReadBitsU64(9)  // 0x1ff
//	second, _ := r.ReadBitsU64(9) // 0x041
//
// # Ownership
//
// Writer.Release hands the buffer to the caller and resets the writer, which
// may then be used again as if newly created. Reader never copies or modifies
// the slice it reads from.
//
// # Thread Safety
//
// Neither type is safe for concurrent mutation. A Reader only reads its
// buffer, but its cursor is unsynchronized state.
package bitstream

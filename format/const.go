// Package format defines the fixed constants of the headerless LZW wire format.
//
// The stream carries no header, so encoder and decoder must agree on every
// value below. Codes are packed least-significant bit first, and the code
// width grows with the dictionary:
//
//	entries   0..511   9 bits
//	entries 512..1023 10 bits
//	entries 1024..2047 11 bits
//	entries 2048..4095 12 bits
//	entries 4096       clear, back to 9 bits and 256 entries
package format

const (
	Nil        = -1                   // Nil marks "no code": a root entry's prefix or an empty sequence.
	StartBits  = 9                    // StartBits is the code width right after construction or a clear.
	MaxBits    = 12                   // MaxBits is the widest code the stream may contain.
	FirstCode  = 1 << (StartBits - 1) // FirstCode is the first code assigned to a multi-byte sequence (256).
	MaxEntries = 1 << MaxBits         // MaxEntries is the dictionary capacity (4096).
)

package bitstream

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/lzw/errs"
	"github.com/arloliu/lzw/internal/options"
)

const (
	// DefaultInitialBits is the capacity of a new Writer: 8192 bits (1KiB).
	DefaultInitialBits = 8192
	// DefaultGranularity is the factor applied to the capacity when the writer runs out of room.
	DefaultGranularity = 2
)

// Writer is a growable, exclusively owned bit buffer.
//
// Bits are written at the cursor starting from the least significant bit of
// each byte. The buffer length always equals the allocated capacity; unused
// bytes are zero, so the trailing partial byte is zero padded.
type Writer struct {
	buf         []byte // allocated bytes; len(buf) is the capacity
	granularity int    // capacity multiplier applied on auto-growth
	bytePos     int    // byte currently being written
	bitPos      int    // next bit inside buf[bytePos], 0..7
	bitCount    int    // bits written, padding excluded

	initialBits int
	reporter    errs.Reporter
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithInitialBits sets the initial capacity in bits.
func WithInitialBits(n int) WriterOption {
	return options.New(func(w *Writer) error {
		if n < 0 {
			return fmt.Errorf("%w: initial bits %d", errs.ErrInvalidArgument, n)
		}
		w.initialBits = n

		return nil
	})
}

// WithGranularity sets the capacity multiplier used when the buffer is exhausted.
//
// Values below 2 could never grow the buffer and are rejected.
func WithGranularity(g int) WriterOption {
	return options.New(func(w *Writer) error {
		if g < 2 {
			return fmt.Errorf("%w: growth granularity %d, must be >= 2", errs.ErrInvalidArgument, g)
		}
		w.granularity = g

		return nil
	})
}

// WithWriterReporter sets the reporter receiving invalid construction parameters.
func WithWriterReporter(r errs.Reporter) WriterOption {
	return options.NoError(func(w *Writer) {
		w.reporter = r
	})
}

// NewWriter creates a Writer with DefaultInitialBits capacity and DefaultGranularity.
//
// Every option is applied before validation failures are reported, so a
// WithWriterReporter anywhere in opts receives them. Invalid options are
// reported through the configured reporter; if the reporter
// returns, NewWriter returns the error and a nil Writer.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		granularity: DefaultGranularity,
		initialBits: DefaultInitialBits,
	}

	if err := options.ApplyAll(w, opts...); err != nil {
		return nil, errs.Report(w.reporter, fmt.Errorf("bitstream writer: %w", err))
	}

	w.Allocate(w.initialBits)

	return w, nil
}

// Allocate ensures the buffer holds at least bitsWanted bits.
//
// Requests of zero or fewer bits allocate one byte. A request that is not a
// whole number of bytes is rounded up to the next power of two. Allocate never
// shrinks the buffer and preserves everything written so far.
func (w *Writer) Allocate(bitsWanted int) {
	if bitsWanted <= 0 {
		bitsWanted = 8
	}

	if bitsWanted%8 != 0 {
		bitsWanted = nextPowerOfTwo(bitsWanted)
	}

	size := bitsWanted / 8
	if size <= len(w.buf) {
		return
	}

	grown := make([]byte, size)
	copy(grown, w.buf)
	w.buf = grown
}

// SetGranularity changes the growth multiplier. Values below 2 are clamped to 2.
func (w *Writer) SetGranularity(g int) {
	w.granularity = max(g, 2)
}

// AppendBit writes the lowest bit of bit at the cursor.
func (w *Writer) AppendBit(bit uint) {
	if w.bytePos == len(w.buf) {
		// Only reachable on a released writer.
		w.Allocate(w.initialBits)
	}

	mask := byte(1) << w.bitPos
	if bit&1 != 0 {
		w.buf[w.bytePos] |= mask
	} else {
		w.buf[w.bytePos] &^= mask
	}
	w.bitCount++

	w.bitPos++
	if w.bitPos == 8 {
		w.bitPos = 0
		w.bytePos++
		if w.bytePos == len(w.buf) {
			w.Allocate(len(w.buf) * w.granularity * 8)
		}
	}
}

// AppendBitsU64 writes the low bitCount bits of v, least significant bit first.
//
// bitCount must be in [0, 64].
func (w *Writer) AppendBitsU64(v uint64, bitCount int) {
	if bitCount < 0 || bitCount > 64 {
		panic(fmt.Sprintf("bitstream: bit count %d out of range [0, 64]", bitCount))
	}

	for b := range bitCount {
		w.AppendBit(uint(v>>b) & 1)
	}
}

// Release transfers the buffer to the caller and resets the writer.
//
// The returned slice is trimmed to ByteCount. After Release the writer is
// empty; the next append allocates the initial capacity the writer was
// created with, and growth uses the default granularity again.
func (w *Writer) Release() []byte {
	out := w.buf[:w.ByteCount()]

	w.buf = nil
	w.granularity = DefaultGranularity
	w.bytePos = 0
	w.bitPos = 0
	w.bitCount = 0

	return out
}

// Bytes returns the written bytes, including the padded final byte.
//
// The slice aliases the internal buffer and is valid until the next append or Release.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.ByteCount()]
}

// ByteCount returns the number of bytes in use: BitCount rounded up to whole bytes.
func (w *Writer) ByteCount() int {
	return (w.bitCount + 7) / 8
}

// BitCount returns the number of bits written, excluding padding.
func (w *Writer) BitCount() int {
	return w.bitCount
}

// Cap returns the allocated capacity in bytes.
func (w *Writer) Cap() int {
	return len(w.buf)
}

// nextPowerOfTwo rounds n up to a power of two, e.g. 37 => 64.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

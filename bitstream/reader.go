package bitstream

import (
	"fmt"

	"github.com/arloliu/lzw/errs"
	"github.com/arloliu/lzw/internal/options"
)

// Reader reads bits from a borrowed byte slice, least significant bit first.
//
// The reader stops at bitCount, which may be smaller than len(data)*8 when
// the final byte carries padding.
type Reader struct {
	data     []byte // borrowed, never modified
	bitCount int    // valid bits in data
	bytePos  int    // byte currently being read
	bitPos   int    // next bit inside data[bytePos], 0..7
	bitsRead int

	reporter errs.Reporter
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithReaderReporter sets the reporter receiving invalid arguments and stream underruns.
func WithReaderReporter(r errs.Reporter) ReaderOption {
	return options.NoError(func(rd *Reader) {
		rd.reporter = r
	})
}

// NewReader creates a Reader over data holding bitCount valid bits.
//
// bitCount must lie in [0, len(data)*8]; anything else is reported as
// errs.ErrInvalidArgument.
func NewReader(data []byte, bitCount int, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		data:     data,
		bitCount: bitCount,
	}

	if err := options.ApplyAll(r, opts...); err != nil {
		return nil, errs.Report(r.reporter, fmt.Errorf("bitstream reader: %w", err))
	}

	if bitCount < 0 || bitCount > len(data)*8 {
		return nil, errs.Report(r.reporter,
			fmt.Errorf("%w: bit count %d does not fit in %d bytes", errs.ErrInvalidArgument, bitCount, len(data)))
	}

	return r, nil
}

// NewReaderFromWriter creates a Reader over the bits currently held by w.
//
// The reader aliases w's buffer; appending to w afterwards may reallocate it.
func NewReaderFromWriter(w *Writer, opts ...ReaderOption) (*Reader, error) {
	return NewReader(w.Bytes(), w.BitCount(), opts...)
}

// IsEndOfStream reports whether every valid bit has been read.
func (r *Reader) IsEndOfStream() bool {
	return r.bitsRead >= r.bitCount
}

// ReadNextBit returns the next bit. At the end of the stream it returns
// ok == false and leaves the reader unchanged.
func (r *Reader) ReadNextBit() (bit uint, ok bool) {
	if r.bitsRead >= r.bitCount {
		return 0, false
	}

	bit = uint(r.data[r.bytePos]>>r.bitPos) & 1
	r.bitsRead++

	r.bitPos++
	if r.bitPos == 8 {
		r.bitPos = 0
		r.bytePos++
	}

	return bit, true
}

// ReadBitsU64 reads bitCount bits, least significant bit first.
//
// Running out of bits part way is a stream/format mismatch: it is reported as
// errs.ErrStreamUnderrun and, if the reporter returns, returned together with
// the bits gathered so far. Callers that want a graceful stop check
// IsEndOfStream or use ReadNextBit.
func (r *Reader) ReadBitsU64(bitCount int) (uint64, error) {
	if bitCount < 0 || bitCount > 64 {
		panic(fmt.Sprintf("bitstream: bit count %d out of range [0, 64]", bitCount))
	}

	var v uint64
	for b := range bitCount {
		bit, ok := r.ReadNextBit()
		if !ok {
			return v, errs.Report(r.reporter, fmt.Errorf("%w: wanted %d bits, stream ended after %d",
				errs.ErrStreamUnderrun, bitCount, b))
		}
		v |= uint64(bit) << b
	}

	return v, nil
}

// Reset rewinds the reader to the first bit.
func (r *Reader) Reset() {
	r.bytePos = 0
	r.bitPos = 0
	r.bitsRead = 0
}

// BitsRead returns the number of bits consumed so far.
func (r *Reader) BitsRead() int {
	return r.bitsRead
}

// BitCount returns the number of valid bits in the stream.
func (r *Reader) BitCount() int {
	return r.bitCount
}

// Remaining returns the number of bits left to read.
func (r *Reader) Remaining() int {
	return r.bitCount - r.bitsRead
}

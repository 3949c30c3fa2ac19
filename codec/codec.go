package codec

import (
	"fmt"

	"github.com/arloliu/lzw/errs"
	"github.com/arloliu/lzw/internal/options"
)

// Codec encodes and decodes headerless LZW streams.
//
// A Codec only holds configuration; every call runs its own session with its
// own dictionary, so a Codec is safe for concurrent use.
type Codec struct {
	cfg Config
}

// New creates a Codec.
//
// Every option is applied even if an earlier one fails, so a WithReporter
// anywhere in opts receives the first configuration error.
func New(opts ...Option) (*Codec, error) {
	cfg := defaultConfig()

	if err := options.ApplyAll(&cfg, opts...); err != nil {
		return nil, errs.Report(cfg.reporter, fmt.Errorf("lzw codec: %w", err))
	}

	return &Codec{cfg: cfg}, nil
}

var defaultCodec = &Codec{cfg: defaultConfig()}

// Default returns the Codec with default settings: fatal conditions are
// logged to stderr and terminate the process.
func Default() *Codec {
	return defaultCodec
}

// Encode compresses src into a packed stream owned by the caller.
//
// Empty input is reported as errs.ErrInvalidArgument.
func (c *Codec) Encode(src []byte) (Stream, error) {
	if len(src) == 0 {
		return Stream{}, errs.Report(c.cfg.reporter, fmt.Errorf("%w: empty input", errs.ErrInvalidArgument))
	}

	enc, err := c.NewEncoder()
	if err != nil {
		return Stream{}, err
	}
	defer enc.Close()

	if err := enc.Write(src); err != nil {
		return Stream{}, err
	}

	return enc.Finish()
}

// Decode decompresses bitCount bits of data into dst and returns the number
// of bytes written.
//
// The count is smaller than the original length only when dst is too small;
// the bytes written are then the leading part of the original. Empty buffers
// and bit counts outside (0, len(data)*8] are reported as errs.ErrInvalidArgument.
func (c *Codec) Decode(data []byte, bitCount int, dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, errs.Report(c.cfg.reporter, fmt.Errorf("%w: empty destination", errs.ErrInvalidArgument))
	}

	dec, err := c.NewDecoder(data, bitCount)
	if err != nil {
		return 0, err
	}

	return dec.DecodeTo(dst)
}

// DecodeStream is Decode for a Stream.
func (c *Codec) DecodeStream(s Stream, dst []byte) (int, error) {
	return c.Decode(s.Data, s.BitCount, dst)
}

// DecodeAll decompresses s into a newly allocated slice sized by the output.
func (c *Codec) DecodeAll(s Stream) ([]byte, error) {
	dec, err := c.NewDecoder(s.Data, s.BitCount)
	if err != nil {
		return nil, err
	}

	return dec.DecodeAll()
}

package codec

import (
	"errors"
	"fmt"

	"github.com/arloliu/lzw/bitstream"
	"github.com/arloliu/lzw/errs"
	"github.com/arloliu/lzw/format"
	"github.com/arloliu/lzw/internal/dictionary"
	"github.com/arloliu/lzw/internal/pool"
	"github.com/rs/zerolog"
)

// Decoder rebuilds raw bytes from a packed LZW code stream.
//
// The decoder owns no buffers: it reads from the caller's stream and writes
// into the caller's destination. The dictionary is rebuilt from the codes
// themselves, one step behind the encoder:
//
//	read code at the current width
//	after start or clear: code is a raw byte, output it, remember it
//	code >= size: output seq(prev) + first byte of seq(prev)
//	otherwise:    output seq(code)
//	add (prev, first byte); flush; prev = Nil if cleared, else code
//
// Decoding ends when the stream runs out of bits. A Decoder may be run more
// than once; every run starts from the beginning of the stream. It is not safe
// for concurrent use.
type Decoder struct {
	reader *bitstream.Reader
	stats  Stats

	reporter errs.Reporter
	logger   zerolog.Logger
}

// NewDecoder prepares a decoder over data holding bitCount valid bits.
//
// Empty data, a non-positive bit count or one exceeding len(data)*8 is
// reported as errs.ErrInvalidArgument.
func (c *Codec) NewDecoder(data []byte, bitCount int) (*Decoder, error) {
	if len(data) == 0 || bitCount <= 0 || bitCount > len(data)*8 {
		return nil, errs.Report(c.cfg.reporter, fmt.Errorf("%w: %d bytes with %d bits",
			errs.ErrInvalidArgument, len(data), bitCount))
	}

	r, err := bitstream.NewReader(data, bitCount, bitstream.WithReaderReporter(c.cfg.reporter))
	if err != nil {
		return nil, err
	}

	return &Decoder{
		reader:   r,
		reporter: c.cfg.reporter,
		logger:   c.cfg.logger,
	}, nil
}

// DecodeTo decodes into dst and returns the number of bytes written.
//
// A dst too small for the whole output is not an error: decoding stops when
// dst is full and the returned count equals len(dst), holding a correct prefix
// of the original data. An empty dst is reported as errs.ErrInvalidArgument.
func (d *Decoder) DecodeTo(dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, errs.Report(d.reporter, fmt.Errorf("%w: empty destination", errs.ErrInvalidArgument))
	}

	out := &fixedSink{dst: dst}
	err := d.run(out)
	if errors.Is(err, errs.ErrOutputOverflow) {
		d.logger.Debug().Int("capacity", len(dst)).Msg("lzw decode stopped: destination full")
		err = nil
	}

	return out.len(), err
}

// DecodeAll decodes the whole stream into a newly allocated slice.
func (d *Decoder) DecodeAll() ([]byte, error) {
	buf := pool.GetOutputBuffer()
	defer pool.PutOutputBuffer(buf)

	if err := d.run(&growSink{buf: buf}); err != nil {
		return nil, err
	}

	return buf.Clone(), nil
}

// Stats returns the counters of the most recent run.
func (d *Decoder) Stats() Stats {
	return d.stats
}

func (d *Decoder) run(out sink) error {
	dict, releaseDict := pool.GetDictionary(d.reporter)
	defer releaseDict()

	scratch, releaseScratch := pool.GetSequenceBuffer()
	defer releaseScratch()

	d.reader.Reset()
	d.stats = Stats{BytesIn: (d.reader.BitCount() + 7) / 8}

	var (
		prev  = format.Nil
		first byte
		width = format.StartBits
	)

	defer func() {
		d.stats.BytesOut = out.len()
		d.stats.Width = width
		d.logger.Debug().
			Int("bytes_in", d.stats.BytesIn).
			Int("bytes_out", d.stats.BytesOut).
			Int("codes", d.stats.Codes).
			Int("clears", d.stats.Clears).
			Msg("lzw decode finished")
	}()

	for !d.reader.IsEndOfStream() {
		v, err := d.reader.ReadBitsU64(width)
		if err != nil {
			return err
		}
		code := int(v)
		d.stats.Codes++

		if prev == format.Nil {
			if code >= format.FirstCode {
				return errs.Report(d.reporter, fmt.Errorf("%w: code %d where a raw byte was expected", errs.ErrInvalidCode, code))
			}
			if err := out.writeByte(byte(code)); err != nil {
				return err
			}
			first = byte(code)
			prev = code

			continue
		}

		if code >= dict.Size() {
			// The encoder defined this code in the same step it emitted it.
			seq, err := d.sequence(dict, prev, scratch)
			if err != nil {
				return err
			}
			first = seq[0]
			if err := out.write(seq); err != nil {
				return err
			}
			if err := out.writeByte(first); err != nil {
				return err
			}
		} else {
			seq, err := d.sequence(dict, code, scratch)
			if err != nil {
				return err
			}
			first = seq[0]
			if err := out.write(seq); err != nil {
				return err
			}
		}

		if err := dict.Add(prev, first); err != nil {
			return err
		}

		var cleared bool
		width, cleared = dict.Flush(width)
		if cleared {
			d.stats.Clears++
			d.logger.Debug().Int("codes", d.stats.Codes).Msg("dictionary cleared")
			prev = format.Nil
		} else {
			prev = code
		}
	}

	return nil
}

// sequence walks the prefix chain of code and returns its bytes in order.
//
// The chain is written back to front into scratch, so the result aliases
// scratch and is valid until the next call.
func (d *Decoder) sequence(dict *dictionary.Dictionary, code int, scratch []byte) ([]byte, error) {
	i := len(scratch)
	for c := code; ; {
		if i == 0 {
			return nil, errs.Report(d.reporter, fmt.Errorf("%w: prefix chain of code %d exceeds %d bytes",
				errs.ErrInvalidCode, code, len(scratch)))
		}

		e := dict.Entry(c)
		i--
		scratch[i] = e.Value
		if e.Prefix == format.Nil {
			return scratch[i:], nil
		}
		c = e.Prefix
	}
}

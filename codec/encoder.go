package codec

import (
	"fmt"

	"github.com/arloliu/lzw/bitstream"
	"github.com/arloliu/lzw/errs"
	"github.com/arloliu/lzw/format"
	"github.com/arloliu/lzw/internal/dictionary"
	"github.com/arloliu/lzw/internal/pool"
	"github.com/rs/zerolog"
)

// Encoder turns raw bytes into a packed LZW code stream.
//
// Bytes are accumulated into the longest sequence already in the dictionary;
// when the next byte would leave the dictionary, the pending code is written
// at the current width, the dictionary learns the extended sequence and a new
// sequence starts at that byte:
//
//	for each byte v:
//	    if (code, v) is known: code = that entry
//	    else: emit code; flush; add (code, v) unless cleared; code = v
//	emit code if one is pending
//
// An Encoder is single use: Finish returns the stream and releases the
// encoder's resources. It is not safe for concurrent use.
type Encoder struct {
	dict    *dictionary.Dictionary
	release func()
	writer  *bitstream.Writer

	code  int // pending sequence, format.Nil when none
	width int
	stats Stats

	reporter errs.Reporter
	logger   zerolog.Logger
}

// NewEncoder starts an encode session.
func (c *Codec) NewEncoder() (*Encoder, error) {
	w, err := bitstream.NewWriter(c.cfg.writerOption())
	if err != nil {
		return nil, err
	}

	dict, release := pool.GetDictionary(c.cfg.reporter)

	return &Encoder{
		dict:     dict,
		release:  release,
		writer:   w,
		code:     format.Nil,
		width:    format.StartBits,
		reporter: c.cfg.reporter,
		logger:   c.cfg.logger,
	}, nil
}

// Write encodes p. It may be called any number of times before Finish.
func (e *Encoder) Write(p []byte) error {
	if e.writer == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	for _, v := range p {
		if code := e.dict.FindIndex(e.code, v); code != format.Nil {
			e.code = code
			continue
		}

		e.emit(e.code)

		var cleared bool
		e.width, cleared = e.dict.Flush(e.width)
		if cleared {
			e.stats.Clears++
			e.logger.Debug().Int("codes", e.stats.Codes).Int("bytes_in", e.stats.BytesIn).Msg("dictionary cleared")
		} else if err := e.dict.Add(e.code, v); err != nil {
			return err
		}

		e.code = int(v)
	}
	e.stats.BytesIn += len(p)

	return nil
}

// Finish writes the pending code and hands over the packed stream.
//
// Finishing an encoder that saw no input reports errs.ErrInvalidArgument.
// After Finish the encoder must not be used again.
func (e *Encoder) Finish() (Stream, error) {
	if e.writer == nil {
		panic("encoder already finished")
	}
	defer e.Close()

	if e.stats.BytesIn == 0 {
		return Stream{}, errs.Report(e.reporter, fmt.Errorf("%w: nothing to encode", errs.ErrInvalidArgument))
	}

	if e.code != format.Nil {
		e.emit(e.code)
	}

	bitCount := e.writer.BitCount()
	s := Stream{Data: e.writer.Release(), BitCount: bitCount}

	e.stats.BytesOut = s.ByteCount()
	e.stats.Width = e.width
	e.logger.Debug().
		Int("bytes_in", e.stats.BytesIn).
		Int("bytes_out", e.stats.BytesOut).
		Int("bits", bitCount).
		Int("codes", e.stats.Codes).
		Int("clears", e.stats.Clears).
		Msg("lzw encode finished")

	return s, nil
}

// Close releases the encoder's resources without producing a stream. It is
// safe to call more than once and after Finish.
func (e *Encoder) Close() {
	if e.writer == nil {
		return
	}

	e.release()
	e.dict = nil
	e.writer = nil
}

// Stats returns the counters of this session.
func (e *Encoder) Stats() Stats {
	s := e.stats
	s.Width = e.width

	return s
}

func (e *Encoder) emit(code int) {
	e.writer.AppendBitsU64(uint64(code), e.width)
	e.stats.Codes++
}

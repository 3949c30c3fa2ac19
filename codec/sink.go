package codec

import (
	"github.com/arloliu/lzw/errs"
	"github.com/arloliu/lzw/internal/pool"
)

// sink receives decoded bytes.
type sink interface {
	write(p []byte) error
	writeByte(b byte) error
	len() int
}

// fixedSink writes into a caller-owned buffer and stops with
// errs.ErrOutputOverflow once it is full, keeping every byte that fit.
type fixedSink struct {
	dst []byte
	n   int
}

func (s *fixedSink) write(p []byte) error {
	copied := copy(s.dst[s.n:], p)
	s.n += copied
	if copied < len(p) {
		return errs.ErrOutputOverflow
	}

	return nil
}

func (s *fixedSink) writeByte(b byte) error {
	if s.n == len(s.dst) {
		return errs.ErrOutputOverflow
	}
	s.dst[s.n] = b
	s.n++

	return nil
}

func (s *fixedSink) len() int {
	return s.n
}

// growSink appends to a pooled buffer without bound.
type growSink struct {
	buf *pool.ByteBuffer
}

func (s *growSink) write(p []byte) error {
	_, err := s.buf.Write(p)
	return err
}

func (s *growSink) writeByte(b byte) error {
	return s.buf.WriteByte(b)
}

func (s *growSink) len() int {
	return s.buf.Len()
}

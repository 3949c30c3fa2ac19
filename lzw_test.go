package lzw

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/arloliu/lzw/codec"
	"github.com/arloliu/lzw/errs"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	data := bytes.Repeat([]byte("lzw round trip through the package wrappers. "), 200)

	s, err := Encode(data)
	require.NoError(t, err)
	require.Less(t, s.ByteCount(), len(data))

	out := make([]byte, len(data))
	n, err := Decode(s.Data, s.BitCount, out)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, out)
}

func TestDecodeStreamShortBuffer(t *testing.T) {
	data := []byte("AAAAAAAAAAAAAAAA")

	s, err := Encode(data)
	require.NoError(t, err)

	out := make([]byte, 5)
	n, err := DecodeStream(s, out)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, data[:5], out)
}

func TestDecodeAll(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	data := make([]byte, 100_000)
	_, _ = rnd.Read(data)

	s, err := Encode(data)
	require.NoError(t, err)

	out, err := DecodeAll(s)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestNew(t *testing.T) {
	c, err := New(codec.WithReporter(errs.PanicReporter{}))
	require.NoError(t, err)

	require.Panics(t, func() { _, _ = c.Encode(nil) })

	s, err := c.Encode([]byte("hello"))
	require.NoError(t, err)
	out, err := c.DecodeAll(s)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), out)
}

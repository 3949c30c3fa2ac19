package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.NoError(t, bb.WriteByte('!'))
	assert.Equal(t, []byte("hello!"), bb.B)
	assert.GreaterOrEqual(t, bb.Cap(), 6, "buffer should grow past its initial capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(OutputBufferDefaultSize)
	_, _ = bb.Write([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Clone(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("abc"))

	out := bb.Clone()
	bb.Reset()
	_, _ = bb.Write([]byte("xyz"))

	assert.Equal(t, []byte("abc"), out, "clone must not alias the buffer")
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		assert.Equal(t, 0, bb.Len())
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("put resets buffer", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)
		bb := p.Get()
		_, _ = bb.Write([]byte("data"))
		p.Put(bb)
		assert.Equal(t, 0, bb.Len())
	})

	t.Run("put ignores nil", func(t *testing.T) {
		p := NewByteBufferPool(64, 0)
		assert.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffers are not reset on put", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		bb := p.Get()
		_, _ = bb.Write(make([]byte, 32))
		p.Put(bb)
		assert.Equal(t, 32, bb.Len(), "discarded buffer keeps its contents")
	})

	t.Run("concurrent use", func(t *testing.T) {
		p := NewByteBufferPool(32, 1024)
		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				bb := p.Get()
				_ = bb.WriteByte(byte(i))
				assert.Equal(t, 1, bb.Len())
				p.Put(bb)
			}(i)
		}
		wg.Wait()
	})
}

func TestDefaultOutputPool(t *testing.T) {
	bb := GetOutputBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	PutOutputBuffer(bb)
}

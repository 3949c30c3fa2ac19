package pool

import (
	"sync"

	"github.com/arloliu/lzw/errs"
	"github.com/arloliu/lzw/format"
	"github.com/arloliu/lzw/internal/dictionary"
)

// Pools for per-call codec state. A dictionary is a 4096-slot table plus its
// index and a sequence buffer is 4KiB, so both are worth recycling between
// Encode/Decode calls.
var (
	sequencePool = sync.Pool{
		New: func() any {
			buf := make([]byte, format.MaxEntries)
			return &buf
		},
	}
	dictionaryPool = sync.Pool{
		New: func() any { return dictionary.New(nil) },
	}
)

// GetSequenceBuffer retrieves a scratch buffer of format.MaxEntries bytes.
//
// The buffer is large enough for the longest prefix chain a dictionary can
// hold. Its contents are undefined. The caller must call the returned cleanup
// function to return the buffer to the pool.
//
// Example:
//
//	scratch, cleanup := pool.GetSequenceBuffer()
//	defer cleanup()
func GetSequenceBuffer() ([]byte, func()) {
	ptr, _ := sequencePool.Get().(*[]byte)

	return *ptr, func() { sequencePool.Put(ptr) }
}

// GetDictionary retrieves a freshly reset dictionary reporting through reporter.
//
// The caller must call the returned cleanup function once the encode or
// decode session that owns the dictionary has finished.
func GetDictionary(reporter errs.Reporter) (*dictionary.Dictionary, func()) {
	d, _ := dictionaryPool.Get().(*dictionary.Dictionary)
	d.Reset()
	d.SetReporter(reporter)

	return d, func() {
		d.SetReporter(nil)
		dictionaryPool.Put(d)
	}
}

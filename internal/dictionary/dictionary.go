// Package dictionary implements the LZW code table shared by the encoder and decoder.
//
// Both sides build their own Dictionary from the code stream and must end up
// with identical contents at every step: the wire format carries no table.
package dictionary

import (
	"fmt"

	"github.com/arloliu/lzw/errs"
	"github.com/arloliu/lzw/format"
)

// Entry is one dictionary slot: the sequence of Prefix followed by Value.
//
// Prefix is format.Nil for the 256 single-byte roots.
type Entry struct {
	Prefix int
	Value  byte
}

// Dictionary maps (prefix code, next byte) pairs to codes.
//
// Entries 0..255 are the single-byte roots and survive every reset. New codes
// are appended in ascending order from format.FirstCode and never modified
// until the next reset. Slots at or beyond Size are stale and never consulted
// by lookups.
type Dictionary struct {
	entries [format.MaxEntries]Entry
	size    int

	// index holds exactly the live non-root entries, keyed by packKey.
	index map[uint32]int

	reporter errs.Reporter
}

// New creates a dictionary holding the 256 root entries.
//
// reporter receives errs.ErrDictionaryOverflow; nil selects errs.DefaultReporter.
func New(reporter errs.Reporter) *Dictionary {
	d := &Dictionary{
		index:    make(map[uint32]int, format.MaxEntries-format.FirstCode),
		reporter: reporter,
	}
	for i := range format.FirstCode {
		d.entries[i] = Entry{Prefix: format.Nil, Value: byte(i)}
	}
	d.size = format.FirstCode

	return d
}

// SetReporter replaces the reporter, for dictionaries recycled across sessions.
func (d *Dictionary) SetReporter(r errs.Reporter) {
	d.reporter = r
}

// Size returns the number of live entries, which is also the next code to be assigned.
func (d *Dictionary) Size() int {
	return d.size
}

// Entry returns the entry stored at code.
//
// code must be in [0, format.MaxEntries). Slots at or above Size hold stale
// data from before the last reset.
func (d *Dictionary) Entry(code int) Entry {
	return d.entries[code]
}

// FindIndex returns the code of the sequence prefix+value, or format.Nil when
// no live entry holds it.
//
// A Nil prefix always resolves to the root code, which equals value.
func (d *Dictionary) FindIndex(prefix int, value byte) int {
	if prefix == format.Nil {
		return int(value)
	}

	if code, ok := d.index[packKey(prefix, value)]; ok {
		return code
	}

	return format.Nil
}

// Add appends prefix+value under the next free code.
//
// Callers flush before adding, so a full table is a programming error: it is
// reported as errs.ErrDictionaryOverflow and the entry is dropped.
func (d *Dictionary) Add(prefix int, value byte) error {
	if d.size == format.MaxEntries {
		return errs.Report(d.reporter, fmt.Errorf("%w: cannot add entry %d", errs.ErrDictionaryOverflow, d.size))
	}

	d.entries[d.size] = Entry{Prefix: prefix, Value: value}

	// Keep the first code for a pair, as a front-to-back scan would.
	key := packKey(prefix, value)
	if _, dup := d.index[key]; !dup {
		d.index[key] = d.size
	}
	d.size++

	return nil
}

// Flush applies the code width schedule after a code has been emitted or consumed.
//
// When Size reaches 1<<width the width grows by one bit. Growing past
// format.MaxBits clears the dictionary back to its 256 roots and restarts at
// format.StartBits; cleared is true only in that case.
func (d *Dictionary) Flush(width int) (newWidth int, cleared bool) {
	if d.size != 1<<width {
		return width, false
	}

	width++
	if width > format.MaxBits {
		d.Reset()
		return format.StartBits, true
	}

	return width, false
}

// Reset drops every non-root entry.
func (d *Dictionary) Reset() {
	d.size = format.FirstCode
	clear(d.index)
}

// packKey builds the lookup key for a (prefix, value) pair. Prefix codes fit in 12 bits.
func packKey(prefix int, value byte) uint32 {
	return uint32(prefix)<<8 | uint32(value)
}

// Package errs holds the sentinel errors and the fatal-condition reporter shared by the lzw packages.
//
// Callers match errors with errors.Is; every error returned by the codec wraps
// one of the sentinels below with call-site context.
package errs

import "errors"

var (
	// ErrInvalidArgument reports nil/empty buffers, non-positive sizes or an out-of-range bit count.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStreamUnderrun reports a width-based read that asked for more bits than remain.
	ErrStreamUnderrun = errors.New("bit stream underrun")
	// ErrDictionaryOverflow reports an add on a dictionary that already holds 4096 entries.
	ErrDictionaryOverflow = errors.New("dictionary overflow")
	// ErrInvalidCode reports a code that cannot appear in a well-formed stream.
	ErrInvalidCode = errors.New("invalid code")
	// ErrOutputOverflow reports a full decoder destination. It is recoverable and never reported.
	ErrOutputOverflow = errors.New("output buffer too small")
)

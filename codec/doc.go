// Package codec implements the headerless LZW encoder and decoder.
//
// # Stream Format
//
// A stream is a bare sequence of variable-width codes, packed least
// significant bit first, with no header, dictionary or end marker. The width
// starts at 9 bits and follows the dictionary size (see package format); when
// the dictionary would exceed 4096 entries it is cleared and the width drops
// back to 9 bits. Because nothing about the schedule is transmitted, the
// decoder must replay exactly the same dictionary steps as the encoder.
//
// The decoder needs the exact bit count alongside the bytes: the final byte is
// zero padded and the padding is shorter than any code.
//
// # Basic Usage
//
//	c, _ := codec.New()
//	s, err := c.Encode(data)
//	if err != nil {
//	    return err
//	}
//
//	out := make([]byte, len(data))
//	n, err := c.Decode(s.Data, s.BitCount, out)
//	// out[:n] equals data
//
// # Error Handling
//
// Invalid arguments, stream underruns, invalid codes and dictionary overflows
// are fatal: they go to the configured errs.Reporter, which by default logs
// and exits. A reporter that returns turns them into errors wrapping the
// sentinels in package errs:
//
//	c, _ := codec.New(codec.WithReporter(errs.ReporterFunc(func(error) {})))
//	_, err := c.Decode(corrupted, bitCount, out)
//	if errors.Is(err, errs.ErrStreamUnderrun) {
//	    // stream and decoder disagree on the code widths
//	}
//
// A destination that is too small is not an error: Decode returns the bytes
// that fit.
//
// # Thread Safety
//
// Codec is safe for concurrent use. Encoder and Decoder sessions are not.
package codec

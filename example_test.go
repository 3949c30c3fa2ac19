package lzw_test

import (
	"errors"
	"fmt"

	"github.com/arloliu/lzw"
	"github.com/arloliu/lzw/codec"
	"github.com/arloliu/lzw/errs"
)

func Example() {
	data := []byte("TOBEORNOTTOBEORTOBEORNOT")

	s, err := lzw.Encode(data)
	if err != nil {
		panic(err)
	}

	out := make([]byte, len(data))
	n, err := lzw.DecodeStream(s, out)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(out[:n]))
	fmt.Println(s.BitCount, "bits in", s.ByteCount(), "bytes")
	// Output:
	// TOBEORNOTTOBEORTOBEORNOT
	// 144 bits in 18 bytes
}

func Example_shortBuffer() {
	s, _ := lzw.Encode([]byte("AAAAAAAAAAAAAAAA"))

	out := make([]byte, 4)
	n, _ := lzw.DecodeStream(s, out)

	fmt.Println(n, string(out[:n]))
	// Output:
	// 4 AAAA
}

func Example_reporter() {
	c, _ := lzw.New(codec.WithReporter(errs.ReporterFunc(func(err error) {
		fmt.Println("reported:", err)
	})))

	s, _ := c.Encode([]byte("hello, hello"))
	_, err := c.Decode(s.Data, s.BitCount-3, make([]byte, 64))
	fmt.Println(errors.Is(err, errs.ErrStreamUnderrun))
	// Output:
	// reported: bit stream underrun: wanted 9 bits, stream ended after 6
	// true
}

// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"strconv"
	"strings"

	"github.com/gtank/bignum/internal/word"
)

// String returns the base-10 representation of x, computed by repeated
// division by 10 of a scratch copy of the magnitude.
func (x *BigInt) String() string {
	if x.mag.IsZero() {
		return "0"
	}

	scratch := x.mag.Clone()
	var digits []byte
	for !scratch.IsZero() {
		q, r := word.DivModWord(scratch, 10)
		digits = append(digits, byte('0'+r))
		scratch = q
	}

	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
	return b.String()
}

// GoString returns a debug form listing the magnitude's words, least
// significant first, in braces, e.g. "-{1, 2, 3}".
func (x *BigInt) GoString() string {
	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}
	b.WriteByte('{')
	for i, w := range x.mag.Digits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(uint64(w), 10))
	}
	b.WriteByte('}')
	return b.String()
}

// WordsLE returns the magnitude's 32-bit words, least significant first.
func (x *BigInt) WordsLE() []uint32 {
	out := make([]uint32, len(x.mag.Digits))
	copy(out, x.mag.Digits)
	return out
}

// WordsBE returns the magnitude's 32-bit words, most significant first.
func (x *BigInt) WordsBE() []uint32 {
	le := x.WordsLE()
	out := make([]uint32, len(le))
	for i, w := range le {
		out[len(le)-1-i] = w
	}
	return out
}

// BytesLE returns the magnitude's bytes, least significant first.
func (x *BigInt) BytesLE() []byte {
	words := x.mag.Digits
	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		out = append(out,
			byte(w),
			byte(w>>8),
			byte(w>>16),
			byte(w>>24),
		)
	}
	for len(out) > 0 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	return out
}

// BytesBE returns the magnitude's bytes, most significant first.
func (x *BigInt) BytesBE() []byte {
	le := x.BytesLE()
	out := make([]byte, len(le))
	for i, v := range le {
		out[len(le)-1-i] = v
	}
	return out
}

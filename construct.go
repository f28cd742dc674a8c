// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"

	"github.com/gtank/bignum/internal/word"
)

// NewInt returns a BigInt equal to the signed 64-bit integer x.
func NewInt(x int64) *BigInt {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	z := &BigInt{neg: neg}
	z.mag.Resize(2)
	z.mag.Digits[0] = uint32(u)
	z.mag.Digits[1] = uint32(u >> 32)
	z.mag.Trunc()
	z.neg = normalizeZero(z.neg, &z.mag)
	return z
}

// NewFromWordsLE returns a non-negative BigInt from 32-bit words, least
// significant word first.
func NewFromWordsLE(words []uint32) *BigInt {
	z := &BigInt{}
	z.mag.Resize(len(words))
	copy(z.mag.Digits, words)
	z.mag.Trunc()
	return z
}

// NewFromWordsBE returns a non-negative BigInt from 32-bit words, most
// significant word first.
func NewFromWordsBE(words []uint32) *BigInt {
	le := make([]uint32, len(words))
	for i, w := range words {
		le[len(words)-1-i] = w
	}
	return NewFromWordsLE(le)
}

// NewFromBytesLE returns a non-negative BigInt from bytes, least
// significant byte first.
func NewFromBytesLE(b []byte) *BigInt {
	words := make([]uint32, (len(b)+3)/4)
	for i, v := range b {
		words[i/4] |= uint32(v) << (8 * uint(i%4))
	}
	return NewFromWordsLE(words)
}

// NewFromBytesBE returns a non-negative BigInt from bytes, most
// significant byte first.
func NewFromBytesBE(b []byte) *BigInt {
	le := make([]byte, len(b))
	for i, v := range b {
		le[len(b)-1-i] = v
	}
	return NewFromBytesLE(le)
}

// NewFromRandomWords returns a non-negative BigInt of (bits+31)/32 words,
// drawing 32-bit words from next. The top word is re-drawn until it is
// non-zero so the result has exactly that many words; the top word is not
// masked, so the bit length can be anything from 32*(words-1)+1 up to
// 32*words rather than exactly bits.
func NewFromRandomWords(bits int, next func() uint32) *BigInt {
	if bits <= 0 {
		return &BigInt{}
	}
	n := (bits + 31) / 32
	words := make([]uint32, n)
	for i := 0; i < n-1; i++ {
		words[i] = next()
	}
	top := next()
	for top == 0 {
		top = next()
	}
	words[n-1] = top
	return NewFromWordsLE(words)
}

// NewFromRandomBytes returns a non-negative BigInt of (bits+7)/8 bytes,
// drawing bytes from next. The top byte is re-drawn until it is non-zero;
// it is not masked, so the bit length can be anything from
// 8*(bytes-1)+1 up to 8*bytes rather than exactly bits.
func NewFromRandomBytes(bits int, next func() uint8) *BigInt {
	if bits <= 0 {
		return &BigInt{}
	}
	n := (bits + 7) / 8
	b := make([]byte, n)
	for i := 0; i < n-1; i++ {
		b[i] = next()
	}
	top := next()
	for top == 0 {
		top = next()
	}
	b[n-1] = top
	return NewFromBytesLE(b)
}

// NewFromString parses a base-10 integer, tolerating leading whitespace, an
// optional leading '+' or '-', and internal spaces or commas as digit
// separators. Any other character is a domain error.
func NewFromString(s string) (*BigInt, error) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	z := &BigInt{}
	sawDigit := false
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == ',':
			continue
		case c >= '0' && c <= '9':
			var scaled word.Nat
			word.MulWord(&scaled, &z.mag, 10)
			word.AddWord(&scaled, &scaled, uint32(c-'0'))
			word.Swap(&z.mag, &scaled)
			sawDigit = true
		default:
			return nil, fmt.Errorf("%w: invalid character %q in base-10 text", ErrDomain, c)
		}
	}
	if !sawDigit {
		return nil, fmt.Errorf("%w: no digits in base-10 text", ErrDomain)
	}

	z.neg = normalizeZero(neg, &z.mag)
	return z, nil
}

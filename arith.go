// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "github.com/gtank/bignum/internal/word"

// Add sets z to x + y and returns z.
func (z *BigInt) Add(x, y *BigInt) *BigInt {
	mag, neg := word.SignedAdd(&x.mag, x.neg, &y.mag, y.neg)
	word.Swap(&z.mag, mag)
	z.neg = normalizeZero(neg, &z.mag)
	return z
}

// Sub sets z to x - y and returns z.
func (z *BigInt) Sub(x, y *BigInt) *BigInt {
	mag, neg := word.SignedSub(&x.mag, x.neg, &y.mag, y.neg)
	word.Swap(&z.mag, mag)
	z.neg = normalizeZero(neg, &z.mag)
	return z
}

// AddWord sets z to x + y for a non-negative machine-word y and returns z.
func (z *BigInt) AddWord(x *BigInt, y uint32) *BigInt {
	return z.Add(x, NewInt(int64(y)))
}

// SubWord sets z to x - y for a non-negative machine-word y and returns z.
func (z *BigInt) SubWord(x *BigInt, y uint32) *BigInt {
	return z.Sub(x, NewInt(int64(y)))
}

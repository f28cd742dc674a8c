// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "github.com/gtank/bignum/internal/word"

// Mul sets z to x * y and returns z.
func (z *BigInt) Mul(x, y *BigInt) *BigInt {
	mag, neg := word.SignedMul(&x.mag, x.neg, &y.mag, y.neg)
	word.Swap(&z.mag, mag)
	z.neg = normalizeZero(neg, &z.mag)
	return z
}

// MulWord sets z to x * y for a non-negative machine-word y and returns z.
func (z *BigInt) MulWord(x *BigInt, y uint32) *BigInt {
	var mag word.Nat
	word.MulWord(&mag, &x.mag, y)
	neg := x.neg
	word.Swap(&z.mag, &mag)
	z.neg = normalizeZero(neg, &z.mag)
	return z
}

// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "github.com/gtank/bignum/internal/word"

// BigInt is a signed arbitrary-precision integer. The zero value is the
// integer zero and is ready to use.
type BigInt struct {
	mag word.Nat
	neg bool // true denotes negative; always false when mag is zero
}

// Set makes z a copy of x and returns z.
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z == x {
		return z
	}
	z.mag.Set(&x.mag)
	z.neg = x.neg
	return z
}

// Swap exchanges the values of a and b without allocation.
func Swap(a, b *BigInt) {
	word.Swap(&a.mag, &b.mag)
	a.neg, b.neg = b.neg, a.neg
}

// Sign returns -1, 0, or 1 depending on whether x is negative, zero, or
// positive.
func (x *BigInt) Sign() int {
	switch {
	case x.mag.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Cmp compares x and y as signed integers, returning -1, 0, or 1.
func Cmp(x, y *BigInt) int {
	return word.SignedCmp(&x.mag, x.neg, &y.mag, y.neg)
}

// CmpAbs compares the absolute values of x and y, returning -1, 0, or 1.
func CmpAbs(x, y *BigInt) int {
	return word.Cmp(&x.mag, &y.mag)
}

// normalizeZero restores the invariant that zero is always positive. Every
// exported producer calls this after computing into a fresh magnitude.
func normalizeZero(neg bool, mag *word.Nat) bool {
	if mag.IsZero() {
		return false
	}
	return neg
}

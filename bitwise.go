// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "github.com/gtank/bignum/internal/word"

// And sets z to the bitwise AND of the non-negative magnitudes of x and y.
func (z *BigInt) And(x, y *BigInt) *BigInt {
	var mag word.Nat
	word.And(&mag, &x.mag, &y.mag)
	word.Swap(&z.mag, &mag)
	z.neg = false
	return z
}

// Or sets z to the bitwise OR of the non-negative magnitudes of x and y.
func (z *BigInt) Or(x, y *BigInt) *BigInt {
	var mag word.Nat
	word.Or(&mag, &x.mag, &y.mag)
	word.Swap(&z.mag, &mag)
	z.neg = false
	return z
}

// Xor sets z to the bitwise XOR of the non-negative magnitudes of x and y.
func (z *BigInt) Xor(x, y *BigInt) *BigInt {
	var mag word.Nat
	word.Xor(&mag, &x.mag, &y.mag)
	word.Swap(&z.mag, &mag)
	z.neg = false
	return z
}

// Shl sets z to x shifted left by n bits: x's magnitude is shifted and
// x's sign is kept.
func (z *BigInt) Shl(x *BigInt, n uint) *BigInt {
	var mag word.Nat
	word.Shl(&mag, &x.mag, n)
	word.Swap(&z.mag, &mag)
	z.neg = normalizeZero(x.neg, &z.mag)
	return z
}

// Shr sets z to x shifted right by n bits: x's magnitude is shifted and
// x's sign is kept unless the result is zero, so a negative x is rounded
// toward zero.
func (z *BigInt) Shr(x *BigInt, n uint) *BigInt {
	var mag word.Nat
	word.Shr(&mag, &x.mag, n)
	word.Swap(&z.mag, &mag)
	z.neg = normalizeZero(x.neg, &z.mag)
	return z
}

// Bit returns the value (0 or 1) of bit i of x's magnitude.
func (x *BigInt) Bit(i uint) uint {
	return x.mag.Bit(i)
}

// SetBit sets bit i of z's magnitude to 1 and returns z.
func (z *BigInt) SetBit(i uint) *BigInt {
	z.mag.SetBit(i)
	return z
}

// ClearBit sets bit i of z's magnitude to 0 and returns z.
func (z *BigInt) ClearBit(i uint) *BigInt {
	z.mag.ClearBit(i)
	z.neg = normalizeZero(z.neg, &z.mag)
	return z
}

// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"

	"github.com/gtank/bignum/internal/word"
)

// DivMod sets z to the quotient and returns it along with the remainder of
// x / y, truncating toward zero: quotient sign is x.Sign() XOR y.Sign(),
// remainder sign is x.Sign(). It returns ErrDivideByZero if y is zero.
func (z *BigInt) DivMod(x, y *BigInt) (*BigInt, *BigInt, error) {
	if y.mag.IsZero() {
		return nil, nil, fmt.Errorf("%w", ErrDivideByZero)
	}

	var qMag, rMag word.Nat
	word.DivMod(&qMag, &rMag, &x.mag, &y.mag)

	qNeg := normalizeZero(x.neg != y.neg, &qMag)
	rNeg := normalizeZero(x.neg, &rMag)

	word.Swap(&z.mag, &qMag)
	z.neg = qNeg

	r := &BigInt{neg: rNeg}
	word.Swap(&r.mag, &rMag)

	return z, r, nil
}

// Div sets z to the truncating quotient of x / y and returns it.
func (z *BigInt) Div(x, y *BigInt) (*BigInt, error) {
	q, _, err := z.DivMod(x, y)
	return q, err
}

// Mod sets z to x mod y, the truncating remainder remapped into the
// canonical non-negative class: a negative remainder has |y| added to it.
// This guarantees 0 <= z < |y| regardless of the dividend's sign.
func (z *BigInt) Mod(x, y *BigInt) (*BigInt, error) {
	var q BigInt
	_, r, err := q.DivMod(x, y)
	if err != nil {
		return nil, err
	}
	if r.neg {
		absY := &BigInt{}
		absY.Set(y)
		absY.neg = false
		r.Add(r, absY)
	}
	word.Swap(&z.mag, &r.mag)
	z.neg = r.neg
	return z, nil
}

// QuoRem32 sets z to the quotient of x / y for a non-negative machine-word
// divisor y, and returns the exact remainder as a machine word. It returns
// ErrDivideByZero if y is zero.
func (z *BigInt) QuoRem32(x *BigInt, y uint32) (*BigInt, uint32, error) {
	if y == 0 {
		return nil, 0, fmt.Errorf("%w", ErrDivideByZero)
	}
	qMag, rem := word.DivModWord(&x.mag, y)
	word.Swap(&z.mag, qMag)
	z.neg = normalizeZero(x.neg, &z.mag)
	return z, rem, nil
}

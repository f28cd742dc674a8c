// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"

	"github.com/gtank/bignum/internal/word"
)

// GCD returns the greatest common divisor of the absolute values of a and b.
func GCD(a, b *BigInt) *BigInt {
	g := word.GCD(&a.mag, &b.mag)
	z := &BigInt{}
	word.Swap(&z.mag, g)
	return z
}

// ExtGCD returns (g, x, y) such that a*x + b*y == g, via the extended
// Euclidean algorithm run on the absolute values of a and b.
func ExtGCD(a, b *BigInt) (g, x, y *BigInt) {
	gMag, xMag, xNeg, yMag, yNeg := word.ExtGCD(&a.mag, &b.mag)

	g = &BigInt{}
	word.Swap(&g.mag, gMag)

	x = &BigInt{neg: normalizeZero(xNeg, xMag)}
	word.Swap(&x.mag, xMag)

	y = &BigInt{neg: normalizeZero(yNeg, yMag)}
	word.Swap(&y.mag, yMag)

	return g, x, y
}

// ModInverse returns the multiplicative inverse of x modulo m, or
// ErrDomain if no inverse exists.
func ModInverse(x, m *BigInt) (*BigInt, error) {
	g, xCoeff, _ := ExtGCD(x, m)
	if CmpAbs(g, NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: %s has no inverse modulo %s", ErrDomain, x, m)
	}

	z := &BigInt{}
	z.Set(xCoeff)
	if z.neg {
		z.Add(z, m)
	}
	return z, nil
}

// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

// GCD returns the greatest common divisor of the magnitudes a and b via
// Euclid's algorithm.
func GCD(a, b *Nat) *Nat {
	x, y := a.Clone(), b.Clone()
	for !y.IsZero() {
		var q, r Nat
		DivMod(&q, &r, x, y)
		x, y = y, r.Clone()
	}
	return x
}

// ExtGCD computes (g, x, y) such that a*x + b*y == g via the extended
// Euclidean algorithm, returning the Bezout coefficients as
// magnitude+sign pairs since they may be negative. a and b are treated as
// non-negative magnitudes.
func ExtGCD(a, b *Nat) (g *Nat, xMag *Nat, xNeg bool, yMag *Nat, yNeg bool) {
	oldR, r := a.Clone(), b.Clone()
	oldS, oldSNeg := &Nat{Digits: []uint32{1}}, false
	s, sNeg := &Nat{}, false
	oldT, oldTNeg := &Nat{}, false
	t, tNeg := &Nat{Digits: []uint32{1}}, false

	for !r.IsZero() {
		var q, rem Nat
		DivMod(&q, &rem, oldR, r)

		newR := rem.Clone()
		oldR, r = r, newR

		qs, qsNeg := SignedMul(&q, false, s, sNeg)
		newS, newSNeg := SignedSub(oldS, oldSNeg, qs, qsNeg)
		oldS, oldSNeg = s, sNeg
		s, sNeg = newS, newSNeg

		qt, qtNeg := SignedMul(&q, false, t, tNeg)
		newT, newTNeg := SignedSub(oldT, oldTNeg, qt, qtNeg)
		oldT, oldTNeg = t, tNeg
		t, tNeg = newT, newTNeg
	}

	return oldR, oldS, oldSNeg, oldT, oldTNeg
}

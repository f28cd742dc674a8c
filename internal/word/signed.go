// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

// This file holds the signed-magnitude dispatch shared by the bignum
// package's BigInt arithmetic and the ExtGCD routine in extgcd.go, which needs
// signed Bezout coefficients even though every other operation in this
// package is unsigned. Sign dispatch is a
// 2-bit switch on (xNeg, yNeg) redirecting to the magnitude operation; it
// lives here once so it is not duplicated between BigInt.Add/Sub and
// ExtGCD's internal bookkeeping.

// SignedAdd returns the magnitude and sign of (xMag,xNeg) + (yMag,yNeg).
func SignedAdd(xMag *Nat, xNeg bool, yMag *Nat, yNeg bool) (*Nat, bool) {
	z := &Nat{}
	switch {
	case xNeg == yNeg:
		Add(z, xMag, yMag)
		return z, xNeg && !z.IsZero()
	case Cmp(xMag, yMag) >= 0:
		Sub(z, xMag, yMag)
		return z, xNeg && !z.IsZero()
	default:
		Sub(z, yMag, xMag)
		return z, yNeg && !z.IsZero()
	}
}

// SignedSub returns the magnitude and sign of (xMag,xNeg) - (yMag,yNeg).
func SignedSub(xMag *Nat, xNeg bool, yMag *Nat, yNeg bool) (*Nat, bool) {
	return SignedAdd(xMag, xNeg, yMag, !yNeg)
}

// SignedMul returns the magnitude and sign of (xMag,xNeg) * (yMag,yNeg).
func SignedMul(xMag *Nat, xNeg bool, yMag *Nat, yNeg bool) (*Nat, bool) {
	z := &Nat{}
	Mul(z, xMag, yMag)
	return z, (xNeg != yNeg) && !z.IsZero()
}

// SignedCmp compares (xMag,xNeg) to (yMag,yNeg), returning -1, 0, or 1.
func SignedCmp(xMag *Nat, xNeg bool, yMag *Nat, yNeg bool) int {
	switch {
	case xNeg != yNeg:
		if xNeg {
			return -1
		}
		return 1
	case !xNeg:
		return Cmp(xMag, yMag)
	default:
		return Cmp(yMag, xMag)
	}
}

// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

import "testing"

func TestMulSmallKnownProduct(t *testing.T) {
	x := nat(6)
	y := nat(7)
	var z Nat
	Mul(&z, x, y)
	assertCanonical(t, &z)
	if Cmp(&z, nat(42)) != 0 {
		t.Fatalf("6*7: got %v", z.Digits)
	}
}

func TestMulByZero(t *testing.T) {
	x := nat(123, 456)
	var z Nat
	Mul(&z, x, nat())
	if !z.IsZero() {
		t.Fatalf("x*0 should be canonical zero, got %v", z.Digits)
	}
}

func TestMulCarryAcrossWords(t *testing.T) {
	// (2^32-1) * (2^32-1) = 2^64 - 2^33 + 1
	x := nat(0xFFFFFFFF)
	var z Nat
	Mul(&z, x, x)
	assertCanonical(t, &z)
	want := nat(1, 0xFFFFFFFE)
	if Cmp(&z, want) != 0 {
		t.Fatalf("(2^32-1)^2: got %v want %v", z.Digits, want.Digits)
	}
}

func TestMulCommutative(t *testing.T) {
	x := nat(0xDEADBEEF, 1)
	y := nat(0xCAFEBABE, 2, 3)
	var z1, z2 Nat
	Mul(&z1, x, y)
	Mul(&z2, y, x)
	if Cmp(&z1, &z2) != 0 {
		t.Fatalf("Mul not commutative: %v vs %v", z1.Digits, z2.Digits)
	}
}

func TestMulWordMatchesMul(t *testing.T) {
	x := nat(0x12345678, 0x9ABCDEF0, 1)
	var viaWord, viaMul Nat
	MulWord(&viaWord, x, 99)
	Mul(&viaMul, x, nat(99))
	if Cmp(&viaWord, &viaMul) != 0 {
		t.Fatalf("MulWord vs Mul mismatch: %v vs %v", viaWord.Digits, viaMul.Digits)
	}
}

// TestMulSwapPatternHandlesSelfAliasedOperand guards the discipline this
// package requires of every caller that wants to square or multiply an
// operand into itself: compute into a fresh temporary, then Swap it in.
// Calling Mul directly with z aliasing x or y is not supported (see Mul's
// doc comment) and must not be attempted, including for the n*m' step of
// Montgomery REDC.
func TestMulSwapPatternHandlesSelfAliasedOperand(t *testing.T) {
	n := nat(0x12345678, 0x9ABCDEF0)
	mPrime := nat(0xDEADBEEF, 1)

	want := &Nat{}
	Mul(want, n, mPrime)

	var tmp Nat
	Mul(&tmp, n, mPrime)
	Swap(n, &tmp)

	if Cmp(n, want) != 0 {
		t.Fatalf("swap-pattern multiply: got %v want %v", n.Digits, want.Digits)
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	a := nat(7, 1)
	b := nat(11, 2)
	c := nat(13, 3)

	var bPlusC, lhs Nat
	Add(&bPlusC, b, c)
	Mul(&lhs, a, &bPlusC)

	var ab, ac, rhs Nat
	Mul(&ab, a, b)
	Mul(&ac, a, c)
	Add(&rhs, &ab, &ac)

	if Cmp(&lhs, &rhs) != 0 {
		t.Fatalf("a*(b+c) != a*b+a*c: %v vs %v", lhs.Digits, rhs.Digits)
	}
}

// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

import "testing"

func nat(ds ...uint32) *Nat { return &Nat{Digits: ds} }

func TestAddCarryChain(t *testing.T) {
	x := nat(0xFFFFFFFF, 0xFFFFFFFF)
	y := nat(1)
	var z Nat
	Add(&z, x, y)
	assertCanonical(t, &z)
	want := nat(0, 0, 1)
	if Cmp(&z, want) != 0 {
		t.Fatalf("Add carry chain: got %v, want %v", z.Digits, want.Digits)
	}
}

func TestAddCommutative(t *testing.T) {
	x := nat(123456789, 42)
	y := nat(987654321, 7, 1)
	var z1, z2 Nat
	Add(&z1, x, y)
	Add(&z2, y, x)
	if Cmp(&z1, &z2) != 0 {
		t.Fatalf("Add not commutative: %v vs %v", z1.Digits, z2.Digits)
	}
}

func TestSubInverseOfAdd(t *testing.T) {
	x := nat(5, 9, 1)
	y := nat(0xFFFFFFFE, 3)
	var sum, diff Nat
	Add(&sum, x, y)
	Sub(&diff, &sum, y)
	assertCanonical(t, &diff)
	if Cmp(&diff, x) != 0 {
		t.Fatalf("(x+y)-y != x: got %v want %v", diff.Digits, x.Digits)
	}
}

func TestSubBorrowThroughZeros(t *testing.T) {
	x := nat(0, 0, 0, 1) // 2^96
	y := nat(1)
	var z Nat
	Sub(&z, x, y)
	assertCanonical(t, &z)
	want := nat(0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF)
	if Cmp(&z, want) != 0 {
		t.Fatalf("borrow through zeros: got %v want %v", z.Digits, want.Digits)
	}
}

func TestSubToZero(t *testing.T) {
	x := nat(42, 7)
	var z Nat
	Sub(&z, x, x)
	if !z.IsZero() {
		t.Fatalf("x-x should be canonical zero, got %v", z.Digits)
	}
}

func TestAddWordSubWordRoundTrip(t *testing.T) {
	x := nat(0xFFFFFFFF, 0xFFFFFFFF)
	var sum, back Nat
	AddWord(&sum, x, 5)
	SubWord(&back, &sum, 5)
	if Cmp(&back, x) != 0 {
		t.Fatalf("AddWord/SubWord round trip: got %v want %v", back.Digits, x.Digits)
	}
}

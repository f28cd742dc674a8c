// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

import "testing"

func assertCanonical(t *testing.T, z *Nat) {
	t.Helper()
	n := len(z.Digits)
	if n > 0 && z.Digits[n-1] == 0 {
		t.Fatalf("not canonical: trailing zero word in %v", z.Digits)
	}
}

func TestResizeGrowShrink(t *testing.T) {
	z := &Nat{}
	z.Resize(3)
	if len(z.Digits) != 3 {
		t.Fatalf("resize(3): got len %d", len(z.Digits))
	}
	for _, d := range z.Digits {
		if d != 0 {
			t.Fatalf("resize(3): expected zeroed digits, got %v", z.Digits)
		}
	}

	z.Digits[0], z.Digits[1], z.Digits[2] = 1, 2, 3
	z.Resize(2)
	if len(z.Digits) != 2 || z.Digits[0] != 1 || z.Digits[1] != 2 {
		t.Fatalf("resize(2) (shrink): got %v", z.Digits)
	}

	z.Resize(4)
	if len(z.Digits) != 4 || z.Digits[2] != 0 || z.Digits[3] != 0 {
		t.Fatalf("resize(4) (regrow): expected newly exposed words zeroed, got %v", z.Digits)
	}
}

func TestTruncCanonicalZero(t *testing.T) {
	z := &Nat{Digits: []uint32{1, 0, 0}}
	z.Trunc()
	if len(z.Digits) != 1 {
		t.Fatalf("trunc: expected len 1, got %v", z.Digits)
	}

	z = &Nat{Digits: []uint32{0, 0, 0}}
	z.Trunc()
	if len(z.Digits) != 0 {
		t.Fatalf("trunc of all-zero: expected canonical zero (len 0), got %v", z.Digits)
	}
	if !z.IsZero() {
		t.Fatalf("expected IsZero true")
	}
}

func TestSwapNoAlloc(t *testing.T) {
	a := &Nat{Digits: []uint32{1, 2}}
	b := &Nat{Digits: []uint32{3, 4, 5}}
	Swap(a, b)
	if len(a.Digits) != 3 || a.Digits[2] != 5 {
		t.Fatalf("swap: a = %v", a.Digits)
	}
	if len(b.Digits) != 2 || b.Digits[1] != 2 {
		t.Fatalf("swap: b = %v", b.Digits)
	}
	if allocs := testing.AllocsPerRun(10, func() { Swap(a, b) }); allocs != 0 {
		t.Fatalf("swap allocated: %v allocs per run", allocs)
	}
}

func TestBitLen(t *testing.T) {
	cases := []struct {
		digits []uint32
		want   int
	}{
		{nil, 0},
		{[]uint32{0}, 0},
		{[]uint32{1}, 1},
		{[]uint32{0x80000000}, 32},
		{[]uint32{0, 1}, 33},
	}
	for _, c := range cases {
		z := &Nat{Digits: c.digits}
		if got := z.BitLen(); got != c.want {
			t.Errorf("BitLen(%v) = %d, want %d", c.digits, got, c.want)
		}
	}
}

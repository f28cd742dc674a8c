// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

// Add sets z to the unsigned magnitude sum x + y. z may alias neither x
// nor y; callers compute into a local Nat and Swap it into the receiver.
func Add(z, x, y *Nat) {
	if len(x.Digits) < len(y.Digits) {
		x, y = y, x
	}
	nx, ny := len(x.Digits), len(y.Digits)

	z.Resize(nx + 1)
	var carry uint64
	for i := 0; i < ny; i++ {
		carry += uint64(x.Digits[i]) + uint64(y.Digits[i])
		z.Digits[i] = uint32(carry)
		carry >>= 32
	}
	for i := ny; i < nx; i++ {
		carry += uint64(x.Digits[i])
		z.Digits[i] = uint32(carry)
		carry >>= 32
	}
	z.Digits[nx] = uint32(carry)
	z.Trunc()
}

// AddWord sets z to the unsigned magnitude sum x + y for a single-word y.
func AddWord(z, x *Nat, y uint32) {
	nx := len(x.Digits)
	z.Resize(nx + 1)
	carry := uint64(y)
	for i := 0; i < nx; i++ {
		carry += uint64(x.Digits[i])
		z.Digits[i] = uint32(carry)
		carry >>= 32
	}
	z.Digits[nx] = uint32(carry)
	z.Trunc()
}

// Sub sets z to the unsigned magnitude difference x - y. The caller must
// guarantee x >= y (via Cmp); behavior is undefined otherwise.
func Sub(z, x, y *Nat) {
	nx, ny := len(x.Digits), len(y.Digits)

	z.Resize(nx)
	var borrow uint64
	for i := 0; i < ny; i++ {
		diff := uint64(x.Digits[i]) - uint64(y.Digits[i]) - borrow
		z.Digits[i] = uint32(diff)
		borrow = (diff >> 32) & 1
	}
	for i := ny; i < nx; i++ {
		diff := uint64(x.Digits[i]) - borrow
		z.Digits[i] = uint32(diff)
		borrow = (diff >> 32) & 1
	}
	z.Trunc()
}

// SubWord sets z to the unsigned magnitude difference x - y for a
// single-word y. The caller must guarantee x >= y.
func SubWord(z, x *Nat, y uint32) {
	nx := len(x.Digits)
	z.Resize(nx)
	borrow := uint64(y)
	for i := 0; i < nx; i++ {
		diff := uint64(x.Digits[i]) - borrow
		z.Digits[i] = uint32(diff)
		borrow = (diff >> 32) & 1
	}
	z.Trunc()
}

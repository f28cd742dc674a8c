// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

// Mul sets z to the unsigned magnitude product x*y using schoolbook
// multiplication: z is zero-initialized to length
// len(x)+len(y), then for each word of the shorter operand a fused
// multiply-accumulate sweeps across the longer operand, carrying the high
// 32 bits of the 64-bit partial product into the next column.
//
// z may alias neither x nor y: the zero-fill of z runs before the
// accumulation loop reads x/y, so an aliased call would clobber an operand
// through z's backing array before it's used. Callers compute into a local
// Nat and Swap it into the destination, the same discipline addsub.go
// requires of Add and Sub.
func Mul(z, x, y *Nat) {
	nx, ny := len(x.Digits), len(y.Digits)
	if nx == 0 || ny == 0 {
		z.Resize(0)
		return
	}

	sml, big := x, y
	if nx > ny {
		sml, big = y, x
	}
	nsml, nbig := len(sml.Digits), len(big.Digits)

	z.Resize(nsml + nbig)
	for i := range z.Digits {
		z.Digits[i] = 0
	}

	for i := 0; i < nsml; i++ {
		carry := mulWordVec(z.Digits[i:i+nbig], big.Digits, sml.Digits[i])
		z.Digits[i+nbig] = carry
	}
	z.Trunc()
}

// MulWord sets z to the unsigned magnitude product x*y for a single-word y.
// z may not alias x, for the same reason as Mul.
func MulWord(z, x *Nat, y uint32) {
	nx := len(x.Digits)
	if nx == 0 || y == 0 {
		z.Resize(0)
		return
	}
	z.Resize(nx + 1)
	for i := 0; i < nx; i++ {
		z.Digits[i] = 0
	}
	z.Digits[nx] = mulWordVec(z.Digits[:nx], x.Digits, y)
	z.Trunc()
}

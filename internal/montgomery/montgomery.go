// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package montgomery implements Montgomery-form modular reduction and
// modular exponentiation over the magnitude type in internal/word. It is
// self-contained, keeping its own odd modulus permanently available in
// Montgomery domain the way a fixed-modulus scalar field type would, except
// it computes its Montgomery constants (R, R⁻¹, m') at construction time
// for an arbitrary odd modulus instead of relying on generated reduction
// code for one fixed modulus.
package montgomery

import "github.com/gtank/bignum/internal/word"

// Context holds the precomputed constants for REDC and modular
// exponentiation against one odd modulus m.
type Context struct {
	m       *word.Nat
	mPrime  *word.Nat // m' = m⁻¹ mod R, so m*m' ≡ 1 (mod R), 0 <= m' < R
	rSub1   *word.Nat // R-1, a mask for mod-R
	k       uint      // bit width of R = 2^k, word-aligned
	rModM   *word.Nat // R mod m, i.e. "1" in Montgomery form
}

// NewContext builds a Montgomery context for modulus m, which must be odd
// and non-negative (the caller, internal/montgomery's consumer in the
// bignum package, is responsible for rejecting even or negative moduli
// before calling this).
func NewContext(m *word.Nat) *Context {
	// k rounded up to the next multiple of the word width: a word-aligned
	// R simplifies mod-R (drop high words) and div-R (drop low words) compared
	// to a tightly bit-aligned one.
	bits := m.BitLen()
	k := uint(((bits + 31) / 32) * 32)
	if k == 0 {
		k = 32
	}

	r := &word.Nat{}
	r.SetBit(k)

	rSub1 := &word.Nat{}
	word.SubWord(rSub1, r, 1)

	_, _, _, mPrimeMag, mPrimeNeg := word.ExtGCD(r, m)
	if mPrimeNeg {
		word.Sub(mPrimeMag, r, mPrimeMag)
	}

	rModM := &word.Nat{}
	var q word.Nat
	word.DivMod(&q, rModM, r, m)

	return &Context{
		m:      m,
		mPrime: mPrimeMag,
		rSub1:  rSub1,
		k:      k,
		rModM:  rModM,
	}
}

// K reports the bit width of this context's Montgomery radix R = 2^K.
func (c *Context) K() uint { return c.k }

// ToMontgomery converts x (0 <= x < m) into Montgomery form, x*R mod m.
func (c *Context) ToMontgomery(x *word.Nat) *word.Nat {
	t := &word.Nat{}
	word.Shl(t, x, c.k)
	r := &word.Nat{}
	var q word.Nat
	word.DivMod(&q, r, t, c.m)
	return r
}

// One returns the Montgomery-form representation of 1, i.e. R mod m.
func (c *Context) One() *word.Nat {
	return c.rModM.Clone()
}

// REDC computes t*R⁻¹ mod m without dividing by m:
//
//	n = ((t AND (R-1)) * m') AND (R-1)
//	t = (t - n*m) >> k
//	if t < 0: t += m
//
// By construction n*m ≡ t (mod R), so the signed quantity t-n*m is always
// an exact multiple of R = 2^k; shifting its magnitude right by k is
// therefore an exact division, never a truncation, whichever sign the
// subtraction produced.
func (c *Context) REDC(t *word.Nat) *word.Nat {
	var n word.Nat
	word.And(&n, t, c.rSub1)
	var nTimesMPrime word.Nat
	word.Mul(&nTimesMPrime, &n, c.mPrime)
	word.Swap(&n, &nTimesMPrime)
	word.And(&n, &n, c.rSub1)

	var nm word.Nat
	word.Mul(&nm, &n, c.m)

	mag, neg := word.SignedSub(t, false, &nm, false)

	shifted := &word.Nat{}
	word.Shr(shifted, mag, c.k)

	if neg {
		result := &word.Nat{}
		word.Sub(result, c.m, shifted)
		return result
	}
	return shifted
}

// MulMont computes REDC(x*y), i.e. Montgomery multiplication of two
// Montgomery-form operands.
func (c *Context) MulMont(x, y *word.Nat) *word.Nat {
	var t word.Nat
	word.Mul(&t, x, y)
	return c.REDC(&t)
}

// Exp computes x^y mod m via the Montgomery ladder: x̃ is
// repeatedly squared and conditionally multiplied into the accumulator,
// each step closed with REDC; the final REDC at the end converts the
// accumulator out of Montgomery form.
func (c *Context) Exp(x, y *word.Nat) *word.Nat {
	xTilde := c.ToMontgomery(x)
	acc := c.One()

	bits := y.BitLen()
	for i := 0; i < bits; i++ {
		if y.Bit(uint(i)) == 1 {
			acc = c.MulMont(acc, xTilde)
		}
		xTilde = c.MulMont(xTilde, xTilde)
	}

	return c.REDC(acc)
}

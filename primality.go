// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// MillerRabin runs one round of the Miller-Rabin primality test on n with
// witness a, returning true if n is probably prime to this witness. a must
// be in [2, n-2]; n must be non-negative.
func MillerRabin(n, a *BigInt) (bool, error) {
	if n.mag.IsZero() || n.mag.Bit(0) == 0 {
		return false, nil
	}

	two := NewInt(2)
	nMinus2 := &BigInt{}
	nMinus2.Sub(n, NewInt(2))
	if Cmp(a, two) < 0 || Cmp(a, nMinus2) > 0 {
		return false, fmt.Errorf("%w: witness out of range [2, n-2]", ErrDomain)
	}

	nMinus1 := &BigInt{}
	nMinus1.Sub(n, NewInt(1))

	// n-1 is even (n is odd), so bit 0 is always zero; s starts at 1 and
	// grows while the corresponding bit of n-1 is zero.
	s := uint(1)
	for nMinus1.Bit(s) == 0 {
		s++
	}
	d := &BigInt{}
	d.Shr(nMinus1, s)

	t := &BigInt{}
	if _, err := t.ModExp(a, d, n); err != nil {
		return false, err
	}

	if Cmp(t, NewInt(1)) == 0 || Cmp(t, nMinus1) == 0 {
		return true, nil
	}

	for i := uint(0); i < s-1; i++ {
		t.Mul(t, t)
		if _, err := t.Mod(t, n); err != nil {
			return false, err
		}
		if Cmp(t, nMinus1) == 0 {
			return true, nil
		}
	}

	return false, nil
}

// ProbablyPrime reports whether n passes Miller-Rabin against every witness
// in witnesses. It returns false on the first witness that proves n
// composite, short-circuiting the remaining witnesses.
func ProbablyPrime(n *BigInt, witnesses []*BigInt) (bool, error) {
	for _, a := range witnesses {
		ok, err := MillerRabin(n, a)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

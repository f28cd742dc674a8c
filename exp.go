// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"

	"github.com/gtank/bignum/internal/montgomery"
	"github.com/gtank/bignum/internal/word"
)

// Exp sets z to x^y and returns it. y must be non-negative.
func (z *BigInt) Exp(x, y *BigInt) (*BigInt, error) {
	if y.neg {
		return nil, fmt.Errorf("%w: negative exponent", ErrDomain)
	}

	acc := NewInt(1)
	sqr := &BigInt{}
	sqr.Set(x)

	bits := y.mag.BitLen()
	for i := 0; i < bits; i++ {
		if y.mag.Bit(uint(i)) == 1 {
			acc.Mul(acc, sqr)
		}
		sqr.Mul(sqr, sqr)
	}

	word.Swap(&z.mag, &acc.mag)
	z.neg = acc.neg
	return z, nil
}

// ModExp sets z to x^y mod m and returns it. If m is odd and non-negative
// and x is non-negative, the computation runs through Montgomery
// exponentiation; otherwise it falls back to plain binary exponentiation,
// reducing modulo m after every multiply. y must be non-negative.
func (z *BigInt) ModExp(x, y, m *BigInt) (*BigInt, error) {
	if y.neg {
		return nil, fmt.Errorf("%w: negative exponent", ErrDomain)
	}
	if m.mag.IsZero() {
		return nil, fmt.Errorf("%w", ErrDivideByZero)
	}

	if !m.neg && !x.neg && m.mag.Bit(0) == 1 {
		ctx := montgomery.NewContext(&m.mag)
		resMag := ctx.Exp(&x.mag, &y.mag)
		word.Swap(&z.mag, resMag)
		z.neg = false
		return z, nil
	}

	acc := NewInt(1)
	sqr := &BigInt{}
	if _, err := sqr.Mod(x, m); err != nil {
		return nil, err
	}

	bits := y.mag.BitLen()
	for i := 0; i < bits; i++ {
		if y.mag.Bit(uint(i)) == 1 {
			acc.Mul(acc, sqr)
			if _, err := acc.Mod(acc, m); err != nil {
				return nil, err
			}
		}
		sqr.Mul(sqr, sqr)
		if _, err := sqr.Mod(sqr, m); err != nil {
			return nil, err
		}
	}

	word.Swap(&z.mag, &acc.mag)
	z.neg = acc.neg
	return z, nil
}

// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "errors"

// Sentinel errors returned (wrapped, never panicked) by the operations that
// can fail at runtime. Use errors.Is to test for a particular kind.
var (
	// ErrDivideByZero is returned by Div, Mod, DivMod, and QuoRem32 when the
	// divisor is zero.
	ErrDivideByZero = errors.New("bignum: division by zero")

	// ErrDomain is returned for a negative exponent to Exp or ModExp, a
	// Miller-Rabin witness outside [2, n-2], a non-existent modular
	// inverse, or malformed base-10 text input.
	ErrDomain = errors.New("bignum: domain error")
)

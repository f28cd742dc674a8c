// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bignum implements an arbitrary-precision signed integer suitable
// as a building block for public-key cryptography: the full algebra of
// the signed integers, bitwise operations on the non-negative magnitude,
// and a small set of number-theoretic primitives — greatest common
// divisor, extended gcd, modular inverse, Montgomery modular
// exponentiation, and Miller-Rabin primality testing.
//
// BigInt values are mutated in place by methods of the form
// z.Op(x, y), writing the result into the receiver and also returning it,
// in the style of math/big. The receiver may alias either operand; every
// method computes into a local temporary before swapping it into the
// receiver, so aliased and non-aliased calls always produce the same
// result.
//
// This package makes no claim of resisting timing side channels and does
// not implement parallel multiplication.
package bignum

// Copyright (c) 2019 George Tankersley. All rights reserved.
// Copyright (c) 2021 Oasis Labs Inc.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 && !noasm

package word

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// useMulx is detected once at init time and consulted on every word
// multiply-accumulate.
var useMulx bool

func init() {
	useMulx = cpu.Initialized && cpu.X86.HasBMI2
}

// mulWordVec computes dst[i] += big[i]*sml + carry for i in [0,len(big)),
// threading the 32-bit carry through, and returns the final carry word.
//
// On BMI2-capable hosts this runs the 32x32->64 multiply through
// bits.Mul32, which the compiler lowers to a single MULX on amd64 instead
// of the carry-flag-chained MUL/ADC sequence the portable path needs; the
// portable accumulation loop (mulWordVecGeneric) is kept as the fallback
// for hosts without BMI2.
func mulWordVec(dst, big []uint32, sml uint32) uint32 {
	if !useMulx {
		return mulWordVecGeneric(dst, big, sml)
	}
	var carry uint32
	for j := 0; j < len(big); j++ {
		hi, lo := bits.Mul32(big[j], sml)
		lo, c := bits.Add32(lo, dst[j], 0)
		hi, _ = bits.Add32(hi, 0, c)
		lo, c = bits.Add32(lo, carry, 0)
		hi, _ = bits.Add32(hi, 0, c)
		dst[j] = lo
		carry = hi
	}
	return carry
}

func mulWordVecGeneric(dst, big []uint32, sml uint32) uint32 {
	var carry uint64
	for j := 0; j < len(big); j++ {
		calc := uint64(big[j])*uint64(sml) + uint64(dst[j]) + carry
		dst[j] = uint32(calc)
		carry = calc >> 32
	}
	return uint32(carry)
}

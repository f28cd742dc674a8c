// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64 || noasm

package word

// mulWordVec computes dst[i] += big[i]*sml + carry for i in [0,len(big)),
// threading the 32-bit carry through, and returns the final carry word.
// This is the inner loop of schoolbook multiplication; the
// amd64 build uses a BMI2 MULX-based variant of the same recurrence.
func mulWordVec(dst, big []uint32, sml uint32) uint32 {
	var carry uint64
	for j := 0; j < len(big); j++ {
		calc := uint64(big[j])*uint64(sml) + uint64(dst[j]) + carry
		dst[j] = uint32(calc)
		carry = calc >> 32
	}
	return uint32(carry)
}

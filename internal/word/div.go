// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

// DivMod sets q, r to the unsigned magnitude quotient and remainder of
// x/y using Knuth's Algorithm D. y must be non-zero; the
// caller (the bignum package) is responsible for surfacing a
// divide-by-zero error before calling this.
func DivMod(q, r, x, y *Nat) {
	if len(y.Digits) == 1 {
		qu, rem := DivModWord(x, y.Digits[0])
		q.Set(qu)
		r.Resize(0)
		if rem != 0 {
			r.Resize(1)
			r.Digits[0] = rem
		}
		return
	}

	switch Cmp(x, y) {
	case -1:
		q.Resize(0)
		r.Set(x)
		return
	case 0:
		q.Resize(1)
		q.Digits[0] = 1
		r.Resize(0)
		return
	}

	divLarge(q, r, x, y)
}

// DivModWord divides x by the single word y, returning the quotient as a
// Nat and the exact remainder as a machine word. This is the single-digit
// fast path: a single MSW-to-LSW pass maintaining a 64-bit
// accumulator (prevRemainder<<32 | digit).
func DivModWord(x *Nat, y uint32) (*Nat, uint32) {
	n := len(x.Digits)
	q := &Nat{Digits: make([]uint32, n)}
	var rem uint64
	for i := n - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(x.Digits[i])
		q.Digits[i] = uint32(cur / uint64(y))
		rem = cur % uint64(y)
	}
	q.Trunc()
	return q, uint32(rem)
}

// nlz returns the number of leading zero bits in a 32-bit word.
func nlz(x uint32) uint {
	if x == 0 {
		return 32
	}
	var n uint
	for x&0x80000000 == 0 {
		x <<= 1
		n++
	}
	return n
}

// divLarge implements Algorithm D for divisors of two or more words. It
// assumes |x| >= |y| > 0 and len(y.Digits) >= 2 (the caller handles the
// single-word and x<y/x==y cases).
func divLarge(q, r, x, y *Nat) {
	n := len(y.Digits)
	m := len(x.Digits) - n

	// D1: normalize so the divisor's top bit is set.
	shift := nlz(y.Digits[n-1])

	vNorm := &Nat{Digits: make([]uint32, n)}
	shlWords(vNorm.Digits, y.Digits, shift)

	// One extra word of headroom in the normalized dividend, even if that
	// extra word is itself zero, so MSW access at positions n+i and n+i-1
	// is always in range.
	uNorm := &Nat{Digits: make([]uint32, len(x.Digits)+1)}
	carry := shlWordsCarry(uNorm.Digits[:len(x.Digits)], x.Digits, shift)
	uNorm.Digits[len(x.Digits)] = carry

	qd := make([]uint32, m+1)

	vn1 := vNorm.Digits[n-1]
	var vn2 uint32
	if n >= 2 {
		vn2 = vNorm.Digits[n-2]
	}

	qhatv := make([]uint32, n+1)

	for j := m; j >= 0; j-- {
		// D3: estimate the quotient digit.
		var qhat, rhat uint64
		ujn := uint64(uNorm.Digits[j+n])
		ujn1 := uint64(uNorm.Digits[j+n-1])
		num := ujn<<32 | ujn1
		if ujn == uint64(vn1) {
			qhat = 1<<32 - 1
			rhat = ujn1 + uint64(vn1)
		} else {
			qhat = num / uint64(vn1)
			rhat = num % uint64(vn1)
		}

		for rhat < 1<<32 {
			var ujn2 uint64
			if j+n-2 >= 0 {
				ujn2 = uint64(uNorm.Digits[j+n-2])
			}
			hi, lo := mul64(qhat, uint64(vn2))
			if hi == 0 && lo <= rhat<<32|ujn2 {
				break
			}
			qhat--
			rhat += uint64(vn1)
		}

		// D4: multiply and subtract.
		for i := range qhatv {
			qhatv[i] = 0
		}
		carry := mulWordVec(qhatv[:n], vNorm.Digits, uint32(qhat))
		qhatv[n] = carry

		borrow := subVec(uNorm.Digits[j:j+n+1], qhatv)

		// D6: add back if the subtraction borrowed past the top word.
		if borrow != 0 {
			addCarry := addVec(uNorm.Digits[j:j+n], vNorm.Digits)
			uNorm.Digits[j+n] += addCarry
			qhat--
		}

		qd[j] = uint32(qhat)
	}

	q.Resize(len(qd))
	copy(q.Digits, qd)
	q.Trunc()

	// D8: unnormalize the remainder.
	r.Resize(n)
	shrWords(r.Digits, uNorm.Digits[:n], shift)
	r.Trunc()
}

// mul64 returns the 128-bit product of a*b as (hi, lo).
func mul64(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	t := aLo * bLo
	w0 := t & mask32
	k := t >> 32

	t = aHi*bLo + k
	w1 := t & mask32
	w2 := t >> 32

	t = aLo*bHi + w1
	k = t >> 32

	hi = aHi*bHi + w2 + k
	lo = t<<32 | w0
	return
}

// subVec computes dst -= src in place over len(src) words (dst may be one
// word longer) and returns the final borrow (0 or 1).
func subVec(dst, src []uint32) uint32 {
	var borrow uint64
	for i := range src {
		diff := uint64(dst[i]) - uint64(src[i]) - borrow
		dst[i] = uint32(diff)
		borrow = (diff >> 32) & 1
	}
	for i := len(src); i < len(dst); i++ {
		diff := uint64(dst[i]) - borrow
		dst[i] = uint32(diff)
		borrow = (diff >> 32) & 1
	}
	return uint32(borrow)
}

// addVec computes dst += src in place over len(src) words and returns the
// final carry (0 or 1).
func addVec(dst, src []uint32) uint32 {
	var carry uint64
	for i := range src {
		sum := uint64(dst[i]) + uint64(src[i]) + carry
		dst[i] = uint32(sum)
		carry = sum >> 32
	}
	return uint32(carry)
}

// shlWords left-shifts src by bits in [0,32) into dst (same length),
// discarding bits shifted out of the top word. Used to normalize the
// divisor, which is never extended by a word (its top bit becomes set).
func shlWords(dst, src []uint32, bits uint) {
	if bits == 0 {
		copy(dst, src)
		return
	}
	var carry uint32
	for i := 0; i < len(src); i++ {
		dst[i] = (src[i] << bits) | carry
		carry = src[i] >> (32 - bits)
	}
}

// shlWordsCarry is shlWords but also returns the bits shifted out of the
// top word, used to populate the dividend's reserved extra word.
func shlWordsCarry(dst, src []uint32, bits uint) uint32 {
	if bits == 0 {
		copy(dst, src)
		return 0
	}
	var carry uint32
	for i := 0; i < len(src); i++ {
		next := src[i] >> (32 - bits)
		dst[i] = (src[i] << bits) | carry
		carry = next
	}
	return carry
}

// shrWords right-shifts src by bits in [0,32) into dst (same length).
func shrWords(dst, src []uint32, bits uint) {
	if bits == 0 {
		copy(dst, src)
		return
	}
	n := len(src)
	for i := 0; i < n; i++ {
		lo := src[i] >> bits
		var hi uint32
		if i+1 < n {
			hi = src[i+1] << (32 - bits)
		}
		dst[i] = lo | hi
	}
}

// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

// Cmp performs an unsigned magnitude compare of x and y, returning -1, 0,
// or 1. Both operands are assumed canonical (no trailing zero word).
func Cmp(x, y *Nat) int {
	nx, ny := len(x.Digits), len(y.Digits)
	if nx != ny {
		if nx < ny {
			return -1
		}
		return 1
	}
	for i := nx - 1; i >= 0; i-- {
		xi, yi := x.Digits[i], y.Digits[i]
		if xi != yi {
			if xi < yi {
				return -1
			}
			return 1
		}
	}
	return 0
}

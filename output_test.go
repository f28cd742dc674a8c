// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "123456789012345678901234567890", "-987654321"}
	for _, c := range cases {
		x, err := NewFromString(c)
		require.NoError(t, err)
		require.Equal(t, c, x.String())
	}
}

func TestGoStringDebugForm(t *testing.T) {
	x := NewFromWordsLE([]uint32{1, 2, 3})
	require.Equal(t, "{1, 2, 3}", x.GoString())

	neg := NewInt(0)
	neg.Sub(neg, NewInt(5))
	require.Equal(t, "-{5}", neg.GoString())

	require.Equal(t, "{}", NewInt(0).GoString())
}

func TestWordsAndBytesBEReversed(t *testing.T) {
	x := NewFromWordsLE([]uint32{0x11, 0x22, 0x33})
	require.Equal(t, []uint32{0x33, 0x22, 0x11}, x.WordsBE())

	le := x.BytesLE()
	be := x.BytesBE()
	require.Equal(t, len(le), len(be))
	for i := range le {
		require.Equal(t, le[i], be[len(be)-1-i])
	}
}

// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package wire_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novifinancial/bcs-go/wire"
)

func bigPow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

func TestUint128FromBig(t *testing.T) {
	cases := []struct {
		name     string
		target   *big.Int
		expected wire.Uint128
		wantErr  bool
	}{
		{name: "zero", target: big.NewInt(0), expected: wire.Uint128{}},
		{name: "small", target: big.NewInt(42), expected: wire.NewUint128(42)},
		{
			name:     "2^64",
			target:   bigPow2(64),
			expected: wire.Uint128{High: 1},
		},
		{
			name:     "max",
			target:   new(big.Int).Sub(bigPow2(128), big.NewInt(1)),
			expected: wire.Uint128{High: ^uint64(0), Low: ^uint64(0)},
		},
		{name: "2^128", target: bigPow2(128), wantErr: true},
		{name: "negative", target: big.NewInt(-1), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := wire.Uint128FromBig(tc.target)
			if tc.wantErr {
				require.ErrorIs(t, err, wire.ErrValueOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
			assert.Zero(t, tc.target.Cmp(v.Big()))
		})
	}
}

func TestUint256FromBig(t *testing.T) {
	cases := []struct {
		name     string
		target   *big.Int
		expected wire.Uint256
		wantErr  bool
	}{
		{name: "zero", target: big.NewInt(0), expected: wire.Uint256{}},
		{name: "small", target: big.NewInt(7), expected: wire.NewUint256(7)},
		{
			name:     "2^192",
			target:   bigPow2(192),
			expected: wire.Uint256{0, 0, 0, 1},
		},
		{
			name:   "max",
			target: new(big.Int).Sub(bigPow2(256), big.NewInt(1)),
			expected: wire.Uint256{
				^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0),
			},
		},
		{name: "2^256", target: bigPow2(256), wantErr: true},
		{name: "negative", target: big.NewInt(-5), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := wire.Uint256FromBig(tc.target)
			if tc.wantErr {
				require.ErrorIs(t, err, wire.ErrValueOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
			assert.Zero(t, tc.target.Cmp(v.Big()))
		})
	}
}

func TestUint128WireRoundTrip(t *testing.T) {
	target, err := wire.Uint128FromBig(new(big.Int).SetBytes([]byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10,
	}))
	require.NoError(t, err)

	w := wire.NewWriter()
	require.NoError(t, w.WriteU128(target))
	encoded := w.Finish()
	require.Len(t, encoded, 16)

	// Little-endian on the wire: the most significant logical byte last.
	assert.Equal(t, byte(0x10), encoded[0])
	assert.Equal(t, byte(0x01), encoded[15])

	v, err := wire.NewReader(encoded).ReadU128()
	require.NoError(t, err)
	assert.Equal(t, target, v)
}

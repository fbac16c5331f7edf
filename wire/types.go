// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package wire

import (
	"fmt"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
type Uint128 struct {
	High uint64
	Low  uint64
}

// Uint256 is an unsigned 256-bit integer as four 64-bit limbs, least
// significant first.
type Uint256 [4]uint64

// NewUint128 returns a Uint128 holding lo.
func NewUint128(lo uint64) Uint128 {
	return Uint128{Low: lo}
}

// NewUint256 returns a Uint256 holding lo.
func NewUint256(lo uint64) Uint256 {
	return Uint256{lo}
}

// Uint128FromBig converts v to a Uint128. Negative values and values at or
// above 2^128 fail with ErrValueOutOfRange.
func Uint128FromBig(v *big.Int) (Uint128, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("%w: %s does not fit in a u128", ErrValueOutOfRange, v)
	}
	var buf [16]byte
	v.FillBytes(buf[:])
	return Uint128{
		High: beUint64(buf[0:8]),
		Low:  beUint64(buf[8:16]),
	}, nil
}

// Uint256FromBig converts v to a Uint256. Negative values and values at or
// above 2^256 fail with ErrValueOutOfRange.
func Uint256FromBig(v *big.Int) (Uint256, error) {
	if v.Sign() < 0 || v.BitLen() > 256 {
		return Uint256{}, fmt.Errorf("%w: %s does not fit in a u256", ErrValueOutOfRange, v)
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	var ret Uint256
	for i := 0; i < 4; i++ {
		ret[i] = beUint64(buf[32-8*(i+1) : 32-8*i])
	}
	return ret, nil
}

// Big returns v as a big.Int.
func (v Uint128) Big() *big.Int {
	var buf [16]byte
	bePutUint64(buf[0:8], v.High)
	bePutUint64(buf[8:16], v.Low)
	return new(big.Int).SetBytes(buf[:])
}

// Big returns v as a big.Int.
func (v Uint256) Big() *big.Int {
	var buf [32]byte
	for i := 0; i < 4; i++ {
		bePutUint64(buf[32-8*(i+1):32-8*i], v[i])
	}
	return new(big.Int).SetBytes(buf[:])
}

func beUint64(b []byte) uint64 {
	var ret uint64
	for _, x := range b[:8] {
		ret = ret<<8 | uint64(x)
	}
	return ret
}

func bePutUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

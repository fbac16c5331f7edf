// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package bcs

import (
	"fmt"

	"github.com/novifinancial/bcs-go/wire"
)

// UlebEncode returns the minimal ULEB128 encoding of n. Zero encodes to the
// single byte 0x00.
func UlebEncode(n uint64) []byte {
	return AppendUleb128(nil, n)
}

// AppendUleb128 appends the minimal ULEB128 encoding of n to buf and
// returns the extended slice.
func AppendUleb128(buf []byte, n uint64) []byte {
	for n >= 0x80 {
		buf = append(buf, byte(n&0x7F|0x80))
		n = n >> 7
	}
	return append(buf, byte(n))
}

// UlebDecode reads one ULEB128 value from the start of input and returns it
// with the number of bytes consumed. The full u64 range is accepted;
// non-minimal encodings are accepted. Input ending before a terminator byte
// fails with ErrTruncated; a value past 2^64-1 fails with ErrOverflow.
func UlebDecode(input []byte) (uint64, int, error) {
	var value uint64
	for i := 0; ; i++ {
		if i >= len(input) {
			return 0, 0, fmt.Errorf("%w: uleb128 ended after %d bytes without a terminator", wire.ErrTruncated, i)
		}
		b := input[i]
		if i == 9 && b > 1 {
			return 0, 0, fmt.Errorf("%w: uleb128 value does not fit in a u64", wire.ErrOverflow)
		}
		value = value | uint64(b&0x7F)<<(7*i)
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
	}
}

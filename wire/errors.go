// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package wire

import (
	"errors"
	"fmt"
)

// Error taxonomy for the codec. Every failure returned by this module and by
// the bcs package wraps exactly one of these sentinels, so callers can match
// with errors.Is regardless of the context attached to the message. The one
// exception is the bcs uint vector codecs' rejection of the uint and uintptr
// element types, which wraps none of them.
var (
	// ErrTruncated means a decoder needed more bytes than remained in the
	// input.
	ErrTruncated = errors.New("input truncated")

	// ErrInvalidValue means a byte or sub-sequence is outside its schema's
	// domain: a boolean byte other than 0 or 1, an option tag other than
	// 0 or 1, an enum discriminant at or past the variant count, a
	// malformed UTF-8 string, or a redundant ULEB128 zero digit under strict
	// decoding. The bcs Deserializer also returns it when container nesting
	// exceeds MaxContainerDepth.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOverflow means a decoded length or integer does not fit the
	// declared target width.
	ErrOverflow = errors.New("integer overflow")

	// ErrValueOutOfRange means an encode-side value exceeds its declared
	// bit width or the maximum sequence length.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrTrailingBytes means a fully-consuming decode finished the
	// top-level schema with input still unread.
	ErrTrailingBytes = errors.New("trailing bytes after value")
)

func errTruncated(offset, need, remaining int) error {
	return fmt.Errorf("%w: need %d bytes at offset %d, %d remain", ErrTruncated, need, offset, remaining)
}

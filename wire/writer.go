// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package wire

import (
	"bytes"
)

// Writer is an append-only buffer of little-endian encoded values. The zero
// value is ready to use. A Writer is single-owner: it must not be shared
// between goroutines without external synchronization. After a failed write
// the buffer contents are unspecified; callers should Reset or discard it.
type Writer struct {
	buf bytes.Buffer
}

func NewWriter() *Writer {
	return new(Writer)
}

func (w *Writer) WriteU8(value uint8) error {
	return w.buf.WriteByte(byte(value))
}

func (w *Writer) WriteU16(value uint16) error {
	w.buf.WriteByte(byte(value))
	w.buf.WriteByte(byte(value >> 8))
	return nil
}

func (w *Writer) WriteU32(value uint32) error {
	w.buf.WriteByte(byte(value))
	w.buf.WriteByte(byte(value >> 8))
	w.buf.WriteByte(byte(value >> 16))
	w.buf.WriteByte(byte(value >> 24))
	return nil
}

func (w *Writer) WriteU64(value uint64) error {
	w.buf.WriteByte(byte(value))
	w.buf.WriteByte(byte(value >> 8))
	w.buf.WriteByte(byte(value >> 16))
	w.buf.WriteByte(byte(value >> 24))
	w.buf.WriteByte(byte(value >> 32))
	w.buf.WriteByte(byte(value >> 40))
	w.buf.WriteByte(byte(value >> 48))
	w.buf.WriteByte(byte(value >> 56))
	return nil
}

func (w *Writer) WriteU128(value Uint128) error {
	w.WriteU64(value.Low)
	w.WriteU64(value.High)
	return nil
}

func (w *Writer) WriteU256(value Uint256) error {
	for _, limb := range value {
		w.WriteU64(limb)
	}
	return nil
}

func (w *Writer) WriteBool(value bool) error {
	if value {
		return w.buf.WriteByte(1)
	}
	return w.buf.WriteByte(0)
}

// WriteBytes appends value verbatim, without a length prefix.
func (w *Writer) WriteBytes(value []byte) error {
	w.buf.Write(value)
	return nil
}

// Finish returns the accumulated bytes. The slice aliases the Writer's
// buffer; it stays valid until the next write or Reset.
func (w *Writer) Finish() []byte {
	return w.buf.Bytes()
}

// Size returns the number of bytes written so far.
func (w *Writer) Size() int {
	return w.buf.Len()
}

// Reset discards the accumulated bytes.
func (w *Writer) Reset() {
	w.buf.Reset()
}

// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package bcs

import (
	"fmt"
	"math/big"

	"github.com/novifinancial/bcs-go/wire"
)

// Serializer encodes BCS values into an in-memory buffer. It extends
// wire.Writer with the format layer: ULEB128 length prefixes, variant
// indexes and option tags. The zero value is ready to use. Not safe for
// concurrent use; after a failed serialize the buffer contents are
// unspecified.
type Serializer struct {
	wire.Writer
}

func NewSerializer() *Serializer {
	return new(Serializer)
}

// SerializeLen writes a sequence length as ULEB128. Lengths above
// MaxSequenceLength fail with ErrValueOutOfRange.
func (s *Serializer) SerializeLen(value uint64) error {
	if value > MaxSequenceLength {
		return fmt.Errorf("%w: sequence length %d exceeds %d", wire.ErrValueOutOfRange, value, MaxSequenceLength)
	}
	s.serializeU32AsUleb128(uint32(value))
	return nil
}

// SerializeVariantIndex writes an enum discriminant as ULEB128.
func (s *Serializer) SerializeVariantIndex(value uint32) error {
	s.serializeU32AsUleb128(value)
	return nil
}

// SerializeOptionTag writes 0x01 for a present value, 0x00 for an absent
// one.
func (s *Serializer) SerializeOptionTag(present bool) error {
	return s.WriteBool(present)
}

// SerializeUleb128 writes value as ULEB128 at full u64 width, outside the
// u32 bound that applies to lengths and variant indexes.
func (s *Serializer) SerializeUleb128(value uint64) error {
	return s.WriteBytes(AppendUleb128(nil, value))
}

// SerializeBytes writes a ULEB128 byte count followed by value verbatim.
func (s *Serializer) SerializeBytes(value []byte) error {
	if err := s.SerializeLen(uint64(len(value))); err != nil {
		return err
	}
	return s.WriteBytes(value)
}

// SerializeStr writes a ULEB128 UTF-8 byte count (not code-point count)
// followed by the UTF-8 bytes of value.
func (s *Serializer) SerializeStr(value string) error {
	return s.SerializeBytes([]byte(value))
}

// SerializeFixedBytes writes value verbatim with no length prefix; the
// length is fixed by the schema.
func (s *Serializer) SerializeFixedBytes(value []byte) error {
	return s.WriteBytes(value)
}

func (s *Serializer) SerializeBool(value bool) error {
	return s.WriteBool(value)
}

func (s *Serializer) SerializeU8(value uint8) error {
	return s.WriteU8(value)
}

func (s *Serializer) SerializeU16(value uint16) error {
	return s.WriteU16(value)
}

func (s *Serializer) SerializeU32(value uint32) error {
	return s.WriteU32(value)
}

func (s *Serializer) SerializeU64(value uint64) error {
	return s.WriteU64(value)
}

func (s *Serializer) SerializeU128(value wire.Uint128) error {
	return s.WriteU128(value)
}

func (s *Serializer) SerializeU256(value wire.Uint256) error {
	return s.WriteU256(value)
}

// SerializeU128FromBig writes value as a 16-byte little-endian integer.
// Negative values and values at or above 2^128 fail with ErrValueOutOfRange.
func (s *Serializer) SerializeU128FromBig(value *big.Int) error {
	v, err := wire.Uint128FromBig(value)
	if err != nil {
		return err
	}
	return s.WriteU128(v)
}

// SerializeU256FromBig writes value as a 32-byte little-endian integer.
// Negative values and values at or above 2^256 fail with ErrValueOutOfRange.
func (s *Serializer) SerializeU256FromBig(value *big.Int) error {
	v, err := wire.Uint256FromBig(value)
	if err != nil {
		return err
	}
	return s.WriteU256(v)
}

// GetBytes returns the serialized bytes accumulated so far.
func (s *Serializer) GetBytes() []byte {
	return s.Finish()
}

func (s *Serializer) serializeU32AsUleb128(value uint32) {
	for value >= 0x80 {
		s.WriteU8(byte(value&0x7F | 0x80))
		value = value >> 7
	}
	s.WriteU8(byte(value))
}

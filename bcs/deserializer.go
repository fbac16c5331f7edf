// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package bcs

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/novifinancial/bcs-go/wire"
)

// Deserializer decodes BCS values from an in-memory byte sequence. It
// extends wire.Reader with the format layer: ULEB128 lengths, variant
// indexes, option tags, and a container nesting guard. Not safe for
// concurrent use; after a failed deserialize the cursor position is
// unspecified and the Deserializer must not be used further.
type Deserializer struct {
	wire.Reader

	// strict rejects non-minimal ULEB128 input instead of accepting it.
	strict bool
	depth  int
}

// NewDeserializer returns a Deserializer over input that accepts
// non-minimal ULEB128 encodings, matching the upstream BCS libraries.
func NewDeserializer(input []byte) *Deserializer {
	return &Deserializer{Reader: *wire.NewReader(input)}
}

// NewStrictDeserializer returns a Deserializer over input that rejects
// non-minimal ULEB128 encodings with ErrInvalidValue.
func NewStrictDeserializer(input []byte) *Deserializer {
	return &Deserializer{Reader: *wire.NewReader(input), strict: true}
}

// DeserializeLen reads a ULEB128 sequence length. Lengths above
// MaxSequenceLength fail with ErrOverflow.
func (d *Deserializer) DeserializeLen() (uint64, error) {
	ret, err := d.DeserializeUleb128AsU32()
	if err != nil {
		return 0, err
	}
	if ret > MaxSequenceLength {
		return 0, fmt.Errorf("%w: sequence length %d exceeds %d", wire.ErrOverflow, ret, MaxSequenceLength)
	}
	return uint64(ret), nil
}

// DeserializeVariantIndex reads an enum discriminant as ULEB128. Range
// checking against the variant count is the caller's concern; see
// DeserializeEnum.
func (d *Deserializer) DeserializeVariantIndex() (uint32, error) {
	return d.DeserializeUleb128AsU32()
}

// DeserializeOptionTag reads an option discriminant; bytes outside {0,1}
// fail with ErrInvalidValue.
func (d *Deserializer) DeserializeOptionTag() (bool, error) {
	return d.ReadBool()
}

// DeserializeBytes reads a ULEB128 byte count followed by that many raw
// bytes. The returned slice is an owned copy.
func (d *Deserializer) DeserializeBytes() ([]byte, error) {
	n, err := d.DeserializeLen()
	if err != nil {
		return nil, err
	}
	return d.ReadBytes(int(n))
}

// DeserializeStr reads a length-prefixed string and validates it as UTF-8.
// Malformed UTF-8 fails with ErrInvalidValue; no replacement characters are
// substituted.
func (d *Deserializer) DeserializeStr() (string, error) {
	start := d.Position()
	ret, err := d.DeserializeBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(ret) {
		return "", fmt.Errorf("%w: string at offset %d is not valid utf-8", wire.ErrInvalidValue, start)
	}
	return string(ret), nil
}

// DeserializeFixedBytes reads n raw bytes; the length is fixed by the
// schema, not by a prefix.
func (d *Deserializer) DeserializeFixedBytes(n int) ([]byte, error) {
	return d.ReadBytes(n)
}

func (d *Deserializer) DeserializeBool() (bool, error) {
	return d.ReadBool()
}

func (d *Deserializer) DeserializeU8() (uint8, error) {
	return d.ReadU8()
}

func (d *Deserializer) DeserializeU16() (uint16, error) {
	return d.ReadU16()
}

func (d *Deserializer) DeserializeU32() (uint32, error) {
	return d.ReadU32()
}

func (d *Deserializer) DeserializeU64() (uint64, error) {
	return d.ReadU64()
}

func (d *Deserializer) DeserializeU128() (wire.Uint128, error) {
	return d.ReadU128()
}

func (d *Deserializer) DeserializeU256() (wire.Uint256, error) {
	return d.ReadU256()
}

// DeserializeU128AsBig reads a 16-byte little-endian integer as a big.Int.
func (d *Deserializer) DeserializeU128AsBig() (*big.Int, error) {
	v, err := d.ReadU128()
	if err != nil {
		return nil, err
	}
	return v.Big(), nil
}

// DeserializeU256AsBig reads a 32-byte little-endian integer as a big.Int.
func (d *Deserializer) DeserializeU256AsBig() (*big.Int, error) {
	v, err := d.ReadU256()
	if err != nil {
		return nil, err
	}
	return v.Big(), nil
}

// DeserializeUleb128AsU32 reads one ULEB128 value of at most 32 bits.
// Values past 2^32-1 fail with ErrOverflow. In strict mode a redundant zero
// digit (a non-minimal encoding) fails with ErrInvalidValue.
func (d *Deserializer) DeserializeUleb128AsU32() (uint32, error) {
	var value uint64
	for shift := 0; shift < 32; shift += 7 {
		b, err := d.ReadU8()
		if err != nil {
			return 0, err
		}
		digit := b & 0x7F
		value = value | uint64(digit)<<shift
		if value > maxUint32 {
			return 0, fmt.Errorf("%w: uleb128 value does not fit in a u32", wire.ErrOverflow)
		}
		if digit == b {
			if d.strict && shift > 0 && digit == 0 {
				return 0, fmt.Errorf("%w: redundant zero digit in uleb128 at offset %d", wire.ErrInvalidValue, d.Position()-1)
			}
			return uint32(value), nil
		}
	}
	return 0, fmt.Errorf("%w: uleb128 value does not fit in a u32", wire.ErrOverflow)
}

// ExpectEnd requires the input to be fully consumed; leftover bytes fail
// with ErrTrailingBytes. This is the only place the fully-consumed rule is
// enforced — individual reads never require it.
func (d *Deserializer) ExpectEnd() error {
	if d.HasMore() {
		return fmt.Errorf("%w: %d bytes remain at offset %d", wire.ErrTrailingBytes, d.Remaining(), d.Position())
	}
	return nil
}

// DeserializeUleb128 reads one ULEB128 value at full u64 width. Values past
// 2^64-1 fail with ErrOverflow; in strict mode a redundant zero digit fails
// with ErrInvalidValue.
func (d *Deserializer) DeserializeUleb128() (uint64, error) {
	var value uint64
	for i := 0; ; i++ {
		b, err := d.ReadU8()
		if err != nil {
			return 0, err
		}
		if i == 9 && b > 1 {
			return 0, fmt.Errorf("%w: uleb128 value does not fit in a u64", wire.ErrOverflow)
		}
		value = value | uint64(b&0x7F)<<(7*i)
		if b&0x80 == 0 {
			if d.strict && i > 0 && b == 0 {
				return 0, fmt.Errorf("%w: redundant zero digit in uleb128 at offset %d", wire.ErrInvalidValue, d.Position()-1)
			}
			return value, nil
		}
	}
}

// IncreaseContainerDepth records entry into a nested container. More than
// MaxContainerDepth levels fail with ErrInvalidValue.
func (d *Deserializer) IncreaseContainerDepth() error {
	if d.depth >= MaxContainerDepth {
		return fmt.Errorf("%w: container nesting exceeds %d levels", wire.ErrInvalidValue, MaxContainerDepth)
	}
	d.depth++
	return nil
}

// DecreaseContainerDepth records exit from a nested container.
func (d *Deserializer) DecreaseContainerDepth() {
	d.depth--
}

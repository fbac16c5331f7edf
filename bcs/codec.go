// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package bcs

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/novifinancial/bcs-go/wire"
)

// EncodeFunc encodes one element of type T. Element codecs conform to the
// same contract as the built-in ones: append the element's canonical bytes,
// return the first error.
type EncodeFunc[T any] func(*Serializer, T) error

// DecodeFunc decodes one element of type T, consuming exactly the element's
// bytes from the Deserializer.
type DecodeFunc[T any] func(*Deserializer) (T, error)

var errPlatformWidth = errors.New("bcs: uint and uintptr have platform-dependent width")

// SerializeVector writes a ULEB128 element count followed by each element in
// order.
func SerializeVector[T any](s *Serializer, values []T, enc EncodeFunc[T]) error {
	if err := s.SerializeLen(uint64(len(values))); err != nil {
		return err
	}
	for i, v := range values {
		if err := enc(s, v); err != nil {
			return fmt.Errorf("vector element %d: %w", i, err)
		}
	}
	return nil
}

// DeserializeVector reads a ULEB128 element count and then that many
// elements through dec.
func DeserializeVector[T any](d *Deserializer, dec DecodeFunc[T]) ([]T, error) {
	if err := d.IncreaseContainerDepth(); err != nil {
		return nil, err
	}
	defer d.DecreaseContainerDepth()
	n, err := d.DeserializeLen()
	if err != nil {
		return nil, err
	}
	ret := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := dec(d)
		if err != nil {
			return nil, fmt.Errorf("vector element %d: %w", i, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// SerializeFixedArray writes each element in order with no length prefix;
// the length is fixed by the schema.
func SerializeFixedArray[T any](s *Serializer, values []T, enc EncodeFunc[T]) error {
	for i, v := range values {
		if err := enc(s, v); err != nil {
			return fmt.Errorf("array element %d: %w", i, err)
		}
	}
	return nil
}

// DeserializeFixedArray reads exactly n elements through dec.
func DeserializeFixedArray[T any](d *Deserializer, n int, dec DecodeFunc[T]) ([]T, error) {
	if err := d.IncreaseContainerDepth(); err != nil {
		return nil, err
	}
	defer d.DecreaseContainerDepth()
	ret := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := dec(d)
		if err != nil {
			return nil, fmt.Errorf("array element %d: %w", i, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// SerializeOption writes 0x00 for nil, otherwise 0x01 followed by the
// element encoding.
func SerializeOption[T any](s *Serializer, value *T, enc EncodeFunc[T]) error {
	if err := s.SerializeOptionTag(value != nil); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	return enc(s, *value)
}

// DeserializeOption reads an option tag and, when present, the payload.
// Returns nil for an absent value.
func DeserializeOption[T any](d *Deserializer, dec DecodeFunc[T]) (*T, error) {
	if err := d.IncreaseContainerDepth(); err != nil {
		return nil, err
	}
	defer d.DecreaseContainerDepth()
	present, err := d.DeserializeOptionTag()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := dec(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SerializeEnum writes a ULEB128 variant index followed by the variant's
// payload. A nil payload function encodes a payload-free variant.
func SerializeEnum(s *Serializer, index uint32, payload func(*Serializer) error) error {
	if err := s.SerializeVariantIndex(index); err != nil {
		return err
	}
	if payload == nil {
		return nil
	}
	return payload(s)
}

// DeserializeEnum reads a variant index, checks it against the variant
// table, and decodes the payload through the matching entry. A nil entry
// marks a payload-free variant, whose value is the zero T. An index at or
// past len(variants) fails with ErrInvalidValue.
func DeserializeEnum[T any](d *Deserializer, variants []DecodeFunc[T]) (uint32, T, error) {
	var zero T
	if err := d.IncreaseContainerDepth(); err != nil {
		return 0, zero, err
	}
	defer d.DecreaseContainerDepth()
	index, err := d.DeserializeVariantIndex()
	if err != nil {
		return 0, zero, err
	}
	if uint64(index) >= uint64(len(variants)) {
		return 0, zero, fmt.Errorf("%w: variant index %d out of range for %d variants", wire.ErrInvalidValue, index, len(variants))
	}
	dec := variants[index]
	if dec == nil {
		return index, zero, nil
	}
	v, err := dec(d)
	if err != nil {
		return 0, zero, fmt.Errorf("variant %d: %w", index, err)
	}
	return index, v, nil
}

// SerializeUintVector writes a vector of fixed-width unsigned integers.
// T must be uint8, uint16, uint32 or uint64; uint and uintptr are rejected
// because their wire width would vary by platform.
func SerializeUintVector[T constraints.Unsigned](s *Serializer, values []T) error {
	width, err := uintWidth[T]()
	if err != nil {
		return err
	}
	if err := s.SerializeLen(uint64(len(values))); err != nil {
		return err
	}
	for _, v := range values {
		switch width {
		case 1:
			s.WriteU8(uint8(v))
		case 2:
			s.WriteU16(uint16(v))
		case 4:
			s.WriteU32(uint32(v))
		case 8:
			s.WriteU64(uint64(v))
		}
	}
	return nil
}

// DeserializeUintVector reads a vector of fixed-width unsigned integers.
func DeserializeUintVector[T constraints.Unsigned](d *Deserializer) ([]T, error) {
	width, err := uintWidth[T]()
	if err != nil {
		return nil, err
	}
	n, err := d.DeserializeLen()
	if err != nil {
		return nil, err
	}
	ret := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		var v uint64
		switch width {
		case 1:
			b, err := d.ReadU8()
			if err != nil {
				return nil, err
			}
			v = uint64(b)
		case 2:
			x, err := d.ReadU16()
			if err != nil {
				return nil, err
			}
			v = uint64(x)
		case 4:
			x, err := d.ReadU32()
			if err != nil {
				return nil, err
			}
			v = uint64(x)
		case 8:
			x, err := d.ReadU64()
			if err != nil {
				return nil, err
			}
			v = x
		}
		ret = append(ret, T(v))
	}
	return ret, nil
}

func uintWidth[T constraints.Unsigned]() (int, error) {
	switch any(T(0)).(type) {
	case uint8:
		return 1, nil
	case uint16:
		return 2, nil
	case uint32:
		return 4, nil
	case uint64:
		return 8, nil
	default:
		return 0, errPlatformWidth
	}
}

// Marshal runs fn over a fresh Serializer and returns the bytes it
// produced.
func Marshal(fn func(*Serializer) error) ([]byte, error) {
	s := NewSerializer()
	if err := fn(s); err != nil {
		return nil, err
	}
	return s.GetBytes(), nil
}

// Unmarshal runs fn over a Deserializer for input and then requires the
// input to be fully consumed; leftover bytes fail with ErrTrailingBytes.
func Unmarshal(input []byte, fn func(*Deserializer) error) error {
	d := NewDeserializer(input)
	if err := fn(d); err != nil {
		return err
	}
	return d.ExpectEnd()
}

// UnmarshalStrict is Unmarshal over a strict Deserializer: non-minimal
// ULEB128 input fails with ErrInvalidValue in addition to the trailing-bytes
// check.
func UnmarshalStrict(input []byte, fn func(*Deserializer) error) error {
	d := NewStrictDeserializer(input)
	if err := fn(d); err != nil {
		return err
	}
	return d.ExpectEnd()
}

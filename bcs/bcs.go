// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

// Package bcs implements Binary Canonical Serialization, the deterministic
// binary format of the Diem/Move/Sui family. The format is schema-driven:
// the caller knows at each point which logical type is being read or
// written, and the same logical value always encodes to the same bytes.
//
// The Serializer and Deserializer expose one operation per primitive schema;
// composites (vectors, fixed arrays, options, enums) are generic functions
// parameterized by an element codec. Structs and tuples are plain
// concatenation of their fields in declared order and are composed by the
// caller, typically through Marshal and Unmarshal.
package bcs

import (
	"encoding/hex"
)

// MaxSequenceLength is the maximum length allowed for sequences (vectors,
// bytes, strings).
const MaxSequenceLength = (1 << 31) - 1

// MaxContainerDepth is the maximum number of nested containers a
// Deserializer will enter.
const MaxContainerDepth = 500

const maxUint32 = uint64(^uint32(0))

// Hex returns the lowercase hex rendering of b. Debugging helper.
func Hex(b []byte) string {
	return hex.EncodeToString(b)
}

// Dump returns an offset-annotated hex dump of b. Debugging helper.
func Dump(b []byte) string {
	return hex.Dump(b)
}

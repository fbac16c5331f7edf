// Copyright (c) Facebook, Inc. and its affiliates
// SPDX-License-Identifier: MIT OR Apache-2.0

package bcs_test

import (
	"testing"

	"github.com/novifinancial/bcs-go/bcs"
)

func BenchmarkSerializeCoin(b *testing.B) {
	target := coin{Value: 412_412_400_000, Owner: "Big Wallet Guy"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := bcs.NewSerializer()
		if err := target.serialize(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeserializeCoin(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d := bcs.NewDeserializer(coinEncoded)
		if _, err := deserializeCoin(d); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUlebEncode(b *testing.B) {
	buf := make([]byte, 0, 16)
	for i := 0; i < b.N; i++ {
		buf = bcs.AppendUleb128(buf[:0], uint64(i))
	}
}

func BenchmarkSerializeUintVector(b *testing.B) {
	values := make([]uint64, 1024)
	for i := range values {
		values[i] = uint64(i) * 7919
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := bcs.NewSerializer()
		if err := bcs.SerializeUintVector(s, values); err != nil {
			b.Fatal(err)
		}
	}
}

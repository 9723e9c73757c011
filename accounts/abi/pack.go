// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"github.com/ethereum/go-abi/common"
)

// packBytesSlice packs the given bytes as [L, V], the length word followed by
// the payload right padded to a word boundary. An empty payload still gets
// one zero padding word.
// packBytesSlice 将给定字节打包为 [L, V]。空负载仍占用一个填充字。
func packBytesSlice(bytes []byte) []byte {
	return append(packNum(len(bytes)), common.RightPadBytes(bytes, paddedLen(len(bytes)))...)
}

// paddedLen rounds n up to a multiple of 32, with a minimum of one word.
func paddedLen(n int) int {
	if n == 0 {
		return 32
	}
	return (n + 31) / 32 * 32
}

// dynamicLen is the encoded size of a bytes or string value of n bytes.
func dynamicLen(n int) int {
	return 32 + paddedLen(n)
}

// packSequence lays out values as a head/tail region:
//
//	enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
//
// A static member's head is its encoding and its tail is empty. A dynamic
// member's head is the offset of its tail, counted from the start of the
// region, and its tail is its encoding.
// packSequence 将值布局为头部/尾部区域。
func packSequence(values []Value) []byte {
	offset := 0
	for _, v := range values {
		offset += v.Type().HeadSize()
	}
	ret := make([]byte, 0, sequenceLen(values))
	var tail []byte
	for _, v := range values {
		enc := v.Encode()
		if v.Type().IsDynamic() {
			ret = append(ret, packNum(offset)...)
			tail = append(tail, enc...)
			offset += len(enc)
		} else {
			ret = append(ret, enc...)
		}
	}
	return append(ret, tail...)
}

// sequenceLen is len(packSequence(values)).
func sequenceLen(values []Value) int {
	n := 0
	for _, v := range values {
		if v.Type().IsDynamic() {
			n += 32
		}
		n += v.EncodedLen()
	}
	return n
}

// Encode lays out values the way a call's arguments are laid out, without a
// selector. Like Builder.Push it panics on a nil or untyped value.
// Encode 按调用参数的方式布局值，不带选择器。
func Encode(values ...Value) []byte {
	for _, v := range values {
		if err := checkValue(v); err != nil {
			panic(err)
		}
	}
	return packSequence(values)
}

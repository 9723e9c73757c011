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
	"strings"

	"github.com/ethereum/go-abi/common/hexutil"
	"github.com/ethereum/go-abi/crypto"
)

// Selector is the 4 byte function selector, the first four bytes of the
// Keccak-256 hash of the canonical signature.
// Selector 是 4 字节函数选择器，即规范签名的 Keccak-256 哈希的前四个字节。
type Selector [4]byte

// Signature returns the canonical signature name(T1,...,Tn). Parameter
// names never appear in it.
func Signature(name string, types ...Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// ComputeSelector returns the selector of the function name taking the given
// parameter types, in declaration order.
func ComputeSelector(name string, types ...Type) Selector {
	return SelectorFromSignature(Signature(name, types...))
}

// SelectorFromSignature hashes an already canonical signature. No
// normalisation takes place, use ParseSignature for human-written input.
func SelectorFromSignature(sig string) Selector {
	var s Selector
	copy(s[:], crypto.Keccak256([]byte(sig))[:4])
	return s
}

// Bytes returns the selector as a byte slice.
func (s Selector) Bytes() []byte { return s[:] }

// Hex returns the 0x prefixed hex form.
func (s Selector) Hex() string { return hexutil.Encode(s[:]) }

func (s Selector) String() string { return s.Hex() }

// Copyright 2015 The go-ethereum Authors
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

// Package abi implements the Ethereum contract ABI encoding.
//
// Values are typed: every Value knows its canonical Type, validated when the
// value is constructed, so encoding never fails. Arguments are laid out as a
// head of one slot per member followed by a tail holding the bodies of the
// dynamic members:
//
//	data := abi.NewBuilder().
//		Name("transfer").
//		Push(to).
//		Push(abi.Uint256(100)).
//		Build()
//
// Decoding walks the same layout against a list of expected types and
// returns Values. Bytes values returned by Decode share memory with the
// input.
//
// On top of the codec the package models a contract's JSON ABI (methods,
// events, custom errors) and parses human-written signatures.
//
// abi 包实现了以太坊合约 ABI 编码。
//
// 值是带类型的：每个 Value 都知道其规范类型，并在构造时进行验证，因此编码永远不会失败。
// 参数的布局是每个成员一个槽位的头部，后跟保存动态成员内容的尾部。
// 解码按照期望的类型列表遍历相同的布局并返回 Value。
package abi

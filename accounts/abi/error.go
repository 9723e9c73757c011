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
	"fmt"
	"strings"
)

// Error is a custom Solidity error declared in the ABI. Reverting with it
// produces its selector followed by the encoded inputs.
// Error 表示 ABI 中声明的自定义 Solidity 错误。
type Error struct {
	Name   string
	Inputs Arguments
	str    string

	// Sig contains the canonical signature, e.g. "Insufficient(uint256,uint256)".
	Sig string

	// ID is the selector of Sig.
	ID Selector
}

// NewError creates a new Error, naming unnamed inputs arg<i>.
// NewError 使用给定的名称和输入参数创建一个新的 Error。
func NewError(name string, inputs Arguments) Error {
	inputs = nameArguments(inputs, "arg")
	names := make([]string, len(inputs))
	for i, input := range inputs {
		names[i] = fmt.Sprintf("%v %v", input.Type, input.Name)
	}
	sig := Signature(name, inputs.Types()...)

	return Error{
		Name:   name,
		Inputs: inputs,
		str:    fmt.Sprintf("error %v(%v)", name, strings.Join(names, ", ")),
		Sig:    sig,
		ID:     SelectorFromSignature(sig),
	}
}

// String returns the string representation of the error.
func (e Error) String() string {
	return e.str
}

// Unpack checks the selector prefix of data and decodes the error's inputs
// from the rest.
// Unpack 检查数据的选择器前缀并解码其余部分。
func (e *Error) Unpack(data []byte) ([]Value, error) {
	if len(data) < 4 {
		return nil, &BoundsError{Offset: 0, Need: 4, Have: len(data)}
	}
	if Selector(data[:4]) != e.ID {
		return nil, fmt.Errorf("invalid identifier, have %#x want %s", data[:4], e.ID)
	}
	return e.Inputs.Unpack(data[4:])
}

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

package abi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
// Argument 结构体保存参数的名称和对应的类型。
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // indexed is only used by events (仅适用于事件)
}

// Arguments is an ordered parameter list. Its encoding is the head/tail
// layout of a tuple of its members.
type Arguments []Argument

// ArgumentMarshaling is the JSON shape of an argument.
type ArgumentMarshaling struct {
	Name         string
	Type         string
	InternalType string
	Components   []ArgumentMarshaling
	Indexed      bool
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 方法实现了 json.Unmarshaler 接口。
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}

	argument.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed

	return nil
}

// NonIndexed returns the arguments with indexed arguments filtered out.
// NonIndexed 方法返回过滤掉索引参数后的参数列表。
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Types returns the argument types in order.
func (arguments Arguments) Types() []Type {
	types := make([]Type, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type
	}
	return types
}

// Tuple returns the tuple type with the arguments as named members.
func (arguments Arguments) Tuple() Type {
	names := make([]string, len(arguments))
	for i, arg := range arguments {
		names[i] = arg.Name
	}
	return NamedTupleOf(names, arguments.Types()...)
}

// Unpack decodes the non-indexed arguments from data.
// Unpack 方法将 ABI 编码的数据解包为值列表。
func (arguments Arguments) Unpack(data []byte) ([]Value, error) {
	nonIndexed := arguments.NonIndexed()
	if len(data) == 0 {
		if len(nonIndexed) != 0 {
			return nil, fmt.Errorf("%w: attempting to unmarshal an empty string while arguments are expected", ErrUnexpectedEOF)
		}
		return make([]Value, 0), nil
	}
	return Decode(data, nonIndexed.Types()...)
}

// UnpackIntoMap performs the operation hexdata -> mapping of argument name to argument value.
// UnpackIntoMap 方法将 ABI 编码的数据解包为参数名到参数值的映射。
func (arguments Arguments) UnpackIntoMap(v map[string]Value, data []byte) error {
	// Make sure map is not nil 确保目标映射不为空。
	if v == nil {
		return errors.New("abi: cannot unpack into a nil map")
	}
	values, err := arguments.Unpack(data)
	if err != nil {
		return err
	}
	for i, arg := range arguments.NonIndexed() {
		v[arg.Name] = values[i]
	}
	return nil
}

// Pack checks values against the declared types and encodes them.
// Pack 方法检查值的类型并进行编码。
func (arguments Arguments) Pack(values ...Value) ([]byte, error) {
	if len(values) != len(arguments) {
		return nil, fmt.Errorf("argument count mismatch: got %d for %d", len(values), len(arguments))
	}
	for i, v := range values {
		if err := checkValue(v); err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, arguments[i].Name, err)
		}
		if !v.Type().Equal(arguments[i].Type) {
			return nil, fmt.Errorf("argument %d (%s): %w", i, arguments[i].Name, typeErr(arguments[i].Type, v.Type()))
		}
	}
	return packSequence(values), nil
}

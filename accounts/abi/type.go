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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
	FunctionTy
)

// Type is a canonical ABI type. Size carries the bit width of integers, the
// byte count of bytes<N>, the length of T[k], 20 for address and 24 for
// function.
// Type 是规范的 ABI 类型。
type Type struct {
	Elem *Type // 数组或切片的元素类型
	Size int
	T    byte

	stringKind string // canonical name, used for signatures 规范名称，用于派生签名

	// Tuple relative fields
	TupleRawName  string   // Raw struct name defined in source code, may be empty.
	TupleElems    []*Type  // Type information of all tuple fields
	TupleRawNames []string // Raw field name of all tuple fields, may hold empty names
}

var (
	// typeRegex parses the abi sub types
	// typeRegex 解析 ABI 子类型
	typeRegex = regexp.MustCompile("^([a-zA-Z]+)(([0-9]+)(x([0-9]+))?)?$")

	// sliceSizeRegex grab the slice size
	sliceSizeRegex = regexp.MustCompile("^\\[([0-9]*)\\]$")
)

// Elementary types without a size parameter.
var (
	TypeBool     = Type{T: BoolTy, stringKind: "bool"}
	TypeAddress  = Type{T: AddressTy, Size: 20, stringKind: "address"}
	TypeString   = Type{T: StringTy, stringKind: "string"}
	TypeBytes    = Type{T: BytesTy, stringKind: "bytes"}
	TypeFunction = Type{T: FunctionTy, Size: 24, stringKind: "function"}
)

// IntType returns the signed integer type of the given bit width. Widths
// must be a multiple of 8 between 8 and 256.
func IntType(bits int) (Type, error) {
	if !validIntWidth(bits) {
		return Type{}, &UnsupportedTypeError{Type: "int" + strconv.Itoa(bits)}
	}
	return Type{T: IntTy, Size: bits, stringKind: "int" + strconv.Itoa(bits)}, nil
}

// UintType returns the unsigned integer type of the given bit width.
func UintType(bits int) (Type, error) {
	if !validIntWidth(bits) {
		return Type{}, &UnsupportedTypeError{Type: "uint" + strconv.Itoa(bits)}
	}
	return Type{T: UintTy, Size: bits, stringKind: "uint" + strconv.Itoa(bits)}, nil
}

// FixedBytesType returns the bytes<size> type, size in 1..32.
func FixedBytesType(size int) (Type, error) {
	if size < 1 || size > 32 {
		return Type{}, &UnsupportedTypeError{Type: "bytes" + strconv.Itoa(size)}
	}
	return Type{T: FixedBytesTy, Size: size, stringKind: "bytes" + strconv.Itoa(size)}, nil
}

// SliceOf returns the dynamic array type T[].
func SliceOf(elem Type) Type {
	return Type{T: SliceTy, Elem: &elem, stringKind: elem.stringKind + "[]"}
}

// ArrayOf returns the fixed-size array type T[size]. It panics on a negative
// size.
func ArrayOf(elem Type, size int) Type {
	if size < 0 {
		panic(fmt.Sprintf("abi: negative array size %d", size))
	}
	return Type{T: ArrayTy, Elem: &elem, Size: size, stringKind: elem.stringKind + "[" + strconv.Itoa(size) + "]"}
}

// TupleOf returns the tuple type of the given members.
func TupleOf(elems ...Type) Type {
	return NamedTupleOf(nil, elems...)
}

// NamedTupleOf returns the tuple type of the given members, recording the
// member names. Names never influence the encoding or the canonical name.
func NamedTupleOf(names []string, elems ...Type) Type {
	typ := Type{T: TupleTy, TupleRawNames: make([]string, len(elems))}
	copy(typ.TupleRawNames, names)

	parts := make([]string, len(elems))
	for i := range elems {
		elem := elems[i]
		typ.TupleElems = append(typ.TupleElems, &elem)
		parts[i] = elem.stringKind
	}
	typ.stringKind = "(" + strings.Join(parts, ",") + ")"
	return typ
}

// MustNewType parses a canonical type string such as "uint256[]" or
// "(address,bytes)" and panics on error. It is meant for tests and generated
// code with constant type strings.
func MustNewType(t string) Type {
	typ, err := ParseType(t)
	if err != nil {
		panic(err)
	}
	return typ
}

func validIntWidth(bits int) bool {
	return bits > 0 && bits <= 256 && bits%8 == 0
}

// NewType creates a new type from its ABI JSON description: the type string
// t, the optional internalType emitted by solc and the tuple components.
// NewType 根据给定的 ABI JSON 描述创建一个新的类型。
func NewType(t string, internalType string, components []ArgumentMarshaling) (typ Type, err error) {
	// check that array brackets are equal if they exist
	// 检查数组括号是否存在且数量相等
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, errors.New("abi: invalid arg type in abi")
	}
	// if there are brackets, recursively create the element type first
	// 如果有括号，先递归创建元素类型
	if i := strings.LastIndex(t, "["); i != -1 {
		subInternal := internalType
		if j := strings.LastIndex(internalType, "["); j != -1 {
			subInternal = subInternal[:j]
		}
		embeddedType, err := NewType(t[:i], subInternal, components)
		if err != nil {
			return Type{}, err
		}
		m := sliceSizeRegex.FindStringSubmatch(t[i:])
		if m == nil {
			return Type{}, errors.New("abi: invalid formatting of array type")
		}
		if m[1] == "" {
			return SliceOf(embeddedType), nil
		}
		size, err := strconv.Atoi(m[1])
		if err != nil {
			return Type{}, fmt.Errorf("abi: error parsing variable size: %v", err)
		}
		return ArrayOf(embeddedType, size), nil
	}
	// parse the type and size of the abi-type.
	// 解析 ABI 类型的类型和大小。
	parsedType := typeRegex.FindStringSubmatch(t)
	if parsedType == nil {
		return Type{}, &UnsupportedTypeError{Type: t}
	}
	var varSize int
	if len(parsedType[3]) > 0 {
		varSize, err = strconv.Atoi(parsedType[2])
		if err != nil || len(parsedType[4]) > 0 {
			// fixed<M>x<N> and ufixed<M>x<N> are not supported
			return Type{}, &UnsupportedTypeError{Type: t}
		}
	} else if parsedType[0] == "uint" || parsedType[0] == "int" {
		// the compiler always spells out the width
		// 编译器总是写出宽度
		return Type{}, &UnsupportedTypeError{Type: t}
	}

	switch varType := parsedType[1]; varType {
	case "int":
		return IntType(varSize)
	case "uint":
		return UintType(varSize)
	case "bool", "address", "string", "function":
		if len(parsedType[3]) > 0 {
			return Type{}, &UnsupportedTypeError{Type: t}
		}
		switch varType {
		case "bool":
			return TypeBool, nil
		case "address":
			return TypeAddress, nil
		case "string":
			return TypeString, nil
		default:
			return TypeFunction, nil
		}
	case "bytes":
		if len(parsedType[3]) == 0 {
			return TypeBytes, nil
		}
		return FixedBytesType(varSize)
	case "tuple":
		var (
			elems = make([]Type, 0, len(components))
			names = make([]string, 0, len(components))
		)
		for _, c := range components {
			cType, err := NewType(c.Type, c.InternalType, c.Components)
			if err != nil {
				return Type{}, err
			}
			elems = append(elems, cType)
			names = append(names, c.Name)
		}
		typ = NamedTupleOf(names, elems...)

		// After solidity 0.5.10, "internalType" carries the struct name
		// defined in the source code. Foo.Bar is flattened to FooBar.
		// 在 Solidity 0.5.10 之后，"internalType" 携带源代码中定义的结构体名称。
		const structPrefix = "struct "
		if strings.HasPrefix(internalType, structPrefix) {
			typ.TupleRawName = strings.ReplaceAll(internalType[len(structPrefix):], ".", "")
		}
		return typ, nil
	default:
		if strings.HasPrefix(internalType, "contract ") {
			return TypeAddress, nil
		}
		return Type{}, &UnsupportedTypeError{Type: t}
	}
}

// String implements Stringer, returning the canonical type name.
// String 实现 Stringer 接口，返回规范类型名称。
func (t Type) String() (out string) {
	return t.stringKind
}

// Equal reports whether both types have the same canonical name. Tuple member
// names and struct names are ignored.
func (t Type) Equal(other Type) bool {
	return t.stringKind == other.stringKind
}

// valid reports whether t is a complete canonical type. The zero Type and
// composites built on it are not.
func (t Type) valid() bool {
	if t.stringKind == "" {
		return false
	}
	switch t.T {
	case SliceTy, ArrayTy:
		return t.Elem != nil && t.Elem.valid()
	case TupleTy:
		for _, elem := range t.TupleElems {
			if !elem.valid() {
				return false
			}
		}
	}
	return true
}

// IsDynamic returns true if the type is dynamic.
// The following types are called “dynamic”:
// * bytes
// * string
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
// IsDynamic 如果类型是动态的，则返回 true。
func (t Type) IsDynamic() bool {
	switch t.T {
	case StringTy, BytesTy, SliceTy:
		return true
	case ArrayTy:
		return t.Elem.IsDynamic()
	case TupleTy:
		for _, elem := range t.TupleElems {
			if elem.IsDynamic() {
				return true
			}
		}
	}
	return false
}

// HeadSize returns the number of bytes the type occupies in the head of its
// enclosing region. Static types are encoded in place, so this is their full
// encoded size. Dynamic types only leave a 32 byte offset behind.
// HeadSize 返回此类型在其所在区域头部中占用的字节数。
func (t Type) HeadSize() int {
	if t.IsDynamic() {
		return 32
	}
	switch t.T {
	case ArrayTy:
		return t.Size * t.Elem.HeadSize()
	case TupleTy:
		total := 0
		for _, elem := range t.TupleElems {
			total += elem.HeadSize()
		}
		return total
	}
	return 32
}

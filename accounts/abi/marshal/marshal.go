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

// Package marshal maps Go values onto ABI values and back.
//
// The mapping is driven by the Go type:
//
//	intN, uintN          int<N>, uint<N>
//	*big.Int             int256
//	*uint256.Int         uint256
//	bool, string         bool, string
//	[]byte, [N]byte      bytes, bytes<N>
//	common.Address       address
//	abi.FunctionRef      function
//	[]T, [N]T            T[], T[N]
//	struct               tuple of the exported fields, in order
//
// A struct field tag overrides the name and type of a member, or skips it:
//
//	type Order struct {
//		Amount *big.Int `abi:"amount,uint96"`
//		Fee    uint32   `abi:",uint24"`
//		Memo   string   `abi:"-"`
//	}
//
// marshal 包在 Go 值和 ABI 值之间进行映射。
package marshal

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-abi/accounts/abi"
	"github.com/ethereum/go-abi/common"
	"github.com/holiman/uint256"
)

var (
	bigT        = reflect.TypeOf((*big.Int)(nil))
	u256PtrT    = reflect.TypeOf((*uint256.Int)(nil))
	u256T       = reflect.TypeOf(uint256.Int{})
	addressT    = reflect.TypeOf(common.Address{})
	abiAddressT = reflect.TypeOf(abi.Address{})
	functionT   = reflect.TypeOf(abi.FunctionRef{})
	valueT      = reflect.TypeOf((*abi.Value)(nil)).Elem()
)

// TypeOf returns the ABI type a Go type marshals to.
// TypeOf 返回 Go 类型对应的 ABI 类型。
func TypeOf(rt reflect.Type) (abi.Type, error) {
	return typeOf(rt, "")
}

func typeOf(rt reflect.Type, override string) (abi.Type, error) {
	if override != "" {
		return abi.ParseType(override)
	}
	switch rt {
	case bigT:
		return abi.IntType(256)
	case u256PtrT, u256T:
		return abi.UintType(256)
	case addressT, abiAddressT:
		return abi.TypeAddress, nil
	case functionT:
		return abi.TypeFunction, nil
	}
	switch rt.Kind() {
	case reflect.Bool:
		return abi.TypeBool, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return abi.IntType(rt.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return abi.UintType(rt.Bits())
	case reflect.String:
		return abi.TypeString, nil
	case reflect.Ptr:
		return typeOf(rt.Elem(), "")
	case reflect.Slice:
		if rt.Elem().Kind() == reflect.Uint8 {
			return abi.TypeBytes, nil
		}
		elem, err := typeOf(rt.Elem(), "")
		if err != nil {
			return abi.Type{}, err
		}
		return abi.SliceOf(elem), nil
	case reflect.Array:
		if rt.Elem().Kind() == reflect.Uint8 && rt.Len() >= 1 && rt.Len() <= 32 {
			return abi.FixedBytesType(rt.Len())
		}
		elem, err := typeOf(rt.Elem(), "")
		if err != nil {
			return abi.Type{}, err
		}
		return abi.ArrayOf(elem, rt.Len()), nil
	case reflect.Struct, reflect.Interface:
		if rt.Implements(valueT) || rt.Kind() == reflect.Interface {
			// Parametric values carry their width, not their type.
			return abi.Type{}, &abi.UnsupportedTypeError{Type: rt.String() + " without abi type tag"}
		}
		var (
			fields = structFields(rt)
			names  = make([]string, len(fields))
			types  = make([]abi.Type, len(fields))
		)
		for i, f := range fields {
			typ, err := typeOf(rt.Field(f.index).Type, f.typ)
			if err != nil {
				return abi.Type{}, fmt.Errorf("field %s: %w", f.goName, err)
			}
			names[i], types[i] = f.name, typ
		}
		typ := abi.NamedTupleOf(names, types...)
		typ.TupleRawName = rt.Name()
		return typ, nil
	}
	return abi.Type{}, &abi.UnsupportedTypeError{Type: rt.String()}
}

// ValueOf converts a Go value into the ABI value of its type.
// ValueOf 将 Go 值转换为对应类型的 ABI 值。
func ValueOf(v interface{}) (abi.Value, error) {
	if v, ok := v.(abi.Value); ok {
		return v, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil value", abi.ErrTypeMismatch)
	}
	typ, err := TypeOf(rv.Type())
	if err != nil {
		return nil, err
	}
	return valueOf(rv, typ)
}

// ValueOfType converts a Go value into an ABI value of the declared type t,
// which may differ from the type TypeOf derives, e.g. a *big.Int for a
// uint24.
func ValueOfType(v interface{}, t abi.Type) (abi.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil value for %s", abi.ErrTypeMismatch, t)
	}
	return valueOf(rv, t)
}

func valueOf(rv reflect.Value, t abi.Type) (abi.Value, error) {
	if rv.Type().Implements(valueT) && rv.Kind() != reflect.Interface {
		v := rv.Interface().(abi.Value)
		if !v.Type().Equal(t) {
			return nil, &abi.TypeMismatchError{Want: t.String(), Have: v.Type().String()}
		}
		return v, nil
	}
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil interface for %s", abi.ErrTypeMismatch, t)
		}
		return valueOf(rv.Elem(), t)
	}
	if rv.Kind() == reflect.Ptr && rv.Type() != bigT && rv.Type() != u256PtrT {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil pointer for %s", abi.ErrTypeMismatch, t)
		}
		return valueOf(rv.Elem(), t)
	}
	mismatch := func() error {
		return &abi.TypeMismatchError{Want: t.String(), Have: rv.Type().String()}
	}

	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, ok := bigOf(rv)
		if !ok {
			return nil, mismatch()
		}
		if t.T == abi.IntTy {
			return abi.NewInt(t.Size, n)
		}
		return abi.NewUint(t.Size, n)
	case abi.BoolTy:
		if rv.Kind() != reflect.Bool {
			return nil, mismatch()
		}
		return abi.Bool(rv.Bool()), nil
	case abi.StringTy:
		if rv.Kind() != reflect.String {
			return nil, mismatch()
		}
		return abi.NewString(rv.String())
	case abi.AddressTy:
		switch rv.Type() {
		case addressT:
			return abi.Address{Address: rv.Interface().(common.Address)}, nil
		}
		b, ok := bytesOf(rv)
		if !ok {
			return nil, mismatch()
		}
		return abi.NewAddress(b)
	case abi.FunctionTy:
		b, ok := bytesOf(rv)
		if !ok {
			return nil, mismatch()
		}
		return abi.NewFunctionRef(b)
	case abi.FixedBytesTy:
		b, ok := bytesOf(rv)
		if !ok {
			return nil, mismatch()
		}
		return abi.NewFixedBytes(t.Size, b)
	case abi.BytesTy:
		b, ok := bytesOf(rv)
		if !ok {
			return nil, mismatch()
		}
		return abi.Bytes(b), nil
	case abi.SliceTy, abi.ArrayTy:
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, mismatch()
		}
		if t.T == abi.ArrayTy && rv.Len() != t.Size {
			return nil, &abi.LengthError{Type: t.String(), Want: t.Size, Have: rv.Len()}
		}
		elems := make([]abi.Value, rv.Len())
		for i := range elems {
			v, err := valueOf(rv.Index(i), *t.Elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			elems[i] = v
		}
		if t.T == abi.SliceTy {
			return abi.NewSlice(*t.Elem, elems...)
		}
		return abi.NewArray(*t.Elem, elems...)
	case abi.TupleTy:
		if rv.Kind() != reflect.Struct {
			return nil, mismatch()
		}
		fields := structFields(rv.Type())
		if len(fields) != len(t.TupleElems) {
			return nil, mismatch()
		}
		var (
			names = make([]string, len(fields))
			elems = make([]abi.Value, len(fields))
		)
		for i, f := range fields {
			v, err := valueOf(rv.Field(f.index), *t.TupleElems[i])
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.goName, err)
			}
			names[i], elems[i] = f.name, v
		}
		return abi.NewNamedTuple(names, elems...), nil
	}
	return nil, &abi.UnsupportedTypeError{Type: t.String()}
}

// bigOf reads any Go integer, *big.Int or uint256 value.
func bigOf(rv reflect.Value) (*big.Int, bool) {
	switch rv.Type() {
	case bigT:
		if rv.IsNil() {
			return new(big.Int), true
		}
		return rv.Interface().(*big.Int), true
	case u256PtrT:
		if rv.IsNil() {
			return new(big.Int), true
		}
		return rv.Interface().(*uint256.Int).ToBig(), true
	case u256T:
		n := rv.Interface().(uint256.Int)
		return n.ToBig(), true
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), true
	}
	return nil, false
}

// bytesOf reads a byte slice or byte array.
func bytesOf(rv reflect.Value) ([]byte, bool) {
	if rv.Type() == abiAddressT {
		return rv.Interface().(abi.Address).Bytes(), true
	}
	switch {
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return rv.Bytes(), true
	case rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8:
		return mustArrayToByteSlice(rv).Bytes(), true
	}
	return nil, false
}

// mustArrayToByteSlice creates a new byte slice with the exact same size as value
// and copies the bytes in value to the new slice.
func mustArrayToByteSlice(value reflect.Value) reflect.Value {
	slice := reflect.MakeSlice(reflect.TypeOf([]byte{}), value.Len(), value.Len())
	reflect.Copy(slice, value)
	return slice
}

// Marshal encodes v. A struct encodes as the head/tail layout of its fields,
// the same layout as call arguments, any other value as a single argument.
// Marshal 编码 v。结构体按其字段的头部/尾部布局编码。
func Marshal(v interface{}) ([]byte, error) {
	value, err := ValueOf(v)
	if err != nil {
		return nil, err
	}
	if tuple, ok := value.(abi.Tuple); ok {
		return tuple.Encode(), nil
	}
	return abi.Encode(value), nil
}

// Unmarshal decodes data into the value pointed to by v, the inverse of
// Marshal.
// Unmarshal 将数据解码到 v 指向的值中，是 Marshal 的逆操作。
func Unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("abi: Unmarshal(non-pointer %T)", v)
	}
	typ, err := TypeOf(rv.Elem().Type())
	if err != nil {
		return err
	}
	if typ.T == abi.TupleTy {
		types := make([]abi.Type, len(typ.TupleElems))
		for i, elem := range typ.TupleElems {
			types[i] = *elem
		}
		values, err := abi.Decode(data, types...)
		if err != nil {
			return err
		}
		return assignFields(values, rv.Elem())
	}
	values, err := abi.Decode(data, typ)
	if err != nil {
		return err
	}
	return Assign(values[0], rv.Elem())
}

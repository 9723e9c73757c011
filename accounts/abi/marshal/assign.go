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

package marshal

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-abi/accounts/abi"
	"github.com/ethereum/go-abi/common"
	"github.com/holiman/uint256"
)

// field describes an exported struct field taking part in a tuple.
type field struct {
	index  int
	goName string
	name   string // tag name, or the Go name if the tag has none
	tagged bool   // the tag carries a name
	typ    string // type override from the tag
}

// parseTag splits an `abi:"name,type"` tag.
func parseTag(tag string) (name, typ string, skip bool) {
	if tag == "-" {
		return "", "", true
	}
	name, typ, _ = strings.Cut(tag, ",")
	return name, typ, false
}

// structFields lists the exported fields of a struct type that are not
// skipped with `abi:"-"`, in declaration order.
func structFields(rt reflect.Type) []field {
	var fields []field
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, typ, skip := parseTag(f.Tag.Get("abi"))
		if skip {
			continue
		}
		fd := field{index: i, goName: f.Name, name: name, tagged: name != "", typ: typ}
		if fd.name == "" {
			fd.name = f.Name
		}
		fields = append(fields, fd)
	}
	return fields
}

// Assign copies a decoded value into dst, which must be settable.
//
// Assign is a bit more lenient than bare reflect: integers go into any Go
// integer type they fit, bytes<N> into larger byte arrays, and pointers are
// allocated on the way.
// Assign 将解码后的值复制到 dst 中。
func Assign(v abi.Value, dst reflect.Value) error {
	if !dst.CanSet() {
		return errors.New("abi: cannot assign to unsettable destination")
	}
	src := reflect.ValueOf(v)
	dstType := dst.Type()
	switch {
	case dstType.Kind() == reflect.Interface && src.Type().Implements(dstType):
		dst.Set(src)
		return nil
	case dstType == src.Type():
		dst.Set(src)
		return nil
	case dstType.Kind() == reflect.Ptr && dstType != bigT && dstType != u256PtrT:
		if dst.IsNil() {
			dst.Set(reflect.New(dstType.Elem()))
		}
		return Assign(v, dst.Elem())
	}
	mismatch := func() error {
		return &abi.TypeMismatchError{Want: v.Type().String(), Have: dstType.String()}
	}

	switch v := v.(type) {
	case abi.Int:
		return setInteger(dst, v.Big(), mismatch)
	case abi.Uint:
		return setInteger(dst, v.Big(), mismatch)
	case abi.Bool:
		if dstType.Kind() != reflect.Bool {
			return mismatch()
		}
		dst.SetBool(bool(v))
	case abi.String:
		if dstType.Kind() != reflect.String {
			return mismatch()
		}
		dst.SetString(v.String())
	case abi.Address:
		return setBytes(dst, v.Bytes(), true, mismatch)
	case abi.FunctionRef:
		return setBytes(dst, v[:], true, mismatch)
	case abi.FixedBytes:
		return setBytes(dst, v.Bytes(), false, mismatch)
	case abi.Bytes:
		return setBytes(dst, common.CopyBytes(v), false, mismatch)
	case abi.Slice:
		return setList(dst, v.Values(), mismatch)
	case abi.Array:
		return setList(dst, v.Values(), mismatch)
	case abi.Tuple:
		if dstType.Kind() != reflect.Struct {
			return mismatch()
		}
		return assignFields(v.Values(), dst)
	default:
		return mismatch()
	}
	return nil
}

// AssignTo is Assign with a pointer destination.
func AssignTo(v abi.Value, ptr interface{}) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("abi: AssignTo(non-pointer %T)", ptr)
	}
	return Assign(v, rv.Elem())
}

func setInteger(dst reflect.Value, n *big.Int, mismatch func() error) error {
	switch dst.Type() {
	case bigT:
		dst.Set(reflect.ValueOf(n))
		return nil
	case u256PtrT, u256T:
		u, overflow := uint256.FromBig(n)
		if overflow || n.Sign() < 0 {
			return &abi.RangeError{Type: dst.Type().String(), Value: n.String()}
		}
		if dst.Type() == u256T {
			dst.Set(reflect.ValueOf(*u))
		} else {
			dst.Set(reflect.ValueOf(u))
		}
		return nil
	}
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !n.IsInt64() || dst.OverflowInt(n.Int64()) {
			return &abi.RangeError{Type: dst.Type().String(), Value: n.String()}
		}
		dst.SetInt(n.Int64())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !n.IsUint64() || dst.OverflowUint(n.Uint64()) {
			return &abi.RangeError{Type: dst.Type().String(), Value: n.String()}
		}
		dst.SetUint(n.Uint64())
	default:
		return mismatch()
	}
	return nil
}

// setBytes stores b into a byte slice or byte array. Arrays shorter than b
// are rejected; with leftAlign unset, longer arrays receive b at the front,
// otherwise at the back, matching the word side the value lives on.
func setBytes(dst reflect.Value, b []byte, leftAlign bool, mismatch func() error) error {
	if dst.Type() == abiAddressT {
		addr, err := abi.NewAddress(b)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(addr))
		return nil
	}
	if k := dst.Kind(); (k != reflect.Slice && k != reflect.Array) || dst.Type().Elem().Kind() != reflect.Uint8 {
		return mismatch()
	}
	switch dst.Kind() {
	case reflect.Slice:
		dst.SetBytes(b)
	case reflect.Array:
		if dst.Len() < len(b) {
			return mismatch()
		}
		array := reflect.New(dst.Type()).Elem()
		start := 0
		if leftAlign {
			start = dst.Len() - len(b)
		}
		reflect.Copy(array.Slice(start, dst.Len()), reflect.ValueOf(b))
		dst.Set(array)
	default:
		return mismatch()
	}
	return nil
}

// setList assigns decoded elements to a slice, or an array of the same
// length.
func setList(dst reflect.Value, elems []abi.Value, mismatch func() error) error {
	switch dst.Kind() {
	case reflect.Slice:
		slice := reflect.MakeSlice(dst.Type(), len(elems), len(elems))
		for i, elem := range elems {
			if err := Assign(elem, slice.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		dst.Set(slice)
	case reflect.Array:
		if dst.Len() != len(elems) {
			return mismatch()
		}
		array := reflect.New(dst.Type()).Elem()
		for i, elem := range elems {
			if err := Assign(elem, array.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		dst.Set(array)
	default:
		return mismatch()
	}
	return nil
}

// assignFields assigns tuple members to the struct fields in order.
func assignFields(values []abi.Value, dst reflect.Value) error {
	fields := structFields(dst.Type())
	if len(fields) != len(values) {
		return fmt.Errorf("%w: %d values for %d fields of %s", abi.ErrTypeMismatch, len(values), len(fields), dst.Type())
	}
	for i, f := range fields {
		if err := Assign(values[i], dst.Field(f.index)); err != nil {
			return fmt.Errorf("field %s: %w", f.goName, err)
		}
	}
	return nil
}

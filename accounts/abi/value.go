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
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-abi/common"
	"github.com/ethereum/go-abi/common/hexutil"
)

// Value is a typed ABI value. Static values encode to their head words,
// dynamic values to the body their head offset points at.
// Value 是带类型的 ABI 值。
type Value interface {
	// Type returns the canonical type of the value.
	Type() Type

	// EncodedLen returns len(Encode()) without encoding.
	EncodedLen() int

	// Encode returns the value's encoding: the words of a static value or
	// the tail body of a dynamic one.
	Encode() []byte
}

var (
	_ Value = Int{}
	_ Value = Uint{}
	_ Value = Bool(false)
	_ Value = Address{}
	_ Value = FunctionRef{}
	_ Value = FixedBytes{}
	_ Value = Bytes(nil)
	_ Value = String{}
	_ Value = Array{}
	_ Value = Slice{}
	_ Value = Tuple{}
)

// Bool is the ABI bool.
type Bool bool

func (b Bool) Type() Type      { return TypeBool }
func (b Bool) EncodedLen() int { return 32 }

func (b Bool) Encode() []byte {
	word := make([]byte, 32)
	if b {
		word[31] = 1
	}
	return word
}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Address is the ABI address, stored in the low 20 bytes of its word.
type Address struct {
	common.Address
}

// NewAddress returns the address held by b, which must be exactly 20 bytes.
func NewAddress(b []byte) (Address, error) {
	if len(b) != common.AddressLength {
		return Address{}, &LengthError{Type: "address", Want: common.AddressLength, Have: len(b)}
	}
	return Address{common.BytesToAddress(b)}, nil
}

// ParseAddress parses a hex address, with or without 0x prefix.
func ParseAddress(s string) (Address, error) {
	b, err := hexutil.DecodeUnprefixed(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return NewAddress(b)
}

func (a Address) Type() Type      { return TypeAddress }
func (a Address) EncodedLen() int { return 32 }
func (a Address) Encode() []byte  { return common.LeftPadBytes(a.Address[:], 32) }

// FunctionRef is the ABI function type: a contract address followed by a
// function selector, stored in the low 24 bytes of its word.
type FunctionRef [24]byte

// NewFunctionRef returns the function reference held by b, which must be
// exactly 24 bytes.
func NewFunctionRef(b []byte) (FunctionRef, error) {
	var f FunctionRef
	if len(b) != len(f) {
		return f, &LengthError{Type: "function", Want: len(f), Have: len(b)}
	}
	copy(f[:], b)
	return f, nil
}

// ParseFunctionRef parses 48 hex digits, with or without 0x prefix.
func ParseFunctionRef(s string) (FunctionRef, error) {
	b, err := hexutil.DecodeUnprefixed(s)
	if err != nil {
		return FunctionRef{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	return NewFunctionRef(b)
}

// MakeFunctionRef joins a contract address and a selector.
func MakeFunctionRef(addr common.Address, sel Selector) FunctionRef {
	var f FunctionRef
	copy(f[:20], addr[:])
	copy(f[20:], sel[:])
	return f
}

// Address returns the contract address part.
func (f FunctionRef) Address() common.Address { return common.BytesToAddress(f[:20]) }

// Selector returns the function selector part.
func (f FunctionRef) Selector() Selector {
	var s Selector
	copy(s[:], f[20:])
	return s
}

func (f FunctionRef) Type() Type      { return TypeFunction }
func (f FunctionRef) EncodedLen() int { return 32 }
func (f FunctionRef) Encode() []byte  { return common.LeftPadBytes(f[:], 32) }
func (f FunctionRef) String() string  { return hexutil.Encode(f[:]) }

// FixedBytes is bytes<N>, N in 1..32. The bytes occupy the high end of the
// word, the opposite side from address and function. The zero FixedBytes is
// a bytes32 of zeros.
type FixedBytes struct {
	size int
	data [32]byte
}

// NewFixedBytes returns the bytes<size> value holding b. b must be exactly
// size bytes long.
func NewFixedBytes(size int, b []byte) (FixedBytes, error) {
	typ, err := FixedBytesType(size)
	if err != nil {
		return FixedBytes{}, err
	}
	if len(b) != size {
		return FixedBytes{}, &LengthError{Type: typ.String(), Want: size, Have: len(b)}
	}
	v := FixedBytes{size: size}
	copy(v.data[:], b)
	return v, nil
}

// HashToFixedBytes returns h as a bytes32 value.
func HashToFixedBytes(h common.Hash) FixedBytes {
	return FixedBytes{size: common.HashLength, data: h}
}

func (b FixedBytes) Type() Type {
	size := b.Size()
	return Type{T: FixedBytesTy, Size: size, stringKind: "bytes" + strconv.Itoa(size)}
}

func (b FixedBytes) EncodedLen() int { return 32 }

func (b FixedBytes) Encode() []byte {
	word := make([]byte, 32)
	copy(word, b.data[:b.Size()])
	return word
}

// Size returns N.
func (b FixedBytes) Size() int {
	if b.size == 0 {
		return common.HashLength
	}
	return b.size
}

// Bytes returns a copy of the N bytes.
func (b FixedBytes) Bytes() []byte { return common.CopyBytes(b.data[:b.Size()]) }

func (b FixedBytes) String() string { return hexutil.Encode(b.data[:b.Size()]) }

// Bytes is the dynamic byte string. Decoded values alias the input buffer,
// use Copy to detach them.
type Bytes []byte

// NewBytes returns b as an ABI bytes value. b is not copied.
func NewBytes(b []byte) Bytes { return Bytes(b) }

func (b Bytes) Type() Type      { return TypeBytes }
func (b Bytes) EncodedLen() int { return dynamicLen(len(b)) }
func (b Bytes) Encode() []byte  { return packBytesSlice(b) }
func (b Bytes) String() string  { return hexutil.Encode(b) }

// Copy returns a copy of b that does not share memory with a decode buffer.
func (b Bytes) Copy() Bytes { return common.CopyBytes(b) }

// String is the ABI string. It always holds valid UTF-8.
type String struct {
	s string
}

// NewString validates s and returns it as an ABI string.
func NewString(s string) (String, error) {
	if !utf8.ValidString(s) {
		return String{}, ErrInvalidUTF8
	}
	return String{s}, nil
}

// MustNewString is like NewString but panics on invalid UTF-8.
func MustNewString(s string) String {
	v, err := NewString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (s String) Type() Type      { return TypeString }
func (s String) EncodedLen() int { return dynamicLen(len(s.s)) }
func (s String) Encode() []byte  { return packBytesSlice([]byte(s.s)) }

// String returns the Go string.
func (s String) String() string { return s.s }

// Array is the fixed-size array T[k]. The zero Array has no element type and
// is rejected by the encoders, use NewArray.
type Array struct {
	typ   Type
	elems []Value
}

// NewArray returns the elem[len(values)] array of values. Every value must
// be of type elem.
func NewArray(elem Type, values ...Value) (Array, error) {
	if err := checkElems(elem, values); err != nil {
		return Array{}, err
	}
	return Array{typ: ArrayOf(elem, len(values)), elems: values}, nil
}

func (a Array) Type() Type        { return a.typ }
func (a Array) EncodedLen() int   { return sequenceLen(a.elems) }
func (a Array) Encode() []byte    { return packSequence(a.elems) }
func (a Array) Len() int          { return len(a.elems) }
func (a Array) Index(i int) Value { return a.elems[i] }
func (a Array) Values() []Value   { return a.elems }
func (a Array) String() string    { return formatList("[", a.elems, "]") }

// Slice is the dynamic array T[]. Like Array, it must come from NewSlice.
type Slice struct {
	typ   Type
	elems []Value
}

// NewSlice returns the elem[] array of values. Every value must be of type
// elem.
func NewSlice(elem Type, values ...Value) (Slice, error) {
	if err := checkElems(elem, values); err != nil {
		return Slice{}, err
	}
	return Slice{typ: SliceOf(elem), elems: values}, nil
}

func (s Slice) Type() Type      { return s.typ }
func (s Slice) EncodedLen() int { return 32 + sequenceLen(s.elems) }

func (s Slice) Encode() []byte {
	return append(packNum(len(s.elems)), packSequence(s.elems)...)
}

func (s Slice) Len() int          { return len(s.elems) }
func (s Slice) Index(i int) Value { return s.elems[i] }
func (s Slice) Values() []Value   { return s.elems }
func (s Slice) String() string    { return formatList("[", s.elems, "]") }

// Tuple is a heterogeneous fixed-arity sequence. The zero Tuple is the empty
// tuple ().
type Tuple struct {
	typ   Type
	elems []Value
}

// NewTuple returns the tuple of the given members.
func NewTuple(values ...Value) Tuple {
	return NewNamedTuple(nil, values...)
}

// NewNamedTuple returns the tuple of the given members, recording member names.
// It panics with an *UnsupportedTypeError if a member is nil or has no valid
// type, such as the zero Slice.
func NewNamedTuple(names []string, values ...Value) Tuple {
	types := make([]Type, len(values))
	for i, v := range values {
		if err := checkValue(v); err != nil {
			panic(err)
		}
		types[i] = v.Type()
	}
	return Tuple{typ: NamedTupleOf(names, types...), elems: values}
}

func (t Tuple) Type() Type {
	if t.typ.stringKind == "" {
		return TupleOf()
	}
	return t.typ
}

func (t Tuple) EncodedLen() int   { return sequenceLen(t.elems) }
func (t Tuple) Encode() []byte    { return packSequence(t.elems) }
func (t Tuple) Len() int          { return len(t.elems) }
func (t Tuple) Index(i int) Value { return t.elems[i] }
func (t Tuple) Values() []Value   { return t.elems }
func (t Tuple) String() string    { return formatList("(", t.elems, ")") }

func checkElems(elem Type, values []Value) error {
	if !elem.valid() {
		return &UnsupportedTypeError{Type: elem.String()}
	}
	for _, v := range values {
		if v == nil {
			return typeErr(elem, Type{stringKind: "nil"})
		}
		if !v.Type().Equal(elem) {
			return typeErr(elem, v.Type())
		}
	}
	return nil
}

func formatList(open string, elems []Value, close string) string {
	var b strings.Builder
	b.WriteString(open)
	for i, v := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		switch v := v.(type) {
		case String:
			b.WriteString(strconv.Quote(v.s))
		case fmt.Stringer:
			b.WriteString(v.String())
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	b.WriteString(close)
	return b.String()
}

// EqualValues reports whether two values have the same type and encoding.
func EqualValues(a, b Value) bool {
	return a.Type().Equal(b.Type()) && bytes.Equal(a.Encode(), b.Encode())
}

// checkValue rejects values the encoders cannot lay out: nil and values
// whose type is not a canonical ABI type.
func checkValue(v Value) error {
	if v == nil {
		return &UnsupportedTypeError{Type: "nil"}
	}
	if typ := v.Type(); !typ.valid() {
		name := typ.String()
		if name == "" {
			name = fmt.Sprintf("zero %T", v)
		}
		return &UnsupportedTypeError{Type: name}
	}
	return nil
}

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
	"unicode/utf8"

	"github.com/holiman/uint256"
)

// readWord returns the 32 byte word at pos.
func readWord(region []byte, pos int) ([]byte, error) {
	if pos < 0 || pos > len(region) || len(region)-pos < 32 {
		return nil, &BoundsError{Offset: pos, Need: 32, Have: len(region)}
	}
	return region[pos : pos+32], nil
}

// readOffset reads the offset word at pos and resolves it against the start
// of region. The offset may point at the very end of the region, which is
// only valid for empty bodies, and is checked by the body reader.
func readOffset(region []byte, pos int) (int, error) {
	word, err := readWord(region, pos)
	if err != nil {
		return 0, err
	}
	var off uint256.Int
	off.SetBytes32(word)
	if !off.IsUint64() || off.Uint64() > uint64(len(region)) {
		return 0, &BoundsError{Offset: pos, Need: 32, Have: len(region)}
	}
	return int(off.Uint64()), nil
}

// readBool decodes a bool word, which must hold exactly 0 or 1.
func readBool(word []byte) (Bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, &RangeError{Type: "bool", Value: hexWord(word)}
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &RangeError{Type: "bool", Value: hexWord(word)}
	}
}

// readPadded checks that the high 32-n bytes of word are zero and returns
// the low n bytes.
func readPadded(typ Type, word []byte, n int) ([]byte, error) {
	if !bytes.Equal(word[:32-n], make([]byte, 32-n)) {
		return nil, &RangeError{Type: typ.String(), Value: hexWord(word)}
	}
	return word[32-n:], nil
}

// readFixedBytes takes the high Size bytes of the word. The low padding is
// not inspected.
func readFixedBytes(t Type, word []byte) FixedBytes {
	v := FixedBytes{size: t.Size}
	copy(v.data[:], word[:t.Size])
	return v
}

// readDynamicBytes reads a length word at start and returns the payload
// following it, aliasing region.
func readDynamicBytes(region []byte, start int) ([]byte, error) {
	word, err := readWord(region, start)
	if err != nil {
		return nil, err
	}
	length, err := readLength(word)
	if err != nil {
		return nil, err
	}
	begin := start + 32
	if length > len(region)-begin {
		return nil, &BoundsError{Offset: begin, Need: length, Have: len(region)}
	}
	return region[begin : begin+length : begin+length], nil
}

// decoder carries the state of one decode call. Offsets may legally point
// anywhere in the input, so several heads can share one tail. budget bounds
// the slice elements and string bytes materialised per call to the input
// length, which a canonical encoding never exceeds.
type decoder struct {
	budget int
}

func newDecoder(data []byte) *decoder {
	return &decoder{budget: len(data)}
}

// charge takes n bytes of work out of the budget.
func (d *decoder) charge(pos, n int) error {
	if n > d.budget {
		return &BoundsError{Offset: pos, Need: n, Have: d.budget}
	}
	d.budget -= n
	return nil
}

// readValue decodes a value of type t whose head slot starts at pos. Static
// values are read in place, dynamic ones at the offset stored in the slot,
// relative to the start of region.
func (d *decoder) readValue(t Type, region []byte, pos int) (Value, error) {
	if !t.IsDynamic() {
		return d.readBody(t, region, pos)
	}
	start, err := readOffset(region, pos)
	if err != nil {
		return nil, err
	}
	return d.readBody(t, region, start)
}

// readBody decodes the encoding of a value of type t starting at start.
func (d *decoder) readBody(t Type, region []byte, start int) (Value, error) {
	switch t.T {
	case StringTy:
		b, err := readDynamicBytes(region, start)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return nil, ErrInvalidUTF8
		}
		if err := d.charge(start, len(b)); err != nil {
			return nil, err
		}
		return String{string(b)}, nil
	case BytesTy:
		b, err := readDynamicBytes(region, start)
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil
	case SliceTy:
		word, err := readWord(region, start)
		if err != nil {
			return nil, err
		}
		n, err := readLength(word)
		if err != nil {
			return nil, err
		}
		// Element offsets count from the word after the length.
		body := region[start+32:]
		elemSize := t.Elem.HeadSize()
		if (elemSize > 0 && n > len(body)/elemSize) || (elemSize == 0 && n > len(region)) {
			return nil, &BoundsError{Offset: start + 32, Need: n * elemSize, Have: len(region)}
		}
		if err := d.charge(start+32, n*max(elemSize, 1)); err != nil {
			return nil, err
		}
		elems, err := d.readSequence(repeatType(*t.Elem, n), body)
		if err != nil {
			return nil, err
		}
		return Slice{typ: t, elems: elems}, nil
	case ArrayTy:
		if start > len(region) {
			return nil, &BoundsError{Offset: start, Need: t.HeadSize(), Have: len(region)}
		}
		elems, err := d.readSequence(repeatType(*t.Elem, t.Size), region[start:])
		if err != nil {
			return nil, err
		}
		return Array{typ: t, elems: elems}, nil
	case TupleTy:
		if start > len(region) {
			return nil, &BoundsError{Offset: start, Need: t.HeadSize(), Have: len(region)}
		}
		types := make([]Type, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			types[i] = *elem
		}
		elems, err := d.readSequence(types, region[start:])
		if err != nil {
			return nil, err
		}
		return Tuple{typ: t, elems: elems}, nil
	}
	word, err := readWord(region, start)
	if err != nil {
		return nil, err
	}
	switch t.T {
	case IntTy, UintTy:
		return readInteger(t, word)
	case BoolTy:
		return readBool(word)
	case AddressTy:
		b, err := readPadded(t, word, 20)
		if err != nil {
			return nil, err
		}
		return NewAddress(b)
	case FunctionTy:
		b, err := readPadded(t, word, 24)
		if err != nil {
			return nil, err
		}
		return NewFunctionRef(b)
	case FixedBytesTy:
		return readFixedBytes(t, word), nil
	default:
		return nil, &UnsupportedTypeError{Type: t.String()}
	}
}

// readSequence decodes a head/tail region. The head cursor advances by each
// member's head size whatever the size of its tail.
func (d *decoder) readSequence(types []Type, region []byte) ([]Value, error) {
	values := make([]Value, 0, len(types))
	pos := 0
	for _, t := range types {
		v, err := d.readValue(t, region, pos)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		pos += t.HeadSize()
	}
	return values, nil
}

// readBody decodes a single body of type t at start in a fresh decode call.
func readBody(t Type, region []byte, start int) (Value, error) {
	return newDecoder(region).readBody(t, region, start)
}

func repeatType(t Type, n int) []Type {
	types := make([]Type, n)
	for i := range types {
		types[i] = t
	}
	return types
}

func hexWord(word []byte) string {
	var v uint256.Int
	v.SetBytes32(word)
	return v.Hex()
}

// Decode decodes data laid out like a call's arguments, without selector,
// into values of the given types. Bytes values alias data.
// Decode 将按调用参数布局的数据解码为给定类型的值。
func Decode(data []byte, types ...Type) ([]Value, error) {
	return newDecoder(data).readSequence(types, data)
}

// DecodeValue decodes a single value of type t whose head slot starts at
// offset within data.
func DecodeValue(t Type, data []byte, offset int) (Value, error) {
	return newDecoder(data).readValue(t, data, offset)
}

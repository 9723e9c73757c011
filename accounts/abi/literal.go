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
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-abi/common/hexutil"
)

// ParseValue converts a textual literal into a value of type t:
//
//   - integers in decimal or 0x prefixed hex, optionally negative
//   - bool as true or false
//   - address, function, bytes and bytes<N> as hex, the 0x prefix optional
//   - string as raw text
//   - arrays, slices and tuples as JSON arrays of literals, e.g. [1,2] or
//     ["0xab", "text", [true]]
//
// ParseValue 将文本字面量转换为类型 t 的值。
func ParseValue(t Type, input string) (Value, error) {
	switch t.T {
	case IntTy, UintTy:
		return parseInteger(t, strings.TrimSpace(input))
	case BoolTy:
		switch strings.TrimSpace(input) {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return nil, &RangeError{Type: "bool", Value: input}
	case AddressTy:
		return ParseAddress(strings.TrimSpace(input))
	case FunctionTy:
		return ParseFunctionRef(strings.TrimSpace(input))
	case FixedBytesTy:
		b, err := parseHex(input)
		if err != nil {
			return nil, err
		}
		return NewFixedBytes(t.Size, b)
	case BytesTy:
		b, err := parseHex(input)
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil
	case StringTy:
		return NewString(input)
	case SliceTy, ArrayTy, TupleTy:
		return parseComposite(t, input)
	default:
		return nil, &UnsupportedTypeError{Type: t.String()}
	}
}

func parseHex(input string) ([]byte, error) {
	b, err := hexutil.DecodeUnprefixed(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidHex, input, err)
	}
	return b, nil
}

func parseInteger(t Type, input string) (Value, error) {
	var (
		digits = input
		neg    bool
		base   = 10
	)
	if strings.HasPrefix(digits, "-") {
		neg, digits = true, digits[1:]
	}
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		base, digits = 16, digits[2:]
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok || strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		if base == 16 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHex, input)
		}
		return nil, &RangeError{Type: t.String(), Value: input}
	}
	if neg {
		v.Neg(v)
	}
	if t.T == IntTy {
		return NewInt(t.Size, v)
	}
	return NewUint(t.Size, v)
}

// parseComposite reads a JSON array literal. String elements are unquoted
// before parsing, anything else is parsed from its raw JSON text.
func parseComposite(t Type, input string) (Value, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return nil, fmt.Errorf("abi: %s literal must be a JSON array: %w", t, err)
	}
	var elemTypes []Type
	switch t.T {
	case SliceTy:
		elemTypes = repeatType(*t.Elem, len(raw))
	case ArrayTy:
		if len(raw) != t.Size {
			return nil, &LengthError{Type: t.String(), Want: t.Size, Have: len(raw)}
		}
		elemTypes = repeatType(*t.Elem, t.Size)
	case TupleTy:
		if len(raw) != len(t.TupleElems) {
			return nil, &LengthError{Type: t.String(), Want: len(t.TupleElems), Have: len(raw)}
		}
		for _, elem := range t.TupleElems {
			elemTypes = append(elemTypes, *elem)
		}
	}
	values := make([]Value, len(raw))
	for i, r := range raw {
		text := string(bytes.TrimSpace(r))
		if strings.HasPrefix(text, `"`) {
			if err := json.Unmarshal(r, &text); err != nil {
				return nil, err
			}
		}
		v, err := ParseValue(elemTypes[i], text)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		values[i] = v
	}
	switch t.T {
	case SliceTy:
		return Slice{typ: t, elems: values}, nil
	case ArrayTy:
		return Array{typ: t, elems: values}, nil
	default:
		return Tuple{typ: t, elems: values}, nil
	}
}

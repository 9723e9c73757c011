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
)

// Error kinds surfaced by the codec. Every error returned by this package
// wraps exactly one of them, so callers can tell a short buffer apart from a
// malformed string or an out-of-range word with errors.Is.
// 编解码器返回的错误类别，可以用 errors.Is 区分。
var (
	ErrUnexpectedEOF   = errors.New("abi: unexpected end of input")
	ErrInvalidUTF8     = errors.New("abi: invalid UTF-8 string")
	ErrOutOfRange      = errors.New("abi: value out of range")
	ErrInvalidLength   = errors.New("abi: invalid input length")
	ErrInvalidHex      = errors.New("abi: malformed hex input")
	ErrUnsupportedType = errors.New("abi: unsupported type")
	ErrTypeMismatch    = errors.New("abi: type mismatch")
)

// errBuilderConsumed is the panic value of a Builder used after Build.
var errBuilderConsumed = errors.New("abi: builder already consumed by Build")

// BoundsError reports a read past the end of the input.
type BoundsError struct {
	Offset int // position of the attempted read
	Need   int // bytes required at Offset
	Have   int // total bytes available in the region
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("abi: unexpected end of input: need %d bytes at offset %d, have %d", e.Need, e.Offset, e.Have)
}

func (e *BoundsError) Unwrap() error { return ErrUnexpectedEOF }

// RangeError reports a value that does not fit its declared type, either at
// construction time or in a decoded word whose padding is malformed.
type RangeError struct {
	Type  string
	Value string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("abi: value %s out of range for %s", e.Value, e.Type)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// LengthError reports a fixed-size input of the wrong length.
type LengthError struct {
	Type string
	Want int
	Have int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("abi: invalid input length for %s: have %d bytes, want %d", e.Type, e.Have, e.Want)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// UnsupportedTypeError names a type string the codec cannot represent.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("abi: unsupported arg type: %s", e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// TypeMismatchError reports a value supplied where a different type was
// declared.
type TypeMismatchError struct {
	Want string
	Have string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("abi: cannot use %s as type %s", e.Have, e.Want)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

func typeErr(want, have Type) error {
	return &TypeMismatchError{Want: want.String(), Have: have.String()}
}

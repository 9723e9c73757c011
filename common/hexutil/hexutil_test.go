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

package hexutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

type marshalTest struct {
	input interface{}
	want  string
}

type unmarshalTest struct {
	input   string
	want    interface{}
	wantErr error // if set, decoding must fail
}

var (
	encodeBytesTests = []marshalTest{
		{[]byte{}, "0x"},
		{[]byte{0}, "0x00"},
		{[]byte{0, 0, 1, 2}, "0x00000102"},
	}

	decodeBytesTests = []unmarshalTest{
		// invalid
		{input: ``, wantErr: ErrEmptyString},
		{input: `0`, wantErr: ErrMissingPrefix},
		{input: `0x0`, wantErr: ErrOddLength},
		{input: `0x023`, wantErr: ErrOddLength},
		{input: `0xxx`, wantErr: ErrSyntax},
		{input: `0x01zz01`, wantErr: ErrSyntax},
		// valid
		{input: `0x`, want: []byte{}},
		{input: `0X`, want: []byte{}},
		{input: `0x02`, want: []byte{0x02}},
		{input: `0X02`, want: []byte{0x02}},
		{input: `0xffffffffff`, want: []byte{0xff, 0xff, 0xff, 0xff, 0xff}},
		{
			input: `0xffffffffffffffffffffffffffffffffffff`,
			want:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
	}
)

func TestEncode(t *testing.T) {
	for _, test := range encodeBytesTests {
		enc := Encode(test.input.([]byte))
		if enc != test.want {
			t.Errorf("input %x: wrong encoding %s", test.input, enc)
		}
	}
}

func TestDecode(t *testing.T) {
	for _, test := range decodeBytesTests {
		dec, err := Decode(test.input)
		if !checkError(t, test.input, err, test.wantErr) {
			continue
		}
		if !bytes.Equal(test.want.([]byte), dec) {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, dec, test.want)
			continue
		}
	}
}

func TestDecodeUnprefixed(t *testing.T) {
	for _, input := range []string{"0xdeadbeef", "deadbeef", "0XDEADBEEF"} {
		dec, err := DecodeUnprefixed(input)
		if err != nil {
			t.Fatalf("input %s: unexpected error %v", input, err)
		}
		if !bytes.Equal(dec, []byte{0xde, 0xad, 0xbe, 0xef}) {
			t.Errorf("input %s: value mismatch: got %x", input, dec)
		}
	}
	if _, err := DecodeUnprefixed("dead0"); !errors.Is(err, ErrOddLength) {
		t.Errorf("odd input: got error %v, want %v", err, ErrOddLength)
	}
}

func TestUnmarshalBytes(t *testing.T) {
	for _, test := range []unmarshalTest{
		{input: `10`, wantErr: errNonString(bytesT)},
		{input: `"0"`, wantErr: wrapTypeError(ErrMissingPrefix, bytesT)},
		{input: `"0x0"`, wantErr: wrapTypeError(ErrOddLength, bytesT)},
		{input: `"0xxx"`, wantErr: wrapTypeError(ErrSyntax, bytesT)},
		{input: `""`, want: []byte{}},
		{input: `"0x"`, want: []byte{}},
		{input: `"0x0102"`, want: []byte{0x01, 0x02}},
	} {
		var v Bytes
		err := json.Unmarshal([]byte(test.input), &v)
		if !checkError(t, test.input, err, test.wantErr) {
			continue
		}
		if !bytes.Equal(test.want.([]byte), v) {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, []byte(v), test.want)
		}
	}
}

func TestMarshalBytes(t *testing.T) {
	for _, test := range encodeBytesTests {
		in := test.input.([]byte)
		out, err := json.Marshal(Bytes(in))
		if err != nil {
			t.Errorf("%x: %v", in, err)
			continue
		}
		if want := `"` + test.want + `"`; string(out) != want {
			t.Errorf("%x: MarshalJSON output mismatch: got %q, want %q", in, out, want)
			continue
		}
		if out := Bytes(in).String(); out != test.want {
			t.Errorf("%x: String mismatch: got %q, want %q", in, out, test.want)
		}
	}
}

func TestUnmarshalFixedText(t *testing.T) {
	tests := []struct {
		input   string
		want    []byte
		wantErr error
	}{
		{input: "0x2", wantErr: ErrOddLength},
		{input: "2", wantErr: ErrMissingPrefix},
		{input: "4444", wantErr: ErrMissingPrefix},
		{input: "0x4444", wantErr: errors.New("hex string has length 4, want 8 for x")},
		{input: "0x4444444444", wantErr: errors.New("hex string has length 10, want 8 for x")},
		{input: "0xgggggggg", wantErr: ErrSyntax},
		{input: "0x01020304", want: []byte{1, 2, 3, 4}},
	}
	for _, test := range tests {
		out := make([]byte, 4)
		err := UnmarshalFixedText("x", []byte(test.input), out)
		switch {
		case err == nil && test.wantErr != nil:
			t.Errorf("%q: expected error %q", test.input, test.wantErr)
		case err != nil && test.wantErr == nil:
			t.Errorf("%q: unexpected error %q", test.input, err)
		case err != nil && err.Error() != test.wantErr.Error():
			t.Errorf("%q: error mismatch: got %q, want %q", test.input, err, test.wantErr)
		}
		if test.want != nil && !bytes.Equal(out, test.want) {
			t.Errorf("%q: output mismatch: got %x, want %x", test.input, out, test.want)
		}
	}
}

func TestUnmarshalFixedUnprefixedText(t *testing.T) {
	out := make([]byte, 4)
	for _, input := range []string{"0x01020304", "01020304"} {
		if err := UnmarshalFixedUnprefixedText("x", []byte(input), out); err != nil {
			t.Fatalf("%q: unexpected error %v", input, err)
		}
		if !bytes.Equal(out, []byte{1, 2, 3, 4}) {
			t.Errorf("%q: output mismatch: got %x", input, out)
		}
	}
}

func checkError(t *testing.T, input string, got, want error) bool {
	if got == nil {
		if want != nil {
			t.Errorf("input %s: got no error, want %q", input, want)
			return false
		}
		return true
	}
	if want == nil {
		t.Errorf("input %s: unexpected error %q", input, got)
	} else if got.Error() != want.Error() {
		t.Errorf("input %s: got error %q, want %q", input, got, want)
	}
	return false
}

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

package bind

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/ethereum/go-abi/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenABI = `[
	{"type":"constructor","inputs":[{"name":"supply","type":"uint256"},{"name":"name","type":"string"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"balance","type":"uint256"}]},
	{"type":"function","name":"info","stateMutability":"view","inputs":[],"outputs":[{"name":"decimals","type":"uint8"},{"name":"symbol","type":"string"}]},
	{"type":"function","name":"setRange","stateMutability":"nonpayable","inputs":[{"name":"range","type":"tuple","internalType":"struct Token.Range","components":[{"name":"lo","type":"uint64"},{"name":"hi","type":"uint64"}]},{"name":"","type":"bytes4"}],"outputs":[]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"memo","type":"string","indexed":true},{"name":"value","type":"uint256","indexed":false}]},
	{"type":"error","name":"InsufficientBalance","inputs":[{"name":"available","type":"uint256"},{"name":"required","type":"uint256"}]}
]`

func TestBindToken(t *testing.T) {
	code, err := Bind([]string{"token"}, []string{tokenABI}, "tokens", nil)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "token.go", code, parser.AllErrors)
	require.NoError(t, err, code)

	for _, want := range []string{
		"package tokens",
		"const TokenABI = ",
		"func NewToken() (*Token, error)",
		"func (_Token *Token) PackConstructor(supply *big.Int, name string) ([]byte, error)",
		"func (_Token *Token) PackTransfer(to common.Address, amount *big.Int) ([]byte, error)",
		`_b := abi.NewBuilder().Name("transfer")`,
		"_b.Push(abi.Address{Address: to})",
		"_amountValue, err := abi.NewUint(256, amount)",
		"func (_Token *Token) UnpackTransfer(data []byte) (bool, error)",
		"func (_Token *Token) UnpackBalanceOf(data []byte) (*big.Int, error)",
		"type TokenInfoOutput struct",
		"Decimals uint8",
		"func (_Token *Token) UnpackInfo(data []byte) (*TokenInfoOutput, error)",
		"type TokenRange struct",
		"Lo uint64",
		"func (_Token *Token) PackSetRange(arg0 TokenRange, arg1 [4]byte) ([]byte, error)",
		`marshal.ValueOfType(arg0, abi.MustNewType("(uint64,uint64)"))`,
		"abi.NewFixedBytes(4, arg1[:])",
		"type TokenTransfer struct",
		"Memo  common.Hash",
		"Value *big.Int",
		"func (_Token *Token) TransferEventID() common.Hash",
		"func (_Token *Token) UnpackTransferEvent(topics []common.Hash, data []byte) (*TokenTransfer, error)",
		"type TokenInsufficientBalanceError struct",
		"func (_Token *Token) UnpackInsufficientBalanceError(data []byte) (*TokenInsufficientBalanceError, error)",
	} {
		assert.Contains(t, code, want)
	}
}

func TestBindMultipleContracts(t *testing.T) {
	other := `[{"type":"function","name":"ping","inputs":[],"outputs":[]}]`
	code, err := Bind([]string{"token", "pinger"}, []string{tokenABI, other}, "multi", nil)
	require.NoError(t, err)
	assert.Contains(t, code, "type Token struct")
	assert.Contains(t, code, "type Pinger struct")
	assert.Contains(t, code, "func (_Pinger *Pinger) PackPing() ([]byte, error)")
}

func TestBindAliases(t *testing.T) {
	overloaded := `[
		{"type":"function","name":"_value","inputs":[],"outputs":[]},
		{"type":"function","name":"value","inputs":[],"outputs":[]}
	]`
	_, err := Bind([]string{"c"}, []string{overloaded}, "p", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicated identifier")

	code, err := Bind([]string{"c"}, []string{overloaded}, "p", map[string]string{"_value": "rawValue"})
	require.NoError(t, err)
	assert.Contains(t, code, "PackRawValue()")
	assert.Contains(t, code, "PackValue()")
}

func TestBindErrors(t *testing.T) {
	_, err := Bind([]string{"a", "b"}, []string{tokenABI}, "p", nil)
	assert.Error(t, err)

	_, err = Bind([]string{"a"}, []string{`[{"type":"function","name":"f","inputs":[{"type":"uint7"}]}]`}, "p", nil)
	assert.Error(t, err)

	_, err = Bind([]string{"a"}, []string{`not json`}, "p", nil)
	assert.Error(t, err)
}

func TestCapitalise(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"value", "Value"},
		{"_value", "Value"},
		{"my_value", "MyValue"},
		{"balanceOf", "BalanceOf"},
		{"a__b", "AB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, capitalise(tt.in), tt.in)
		assert.Equal(t, abi.ToCamelCase(tt.in), capitalise(tt.in), tt.in)
	}
}

func TestBindTypeGo(t *testing.T) {
	structs := make(map[string]*tmplStruct)
	tests := []struct{ typ, want string }{
		{"uint8", "uint8"},
		{"int64", "int64"},
		{"uint24", "*big.Int"},
		{"int256", "*big.Int"},
		{"address", "common.Address"},
		{"bytes", "[]byte"},
		{"bytes32", "[32]byte"},
		{"function", "[24]byte"},
		{"string", "string"},
		{"bool", "bool"},
		{"uint16[3][]", "[][3]uint16"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bindTypeGo(abi.MustNewType(tt.typ), structs), tt.typ)
	}
	assert.Equal(t, "common.Hash", bindTopicTypeGo(abi.MustNewType("string"), structs))
	assert.Equal(t, "common.Hash", bindTopicTypeGo(abi.MustNewType("uint8[]"), structs))
	assert.Equal(t, "uint8", bindTopicTypeGo(abi.MustNewType("uint8"), structs))
}

func TestPackStmtGo(t *testing.T) {
	structs := make(map[string]*tmplStruct)
	assert.Equal(t, "_b.Push(abi.Uint64(n))", packStmtGo(abi.MustNewType("uint64"), "n", structs))
	assert.Equal(t, "_b.Push(abi.Int8(n))", packStmtGo(abi.MustNewType("int8"), "n", structs))
	assert.Equal(t, "_b.Push(abi.Bool(ok))", packStmtGo(abi.TypeBool, "ok", structs))
	assert.Equal(t, "_b.Push(abi.NewBytes(data))", packStmtGo(abi.TypeBytes, "data", structs))
	assert.Equal(t, "_b.Push(abi.FunctionRef(fn))", packStmtGo(abi.TypeFunction, "fn", structs))
	assert.Equal(t,
		"_sValue, err := abi.NewString(s)\nif err != nil {\nreturn nil, err\n}\n_b.Push(_sValue)",
		packStmtGo(abi.TypeString, "s", structs))
}

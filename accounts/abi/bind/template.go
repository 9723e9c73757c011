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
	_ "embed"

	"github.com/ethereum/go-abi/accounts/abi"
)

// tmplData is the data structure required to fill the binding template.
// tmplData 是填充绑定模板所需的数据结构。
type tmplData struct {
	Package   string                   // Name of the package to place the generated file in
	Contracts map[string]*tmplContract // List of contracts to generate into this file
	Structs   map[string]*tmplStruct   // Contract struct type definitions
}

// tmplContract contains the data needed to generate an individual contract binding.
// tmplContract 包含生成单个合约绑定所需的数据。
type tmplContract struct {
	Type        string                 // Type name of the main contract binding
	InputABI    string                 // JSON ABI used as the input to generate the binding from
	Constructor tmplMethod             // Contract constructor for deploy parametrization
	Methods     map[string]*tmplMethod // Contract calls, sorted by the template
	Events      map[string]*tmplEvent  // Contract events accessors
	Errors      map[string]*tmplError  // Custom errors declared by the contract
}

// tmplMethod is a wrapper around an abi.Method that contains a few preprocessed
// and cached data fields.
// tmplMethod 是 abi.Method 的包装器，包含一些预处理和缓存的数据字段。
type tmplMethod struct {
	Original   abi.Method // Original method as parsed by the abi package
	Normalized abi.Method // Normalized version of the parsed method (capitalized names, non-anonymous args/returns)
	Structured bool       // Whether the returns should be accumulated into a struct
}

// tmplEvent is a wrapper around an abi.Event that contains a few preprocessed
// and cached data fields.
type tmplEvent struct {
	Original   abi.Event // Original event as parsed by the abi package
	Normalized abi.Event // Normalized version of the parsed fields
}

// tmplError is a wrapper around an abi.Error with a normalized name.
type tmplError struct {
	Original   abi.Error
	Normalized abi.Error
}

// tmplField is a wrapper around a struct field with binding language
// struct type definition and relative filed name.
// tmplField 是结构体字段的包装器。
type tmplField struct {
	Type    string   // Field type representation in Go
	Name    string   // Field name converted from the raw user-defined field name
	SolKind abi.Type // Raw abi type information
}

// tmplStruct is a wrapper around an abi.tuple and contains an auto-generated
// struct name.
type tmplStruct struct {
	Name   string       // Auto-generated struct name(before solidity v0.5.11) or raw name.
	Fields []*tmplField // Struct fields definition
}

// tmplSourceGo is the Go source template that the generated Go contract binding
// is based on.
// tmplSourceGo 是生成的 Go 合约绑定所基于的 Go 源代码模板。
//
//go:embed source.go.tpl
var tmplSourceGo string

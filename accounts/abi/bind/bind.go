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

// Package bind generates Go bindings for Ethereum contract ABIs.
//
// The generated code packs calls with abi.Builder and unpacks return values,
// event logs and custom errors with the marshal package.
// bind 包为以太坊合约 ABI 生成 Go 绑定。
package bind

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/ethereum/go-abi/accounts/abi"
	"github.com/ethereum/go-abi/log"
)

// Bind generates a Go wrapper around a contract ABI. This wrapper isn't meant
// to be used as is in client code, but rather as an intermediate struct which
// enforces compile time type safety and naming convention as opposed to having to
// manually maintain hard coded strings that break on runtime.
//
// types and abis are parallel lists of contract type names and JSON ABIs.
// aliases renames methods, events and errors before normalisation.
// Bind 围绕合约 ABI 生成 Go 包装器。
func Bind(types []string, abis []string, pkg string, aliases map[string]string) (string, error) {
	if len(types) != len(abis) {
		return "", fmt.Errorf("bind: %d types for %d ABIs", len(types), len(abis))
	}
	var (
		// contracts is the map of each individual contract requested binding
		contracts = make(map[string]*tmplContract)

		// structs is the map of all redeclared structs shared by passed contracts.
		structs = make(map[string]*tmplStruct)
	)
	for i := 0; i < len(types); i++ {
		// Parse the actual ABI to generate the binding for
		evmABI, err := abi.JSON(strings.NewReader(abis[i]))
		if err != nil {
			return "", err
		}
		// Strip any whitespace from the JSON ABI
		strippedABI := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, abis[i])

		var (
			methods = make(map[string]*tmplMethod)
			events  = make(map[string]*tmplEvent)
			errs    = make(map[string]*tmplError)

			// identifiers are used to detect duplicated identifiers of the
			// generated functions and types.
			// identifiers 用于检测重复的标识符。
			methodIdentifiers = make(map[string]bool)
			eventIdentifiers  = make(map[string]bool)
			errorIdentifiers  = make(map[string]bool)
		)
		constructor := evmABI.Constructor
		constructor.Inputs = normalizeInputs(constructor.Inputs)
		for _, input := range constructor.Inputs {
			if err := bindStructs(input.Type, structs); err != nil {
				return "", err
			}
		}

		for _, original := range evmABI.Methods {
			// Normalize the method for capital cases and non-anonymous inputs/outputs
			// 规范化方法以处理大写情况和非匿名输入/输出
			normalized := original
			normalizedName, err := identifier(alias(aliases, original.Name), "M", methodIdentifiers)
			if err != nil {
				return "", fmt.Errorf("%w, use --alias for renaming %q", err, original.Name)
			}
			normalized.Name = normalizedName
			normalized.Inputs = normalizeInputs(original.Inputs)
			for _, input := range normalized.Inputs {
				if err := bindStructs(input.Type, structs); err != nil {
					return "", err
				}
			}
			normalized.Outputs = make([]abi.Argument, len(original.Outputs))
			copy(normalized.Outputs, original.Outputs)
			for j, output := range normalized.Outputs {
				if output.Name != "" {
					normalized.Outputs[j].Name = capitalise(output.Name)
				}
				if err := bindStructs(output.Type, structs); err != nil {
					return "", err
				}
			}
			methods[original.Name] = &tmplMethod{Original: original, Normalized: normalized, Structured: structured(original.Outputs)}
		}
		for _, original := range evmABI.Events {
			normalized := original
			normalizedName, err := identifier(alias(aliases, original.Name), "E", eventIdentifiers)
			if err != nil {
				return "", fmt.Errorf("%w, use --alias for renaming %q", err, original.Name)
			}
			normalized.Name = normalizedName
			normalized.Inputs = make([]abi.Argument, len(original.Inputs))
			copy(normalized.Inputs, original.Inputs)

			// Event fields become struct fields, reject camel-case-style
			// name conflicts.
			// 事件字段成为结构体字段，拒绝驼峰式名称冲突。
			used := make(map[string]bool)
			for _, input := range normalized.Inputs {
				field := capitalise(input.Name)
				if used[field] {
					return "", fmt.Errorf("event %q: duplicated field %q", original.Name, field)
				}
				used[field] = true
				if err := bindStructs(input.Type, structs); err != nil {
					return "", err
				}
			}
			events[original.Name] = &tmplEvent{Original: original, Normalized: normalized}
		}
		for _, original := range evmABI.Errors {
			normalized := original
			normalizedName, err := identifier(alias(aliases, original.Name), "Err", errorIdentifiers)
			if err != nil {
				return "", fmt.Errorf("%w, use --alias for renaming %q", err, original.Name)
			}
			normalized.Name = normalizedName
			for _, input := range original.Inputs {
				if err := bindStructs(input.Type, structs); err != nil {
					return "", err
				}
			}
			errs[original.Name] = &tmplError{Original: original, Normalized: normalized}
		}
		contracts[types[i]] = &tmplContract{
			Type:        capitalise(types[i]),
			InputABI:    strings.ReplaceAll(strippedABI, "\"", "\\\""),
			Constructor: tmplMethod{Original: evmABI.Constructor, Normalized: constructor},
			Methods:     methods,
			Events:      events,
			Errors:      errs,
		}
		log.Debug("Bound contract", "type", types[i], "methods", len(methods), "events", len(events), "errors", len(errs), "structs", len(structs))
	}
	// Generate the contract template data content and render it
	// 生成合约模板数据内容并渲染
	data := &tmplData{
		Package:   pkg,
		Contracts: contracts,
		Structs:   structs,
	}
	buffer := new(bytes.Buffer)

	funcs := map[string]interface{}{
		"bindtype":      bindTypeGo,
		"bindtopictype": bindTopicTypeGo,
		"packstmt":      packStmtGo,
		"capitalise":    capitalise,
	}
	tmpl := template.Must(template.New("").Funcs(funcs).Parse(tmplSourceGo))
	if err := tmpl.Execute(buffer, data); err != nil {
		return "", err
	}
	// Pass the code through gofmt to clean it up
	code, err := format.Source(buffer.Bytes())
	if err != nil {
		return "", fmt.Errorf("%v\n%s", err, buffer)
	}
	return string(code), nil
}

// identifier normalizes a method, event or error name and records it in
// used. Names starting with a digit get the given prefix.
func identifier(name, prefix string, used map[string]bool) (string, error) {
	normalized := capitalise(name)
	// Name shouldn't start with a digit. It will make the generated code invalid.
	if len(normalized) > 0 && unicode.IsDigit(rune(normalized[0])) {
		normalized = abi.ResolveNameConflict(prefix+normalized, func(name string) bool { return used[name] })
	}
	if normalized == "" {
		return "", fmt.Errorf("empty identifier for %q", name)
	}
	if used[normalized] {
		return "", fmt.Errorf("duplicated identifier \"%s\"(normalized \"%s\")", name, normalized)
	}
	used[normalized] = true
	return normalized, nil
}

// normalizeInputs names anonymous parameters and those clashing with Go
// keywords arg<i>.
func normalizeInputs(inputs abi.Arguments) abi.Arguments {
	normalized := make(abi.Arguments, len(inputs))
	copy(normalized, inputs)
	for j, input := range normalized {
		if input.Name == "" || isKeyWord(input.Name) || strings.HasPrefix(input.Name, "_") {
			normalized[j].Name = fmt.Sprintf("arg%d", j)
		}
	}
	return normalized
}

// bindBasicTypeGo converts basic solidity types(except array, slice and tuple) to Go ones.
// bindBasicTypeGo 将基本 Solidity 类型（除数组、切片和元组外）转换为 Go 类型。
func bindBasicTypeGo(kind abi.Type) string {
	switch kind.T {
	case abi.AddressTy:
		return "common.Address"
	case abi.IntTy, abi.UintTy:
		prefix := "int"
		if kind.T == abi.UintTy {
			prefix = "uint"
		}
		switch kind.Size {
		case 8, 16, 32, 64:
			return fmt.Sprintf("%s%d", prefix, kind.Size)
		}
		return "*big.Int"
	case abi.FixedBytesTy:
		return fmt.Sprintf("[%d]byte", kind.Size)
	case abi.BytesTy:
		return "[]byte"
	case abi.FunctionTy:
		return "[24]byte"
	default:
		// string, bool types
		return kind.String()
	}
}

// bindTypeGo converts solidity types to Go ones. Since there is no clear mapping
// from all Solidity types to Go ones (e.g. uint17), those that cannot be exactly
// mapped will use an upscaled type (e.g. *big.Int).
// bindTypeGo 将 Solidity 类型转换为 Go 类型。
func bindTypeGo(kind abi.Type, structs map[string]*tmplStruct) string {
	switch kind.T {
	case abi.TupleTy:
		return structs[kind.TupleRawName+kind.String()].Name
	case abi.ArrayTy:
		return fmt.Sprintf("[%d]", kind.Size) + bindTypeGo(*kind.Elem, structs)
	case abi.SliceTy:
		return "[]" + bindTypeGo(*kind.Elem, structs)
	default:
		return bindBasicTypeGo(kind)
	}
}

// bindTopicTypeGo converts a Solidity topic type to a Go one. Indexed
// parameters that are not value types are stored as the hash of their
// encoding, so they bind to common.Hash.
// bindTopicTypeGo 将 Solidity 主题类型转换为 Go 类型，非值类型会转换为哈希。
func bindTopicTypeGo(kind abi.Type, structs map[string]*tmplStruct) string {
	switch kind.T {
	case abi.StringTy, abi.BytesTy, abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		return "common.Hash"
	}
	return bindTypeGo(kind, structs)
}

// packStmtGo returns the statements pushing the Go parameter name of the
// given kind onto the builder _b. Fallible conversions return from the
// enclosing Pack function.
func packStmtGo(kind abi.Type, name string, structs map[string]*tmplStruct) string {
	push := func(expr string) string {
		return fmt.Sprintf("_b.Push(%s)", expr)
	}
	try := func(expr string) string {
		v := "_" + name + "Value"
		return fmt.Sprintf("%s, err := %s\nif err != nil {\nreturn nil, err\n}\n_b.Push(%s)", v, expr, v)
	}
	switch kind.T {
	case abi.IntTy, abi.UintTy:
		prefix := "Int"
		if kind.T == abi.UintTy {
			prefix = "Uint"
		}
		switch kind.Size {
		case 8, 16, 32, 64:
			return push(fmt.Sprintf("abi.%s%d(%s)", prefix, kind.Size, name))
		}
		return try(fmt.Sprintf("abi.New%s(%d, %s)", prefix, kind.Size, name))
	case abi.BoolTy:
		return push(fmt.Sprintf("abi.Bool(%s)", name))
	case abi.AddressTy:
		return push(fmt.Sprintf("abi.Address{Address: %s}", name))
	case abi.FunctionTy:
		return push(fmt.Sprintf("abi.FunctionRef(%s)", name))
	case abi.BytesTy:
		return push(fmt.Sprintf("abi.NewBytes(%s)", name))
	case abi.StringTy:
		return try(fmt.Sprintf("abi.NewString(%s)", name))
	case abi.FixedBytesTy:
		return try(fmt.Sprintf("abi.NewFixedBytes(%d, %s[:])", kind.Size, name))
	default:
		return try(fmt.Sprintf("marshal.ValueOfType(%s, abi.MustNewType(%q))", name, kind.String()))
	}
}

// bindStructs records the Go struct definitions of every tuple inside kind
// and rejects types the generator has no Go mapping for.
func bindStructs(kind abi.Type, structs map[string]*tmplStruct) error {
	switch kind.T {
	case abi.TupleTy, abi.ArrayTy, abi.SliceTy:
		bindStructTypeGo(kind, structs)
		return nil
	case abi.IntTy, abi.UintTy, abi.BoolTy, abi.AddressTy, abi.FunctionTy, abi.FixedBytesTy, abi.BytesTy, abi.StringTy:
		return nil
	}
	return &abi.UnsupportedTypeError{Type: kind.String()}
}

// bindStructTypeGo converts a Solidity tuple type to a Go one and records the mapping
// in the given map.
// Notably, this function will resolve and record nested struct recursively.
// bindStructTypeGo 将 Solidity 元组类型转换为 Go 类型，并递归记录嵌套结构体。
func bindStructTypeGo(kind abi.Type, structs map[string]*tmplStruct) string {
	switch kind.T {
	case abi.TupleTy:
		// We compose a raw struct name and a canonical parameter expression
		// together here. Before solidity v0.5.11 kind.TupleRawName is empty,
		// so the canonical expression tells struct definitions apart.
		// 组合原始结构体名称和规范参数表达式作为唯一 ID。
		id := kind.TupleRawName + kind.String()
		if s, exist := structs[id]; exist {
			return s.Name
		}
		var (
			names  = make(map[string]bool)
			fields []*tmplField
		)
		for i, elem := range kind.TupleElems {
			name := capitalise(kind.TupleRawNames[i])
			if name == "" {
				name = fmt.Sprintf("Field%d", i)
			}
			name = abi.ResolveNameConflict(name, func(s string) bool { return names[s] })
			names[name] = true
			fields = append(fields, &tmplField{Type: bindStructTypeGo(*elem, structs), Name: name, SolKind: *elem})
		}
		name := kind.TupleRawName
		if name == "" {
			name = fmt.Sprintf("Struct%d", len(structs))
		}
		name = capitalise(name)

		structs[id] = &tmplStruct{
			Name:   name,
			Fields: fields,
		}
		return name
	case abi.ArrayTy:
		return fmt.Sprintf("[%d]", kind.Size) + bindStructTypeGo(*kind.Elem, structs)
	case abi.SliceTy:
		return "[]" + bindStructTypeGo(*kind.Elem, structs)
	default:
		return bindBasicTypeGo(kind)
	}
}

// structured checks whether a list of ABI data types has enough information to
// operate through a proper Go struct or if flat returns are needed.
// structured 检查 ABI 数据类型列表是否可以组织成 Go 结构体。
func structured(args abi.Arguments) bool {
	if len(args) < 2 {
		return false
	}
	exists := make(map[string]bool)
	for _, out := range args {
		// If the name is anonymous, we can't organize into a struct
		if out.Name == "" {
			return false
		}
		// If the field name is empty when normalized or collides (var, Var, _var, _Var),
		// we can't organize into a struct
		field := capitalise(out.Name)
		if field == "" || exists[field] {
			return false
		}
		exists[field] = true
	}
	return true
}

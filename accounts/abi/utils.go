// Copyright 2022 The go-ethereum Authors
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
	"fmt"
	"strings"
)

// ResolveNameConflict returns the next available name for a given thing.
// Solidity supports overloading, and camel-casing parameter names for Go
// bindings may merge distinct names, so both need a way out.
//
// Name conflicts are resolved by adding a number suffix. e.g. if the abi contains
// Methods "send" and "send0", ResolveNameConflict would return "send1" for input "send".
// ResolveNameConflict 返回给定事物的下一个可用名称，通过添加数字后缀解决名称冲突。
func ResolveNameConflict(rawName string, used func(string) bool) string {
	name := rawName
	ok := used(name)
	for idx := 0; ok; idx++ {
		name = fmt.Sprintf("%s%d", rawName, idx)
		ok = used(name)
	}
	return name
}

// ToCamelCase converts an under-score string to a camel-case string.
// ToCamelCase 将下划线分隔的字符串转换为驼峰命名法的字符串。
func ToCamelCase(input string) string {
	parts := strings.Split(input, "_")
	for i, s := range parts {
		if len(s) > 0 {
			parts[i] = strings.ToUpper(s[:1]) + s[1:]
		}
	}
	return strings.Join(parts, "")
}
